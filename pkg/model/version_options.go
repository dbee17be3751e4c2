// Copyright © 2026 One Concern

package model

import "time"

// VersionDescriptorOption is a functor to build version descriptors
type VersionDescriptorOption func(descriptor *VersionDescriptor)

// VersionID defines the id of the version descriptor
func VersionID(id string) VersionDescriptorOption {
	return func(v *VersionDescriptor) {
		v.ID = id
	}
}

// Dataset defines the dataset the version belongs to
func Dataset(datasetID string) VersionDescriptorOption {
	return func(v *VersionDescriptor) {
		v.DatasetID = datasetID
	}
}

// Number defines the per-dataset sequence number of the version
func Number(n uint64) VersionDescriptorOption {
	return func(v *VersionDescriptor) {
		v.VersionNumber = n
	}
}

// ContentHash defines the payload digest of the version descriptor
func ContentHash(h string) VersionDescriptorOption {
	return func(v *VersionDescriptor) {
		v.ContentHash = h
	}
}

// Payload defines the payload accounting of the version descriptor
func Payload(sizeBytes, recordCount uint64) VersionDescriptorOption {
	return func(v *VersionDescriptor) {
		v.SizeBytes = sizeBytes
		v.RecordCount = recordCount
	}
}

// VersionTime defines the commit timestamp of the version descriptor
func VersionTime(t time.Time) VersionDescriptorOption {
	return func(v *VersionDescriptor) {
		v.Timestamp = t
	}
}

// Message defines the commit message of the version descriptor
func Message(m string) VersionDescriptorOption {
	return func(v *VersionDescriptor) {
		v.Message = m
	}
}

// VersionContributor defines the contributor for a version descriptor
func VersionContributor(c Contributor) VersionDescriptorOption {
	return func(v *VersionDescriptor) {
		v.Contributor = c
	}
}

// Parent defines the parent version for a version descriptor
func Parent(id string) VersionDescriptorOption {
	return func(v *VersionDescriptor) {
		v.ParentID = id
	}
}

// Branch defines the branch the version is committed on
func Branch(name string) VersionDescriptorOption {
	return func(v *VersionDescriptor) {
		if name != "" {
			v.BranchName = name
		}
	}
}

// Metadata defines the open key-value metadata map of a version descriptor
func Metadata(meta map[string]string) VersionDescriptorOption {
	return func(v *VersionDescriptor) {
		v.Metadata = meta
	}
}

// Tags defines the initial tag set of a version descriptor
func Tags(tags ...string) VersionDescriptorOption {
	return func(v *VersionDescriptor) {
		v.Tags = tags
	}
}
