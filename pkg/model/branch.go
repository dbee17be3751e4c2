// Copyright © 2026 One Concern

package model

import (
	"time"
)

// BranchDescriptor represents a named movable pointer to a version.
//
// A branch's head is advanced by every commit on it. Deleting a branch
// removes only the pointer: referenced versions remain in the graph.
type BranchDescriptor struct {
	Name          string      `json:"name" yaml:"name"`
	HeadVersionID string      `json:"head" yaml:"head"`
	Timestamp     time.Time   `json:"timestamp" yaml:"timestamp"`
	Contributor   Contributor `json:"contributor" yaml:"contributor"`
	Description   string      `json:"description,omitempty" yaml:"description,omitempty"`
	_             struct{}
}

// NewBranchDescriptor builds a new branch descriptor with some options
func NewBranchDescriptor(name string, opts ...BranchDescriptorOption) *BranchDescriptor {
	b := &BranchDescriptor{
		Name:      name,
		Timestamp: GetTimeStamp(),
	}
	for _, apply := range opts {
		apply(b)
	}
	return b
}

// BranchDescriptorOption is a functor to build branch descriptors
type BranchDescriptorOption func(descriptor *BranchDescriptor)

// BranchHead sets the head version for the branch
func BranchHead(versionID string) BranchDescriptorOption {
	return func(b *BranchDescriptor) {
		b.HeadVersionID = versionID
	}
}

// BranchContributor sets the creator of the branch
func BranchContributor(c Contributor) BranchDescriptorOption {
	return func(b *BranchDescriptor) {
		b.Contributor = c
	}
}

// BranchTime sets the creation timestamp of the branch
func BranchTime(t time.Time) BranchDescriptorOption {
	return func(b *BranchDescriptor) {
		b.Timestamp = t
	}
}

// BranchDescription sets an optional free-text description for the branch
func BranchDescription(desc string) BranchDescriptorOption {
	return func(b *BranchDescriptor) {
		b.Description = desc
	}
}
