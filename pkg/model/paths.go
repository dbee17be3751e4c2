// Copyright © 2026 One Concern

package model

import (
	"fmt"
	"strings"

	"github.com/segmentio/ksuid"
)

const (
	recordsFile  = "records.json"
	metadataFile = "graph.json"
)

// NewVersionID allocates a new opaque version identifier.
//
// KSUIDs sort by creation time, which keeps archive listings roughly
// chronological for free.
func NewVersionID() string {
	return ksuid.New().String()
}

// IsVersionID tells whether a string parses as a generated version id
func IsVersionID(id string) bool {
	_, err := ksuid.Parse(id)
	return err == nil
}

// GetArchivePathToVersionRecords yields the archive path to the record
// payload of a version.
//
// Layout: datasets/{dataset}/versions/{versionID}/records.json
func GetArchivePathToVersionRecords(datasetID, versionID string) string {
	return fmt.Sprint(getArchivePathToDataset(datasetID), "versions/", versionID, "/", recordsFile)
}

// GetArchivePathPrefixToVersions yields the archive path prefix under
// which all of a dataset's version payloads live.
func GetArchivePathPrefixToVersions(datasetID string) string {
	return fmt.Sprint(getArchivePathToDataset(datasetID), "versions/")
}

// GetArchivePathToMetadata yields the archive path of the exported
// metadata graph.
func GetArchivePathToMetadata() string {
	return metadataFile
}

func getArchivePathToDataset(datasetID string) string {
	return fmt.Sprint("datasets/", datasetID, "/")
}

// ArchivePathComponents defines the unique path parts to retrieve a
// version payload.
type ArchivePathComponents struct {
	DatasetID       string
	VersionID       string
	ArchiveFileName string
}

// GetArchivePathComponents yields all metadata components from a parsed
// archive path.
func GetArchivePathComponents(archivePath string) (ArchivePathComponents, error) {
	const expectParts = 5 // as in: datasets/{dataset}/versions/{versionID}/records.json
	cs := strings.SplitN(archivePath, "/", expectParts)
	if len(cs) < expectParts || cs[0] != "datasets" || cs[2] != "versions" {
		return ArchivePathComponents{},
			fmt.Errorf("path is invalid: expect datasets/{dataset}/versions/{id}/%s: %s", recordsFile, archivePath)
	}
	if cs[4] != recordsFile {
		return ArchivePathComponents{},
			fmt.Errorf("path is invalid, last element in the path should be %q. components: %v, path: %s",
				recordsFile, cs, archivePath)
	}
	return ArchivePathComponents{
		DatasetID:       cs[1],
		VersionID:       cs[3],
		ArchiveFileName: cs[4],
	}, nil
}
