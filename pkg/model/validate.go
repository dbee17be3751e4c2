// Copyright © 2026 One Concern

package model

import (
	"fmt"
	"unicode"
)

// ValidateDatasetID checks a dataset identifier for use in archive paths.
func ValidateDatasetID(datasetID string) error {
	if datasetID == "" {
		return fmt.Errorf("empty field: dataset id is empty")
	}
	for i, c := range datasetID {
		if !unicode.IsDigit(c) && !unicode.IsLetter(c) && !unicode.Is(unicode.Hyphen, c) && c != '_' {
			return fmt.Errorf("invalid name: dataset id %q contains unsupported character %q",
				datasetID, string([]rune(datasetID)[i]))
		}
	}
	return nil
}

// ValidateBranchName checks a branch name.
func ValidateBranchName(name string) error {
	if name == "" {
		return fmt.Errorf("empty field: branch name is empty")
	}
	for i, c := range name {
		if !unicode.IsDigit(c) && !unicode.IsLetter(c) && !unicode.Is(unicode.Hyphen, c) && c != '_' && c != '/' && c != '.' {
			return fmt.Errorf("invalid name: branch name %q contains unsupported character %q",
				name, string([]rune(name)[i]))
		}
	}
	return nil
}
