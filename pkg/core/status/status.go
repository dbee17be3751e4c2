// Copyright © 2026 One Concern

// Package status exports errors produced by the core package.
package status

import (
	"github.com/oneconcern/dataver/pkg/errors"
)

var (
	// ErrNotFound indicates an object was not found
	ErrNotFound = errors.New("not found")

	// ErrDatasetNotFound indicates the dataset has no versions yet
	ErrDatasetNotFound = errors.New("dataset not found").Wrap(ErrNotFound)

	// ErrVersionNotFound indicates a version id does not name an existing version
	ErrVersionNotFound = errors.New("version not found").Wrap(ErrNotFound)

	// ErrBranchNotFound indicates a branch name does not name an existing branch
	ErrBranchNotFound = errors.New("branch not found").Wrap(ErrNotFound)

	// ErrParentNotFound indicates a commit names a parent version absent from the dataset
	ErrParentNotFound = errors.New("parent version not found").Wrap(ErrNotFound)

	// ErrPayloadNotFound indicates the storage backend has no payload for an existing version
	ErrPayloadNotFound = errors.New("version payload not found on storage").Wrap(ErrNotFound)

	// ErrConflict indicates an operation conflicts with existing state
	ErrConflict = errors.New("conflict")

	// ErrBranchExists indicates an attempt to create a branch under a name already taken
	ErrBranchExists = errors.New("branch exists already").Wrap(ErrConflict)

	// ErrMainProtected indicates an attempt to delete the main branch
	ErrMainProtected = errors.New("the main branch cannot be deleted").Wrap(ErrConflict)

	// ErrValidation indicates a malformed or empty commit payload
	ErrValidation = errors.New("validation failed")

	// ErrEmptyPayload indicates a commit was attempted with no records
	ErrEmptyPayload = errors.New("empty payload: a version requires at least one record").Wrap(ErrValidation)
)
