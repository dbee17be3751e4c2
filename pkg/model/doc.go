// Copyright © 2026 One Concern

// Package model describes the data model of the dataset version-control
// engine: versions, branches, records, diffs and the exportable metadata
// graph.
//
// Descriptors are immutable value types: the engine hands out copies and
// all graph mutation goes through the core package.
package model
