// Copyright © 2026 One Concern

// Package core implements the dataset version-control engine.
//
// The engine manages immutable snapshots ("versions") of record-oriented
// datasets, organizes them into named branches, computes structured diffs
// between versions, supports non-destructive rollback and answers
// ancestry queries.
//
// Metadata lives in an in-memory arena guarded by per-dataset
// reader-writer locks; record payloads are delegated to a pluggable
// storage.Store. Every commit is a single atomic unit: version-number
// allocation, branch-head advancement and history-index maintenance
// happen in one critical section.
package core
