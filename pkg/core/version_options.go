// Copyright © 2026 One Concern

package core

import "github.com/oneconcern/dataver/pkg/model"

// commitParams collects per-commit settings.
type commitParams struct {
	message     string
	contributor model.Contributor
	branch      string
	parentID    string
	metadata    map[string]string
	tags        []string
}

// CommitOption is a functor to configure a commit
type CommitOption func(*commitParams)

// Message sets the commit message of the new version
func Message(m string) CommitOption {
	return func(c *commitParams) {
		c.message = m
	}
}

// CommitContributor sets the author of the new version
func CommitContributor(contributor model.Contributor) CommitOption {
	return func(c *commitParams) {
		c.contributor = contributor
	}
}

// Branch sets the branch the new version is committed on (default "main")
func Branch(name string) CommitOption {
	return func(c *commitParams) {
		if name != "" {
			c.branch = name
		}
	}
}

// Parent explicitly sets the parent version. When unset, the parent
// defaults to the current head of the target branch.
func Parent(versionID string) CommitOption {
	return func(c *commitParams) {
		c.parentID = versionID
	}
}

// CommitMetadata attaches an open key-value metadata map to the new version
func CommitMetadata(meta map[string]string) CommitOption {
	return func(c *commitParams) {
		c.metadata = meta
	}
}

// CommitTags attaches initial tags to the new version
func CommitTags(tags ...string) CommitOption {
	return func(c *commitParams) {
		c.tags = append(c.tags, tags...)
	}
}

// listParams collects version listing settings.
type listParams struct {
	branch string
	limit  int
}

// ListOption is a functor to configure version listings
type ListOption func(*listParams)

// WithBranch restricts a listing to versions committed on one branch
func WithBranch(name string) ListOption {
	return func(l *listParams) {
		l.branch = name
	}
}

// WithLimit caps the number of versions returned by a listing
func WithLimit(limit int) ListOption {
	return func(l *listParams) {
		l.limit = limit
	}
}
