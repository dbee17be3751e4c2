// Copyright © 2026 One Concern

package core

import (
	"time"

	"github.com/oneconcern/dataver/pkg/storage"
	"go.uber.org/zap"
)

// EngineOption is a functor to build engines
type EngineOption func(*Engine)

// Backend sets the storage store for record payloads
func Backend(store storage.Store) EngineOption {
	return func(e *Engine) {
		if store != nil {
			e.backend = store
		}
	}
}

// Logger sets a zap logger for the engine
func Logger(l *zap.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.l = l
		}
	}
}

// Clock overrides the time source stamped on new versions and branches.
// Tests use it to obtain deterministic timestamps.
func Clock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.clock = now
		}
	}
}

// WithAutoCreateBranch makes commits on an unknown branch create that
// branch with the new version as its head, instead of failing.
//
// The flag is off by default: branch creation is explicit unless callers
// opt in.
func WithAutoCreateBranch(enabled bool) EngineOption {
	return func(e *Engine) {
		e.autoCreateBranch = enabled
	}
}
