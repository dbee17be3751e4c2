// Copyright © 2026 One Concern

package cmd

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/oneconcern/dataver/pkg/core"
	"github.com/oneconcern/dataver/pkg/dlogger"
	"github.com/oneconcern/dataver/pkg/model"
	"github.com/oneconcern/dataver/pkg/storage"
	"github.com/oneconcern/dataver/pkg/storage/localfs"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// initEngine opens the configured local store and rebuilds the engine
// from the persisted metadata graph, when one exists.
func initEngine(ctx context.Context) (*core.Engine, storage.Store, error) {
	logger, err := dlogger.GetLoggerWithFormat(viper.GetString("loglevel"), dlogger.FormatConsole)
	if err != nil {
		return nil, nil, err
	}

	store := localfs.New(afero.NewBasePathFs(afero.NewOsFs(),
		filepath.Join(viper.GetString("store"), "objects")))

	engine := core.New(
		core.Backend(store),
		core.Logger(logger),
		core.WithAutoCreateBranch(viper.GetBool("autocreatebranch")),
	)

	graphPath := model.GetArchivePathToMetadata()
	has, err := store.Has(ctx, graphPath)
	if err != nil {
		return nil, nil, err
	}
	if has {
		rdr, err := store.Get(ctx, graphPath)
		if err != nil {
			return nil, nil, err
		}
		defer rdr.Close()
		if err = engine.Import(rdr); err != nil {
			return nil, nil, err
		}
	}
	return engine, store, nil
}

// saveEngine persists the metadata graph back to the store after a
// mutating command.
func saveEngine(ctx context.Context, engine *core.Engine, store storage.Store) error {
	var buf bytes.Buffer
	if err := engine.Export(&buf); err != nil {
		return err
	}
	return store.Put(ctx, model.GetArchivePathToMetadata(), &buf, storage.OverWrite)
}
