package cmd

import (
	"context"
	"os"

	"github.com/kasuboski/reelinfo/config"
	"github.com/kasuboski/reelinfo/pkg/extractor"
	mio "github.com/kasuboski/reelinfo/pkg/io"
	"github.com/kasuboski/reelinfo/pkg/library"
	"github.com/kasuboski/reelinfo/pkg/storage"
	"github.com/kasuboski/reelinfo/pkg/storage/sqlite"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func mustConfig(log *zap.SugaredLogger) config.Config {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		log.Fatal("failed to read configurations", zap.Error(err))
	}
	return cfg
}

func mustStorage(ctx context.Context, log *zap.SugaredLogger, cfg config.Config) storage.Storage {
	store, err := sqlite.New(ctx, cfg.Storage.FilePath)
	if err != nil {
		log.Fatal("failed to create storage connection", zap.Error(err))
	}

	err = store.RunMigrations(ctx)
	if err != nil {
		log.Fatal("failed to run database migrations", zap.Error(err))
	}

	return store
}

// movieLibrary returns nil when no movie directory is configured
func movieLibrary(cfg config.Config) library.Library {
	if cfg.Library.MovieDir == "" {
		return nil
	}

	return library.New(
		library.FileSystem{
			Path: cfg.Library.MovieDir,
			FS:   os.DirFS(cfg.Library.MovieDir),
		},
		&mio.MediaFileSystem{},
	)
}

// patternLoader rereads the configuration each time patterns are loaded so edits
// to the config file are picked up on reload
func patternLoader() extractor.Loader {
	return extractor.LoaderFunc(func(context.Context) (config.Patterns, error) {
		return config.LoadPatterns(viper.GetViper())
	})
}
