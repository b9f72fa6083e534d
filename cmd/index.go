package cmd

import (
	"context"

	"github.com/kasuboski/reelinfo/pkg/extractor"
	"github.com/kasuboski/reelinfo/pkg/logger"
	"github.com/kasuboski/reelinfo/pkg/manager"
	"github.com/kasuboski/reelinfo/pkg/publisher"

	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// indexCmd represents the index command
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index media libraries",
	Long:  `Extract metadata for every file in a media library and store the results`,
}

// indexMoviesCmd indexes movies
var indexMoviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "Index movie library",
	Long:  `Walk the movie library directory, extract metadata from every video filename and store the results`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		cfg := mustConfig(log)

		store := mustStorage(ctx, log, cfg)
		defer store.Close()

		ext := extractor.New(publisher.Multi{
			publisher.Log{},
			publisher.NewStore(store, extractor.ProviderName),
		}, patternLoader())

		err := ext.Start(ctx)
		if err != nil {
			log.Fatal("failed to start extractor", zap.Error(err))
		}

		m := manager.New(ext, store, movieLibrary(cfg), nil)

		log.Info("Starting movie library indexing")

		result, err := m.ScanLibrary(ctx)
		if err != nil {
			log.Fatal("failed to index movie library", zap.Error(err))
		}

		err = ext.Wait(ctx)
		if err != nil {
			log.Error("extraction did not finish", zap.Error(err))
		}

		_, err = ext.Stop(ctx)
		if err != nil {
			log.Error("failed to stop extractor", zap.Error(err))
		}

		status := ext.Status()
		log.Infow("Movie library indexing completed", "found", result.Found, "processed", status.Processed, "failed", status.Failed)
	},
}

// indexFilesCmd indexes the given paths
var indexFilesCmd = &cobra.Command{
	Use:   "files [paths...]",
	Short: "Index individual files",
	Long:  `Extract metadata from the given file paths and store the results`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		cfg := mustConfig(log)

		store := mustStorage(ctx, log, cfg)
		defer store.Close()

		ext := extractor.New(publisher.Multi{
			publisher.Log{},
			publisher.NewStore(store, extractor.ProviderName),
		}, patternLoader())

		err := ext.Start(ctx)
		if err != nil {
			log.Fatal("failed to start extractor", zap.Error(err))
		}

		m := manager.New(ext, store, nil, nil)
		queued, err := m.SubmitPaths(ctx, args)
		if err != nil {
			log.Fatal("failed to submit paths", zap.Error(err))
		}

		err = ext.Wait(ctx)
		if err != nil {
			log.Error("extraction did not finish", zap.Error(err))
		}

		_, err = ext.Stop(ctx)
		if err != nil {
			log.Error("failed to stop extractor", zap.Error(err))
		}

		log.Infow("indexed files", "queued", queued)
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)

	indexCmd.AddCommand(indexMoviesCmd)
	indexCmd.AddCommand(indexFilesCmd)
}
