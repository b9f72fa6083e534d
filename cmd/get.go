package cmd

import (
	"context"

	"github.com/kasuboski/reelinfo/pkg/extractor"
	"github.com/kasuboski/reelinfo/pkg/logger"
	"github.com/kasuboski/reelinfo/pkg/manager"
	"github.com/kasuboski/reelinfo/pkg/publisher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get",
	Short: "get something",
	Long:  `get something`,
}

// getResultCmd looks up the stored result for a path
var getResultCmd = &cobra.Command{
	Use:   "result [path]",
	Short: "get the stored result for a file path",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		cfg := mustConfig(log)
		store := mustStorage(ctx, log, cfg)
		defer store.Close()

		m := manager.New(nil, store, nil, nil)
		result, err := m.GetResult(ctx, args[0])
		if err != nil {
			log.Fatal("failed to get result", zap.Error(err))
		}

		log.Infow("result", "file", manager.NewFileInfo(result, extractor.ProviderName))
	},
}

// getMovieFileCmd looks up a stored result by id
var getMovieFileCmd = &cobra.Command{
	Use:   "movie-file [id]",
	Short: "get a stored movie file by id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		cfg := mustConfig(log)
		store := mustStorage(ctx, log, cfg)
		defer store.Close()

		m := manager.New(nil, store, nil, nil)
		file, err := m.GetMovieFile(ctx, args[0])
		if err != nil {
			log.Fatal("failed to get movie file", zap.Error(err))
		}

		log.Infow("movie file", "file", manager.NewFileInfo(publisher.FromMovieFile(*file), file.Provider), "id", file.ID, "added", file.DateAdded)
	},
}

func init() {
	getCmd.AddCommand(getResultCmd)
	getCmd.AddCommand(getMovieFileCmd)

	rootCmd.AddCommand(getCmd)
}
