package cmd

import (
	"context"

	"github.com/kasuboski/reelinfo/pkg/extractor"
	"github.com/kasuboski/reelinfo/pkg/logger"
	"github.com/kasuboski/reelinfo/pkg/manager"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// parseCmd extracts metadata without storing it
var parseCmd = &cobra.Command{
	Use:   "parse [filenames...]",
	Short: "Parse release filenames",
	Long:  `Extract metadata from release filenames with the configured patterns and print the result`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		ext := extractor.New(nil, nil)
		cfg := mustConfig(log)
		ext.Reconfigure(ctx, cfg.Patterns)

		m := manager.New(ext, nil, nil, nil)
		for _, filename := range args {
			result, err := m.ParseFilename(ctx, filename)
			if err != nil {
				log.Error("failed to parse filename", zap.Error(err))
				continue
			}

			log.Infow("parsed", "filename", filename, "result", manager.NewFileInfo(result, extractor.ProviderName))
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
