package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/kasuboski/reelinfo/pkg/extractor"
	"github.com/kasuboski/reelinfo/pkg/logger"
	"github.com/kasuboski/reelinfo/pkg/manager"
	"github.com/kasuboski/reelinfo/pkg/publisher"
	"github.com/kasuboski/reelinfo/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the extraction server",
	Long:  `start the extraction server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx = logger.WithCtx(ctx, log)

		cfg := mustConfig(log)

		store := mustStorage(ctx, log, cfg)
		defer store.Close()

		results := publisher.NewMemory()
		pub := publisher.Multi{
			publisher.Log{},
			publisher.NewStore(store, extractor.ProviderName),
			results,
		}

		ext := extractor.New(pub, patternLoader())
		err := ext.Start(ctx)
		if err != nil {
			log.Fatal("failed to start extractor", zap.Error(err))
		}

		if viper.ConfigFileUsed() != "" {
			viper.OnConfigChange(func(e fsnotify.Event) {
				log.Infow("config file changed, reloading patterns", "file", e.Name)
				ext.Reload(ctx)
			})
			viper.WatchConfig()
		}

		m := manager.New(ext, store, movieLibrary(cfg), results)
		go m.Run(ctx, cfg.Library.ScanInterval)

		srv := server.New(log, m)
		if err := srv.Serve(ctx, cfg.Server.Port); err != nil {
			log.Error("server stopped", zap.Error(err))
		}

		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, err := ext.Stop(logger.WithCtx(stopCtx, log)); err != nil {
			log.Error("failed to stop extractor", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
