package cmd

import (
	"context"
	"os"
	"strconv"

	mio "github.com/kasuboski/reelinfo/pkg/io"
	"github.com/kasuboski/reelinfo/pkg/library"
	"github.com/kasuboski/reelinfo/pkg/logger"
	"github.com/kasuboski/reelinfo/pkg/manager"
	"github.com/kasuboski/reelinfo/pkg/pagination"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list something",
	Long:  `list something`,
}

var (
	parsedFilter string
	titleFilter  string
	page         pagination.Params
)

// listMovieFilesCmd lists stored extraction results
var listMovieFilesCmd = &cobra.Command{
	Use:   "movie-files",
	Short: "List stored movie file results",
	Long:  `List stored movie file results`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		cfg := mustConfig(log)
		store := mustStorage(ctx, log, cfg)
		defer store.Close()

		filter := manager.MovieFileFilter{Title: titleFilter}
		if parsedFilter != "" {
			parsed, err := strconv.ParseBool(parsedFilter)
			if err != nil {
				log.Fatal("invalid parsed filter", zap.Error(err))
			}
			filter.Parsed = &parsed
		}

		m := manager.New(nil, store, nil, nil)
		result, err := m.ListMovieFiles(ctx, filter, page)
		if err != nil {
			log.Fatal("failed to list movie files", zap.Error(err))
		}

		for _, f := range result.Files {
			log.Infow(f.Path, "id", f.ID, "parsed", f.Parsed, "title", f.Title, "year", f.Year)
		}
		log.Infow("listed movie files", "page", result.Meta.Page, "totalPages", result.Meta.TotalPages, "total", result.Meta.TotalItems)
	},
}

// listMovieCmd lists movie files in a library
var listMovieCmd = &cobra.Command{
	Use:        "movie",
	Short:      "List movie files found at a path",
	Long:       `List movie files found at a path`,
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"path to movies"},
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		log := logger.Get()
		ctx = logger.WithCtx(ctx, log)

		path := args[0]
		lib := library.New(
			library.FileSystem{FS: os.DirFS(path), Path: path},
			&mio.MediaFileSystem{},
		)
		movies, err := lib.FindMovieFiles(ctx)
		if err != nil {
			log.Fatal(err)
		}

		for _, m := range movies {
			log.Info(m)
		}
	},
}

func init() {
	listMovieFilesCmd.Flags().StringVar(&parsedFilter, "parsed", "", "only list results that were (true) or were not (false) parsed")
	listMovieFilesCmd.Flags().StringVar(&titleFilter, "title", "", "only list results whose title contains this text")
	listMovieFilesCmd.Flags().IntVar(&page.Page, "page", 1, "page to list")
	listMovieFilesCmd.Flags().IntVar(&page.PageSize, "page-size", 0, "results per page, 0 lists everything")

	listCmd.AddCommand(listMovieFilesCmd)
	listCmd.AddCommand(listMovieCmd)

	rootCmd.AddCommand(listCmd)
}
