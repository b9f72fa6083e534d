package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kasuboski/reelinfo/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// sampleReleases covers the naming variations the default patterns understand along
// with a few that should stay unparsed
var sampleReleases = []string{
	"The.Matrix.1999.BluRay.x264.DTS-GROUP.mkv",
	"Heat_1995.(1995).DVDRip.XviD.AC3-XYZ.CD1.avi",
	"Heat_1995.(1995).DVDRip.XviD.AC3-XYZ.CD2.avi",
	"Alien.1979.DVDRip.XviD-GRP.avi",
	"Blade.Runner.1982.BDRip.x264.DTS-[RLS].mp4",
	"home video.mp4",
	"notes.txt",
}

var generateTestlibCmd = &cobra.Command{
	Use:   "testlib",
	Short: "Generate a sample movie library",
	Long: `Generate a movie library of empty files named like real releases.

Every sample is placed in its own directory so the library can be indexed
without large media files.

Example:
  reelinfo generate testlib ./testlib`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		outputDir := "./testlib"
		if len(args) > 0 {
			outputDir = args[0]
		}

		overwrite, _ := cmd.Flags().GetBool("overwrite")
		if _, err := os.Stat(outputDir); err == nil && !overwrite {
			log.Fatalf("Output directory %s already exists. Use --overwrite to replace it.", outputDir)
		}

		for _, name := range sampleReleases {
			dir := filepath.Join(outputDir, strings.TrimSuffix(name, filepath.Ext(name)))
			if err := os.MkdirAll(dir, 0o755); err != nil {
				log.Fatal("failed to create directory", zap.String("dir", dir), zap.Error(err))
			}

			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, nil, 0o644); err != nil {
				log.Fatal("failed to create file", zap.String("path", path), zap.Error(err))
			}
		}

		log.Infow("generated test library", "dir", outputDir, "files", len(sampleReleases))
	},
}

func init() {
	generateCmd.AddCommand(generateTestlibCmd)
	generateTestlibCmd.Flags().Bool("overwrite", false, "Write into an existing directory")
}
