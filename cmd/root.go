package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "reelinfo",
	Short: "reelinfo cli",
	Long:  `reelinfo extracts movie metadata from release filenames`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
}

const (
	defaultScanInterval = time.Hour
)

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix("REELINFO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("patterns.movie", []string{})
	viper.SetDefault("patterns.separator", "")
	viper.SetDefault("patterns.source", "")
	viper.SetDefault("patterns.videoCodec", "")
	viper.SetDefault("patterns.audioCodec", "")
	viper.SetDefault("patterns.diskNumber", "")
	viper.SetDefault("patterns.titleCase", false)

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("library.movie", "")
	viper.SetDefault("library.scanInterval", defaultScanInterval)

	viper.SetDefault("storage.filePath", "reelinfo.sqlite")
}
