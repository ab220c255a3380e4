// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/linkshelf/linkshelf/internal/config"
)

var (
	cfg        config.Config
	configPath string // directory holding main.toml
)

var rootCmd = &cobra.Command{
	Use:   "linkshelf",
	Short: "LinkShelf is a small link directory",
	Long: `LinkShelf serves a public page of links grouped into folders and
subfolders, a suggestion form and a password protected admin dashboard.`,
	Args: cobra.OnlyValidArgs,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./etc/", "directory containing main.toml")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configuration named by --config.
func loadConfig() error {
	var err error

	if configPath != "" && configPath[len(configPath)-1] != '/' {
		configPath += "/"
	}

	cfg, err = config.ReadConfig(configPath)

	return err
}
