// Package main implements the taskd CLI: local task extraction and
// identity resolution, plus the HTTP server daemon.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/taskd/internal/config"
)

var (
	// configPath overrides the default config file location.
	configPath string
	// version information (set via ldflags during build)
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "taskd",
	Short: "Extract structured tasks from free-form notes",
	Long: `taskd turns meeting notes, transcripts, and todo dumps into structured
task records using deterministic rule cascades. It also resolves
free-text assignee names against a user roster.

Run it as a one-shot CLI (extract, resolve) or as an HTTP server (serve).`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/taskd/config.yaml)")
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads configuration honoring the --config flag.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadWithFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
