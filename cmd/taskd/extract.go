package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/taskd/pkg/extract"
)

var (
	extractProject  string
	extractAssignee string
	extractRefTime  string
)

// extractCmd runs the extraction pipeline over a file or stdin.
var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract tasks from a notes file or stdin",
	Long: `Extract structured tasks from free-form notes and print them as JSON.

Examples:
  # Extract from a file
  taskd extract notes.md

  # Extract from stdin
  pbpaste | taskd extract -

  # Anchor relative dates ("tomorrow", "by Friday") to a reference time
  taskd extract --ref 2026-04-15T00:00:00Z notes.md

  # Force the project name instead of inferring it from the first line
  taskd extract --project "Q2 Launch" notes.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractProject, "project", "", "project name applied to all tasks (skips inference)")
	extractCmd.Flags().StringVar(&extractAssignee, "assignee", "", "default assignee when no pattern matches")
	extractCmd.Flags().StringVar(&extractRefTime, "ref", "", "RFC 3339 reference time for relative dates (default: now)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ref := time.Now()
	if extractRefTime != "" {
		ref, err = time.Parse(time.RFC3339, extractRefTime)
		if err != nil {
			return fmt.Errorf("invalid --ref value %q: %w", extractRefTime, err)
		}
	}

	engine := extract.NewEngine(cfg.Extraction, nil)
	tasks := engine.Extract(text, extract.Options{
		ProjectName:     extractProject,
		DefaultAssignee: extractAssignee,
		ReferenceTime:   ref,
	})

	return printJSON(cmd.OutOrStdout(), tasks)
}

// readInput reads the named file, or stdin when the argument is absent
// or "-".
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
