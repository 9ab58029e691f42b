package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/taskd/pkg/identity"
)

var (
	resolveRosterPath string
	resolveThreshold  float64
)

// resolveCmd matches a name against a roster file.
var resolveCmd = &cobra.Command{
	Use:   "resolve <name>",
	Short: "Resolve a free-text name against a user roster",
	Long: `Resolve a free-text name (as extracted from notes) against a roster of
known users and print the matches as JSON.

Examples:
  # Resolve against the roster configured in resolver.roster_path
  taskd resolve "Dan"

  # Resolve against an explicit roster file
  taskd resolve --roster team.yaml "Bob"`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveRosterPath, "roster", "", "roster YAML file (default: resolver.roster_path from config)")
	resolveCmd.Flags().Float64Var(&resolveThreshold, "threshold", 0, "candidate similarity cutoff in [0,1] (default: resolver.threshold from config)")
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rosterPath := resolveRosterPath
	if rosterPath == "" {
		rosterPath = cfg.Resolver.RosterPath
	}
	if rosterPath == "" {
		return fmt.Errorf("no roster: pass --roster or set resolver.roster_path in config")
	}

	roster, err := identity.LoadRoster(rosterPath)
	if err != nil {
		return err
	}

	resolver := identity.NewResolver(cfg.Resolver.Identity(), nil).WithThreshold(resolveThreshold)

	matches := resolver.FindMatches(args[0], roster)
	if len(matches) > 0 {
		return printJSON(cmd.OutOrStdout(), matches)
	}

	// Nothing matched; show scored candidates for review instead.
	return printJSON(cmd.OutOrStdout(), resolver.Candidates(args[0], roster))
}
