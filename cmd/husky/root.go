package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pplmx/husky-rs/internal/log"
	"github.com/pplmx/husky-rs/internal/output"
	"github.com/pplmx/husky-rs/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// rootCmd represents the base command. Running it without a subcommand
// installs hooks, so a bare `husky` works as a build step:
//
//	//go:generate go run github.com/pplmx/husky-rs/cmd/husky
var rootCmd = &cobra.Command{
	Use:   "husky",
	Short: "Install project git hooks at build time",
	Long: `husky copies the hook scripts under .husky/hooks into the repository's
real git hook directory, adding a provenance header and marking them
executable.

It is meant to run unattended as part of a build step. Installation is
idempotent: hooks already installed by husky are left untouched, and
running outside a git checkout is a warning, never a failure. Set
NO_HUSKY_HOOKS (any value) to skip installation entirely.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		// Logger on stderr for diagnostics, printer on stdout for data.
		ctx := log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet))
		ctx = output.WithPrinter(ctx, os.Stdout)
		cmd.SetContext(ctx)

		styles.SetEnabled(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInstall(cmd.Context())
	},
}

// Execute runs the root command and exits non-zero on fatal conditions.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "husky: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show per-file installation decisions")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all diagnostic output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newStatusCmd())
}
