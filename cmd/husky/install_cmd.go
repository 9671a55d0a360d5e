package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pplmx/husky-rs/internal/hooks"
)

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install hooks from .husky/hooks into the git hook directory",
		Long: `Install copies each recognized hook script from .husky/hooks into
<git-dir>/hooks with a provenance header, resolving the real git
directory through submodule and worktree .git pointer files.

Non-fatal conditions exit zero: a missing git checkout, a missing
.husky/hooks directory, or the NO_HUSKY_HOOKS environment variable being
set. An empty hook script fails the run, since it is an authoring
mistake that must surface at build time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd.Context())
		},
	}
}

// runInstall runs the installation pipeline with the build's version.
// Shared by the root command and `husky install`.
func runInstall(ctx context.Context) error {
	return hooks.Install(ctx, hooks.Options{Version: version})
}
