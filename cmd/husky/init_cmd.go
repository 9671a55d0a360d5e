package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pplmx/husky-rs/internal/git"
	"github.com/pplmx/husky-rs/internal/hooks"
	"github.com/pplmx/husky-rs/internal/log"
	"github.com/pplmx/husky-rs/internal/output"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Scaffold the .husky/hooks directory",
		Long: `Init creates .husky/hooks at the project root with a sample
pre-commit hook. Existing hook files are left alone, so running init in
an already set up project changes nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)
			l := log.FromContext(ctx)

			wd, err := os.Getwd()
			if err != nil {
				return err
			}

			// Prefer the checkout root so init works from a
			// subdirectory; fall back to the working directory for
			// projects that are not repositories yet.
			projectRoot := wd
			if gitDir, err := git.FindGitDir(wd); err == nil {
				projectRoot = filepath.Dir(gitDir)
			} else {
				var nfe *git.NotFoundError
				if !errors.As(err, &nfe) {
					return err
				}
				l.Warnf("no git repository found, scaffolding in %s", wd)
			}

			created, err := scaffold(projectRoot)
			if err != nil {
				return err
			}
			if len(created) == 0 {
				p.Printf("%s already set up\n", hooks.SourceDir)
				return nil
			}
			for _, path := range created {
				p.Printf("created %s\n", path)
			}
			return nil
		},
	}
}
