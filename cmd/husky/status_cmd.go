package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/pplmx/husky-rs/internal/git"
	"github.com/pplmx/husky-rs/internal/hooks"
	"github.com/pplmx/husky-rs/internal/output"
	"github.com/pplmx/husky-rs/internal/ui/styles"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the install state of each hook",
		Long: `Status lists every recognized hook present as a source script or as an
installed file, without modifying anything.

States:
  ` + styles.SymbolInstalled + `  installed by husky (provenance marker present)
  ` + styles.SymbolStale + `  source present, next install run will (re)write it
  ` + styles.SymbolForeign + `  destination exists but was not installed by husky
  ` + styles.SymbolAbsent + `  no destination file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			wd, err := os.Getwd()
			if err != nil {
				return err
			}

			gitDir, err := git.FindGitDir(wd)
			if err != nil {
				var nfe *git.NotFoundError
				if errors.As(err, &nfe) {
					p.Println("not inside a git repository")
					return nil
				}
				return err
			}

			report := hooks.Inspect(gitDir)
			if len(report) == 0 {
				p.Println("no hooks found")
				return nil
			}

			for _, s := range report {
				p.Printf("%s %-20s %s\n", statusSymbol(s), s.Name, statusText(s))
			}
			return nil
		},
	}
}

func statusSymbol(s hooks.Status) string {
	switch {
	case s.Pending():
		return styles.Stale()
	case s.Dest == hooks.DestInstalled:
		return styles.Installed()
	case s.Dest == hooks.DestForeign:
		return styles.Foreign()
	default:
		return styles.Absent()
	}
}

func statusText(s hooks.Status) string {
	switch {
	case s.Pending() && s.Dest == hooks.DestForeign:
		return "pending install (will overwrite foreign hook)"
	case s.Pending():
		return "pending install"
	case s.Dest == hooks.DestInstalled && !s.SourcePresent:
		return "installed (source removed)"
	case s.Dest == hooks.DestInstalled:
		return "installed"
	case s.Dest == hooks.DestForeign:
		return "foreign hook, no source"
	default:
		return "not installed"
	}
}
