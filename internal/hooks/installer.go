package hooks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pplmx/husky-rs/internal/config"
	"github.com/pplmx/husky-rs/internal/git"
	"github.com/pplmx/husky-rs/internal/log"
)

// DisableEnv skips the entire pipeline when present in the environment,
// regardless of its value.
const DisableEnv = "NO_HUSKY_HOOKS"

// SourceDir is the project-relative directory holding user hooks.
var SourceDir = filepath.Join(".husky", "hooks")

// Options configures an installation run.
type Options struct {
	// StartDir seeds the git directory search. Empty means "use the
	// build output directory hint or the working directory".
	StartDir string
	// Version is the tool's build version, rendered into the header
	// unless .husky/husky.toml overrides it.
	Version string
}

// Install runs the installation pipeline.
//
// Non-fatal outcomes (missing git checkout, missing .husky/hooks
// directory, disable switch present) return nil after at most a logged
// warning; builds outside a repository must never break. An empty source
// hook or any other I/O failure is returned as an error.
func Install(ctx context.Context, opts Options) error {
	l := log.FromContext(ctx)

	if _, disabled := os.LookupEnv(DisableEnv); disabled {
		l.Printf("%s is set, skipping hook installation\n", DisableEnv)
		return nil
	}

	startDir := opts.StartDir
	if startDir == "" {
		var err error
		if startDir, err = git.StartDir(); err != nil {
			return err
		}
	}

	gitDir, err := git.FindGitDir(startDir)
	if err != nil {
		var nfe *git.NotFoundError
		if errors.As(err, &nfe) {
			l.Warnf("%v, skipping hook installation", err)
			return nil
		}
		return err
	}

	projectRoot := filepath.Dir(gitDir)
	srcDir := filepath.Join(projectRoot, SourceDir)
	dstDir := git.HooksDir(gitDir)

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		if os.IsNotExist(err) {
			l.Debugf("no %s directory, nothing to install", SourceDir)
			return nil
		}
		return fmt.Errorf("read hooks directory %s: %w", srcDir, err)
	}

	cfg, err := config.Load(projectRoot, opts.Version)
	if err != nil {
		return err
	}
	meta := Metadata{Version: cfg.Header.Version, Homepage: cfg.Header.Homepage}

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("create hooks directory %s: %w", dstDir, err)
	}

	for _, entry := range entries {
		if !IsHookFile(srcDir, entry) {
			l.Debugf("skipping %s: not an installable hook", entry.Name())
			continue
		}
		if err := installHook(l, filepath.Join(srcDir, entry.Name()), dstDir, meta); err != nil {
			return err
		}
	}
	return nil
}

// installHook installs a single classified source hook, honoring the
// installation guard.
func installHook(l *log.Logger, src, dstDir string, meta Metadata) error {
	dst := filepath.Join(dstDir, filepath.Base(src))

	if IsInstalled(dst) {
		l.Debugf("%s already installed, leaving untouched", filepath.Base(src))
		return nil
	}

	lines, err := ReadScript(src)
	if err != nil {
		return err
	}

	if err := writeExecutable(dst, InjectHeader(lines, meta)); err != nil {
		return fmt.Errorf("write hook %s: %w", dst, err)
	}
	l.Printf("installed %s\n", filepath.Base(src))
	return nil
}

// IsInstalled reports whether the destination path already holds a hook
// installed by this tool, identified by the provenance marker anywhere
// in its content. Existing files without the marker are fair game for
// overwriting.
func IsInstalled(dst string) bool {
	data, err := os.ReadFile(dst)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), Marker)
}
