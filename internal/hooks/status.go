package hooks

import (
	"os"
	"path/filepath"

	"github.com/pplmx/husky-rs/internal/git"
)

// DestState describes what currently sits at a hook's destination path.
type DestState int

const (
	// DestAbsent means no destination file exists.
	DestAbsent DestState = iota
	// DestInstalled means the destination carries the provenance marker.
	DestInstalled
	// DestForeign means a destination file exists without the marker;
	// the next install run will overwrite it.
	DestForeign
)

// Status is the per-hook result of an inspection run.
type Status struct {
	Name          string
	SourcePresent bool
	Dest          DestState
}

// Pending reports whether the next install run would write this hook.
func (s Status) Pending() bool {
	return s.SourcePresent && s.Dest != DestInstalled
}

// Inspect reports the state of every allow-listed hook name that exists
// on either side (source or destination) of the given git directory.
// It never modifies anything.
func Inspect(gitDir string) []Status {
	srcDir := filepath.Join(filepath.Dir(gitDir), SourceDir)
	dstDir := git.HooksDir(gitDir)

	var report []Status
	for _, name := range Names() {
		s := Status{Name: name}

		if info, err := os.Stat(filepath.Join(srcDir, name)); err == nil && info.Mode().IsRegular() {
			s.SourcePresent = true
		}

		dst := filepath.Join(dstDir, name)
		if IsInstalled(dst) {
			s.Dest = DestInstalled
		} else if _, err := os.Stat(dst); err == nil {
			s.Dest = DestForeign
		}

		if s.SourcePresent || s.Dest != DestAbsent {
			report = append(report, s)
		}
	}
	return report
}
