package hooks

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// hookNames is the allow-list of installable git hook names.
// Files under .husky/hooks with any other name are ignored.
var hookNames = map[string]struct{}{
	"applypatch-msg":     {},
	"pre-applypatch":     {},
	"post-applypatch":    {},
	"pre-commit":         {},
	"pre-merge-commit":   {},
	"prepare-commit-msg": {},
	"commit-msg":         {},
	"post-commit":        {},
	"pre-rebase":         {},
	"post-checkout":      {},
	"post-merge":         {},
	"pre-push":           {},
	"post-rewrite":       {},
	"pre-auto-gc":        {},
}

// IsHookName reports whether name is in the hook allow-list.
// Matching is exact: no prefixes, no case folding.
func IsHookName(name string) bool {
	_, ok := hookNames[name]
	return ok
}

// Names returns the allow-listed hook names in sorted order.
func Names() []string {
	names := make([]string, 0, len(hookNames))
	for name := range hookNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsHookFile reports whether a directory entry under the source hooks
// directory is installable: an allow-listed name and a regular file.
// Symlinks are followed; a link to a regular file is eligible.
// Sources do not need the executable bit; the installer sets it on the
// destination.
func IsHookFile(dir string, entry fs.DirEntry) bool {
	if !IsHookName(entry.Name()) {
		return false
	}
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.Mode().IsRegular()
}
