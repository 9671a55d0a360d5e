package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NotFoundError is returned when no ancestor of the starting directory
// contains a usable .git entry.
type NotFoundError struct {
	Start string // directory the search started from
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("git directory not found in %q or its parent directories", e.Start)
}

// StartDir returns the directory to begin the .git search from.
// The build system may hint at its output directory via OUT_DIR;
// otherwise the current working directory is used.
func StartDir() (string, error) {
	if dir, ok := os.LookupEnv("OUT_DIR"); ok && dir != "" {
		return dir, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return dir, nil
}

// FindGitDir searches startDir and its ancestors, nearest first, for an
// entry named .git and returns the resolved git directory.
//
// A .git directory resolves to itself. A .git file is a submodule or
// worktree pointer: its content names the real git directory, and the
// ancestor only matches if that directory exists. If no ancestor matches,
// a *NotFoundError is returned.
func FindGitDir(startDir string) (string, error) {
	dir := startDir
	for {
		gitPath := filepath.Join(dir, ".git")
		info, err := os.Stat(gitPath)
		switch {
		case err == nil && info.IsDir():
			return gitPath, nil
		case err == nil && info.Mode().IsRegular():
			if resolved, err := readGitPointer(gitPath); err == nil {
				return resolved, nil
			}
			// Pointer to a missing directory: no match at this
			// ancestor, keep walking up.
		case err != nil && !os.IsNotExist(err):
			return "", fmt.Errorf("stat %s: %w", gitPath, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", &NotFoundError{Start: startDir}
		}
		dir = parent
	}
}

// readGitPointer reads a .git pointer file and returns the git directory
// it names. The entire file content, minus trailing newline and carriage
// return characters, is the path. A "gitdir: " prefix (written by git
// itself) is tolerated. Relative paths resolve against the directory
// containing the pointer file.
func readGitPointer(gitFile string) (string, error) {
	data, err := os.ReadFile(gitFile)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", gitFile, err)
	}

	target := strings.TrimRight(string(data), "\r\n")
	target = strings.TrimPrefix(target, "gitdir: ")
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(gitFile), target)
	}

	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return "", &NotFoundError{Start: target}
	}
	return target, nil
}

// HooksDir returns the hook directory inside a resolved git directory.
func HooksDir(gitDir string) string {
	return filepath.Join(gitDir, "hooks")
}
