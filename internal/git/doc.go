// Package git locates the real .git directory for a project without
// shelling out to the git CLI.
//
// The installer runs as a build step, possibly on machines where git is
// not on PATH, so resolution is plain filesystem inspection: walk the
// starting directory and its ancestors, nearest first, until an entry
// named .git is found.
//
// A .git entry can be either a directory (regular checkout) or a file
// (submodules and linked worktrees). The file variant contains a path to
// the real git directory elsewhere on disk; [FindGitDir] follows that
// indirection and only accepts it when the target actually exists.
package git
