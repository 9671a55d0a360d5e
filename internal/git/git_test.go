package git

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindGitDir(t *testing.T) {
	t.Parallel()

	t.Run("git directory in start dir", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		gitDir := filepath.Join(root, ".git")
		if err := os.Mkdir(gitDir, 0o755); err != nil {
			t.Fatal(err)
		}

		got, err := FindGitDir(root)
		if err != nil {
			t.Fatalf("FindGitDir() error = %v", err)
		}
		if got != gitDir {
			t.Errorf("FindGitDir() = %q, want %q", got, gitDir)
		}
	})

	t.Run("git directory in ancestor", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		gitDir := filepath.Join(root, ".git")
		nested := filepath.Join(root, "a", "b", "c")
		if err := os.Mkdir(gitDir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.MkdirAll(nested, 0o755); err != nil {
			t.Fatal(err)
		}

		got, err := FindGitDir(nested)
		if err != nil {
			t.Fatalf("FindGitDir() error = %v", err)
		}
		if got != gitDir {
			t.Errorf("FindGitDir() = %q, want %q", got, gitDir)
		}
	})

	t.Run("nearest ancestor wins", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		outer := filepath.Join(root, ".git")
		inner := filepath.Join(root, "sub", ".git")
		if err := os.Mkdir(outer, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.MkdirAll(inner, 0o755); err != nil {
			t.Fatal(err)
		}

		got, err := FindGitDir(filepath.Join(root, "sub"))
		if err != nil {
			t.Fatalf("FindGitDir() error = %v", err)
		}
		if got != inner {
			t.Errorf("FindGitDir() = %q, want %q", got, inner)
		}
	})

	t.Run("no git directory anywhere", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()

		_, err := FindGitDir(root)
		var nfe *NotFoundError
		if !errors.As(err, &nfe) {
			t.Fatalf("FindGitDir() error = %v, want *NotFoundError", err)
		}
		if nfe.Start != root {
			t.Errorf("NotFoundError.Start = %q, want %q", nfe.Start, root)
		}
	})
}

func TestFindGitDirPointerFile(t *testing.T) {
	t.Parallel()

	t.Run("absolute pointer path", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		realGit := filepath.Join(root, "elsewhere", "repo.git")
		if err := os.MkdirAll(realGit, 0o755); err != nil {
			t.Fatal(err)
		}
		module := filepath.Join(root, "module")
		if err := os.Mkdir(module, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(module, ".git"), []byte(realGit+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		got, err := FindGitDir(module)
		if err != nil {
			t.Fatalf("FindGitDir() error = %v", err)
		}
		if got != realGit {
			t.Errorf("FindGitDir() = %q, want %q", got, realGit)
		}
	})

	t.Run("relative pointer path", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		realGit := filepath.Join(root, ".git", "modules", "sub")
		if err := os.MkdirAll(realGit, 0o755); err != nil {
			t.Fatal(err)
		}
		module := filepath.Join(root, "sub")
		if err := os.Mkdir(module, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(module, ".git"), []byte("../.git/modules/sub\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		got, err := FindGitDir(module)
		if err != nil {
			t.Fatalf("FindGitDir() error = %v", err)
		}
		if got != realGit {
			t.Errorf("FindGitDir() = %q, want %q", got, realGit)
		}
	})

	t.Run("gitdir prefix", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		realGit := filepath.Join(root, ".git", "modules", "sub")
		if err := os.MkdirAll(realGit, 0o755); err != nil {
			t.Fatal(err)
		}
		module := filepath.Join(root, "sub")
		if err := os.Mkdir(module, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(module, ".git"), []byte("gitdir: ../.git/modules/sub\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		got, err := FindGitDir(module)
		if err != nil {
			t.Fatalf("FindGitDir() error = %v", err)
		}
		if got != realGit {
			t.Errorf("FindGitDir() = %q, want %q", got, realGit)
		}
	})

	t.Run("pointer to missing directory fails", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		module := filepath.Join(root, "module")
		if err := os.Mkdir(module, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(module, ".git"), []byte("/does/not/exist\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := FindGitDir(module)
		var nfe *NotFoundError
		if !errors.As(err, &nfe) {
			t.Fatalf("FindGitDir() error = %v, want *NotFoundError", err)
		}
	})

	t.Run("dead pointer keeps walking up", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		outer := filepath.Join(root, ".git")
		if err := os.Mkdir(outer, 0o755); err != nil {
			t.Fatal(err)
		}
		module := filepath.Join(root, "module")
		if err := os.Mkdir(module, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(module, ".git"), []byte("/does/not/exist\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		got, err := FindGitDir(module)
		if err != nil {
			t.Fatalf("FindGitDir() error = %v", err)
		}
		if got != outer {
			t.Errorf("FindGitDir() = %q, want %q", got, outer)
		}
	})
}

func TestStartDir(t *testing.T) {
	t.Run("OUT_DIR hint", func(t *testing.T) {
		t.Setenv("OUT_DIR", "/tmp/build-out")
		got, err := StartDir()
		if err != nil {
			t.Fatalf("StartDir() error = %v", err)
		}
		if got != "/tmp/build-out" {
			t.Errorf("StartDir() = %q, want %q", got, "/tmp/build-out")
		}
	})

	t.Run("falls back to working directory", func(t *testing.T) {
		t.Setenv("OUT_DIR", "")
		os.Unsetenv("OUT_DIR")
		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		got, err := StartDir()
		if err != nil {
			t.Fatalf("StartDir() error = %v", err)
		}
		if got != wd {
			t.Errorf("StartDir() = %q, want %q", got, wd)
		}
	})
}

func TestHooksDir(t *testing.T) {
	t.Parallel()
	got := HooksDir(filepath.Join("repo", ".git"))
	want := filepath.Join("repo", ".git", "hooks")
	if got != want {
		t.Errorf("HooksDir() = %q, want %q", got, want)
	}
}
