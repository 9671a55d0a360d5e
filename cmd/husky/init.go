package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pplmx/husky-rs/internal/hooks"
)

// sampleHook is scaffolded by `husky init` as a starting point.
const sampleHook = `#!/bin/sh

echo "husky-rs: add your pre-commit checks here"
`

// scaffold creates the .husky/hooks directory under projectRoot and
// seeds it with a sample pre-commit hook. An existing hook file is
// never overwritten.
func scaffold(projectRoot string) (created []string, err error) {
	hooksDir := filepath.Join(projectRoot, hooks.SourceDir)
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", hooksDir, err)
	}

	sample := filepath.Join(hooksDir, "pre-commit")
	if _, err := os.Stat(sample); err == nil {
		return nil, nil
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat %s: %w", sample, err)
	}

	if err := os.WriteFile(sample, []byte(sampleHook), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", sample, err)
	}
	return []string{sample}, nil
}
