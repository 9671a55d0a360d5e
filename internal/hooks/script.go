package hooks

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Marker identifies files installed by this tool. Any destination file
// containing it anywhere in its text is considered ours.
const Marker = "This hook was set by husky-rs"

// defaultShebang is used when a hook script does not start with a
// recognized interpreter directive.
const defaultShebang = "#!/usr/bin/env bash"

// shebangs is the fixed set of recognized interpreter directives.
// Only an exact (whitespace-trimmed) first-line match counts; anything
// else stays in the body and gets the default shebang.
var shebangs = map[string]struct{}{
	"#!/bin/sh":              {},
	"#!/usr/bin/env sh":      {},
	"#!/usr/bin/env bash":    {},
	"#!/usr/bin/env python":  {},
	"#!/usr/bin/env python3": {},
	"#!/usr/bin/env ruby":    {},
	"#!/usr/bin/env node":    {},
	"#!/usr/bin/env perl":    {},
}

// Metadata holds the two strings rendered into the provenance header.
type Metadata struct {
	Version  string
	Homepage string
}

// ReadScript reads a source hook as lines, stripping leading and
// trailing blank lines. Interior blank lines are preserved. Returns
// *EmptyHookError if nothing remains.
func ReadScript(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open hook %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read hook %s: %w", path, err)
	}

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, &EmptyHookError{Path: path}
	}
	return lines, nil
}

// SplitShebang separates a recognized interpreter directive from the
// script body. Without a recognized directive the default shebang is
// returned and the body is left intact. Blank lines between the
// directive and the first body line are dropped.
func SplitShebang(lines []string) (shebang string, body []string) {
	shebang = defaultShebang
	body = lines
	if len(lines) > 0 {
		if first := strings.TrimSpace(lines[0]); isShebang(first) {
			shebang = first
			body = lines[1:]
			for len(body) > 0 && strings.TrimSpace(body[0]) == "" {
				body = body[1:]
			}
		}
	}
	return shebang, body
}

func isShebang(line string) bool {
	_, ok := shebangs[line]
	return ok
}

// InjectHeader builds the final installable content: the detected or
// default shebang, the provenance comment block, a separating blank
// line, the body, and a trailing blank line.
func InjectHeader(lines []string, meta Metadata) []byte {
	shebang, body := SplitShebang(lines)

	out := make([]string, 0, len(body)+7)
	out = append(out,
		shebang,
		"#",
		"# "+Marker,
		fmt.Sprintf("# v%s: %s", meta.Version, meta.Homepage),
		"#",
		"",
	)
	out = append(out, body...)
	out = append(out, "")

	return []byte(strings.Join(out, "\n") + "\n")
}
