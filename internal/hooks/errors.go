package hooks

import "fmt"

// EmptyHookError is returned when a source hook contains no
// non-whitespace content. This is always fatal: an empty hook is an
// authoring mistake that must surface at build time.
type EmptyHookError struct {
	Path string
}

func (e *EmptyHookError) Error() string {
	return fmt.Sprintf("user hook script is empty: %q", e.Path)
}
