//go:build windows

package hooks

import "os"

// writeExecutable creates or truncates path with the given content.
// Windows has no executable bit; any file is runnable, so plain creation
// suffices.
func writeExecutable(path string, data []byte) error {
	return os.WriteFile(path, data, 0o666)
}
