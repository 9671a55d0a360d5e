//go:build !windows

package hooks

import "os"

// writeExecutable creates or truncates path with the given content and
// mode 0o755 applied at creation time. Setting the mode in the open call
// avoids the window where the file exists but is not yet executable.
func writeExecutable(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o755)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
