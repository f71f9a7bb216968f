package platform

import (
	"fmt"
	"os"
	"runtime"
)

// Chmod sets the permission bits of mode on path, ignoring type and
// setuid/setgid bits. No-op on Windows.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode.Perm())
}

// CopyMode gives dst the permission bits of src and returns them.
func CopyMode(src, dst string) (os.FileMode, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", src, err)
	}
	perm := info.Mode().Perm()
	if err := Chmod(dst, perm); err != nil {
		return 0, fmt.Errorf("chmod %s: %w", dst, err)
	}
	return perm, nil
}
