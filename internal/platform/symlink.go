package platform

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// SidecarSuffix names the file that records a fallback link's target.
const SidecarSuffix = ".target"

// CreateSymlink creates link pointing at target. A relative target is
// resolved against the link's directory, as with os.Symlink. When native
// symlinks are unavailable on Windows, target is copied to link and the
// target string is recorded in a sidecar.
func CreateSymlink(target, link string) error {
	err := os.Symlink(target, link)
	if err == nil || runtime.GOOS != "windows" {
		return err
	}

	if copyErr := copyLinkTarget(target, link); copyErr != nil {
		return fmt.Errorf("symlink failed (%v) and copy fallback failed: %w", err, copyErr)
	}
	// The copy is usable without the sidecar; ReadSymlinkTarget just reports
	// the link as stale next time.
	_ = os.WriteFile(link+SidecarSuffix, []byte(target), 0644)
	return nil
}

// RemoveSymlink removes the entry at path and any fallback sidecar. A missing
// entry is not an error.
func RemoveSymlink(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.Remove(path + SidecarSuffix); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// ReadSymlinkTarget returns the payload of the link at path. On Windows a
// copy fallback is resolved through its sidecar.
func ReadSymlinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err == nil {
		return target, nil
	}
	if runtime.GOOS != "windows" {
		return "", err
	}

	data, readErr := os.ReadFile(path + SidecarSuffix)
	if readErr != nil {
		return "", fmt.Errorf("readlink failed and no %s sidecar found: %w", SidecarSuffix, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// copyLinkTarget copies target to link, resolving a relative target against
// the link's directory.
func copyLinkTarget(target, link string) error {
	src := target
	if !filepath.IsAbs(src) {
		src = filepath.Join(filepath.Dir(link), target)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(link)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
