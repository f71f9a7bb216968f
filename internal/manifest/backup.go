package manifest

import (
	"fmt"
	"io"
	"os"

	"github.com/appdist/distman/internal/platform"
)

// BackupSuffix is appended to the manifest path for the pre-write copy.
const BackupSuffix = ".bak"

// WriteWithBackup copies the current file at path to path+".bak", replacing
// any previous backup, and only then overwrites path with data. A failed
// backup leaves path untouched. The original file mode is kept on both.
func WriteWithBackup(path string, data []byte) error {
	backupPath := path + BackupSuffix
	if err := copyFile(path, backupPath); err != nil {
		return fmt.Errorf("creating backup %s: %w", backupPath, err)
	}
	perm, err := platform.CopyMode(path, backupPath)
	if err != nil {
		return fmt.Errorf("setting backup permissions: %w", err)
	}

	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
