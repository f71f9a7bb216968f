package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCreateSymlinkRelative(t *testing.T) {
	tmp := t.TempDir()

	if err := os.WriteFile(filepath.Join(tmp, "app-4.apk"), []byte("apk"), 0644); err != nil {
		t.Fatal(err)
	}

	linkPath := filepath.Join(tmp, "latest.apk")
	if err := CreateSymlink("app-4.apk", linkPath); err != nil {
		t.Fatalf("CreateSymlink failed: %v", err)
	}

	data, err := os.ReadFile(linkPath)
	if err != nil {
		t.Fatalf("reading through link: %v", err)
	}
	if string(data) != "apk" {
		t.Errorf("link content = %q, want %q", data, "apk")
	}

	got, err := ReadSymlinkTarget(linkPath)
	if err != nil {
		t.Fatalf("ReadSymlinkTarget failed: %v", err)
	}
	if got != "app-4.apk" {
		t.Errorf("link payload = %q, want %q", got, "app-4.apk")
	}
}

func TestCreateSymlinkSurvivesMove(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("native symlinks only")
	}
	tmp := t.TempDir()
	src := filepath.Join(tmp, "dist")
	if err := os.Mkdir(src, 0755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(src, "app-4.apk"), []byte("apk"), 0644)
	if err := CreateSymlink("app-4.apk", filepath.Join(src, "latest.apk")); err != nil {
		t.Fatal(err)
	}

	moved := filepath.Join(tmp, "moved")
	if err := os.Rename(src, moved); err != nil {
		t.Fatal(err)
	}
	if _, err := os.ReadFile(filepath.Join(moved, "latest.apk")); err != nil {
		t.Errorf("link broken after moving the directory: %v", err)
	}
}

func TestRemoveSymlink(t *testing.T) {
	tmp := t.TempDir()
	os.WriteFile(filepath.Join(tmp, "a.apk"), []byte("a"), 0644)

	linkPath := filepath.Join(tmp, "latest.apk")
	if err := CreateSymlink("a.apk", linkPath); err != nil {
		t.Fatal(err)
	}
	if err := RemoveSymlink(linkPath); err != nil {
		t.Fatalf("RemoveSymlink failed: %v", err)
	}
	if _, err := os.Lstat(linkPath); !os.IsNotExist(err) {
		t.Error("link still exists after RemoveSymlink")
	}
	if _, err := os.Stat(filepath.Join(tmp, "a.apk")); err != nil {
		t.Error("RemoveSymlink removed the link target")
	}
}

func TestRemoveSymlinkMissing(t *testing.T) {
	if err := RemoveSymlink(filepath.Join(t.TempDir(), "latest.apk")); err != nil {
		t.Errorf("RemoveSymlink on a missing path = %v, want nil", err)
	}
}

func TestReadSymlinkTargetRegularFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("sidecar lookup applies on Windows")
	}
	path := filepath.Join(t.TempDir(), "latest.apk")
	os.WriteFile(path, []byte("not a link"), 0644)

	if _, err := ReadSymlinkTarget(path); err == nil {
		t.Error("expected error reading a regular file as a link")
	}
}
