//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/appdist/distman/internal/prompt"
	"github.com/appdist/distman/internal/release"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	ConfigDir string // DISTMAN_CONFIG_DIR, kept empty so no user defaults leak in
	DistDir   string // <tmp>/app_dist, the artifact directory
	Out       bytes.Buffer
}

// setupTestEnv creates an isolated artifact directory and config dir. The
// env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("integration flows assert on native symlinks")
	}

	env := &testEnv{
		ConfigDir: t.TempDir(),
		DistDir:   filepath.Join(t.TempDir(), "app_dist"),
	}
	t.Setenv("DISTMAN_CONFIG_DIR", env.ConfigDir)

	if err := os.MkdirAll(env.DistDir, 0755); err != nil {
		t.Fatalf("creating dist dir: %v", err)
	}
	return env
}

// writeArtifacts creates empty-ish artifacts whose mtimes increase in
// argument order, one minute apart.
func writeArtifacts(t *testing.T, dir string, names ...string) {
	t.Helper()
	base := time.Now().Add(-time.Hour)
	for i, name := range names {
		path := filepath.Join(dir, name)
		writeFile(t, path, name)
		mt := base.Add(time.Duration(i) * time.Minute)
		if err := os.Chtimes(path, mt, mt); err != nil {
			t.Fatalf("setting mtime on %s: %v", path, err)
		}
	}
}

// runner returns a Runner over env.DistDir with every step enabled.
func (env *testEnv) runner(p prompt.Prompter) *release.Runner {
	return &release.Runner{
		Options: release.Options{
			Dir:        env.DistDir,
			CDNHost:    "dl.example.com",
			UpdateJSON: true,
			Link:       true,
			RemoveOld:  true,
		},
		Prompter: p,
		Out:      &env.Out,
		Logger:   hclog.NewNullLogger(),
	}
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readFile returns the file contents or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertLink fails unless path is a symlink whose payload is want.
func assertLink(t *testing.T, path, want string) {
	t.Helper()
	got, err := os.Readlink(path)
	if err != nil {
		t.Errorf("expected symlink at %s: %v", path, err)
		return
	}
	if got != want {
		t.Errorf("%s -> %q, want %q", path, got, want)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
