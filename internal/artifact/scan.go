package artifact

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/appdist/distman/internal/target"
)

// ErrNoArtifacts is returned by Latest for an empty candidate set.
var ErrNoArtifacts = errors.New("no artifacts found")

// Artifact is a regular file matching a target's suffix.
type Artifact struct {
	Name    string
	Path    string
	ModTime time.Time
}

// Scan lists regular, non-symlink files in dir whose name ends with the
// target's suffix, in directory enumeration order. The target's own
// latest.<suffix> entry is never a candidate, even when it is a plain copy.
// Entries whose metadata cannot be read are skipped.
func Scan(dir string, t target.Target) ([]Artifact, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	linkName := t.LinkName()
	var result []Artifact
	for _, e := range entries {
		name := e.Name()
		if name == linkName || !t.Matches(name) {
			continue
		}
		path := filepath.Join(dir, name)
		info, err := os.Lstat(path)
		if err != nil {
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		result = append(result, Artifact{
			Name:    name,
			Path:    path,
			ModTime: info.ModTime(),
		})
	}
	return result, nil
}

// Latest returns the artifact with the newest modification time. Ties keep
// the first one seen.
func Latest(candidates []Artifact) (Artifact, error) {
	if len(candidates) == 0 {
		return Artifact{}, ErrNoArtifacts
	}
	latest := candidates[0]
	for _, c := range candidates[1:] {
		if c.ModTime.After(latest.ModTime) {
			latest = c
		}
	}
	return latest, nil
}
