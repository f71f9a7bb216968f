package manifest

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/hashicorp/go-hclog"

	"github.com/appdist/distman/internal/artifact"
	"github.com/appdist/distman/internal/branding"
	"github.com/appdist/distman/internal/diff"
	"github.com/appdist/distman/internal/prompt"
	"github.com/appdist/distman/internal/target"
)

// ErrMissingArch is returned when the operator gives an empty architecture.
var ErrMissingArch = errors.New("architecture is required")

// Result is the outcome of an update attempt.
type Result int

const (
	// Written means update.json was backed up and rewritten.
	Written Result = iota
	// Declined means the operator rejected the change; nothing was written.
	Declined
	// UpToDate means the manifest already records this build.
	UpToDate
)

func (r Result) String() string {
	switch r {
	case Written:
		return "written"
	case Declined:
		return "declined"
	case UpToDate:
		return "up-to-date"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Updater records a target's latest artifact in update.json.
type Updater struct {
	Prompter prompt.Prompter
	Out      io.Writer
	Logger   hclog.Logger
	CDNHost  string
}

// Path returns the manifest path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, branding.ManifestFile())
}

// Update sets build.last.<target> and, for URL-publishing targets,
// urls.<target>.<arch> from the artifact, shows the diff and writes after
// confirmation. When the recorded build already equals the artifact's
// version nothing is shown or written and UpToDate is returned.
func (u *Updater) Update(dir string, t target.Target, art artifact.Artifact) (Result, error) {
	path := Path(dir)
	oldDoc, raw, err := Load(path)
	if err != nil {
		return 0, err
	}
	// Second decode so the old rendering is not affected by mutation.
	newDoc, err := Parse(raw)
	if err != nil {
		return 0, err
	}

	version, err := artifact.ExtractVersion(art.Name, u.Prompter)
	if err != nil {
		return 0, err
	}

	if recorded, ok := oldDoc.Build(t); ok {
		switch compareBuilds(recorded, version) {
		case 0:
			fmt.Fprintf(u.Out, "%s already records %s build %d, skipping.\n", branding.ManifestFile(), t, version)
			return UpToDate, nil
		case 1:
			fmt.Fprintf(u.Out, "warning: %s records %s build %d, newer than %d from %s.\n",
				branding.ManifestFile(), t, recorded, version, art.Name)
		}
		u.Logger.Debug("build changes", "target", t.String(), "from", recorded, "to", version)
	}
	newDoc.SetBuild(t, version)

	if t.PublishesURL() {
		arch, err := u.resolveArch(art.Name)
		if err != nil {
			return 0, err
		}
		dirName, err := DirName(dir)
		if err != nil {
			return 0, err
		}
		link := DownloadURL(u.CDNHost, dirName, art.Name)
		newDoc.SetURL(t, arch, link)
		u.Logger.Debug("download url", "target", t.String(), "arch", arch, "url", link)
	} else {
		fmt.Fprintf(u.Out, "%s does not publish a download URL, leaving urls unchanged.\n", t)
	}

	oldText, err := oldDoc.Render()
	if err != nil {
		return 0, err
	}
	newText, err := newDoc.Render()
	if err != nil {
		return 0, err
	}
	diff.Print(u.Out, string(oldText), string(newText))

	ok, err := u.Prompter.Confirm(fmt.Sprintf("Update %s?", branding.ManifestFile()), true)
	if err != nil {
		return 0, err
	}
	if !ok {
		fmt.Fprintf(u.Out, "Left %s unchanged.\n", branding.ManifestFile())
		return Declined, nil
	}

	if err := WriteWithBackup(path, newText); err != nil {
		return 0, err
	}
	fmt.Fprintf(u.Out, "Updated %s (backup at %s%s).\n", branding.ManifestFile(), branding.ManifestFile(), BackupSuffix)
	return Written, nil
}

// resolveArch classifies the file name, asking the operator when no known
// architecture token is present.
func (u *Updater) resolveArch(name string) (string, error) {
	if arch, ok := target.ClassifyArch(name); ok {
		return arch.String(), nil
	}
	answer, err := u.Prompter.Input(fmt.Sprintf("No architecture in %q. Enter architecture:", name))
	if err != nil {
		return "", fmt.Errorf("reading architecture: %w", err)
	}
	if answer == "" {
		return "", ErrMissingArch
	}
	return answer, nil
}

// compareBuilds orders a recorded build number against a new one: -1 when the
// new build is newer, 0 when equal, 1 when the recorded build is newer.
func compareBuilds(recorded uint64, next uint32) int {
	return semver.New(recorded, 0, 0, "", "").Compare(semver.New(uint64(next), 0, 0, "", ""))
}
