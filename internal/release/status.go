package release

import (
	"errors"
	"os"

	"github.com/appdist/distman/internal/artifact"
	"github.com/appdist/distman/internal/linker"
	"github.com/appdist/distman/internal/manifest"
	"github.com/appdist/distman/internal/target"
)

// TargetStatus is a read-only view of one target in a directory.
type TargetStatus struct {
	Target     string            `yaml:"target"`
	Latest     string            `yaml:"latest,omitempty"`
	Candidates int               `yaml:"candidates"`
	Recorded   *uint64           `yaml:"recorded_build,omitempty"`
	URLs       map[string]string `yaml:"urls,omitempty"`
	Link       string            `yaml:"link"`
	LinkTarget string            `yaml:"link_target,omitempty"`
	UpToDate   bool              `yaml:"up_to_date"`
}

// Inspect reports the state of each target without prompting or writing.
// A missing manifest is tolerated; a malformed one is an error.
func Inspect(dir string, targets []target.Target) ([]TargetStatus, error) {
	doc, _, err := manifest.Load(manifest.Path(dir))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	out := make([]TargetStatus, 0, len(targets))
	for _, t := range targets {
		st := TargetStatus{Target: t.String(), Link: "missing"}

		candidates, err := artifact.Scan(dir, t)
		if err != nil {
			return nil, err
		}
		st.Candidates = len(candidates)

		if doc != nil {
			if v, ok := doc.Build(t); ok {
				st.Recorded = &v
			}
			st.URLs = doc.URLs(t)
		}

		latest, err := artifact.Latest(candidates)
		if err != nil {
			out = append(out, st)
			continue
		}
		st.Latest = latest.Name

		ls := linker.Status(dir, t, latest)
		st.LinkTarget = ls.Payload
		switch {
		case ls.Current:
			st.Link = "current"
		case ls.Exists:
			st.Link = "stale"
		}

		if st.Recorded != nil {
			if pv, ok := versionInName(latest.Name); ok {
				st.UpToDate = pv == *st.Recorded && ls.Current
			}
		}
		out = append(out, st)
	}
	return out, nil
}

// versionInName extracts the version without falling back to a prompt.
func versionInName(name string) (uint64, bool) {
	v, err := artifact.ExtractVersion(name, noPrompt{})
	if err != nil {
		return 0, false
	}
	return uint64(v), true
}

type noPrompt struct{}

func (noPrompt) Confirm(string, bool) (bool, error) { return false, errNoPrompt }
func (noPrompt) Input(string) (string, error)        { return "", errNoPrompt }

var errNoPrompt = errors.New("prompting disabled")
