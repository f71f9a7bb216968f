package linker

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-hclog"

	"github.com/appdist/distman/internal/artifact"
	"github.com/appdist/distman/internal/platform"
	"github.com/appdist/distman/internal/prompt"
	"github.com/appdist/distman/internal/target"
)

// ErrBadFileName is returned when an artifact's name cannot be used as a
// link payload.
var ErrBadFileName = errors.New("artifact file name cannot be used as link target")

// Result is the outcome of a reconcile.
type Result int

const (
	// Unchanged means the link already pointed at the artifact.
	Unchanged Result = iota
	// Linked means the link was (re)created.
	Linked
	// Declined means the operator kept the stale link.
	Declined
)

func (r Result) String() string {
	switch r {
	case Unchanged:
		return "unchanged"
	case Linked:
		return "linked"
	case Declined:
		return "declined"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// State describes the link entry as found on disk.
type State struct {
	Path    string
	Payload string // empty when there is no readable link
	Exists  bool
	Current bool // payload resolves to the artifact
}

// Status reports the state of t's link in dir relative to art.
func Status(dir string, t target.Target, art artifact.Artifact) State {
	st := State{Path: filepath.Join(dir, t.LinkName())}
	payload, err := platform.ReadSymlinkTarget(st.Path)
	if err != nil {
		st.Exists = !errors.Is(err, fs.ErrNotExist)
		return st
	}
	st.Exists = true
	st.Payload = payload
	st.Current = samePath(resolve(dir, payload), art.Path)
	return st
}

// Reconciler points latest.<suffix> at the selected artifact.
type Reconciler struct {
	Prompter prompt.Prompter
	Out      io.Writer
	Logger   hclog.Logger
}

// Reconcile leaves a link that already resolves to art alone without asking.
// Otherwise, after confirmation, it replaces whatever is at the link path
// with a symlink whose payload is art's bare file name.
func (r *Reconciler) Reconcile(dir string, t target.Target, art artifact.Artifact) (Result, error) {
	name, err := payloadName(art)
	if err != nil {
		return 0, err
	}

	st := Status(dir, t, art)
	if st.Current {
		fmt.Fprintf(r.Out, "%s already points at %s, skipping.\n", t.LinkName(), name)
		return Unchanged, nil
	}
	r.Logger.Debug("stale link", "path", st.Path, "exists", st.Exists, "payload", st.Payload)

	ok, err := r.Prompter.Confirm(fmt.Sprintf("Point %s at %s?", t.LinkName(), name), true)
	if err != nil {
		return 0, err
	}
	if !ok {
		fmt.Fprintf(r.Out, "Left %s unchanged.\n", t.LinkName())
		return Declined, nil
	}

	if err := platform.RemoveSymlink(st.Path); err != nil {
		return 0, fmt.Errorf("removing %s: %w", st.Path, err)
	}
	if err := platform.CreateSymlink(name, st.Path); err != nil {
		return 0, fmt.Errorf("linking %s: %w", st.Path, err)
	}
	fmt.Fprintf(r.Out, "Linked %s -> %s\n", t.LinkName(), name)
	return Linked, nil
}

func payloadName(art artifact.Artifact) (string, error) {
	name := art.Name
	if name == "" {
		name = filepath.Base(art.Path)
	}
	if name == "" || name == "." || name == string(filepath.Separator) ||
		!utf8.ValidString(name) || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrBadFileName, name)
	}
	return name, nil
}

func resolve(dir, payload string) string {
	if filepath.IsAbs(payload) {
		return payload
	}
	return filepath.Join(dir, payload)
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
