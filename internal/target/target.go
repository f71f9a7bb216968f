package target

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTarget is returned by Parse for tokens outside the closed set.
var ErrUnknownTarget = errors.New("unknown target")

// Target is a release platform.
type Target int

const (
	Android Target = iota
	Ios
	Mac
	Linux
	Windows
)

type info struct {
	name         string
	suffix       string
	publishesURL bool
}

var registry = [...]info{
	Android: {name: "android", suffix: "apk", publishesURL: true},
	Ios:     {name: "ios", suffix: "ipa", publishesURL: false},
	Mac:     {name: "mac", suffix: "app.zip", publishesURL: false},
	Linux:   {name: "linux", suffix: "AppImage", publishesURL: true},
	Windows: {name: "windows", suffix: "win.zip", publishesURL: true},
}

// All returns every target in declaration order.
func All() []Target {
	return []Target{Android, Ios, Mac, Linux, Windows}
}

// Names returns the canonical tokens of every target.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, t := range All() {
		names = append(names, t.String())
	}
	return names
}

// Parse resolves a CLI token (case-insensitive) to a Target.
func Parse(token string) (Target, error) {
	lower := strings.ToLower(strings.TrimSpace(token))
	for _, t := range All() {
		if registry[t].name == lower {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownTarget, token, strings.Join(Names(), ", "))
}

func (t Target) valid() bool {
	return t >= 0 && int(t) < len(registry)
}

// String returns the canonical lowercase name, used as manifest key.
func (t Target) String() string {
	if !t.valid() {
		return fmt.Sprintf("Target(%d)", int(t))
	}
	return registry[t].name
}

// Suffix returns the artifact file suffix, e.g. "apk" or "app.zip".
func (t Target) Suffix() string {
	if !t.valid() {
		return ""
	}
	return registry[t].suffix
}

// PublishesURL reports whether the manifest carries a download URL for t.
func (t Target) PublishesURL() bool {
	return t.valid() && registry[t].publishesURL
}

// LinkName returns the name of the stable symlink, "latest.<suffix>".
func (t Target) LinkName() string {
	return "latest." + t.Suffix()
}

// Matches reports whether a file name carries this target's suffix. The
// suffix may contain a dot, so this is not an extension comparison.
func (t Target) Matches(name string) bool {
	suffix := t.Suffix()
	return suffix != "" && strings.HasSuffix(name, suffix)
}
