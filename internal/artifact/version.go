package artifact

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/appdist/distman/internal/prompt"
)

// ErrInvalidVersion is returned when neither the file name nor the operator
// supplies a valid non-negative integer version.
var ErrInvalidVersion = errors.New("invalid version")

var versionPattern = regexp.MustCompile(`\d+`)

// ExtractVersion parses the first run of decimal digits in name. When name
// has no digits the operator is asked for the version instead.
func ExtractVersion(name string, p prompt.Prompter) (uint32, error) {
	text := versionPattern.FindString(name)
	if text == "" {
		answer, err := p.Input(fmt.Sprintf("No version number in %q. Enter version:", name))
		if err != nil {
			return 0, fmt.Errorf("reading version: %w", err)
		}
		text = answer
	}
	return parseVersion(text)
}

func parseVersion(text string) (uint32, error) {
	v, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidVersion, text)
	}
	return uint32(v), nil
}
