package target

import "strings"

// Arch is a CPU architecture tag used as key under urls.<target>.
type Arch int

const (
	Arm64 Arch = iota
	Amd64
	Arm
)

var archTokens = [...]string{
	Arm64: "arm64",
	Amd64: "amd64",
	Arm:   "arm",
}

// classifyOrder must keep Arm last: "arm64" contains "arm".
var classifyOrder = []Arch{Arm64, Amd64, Arm}

// String returns the canonical lowercase token.
func (a Arch) String() string {
	if a < 0 || int(a) >= len(archTokens) {
		return ""
	}
	return archTokens[a]
}

// ClassifyArch finds the architecture token contained in name,
// case-insensitively. ok is false when no token matches.
func ClassifyArch(name string) (arch Arch, ok bool) {
	lower := strings.ToLower(name)
	for _, a := range classifyOrder {
		if strings.Contains(lower, a.String()) {
			return a, true
		}
	}
	return 0, false
}
