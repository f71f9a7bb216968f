// Package diff renders the difference between two pretty-printed documents
// as +/- lines for operator review.
//
// Texts are first compared line by line. A changed block whose old and new
// sides have the same number of lines is paired up positionally and each pair
// is segmented token by token, so a single edited value shows up as just
// that value. Blocks of unequal size are shown as whole removed and added
// lines.
package diff

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

// Op is the kind of a segment.
type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

// Segment is a run of text that was inserted or deleted.
type Segment struct {
	Op   Op
	Text string
}

// Changes returns the inserted and deleted segments between old and new, in
// document order. Unchanged text is omitted.
func Changes(old, new string) []Segment {
	a := splitLines(old)
	b := splitLines(new)

	var out []Segment
	for _, op := range difflib.NewMatcher(a, b).GetOpCodes() {
		switch op.Tag {
		case 'd':
			out = appendLines(out, Delete, a[op.I1:op.I2])
		case 'i':
			out = appendLines(out, Insert, b[op.J1:op.J2])
		case 'r':
			if op.I2-op.I1 == op.J2-op.J1 {
				for k := 0; k < op.I2-op.I1; k++ {
					out = append(out, lineChanges(a[op.I1+k], b[op.J1+k])...)
				}
				continue
			}
			out = appendLines(out, Delete, a[op.I1:op.I2])
			out = appendLines(out, Insert, b[op.J1:op.J2])
		}
	}
	return out
}

// Write prints segments as "+ text" / "- text" lines. Colors follow
// color.NoColor.
func Write(w io.Writer, segments []Segment) {
	add := color.New(color.FgGreen)
	rem := color.New(color.FgRed)
	for _, s := range segments {
		switch s.Op {
		case Insert:
			add.Fprintln(w, "+ "+s.Text)
		case Delete:
			rem.Fprintln(w, "- "+s.Text)
		}
	}
}

// Print computes and writes the changes between old and new. It reports
// whether anything differed.
func Print(w io.Writer, old, new string) bool {
	segments := Changes(old, new)
	if len(segments) == 0 {
		fmt.Fprintln(w, "(no changes)")
		return false
	}
	Write(w, segments)
	return true
}

// lineChanges segments one old/new line pair token by token.
func lineChanges(oldLine, newLine string) []Segment {
	a := tokenize(oldLine)
	b := tokenize(newLine)

	var out []Segment
	for _, op := range difflib.NewMatcher(a, b).GetOpCodes() {
		switch op.Tag {
		case 'd':
			out = append(out, Segment{Op: Delete, Text: strings.Join(a[op.I1:op.I2], "")})
		case 'i':
			out = append(out, Segment{Op: Insert, Text: strings.Join(b[op.J1:op.J2], "")})
		case 'r':
			out = append(out,
				Segment{Op: Delete, Text: strings.Join(a[op.I1:op.I2], "")},
				Segment{Op: Insert, Text: strings.Join(b[op.J1:op.J2], "")},
			)
		}
	}
	return out
}

func appendLines(out []Segment, op Op, lines []string) []Segment {
	for _, l := range lines {
		out = append(out, Segment{Op: op, Text: l})
	}
	return out
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// tokenize splits a line into word runs, space runs and single punctuation
// runes.
func tokenize(s string) []string {
	var tokens []string
	var cur strings.Builder
	kind := 0
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range s {
		k := runeKind(r)
		if k == 0 || k != kind {
			flush()
		}
		kind = k
		cur.WriteRune(r)
		if k == 0 {
			flush()
		}
	}
	flush()
	return tokens
}

// runeKind groups runes: 1 word, 2 space, 0 anything else (never merged).
func runeKind(r rune) int {
	switch {
	case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
		return 1
	case unicode.IsSpace(r):
		return 2
	default:
		return 0
	}
}
