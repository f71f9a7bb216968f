// Package retention removes superseded artifacts of a target once a newer
// one has been selected.
package retention

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/appdist/distman/internal/artifact"
	"github.com/appdist/distman/internal/prompt"
)

var printer = message.NewPrinter(language.English)

// Pruner deletes every candidate except the latest after confirmation.
type Pruner struct {
	Prompter prompt.Prompter
	Out      io.Writer
	Logger   hclog.Logger
}

// Prune returns the number of files removed. A single candidate is a no-op
// without prompting. The confirmation defaults to no. Every deletion is
// attempted; failures are reported and returned joined.
func (p *Pruner) Prune(candidates []artifact.Artifact, latest artifact.Artifact) (int, error) {
	if len(candidates) <= 1 {
		fmt.Fprintln(p.Out, "No old files to remove.")
		return 0, nil
	}

	var old []artifact.Artifact
	for _, c := range candidates {
		if c.Path != latest.Path {
			old = append(old, c)
		}
	}
	if len(old) == 0 {
		fmt.Fprintln(p.Out, "No old files to remove.")
		return 0, nil
	}

	for _, a := range old {
		fmt.Fprintf(p.Out, "  %s\n", a.Name)
	}
	ok, err := p.Prompter.Confirm(printer.Sprintf("Remove %d old file(s)?", len(old)), false)
	if err != nil {
		return 0, err
	}
	if !ok {
		fmt.Fprintln(p.Out, "Kept old files.")
		return 0, nil
	}

	removed := 0
	var errs []error
	for _, a := range old {
		if err := os.Remove(a.Path); err != nil {
			fmt.Fprintf(p.Out, "failed to remove %s: %v\n", a.Name, err)
			errs = append(errs, fmt.Errorf("removing %s: %w", a.Path, err))
			continue
		}
		p.Logger.Debug("removed old artifact", "path", a.Path)
		removed++
	}
	fmt.Fprintln(p.Out, printer.Sprintf("Removed %d old file(s).", removed))
	return removed, errors.Join(errs...)
}
