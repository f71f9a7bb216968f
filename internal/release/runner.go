package release

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"

	"github.com/appdist/distman/internal/artifact"
	"github.com/appdist/distman/internal/branding"
	"github.com/appdist/distman/internal/linker"
	"github.com/appdist/distman/internal/manifest"
	"github.com/appdist/distman/internal/prompt"
	"github.com/appdist/distman/internal/retention"
	"github.com/appdist/distman/internal/target"
)

// ErrTargetsFailed is returned by Run when at least one target failed.
var ErrTargetsFailed = errors.New("some targets failed")

// Options are the switches the pipeline honours.
type Options struct {
	Dir        string
	CDNHost    string
	UpdateJSON bool
	Link       bool
	RemoveOld  bool
}

// Report summarizes what happened to one target.
type Report struct {
	Target   target.Target
	Artifact string
	Manifest string // manifest.Result, or "skipped"
	Removed  int
	Link     string // linker.Result, or "skipped"
	Err      error
}

// Runner processes targets against one directory.
type Runner struct {
	Options
	Prompter prompt.Prompter
	Out      io.Writer
	Logger   hclog.Logger
}

// ParseTargets resolves CLI tokens, reporting and dropping unknown ones.
// Repeated targets are processed once.
func ParseTargets(tokens []string, out io.Writer) []target.Target {
	seen := make(map[target.Target]bool)
	var targets []target.Target
	for _, tok := range tokens {
		t, err := target.Parse(tok)
		if err != nil {
			fmt.Fprintf(out, "warning: %v, ignoring\n", err)
			continue
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		targets = append(targets, t)
	}
	return targets
}

// Run processes targets in order. A malformed manifest aborts the run
// immediately; other failures are reported and the next target proceeds.
func (r *Runner) Run(targets []target.Target) ([]Report, error) {
	header := color.New(color.Bold)
	var reports []Report
	failed := 0

	for _, t := range targets {
		header.Fprintf(r.Out, "[%s]\n", strings.ToUpper(t.String()))
		rep, err := r.runTarget(t)
		rep.Err = err
		reports = append(reports, rep)

		if err != nil {
			fmt.Fprintf(r.Out, "error: %v\n\n", err)
			if errors.Is(err, manifest.ErrMalformed) {
				return reports, err
			}
			failed++
			continue
		}
		fmt.Fprintln(r.Out)
	}

	if failed > 0 {
		return reports, fmt.Errorf("%w: %d of %d", ErrTargetsFailed, failed, len(targets))
	}
	return reports, nil
}

func (r *Runner) runTarget(t target.Target) (Report, error) {
	rep := Report{Target: t, Manifest: "skipped", Link: "skipped"}

	candidates, err := artifact.Scan(r.Dir, t)
	if err != nil {
		return rep, err
	}
	r.Logger.Debug("scanned", "target", t.String(), "dir", r.Dir, "candidates", len(candidates))
	latest, err := artifact.Latest(candidates)
	if err != nil {
		return rep, fmt.Errorf("%w for %s (*%s) in %s", err, t, t.Suffix(), r.Dir)
	}
	rep.Artifact = latest.Name
	fmt.Fprintf(r.Out, "Latest is %s\n", latest.Name)

	if r.UpdateJSON {
		u := &manifest.Updater{Prompter: r.Prompter, Out: r.Out, Logger: r.Logger, CDNHost: r.CDNHost}
		res, err := u.Update(r.Dir, t, latest)
		if err != nil {
			return rep, err
		}
		rep.Manifest = res.String()
		if res == manifest.UpToDate {
			return rep, nil
		}
	} else {
		fmt.Fprintf(r.Out, "Skipping %s (disabled).\n", branding.ManifestFile())
	}

	if r.RemoveOld {
		p := &retention.Pruner{Prompter: r.Prompter, Out: r.Out, Logger: r.Logger}
		n, err := p.Prune(candidates, latest)
		rep.Removed = n
		if err != nil {
			return rep, err
		}
	} else {
		fmt.Fprintln(r.Out, "Skipping old-file removal (disabled).")
	}

	if r.Link {
		l := &linker.Reconciler{Prompter: r.Prompter, Out: r.Out, Logger: r.Logger}
		res, err := l.Reconcile(r.Dir, t, latest)
		if err != nil {
			return rep, err
		}
		rep.Link = res.String()
	} else {
		fmt.Fprintln(r.Out, "Skipping link (disabled).")
	}

	fmt.Fprintln(r.Out, "Done.")
	return rep, nil
}
