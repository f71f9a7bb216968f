// Package release drives the per-target pipeline: scan the directory, pick
// the newest artifact, record it in update.json, prune old artifacts and
// point the latest.<suffix> link at it. Targets run strictly one after
// another; a failing target does not undo or block the others, except for a
// malformed manifest, which stops the run.
package release
