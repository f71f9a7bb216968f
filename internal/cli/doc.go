// Package cli defines the Cobra command tree for distman. The root command
// runs the release pipeline; status, config and version are subcommands.
// Commands only resolve settings and format output; the work happens in
// internal/release and the packages it drives.
package cli
