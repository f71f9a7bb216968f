package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/appdist/distman/internal/config"
	"github.com/appdist/distman/internal/release"
	"github.com/appdist/distman/internal/target"
)

var statusYAML bool

func init() {
	statusCmd.Flags().BoolVar(&statusYAML, "yaml", false, "Print the status as YAML")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status [targets...]",
	Short: "Show the latest artifact, recorded build and link state per target",
	Long: `Report, without prompting or changing anything, what a run would work on:
the newest artifact per target, the build recorded in update.json, and
whether latest.<suffix> already points at it.

With no targets, the configured targets are shown, or all of them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := config.Current()
		if err := checkDir(s.Dir); err != nil {
			return err
		}

		tokens := args
		if len(tokens) == 0 {
			tokens = s.Targets
		}
		targets := target.All()
		if len(tokens) > 0 {
			targets = release.ParseTargets(tokens, cmd.ErrOrStderr())
		}

		statuses, err := release.Inspect(s.Dir, targets)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if statusYAML {
			data, err := yaml.Marshal(statuses)
			if err != nil {
				return fmt.Errorf("marshaling status: %w", err)
			}
			fmt.Fprint(out, string(data))
			return nil
		}

		for _, st := range statuses {
			icon := "--"
			switch {
			case st.UpToDate:
				icon = "OK"
			case st.Latest != "":
				icon = "!!"
			}
			latest := st.Latest
			if latest == "" {
				latest = "(no artifacts)"
			}
			fmt.Fprintf(out, "  [%s] %-8s %s", icon, st.Target+":", latest)
			if st.Recorded != nil {
				fmt.Fprintf(out, " (recorded build %d)", *st.Recorded)
			}
			fmt.Fprintln(out)
			if st.Latest != "" {
				fmt.Fprintf(out, "       link: %s", st.Link)
				if st.LinkTarget != "" {
					fmt.Fprintf(out, " -> %s", st.LinkTarget)
				}
				fmt.Fprintf(out, ", %d candidate(s)\n", st.Candidates)
			}
			if len(st.URLs) > 0 {
				archs := slices.Sorted(maps.Keys(st.URLs))
				fmt.Fprintf(out, "       urls: %s\n", strings.Join(archs, ", "))
			}
		}
		return nil
	},
}
