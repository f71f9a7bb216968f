package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/appdist/distman/internal/branding"
	"github.com/appdist/distman/internal/config"
	"github.com/appdist/distman/internal/logging"
	"github.com/appdist/distman/internal/prompt"
	"github.com/appdist/distman/internal/release"
	"github.com/appdist/distman/internal/target"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var printer = message.NewPrinter(language.English)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [targets...]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` finds the newest build artifact for each target platform in a
directory, records its build number and download URL in update.json, removes
superseded artifacts and points latest.<suffix> at it.

Targets: ` + strings.Join(target.Names(), ", ") + `

Examples:
  distman android linux             # process two targets in ./
  distman -d dist/1.4 -r android    # also remove old .apk files
  distman --json=false ios          # only refresh latest.ipa`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		s := config.Current()
		color.NoColor = s.NoColor || !isTerminal(os.Stdout)
		return nil
	},
	RunE: runRelease,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringP("dir", "d", ".", "Directory holding the artifacts and update.json")
	f.String("log-level", "warn", "Diagnostic log level (trace, debug, info, warn, error)")
	f.Bool("no-color", false, "Disable colored output")

	rf := rootCmd.Flags()
	rf.String("cdn-host", branding.CDNHost(), "Host (and optional path prefix) for download URLs")
	rf.Bool("json", true, "Record the latest build in update.json")
	rf.Bool("link", true, "Point latest.<suffix> at the latest artifact")
	rf.BoolP("rm-old-files", "r", false, "Offer to delete superseded artifacts")
	rf.BoolP("yes", "y", false, "Accept every confirmation without asking")

	bind := map[string]string{
		config.KeyDir:        "dir",
		config.KeyLogLevel:   "log-level",
		config.KeyNoColor:    "no-color",
		config.KeyCDNHost:    "cdn-host",
		config.KeyUpdateJSON: "json",
		config.KeyLink:       "link",
		config.KeyRemoveOld:  "rm-old-files",
		config.KeyYes:        "yes",
	}
	for key, flag := range bind {
		pf := f.Lookup(flag)
		if pf == nil {
			pf = rf.Lookup(flag)
		}
		_ = viper.BindPFlag(key, pf)
	}
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

func runRelease(cmd *cobra.Command, args []string) error {
	s := config.Current()
	out := cmd.OutOrStdout()
	logger := logging.New(s.LogLevel, cmd.ErrOrStderr())

	tokens := args
	if len(tokens) == 0 {
		tokens = s.Targets
	}
	if len(tokens) == 0 {
		return fmt.Errorf("no targets given (choose from %s)", strings.Join(target.Names(), ", "))
	}
	targets := release.ParseTargets(tokens, cmd.ErrOrStderr())
	if len(targets) == 0 {
		return fmt.Errorf("no known targets in %s", strings.Join(tokens, " "))
	}

	if err := checkDir(s.Dir); err != nil {
		return err
	}

	r := &release.Runner{
		Options: release.Options{
			Dir:        s.Dir,
			CDNHost:    s.CDNHost,
			UpdateJSON: s.UpdateJSON,
			Link:       s.Link,
			RemoveOld:  s.RemoveOld,
		},
		Prompter: newPrompter(cmd.InOrStdin(), out, s.AssumeYes),
		Out:      out,
		Logger:   logger,
	}
	logger.Debug("starting run", "dir", s.Dir, "targets", fmt.Sprint(targets))

	reports, err := r.Run(targets)
	printSummary(out, reports)
	return err
}

func checkDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("artifact directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("artifact directory %s is not a directory", dir)
	}
	return nil
}

func newPrompter(in io.Reader, out io.Writer, assumeYes bool) prompt.Prompter {
	console := prompt.NewConsole(in, out)
	if f, ok := in.(*os.File); ok {
		console.Echo = !isTerminal(f)
	}
	if assumeYes {
		return prompt.NewAssumeYes(console, out)
	}
	return console
}

func printSummary(w io.Writer, reports []release.Report) {
	failed := 0
	for _, r := range reports {
		if r.Err != nil {
			failed++
		}
	}
	if failed == 0 {
		fmt.Fprintln(w, printer.Sprintf("Processed %d target(s).", len(reports)))
		return
	}
	fmt.Fprintln(w, printer.Sprintf("Processed %d target(s), %d failed.", len(reports), failed))
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
