package driver

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dwijnand/scala-parser/internal/color"
	"github.com/dwijnand/scala-parser/internal/parsing"
)

// NewRootCommand builds the `scalaparse` cobra command: given one or
// more root paths, it walks them for `.scala` files, recognizes each,
// and reports pass/fail/skip per file, exiting non-zero if any
// non-skipped file failed. Running it with no subcommand name is
// equivalent to `scalaparse parse`, kept as the default so existing
// invocations don't break; `trace` is a second, diagnostic subcommand
// that parses one file with an Instrument attached.
func NewRootCommand() *cobra.Command {
	var (
		ext     string
		jobs    int
		noColor bool
		verbose bool
	)

	runE := func(cmd *cobra.Command, args []string) error {
		return runParse(cmd, args, ext, jobs, noColor, verbose)
	}

	cmd := &cobra.Command{
		Use:          "scalaparse [roots...]",
		Short:        "Recognize whether files parse as valid syntax",
		RunE:         runE,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&ext, "ext", ".scala", "file extension to recognize")
	cmd.PersistentFlags().IntVar(&jobs, "jobs", 0, "max parallel files (0 = GOMAXPROCS)")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(&cobra.Command{
		Use:          "parse [roots...]",
		Short:        "Recognize whether files parse as valid syntax",
		RunE:         runE,
		SilenceUsage: true,
	})
	cmd.AddCommand(newTraceCommand())

	return cmd
}

func runParse(cmd *cobra.Command, args []string, ext string, jobs int, noColor, verbose bool) error {
	log := logrus.New()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	roots := args
	if len(roots) == 0 {
		roots = []string{"."}
	}

	theme := color.DefaultTheme
	if noColor {
		theme = color.Plain
	}

	log.WithFields(logrus.Fields{"roots": roots, "ext": ext, "jobs": jobs}).Debug("starting run")

	results, err := Run(cmd.Context(), Options{
		Roots:       roots,
		Extension:   ext,
		Concurrency: jobs,
	})
	if err != nil {
		log.WithError(err).Error("run failed")
		return err
	}

	allPassed := Report(cmd.OutOrStdout(), theme, results)
	log.WithFields(logrus.Fields{"files": len(results), "ok": allPassed}).Debug("run complete")
	if !allPassed {
		return errExitNonZero
	}
	return nil
}

// newTraceCommand builds the `trace` subcommand: parses a single file
// with a parsing.Instrument attached and prints the resulting
// depth-indented rule-entry trace, for diagnosing why a file parses
// (or fails to) rather than just whether it does.
func newTraceCommand() *cobra.Command {
	var maxEntries int

	cmd := &cobra.Command{
		Use:   "trace <file>",
		Short: "Parse one file and print its rule-entry trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			instr := parsing.NewInstrument(maxEntries)
			ok, perr := parsing.ParseTraced(string(content), instr)

			fmt.Fprint(cmd.OutOrStdout(), instr.Report())

			if !ok {
				fmt.Fprintln(cmd.ErrOrStderr(), perr.Error())
				return errExitNonZero
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().IntVar(&maxEntries, "max-entries", 0, "cap on recorded trace entries (0 = unlimited)")

	return cmd
}

// errExitNonZero is a sentinel used only to make RunE return
// non-nil without cobra re-printing a redundant error message
// (SilenceUsage/SilenceErrors below keep the report itself as the
// only output the user sees).
var errExitNonZero = fmt.Errorf("one or more files failed to parse")

func init() {
	cobra.EnableCommandSorting = false
}

// Execute runs the root command and maps its result to a process exit
// code, the way a standalone CLI main() is expected to.
func Execute() int {
	cmd := NewRootCommand()
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err != nil {
		if err != errExitNonZero {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}
