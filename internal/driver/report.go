package driver

import (
	"fmt"
	"io"

	"github.com/dwijnand/scala-parser/internal/color"
	"github.com/dwijnand/scala-parser/internal/parsing"
)

// Report renders one line per result — `[<len>] <path>  <ok|failed|skip>`
// — followed by a formatted-error block for every failure, and reports
// whether the whole run passed (so should exit zero): true iff every
// non-skipped file parsed (after negation) successfully.
func Report(w io.Writer, theme color.Theme, results []Result) bool {
	allPassed := true
	for _, r := range results {
		switch {
		case r.Skipped:
			fmt.Fprintf(w, "[%5d] %s  %s (%s)\n", 0, r.Path, theme.Skipped("skip"), r.SkipWhy)
		case r.Passed:
			fmt.Fprintf(w, "[%5d] %s  %s\n", r.Length, r.Path, theme.Ok("ok"))
		default:
			allPassed = false
			fmt.Fprintf(w, "[%5d] %s  %s\n", r.Length, r.Path, theme.Fail("failed"))
			if r.ParseErr != nil {
				fmt.Fprintf(w, "    %s\n", r.ParseErr.Error())
				if perr, ok := r.ParseErr.(*parsing.ParseError); ok {
					if line := perr.FormattedLine(); line != "" {
						for _, l := range splitLines(line) {
							fmt.Fprintf(w, "    %s\n", l)
						}
					}
				}
			}
		}
	}
	return allPassed
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i, c := range s {
		if c == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}
