// Package color carries the terminal palette the driver uses for its
// per-file status words, adapted from the teacher's
// go/ascii/colors.go theme: same semantic field names, same palette,
// renamed to this module's domain (no AST/ASM syntax roles, only the
// diagnostic and pass/fail roles the driver actually exercises).
package color

import "fmt"

const (
	Reset  = "\033[0m"
	Red    = "\033[1;31m"
	Yellow = "\033[1;33m"
	Green  = "\033[1;32m"
	Gray   = "\033[90m"
	Cyan   = "\033[1;36m"
	Orange = "\033[38;5;208m"
)

// Theme groups the semantic colors the CLI uses, so `--no-color` can
// swap in an all-empty one.
type Theme struct {
	Success string
	Error   string
	Skip    string
	Muted   string
	Span    string
}

var DefaultTheme = Theme{
	Success: Green,
	Error:   Red,
	Skip:    Yellow,
	Muted:   Gray,
	Span:    Orange,
}

// Plain is the no-color theme, used when `--no-color` is given; the
// driver does not detect whether output is a terminal.
var Plain = Theme{}

func (t Theme) paint(c, format string, args ...any) string {
	if c == "" {
		return fmt.Sprintf(format, args...)
	}
	return fmt.Sprintf(c+format+Reset, args...)
}

func (t Theme) Ok(format string, args ...any) string       { return t.paint(t.Success, format, args...) }
func (t Theme) Fail(format string, args ...any) string     { return t.paint(t.Error, format, args...) }
func (t Theme) Skipped(format string, args ...any) string  { return t.paint(t.Skip, format, args...) }
func (t Theme) Dim(format string, args ...any) string      { return t.paint(t.Muted, format, args...) }
