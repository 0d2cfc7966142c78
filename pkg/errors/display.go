// Package errors provides error formatting for terminal display.
package errors

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m" // Error code
	colorYellow = "\033[33m" // Context information
	colorCyan   = "\033[36m" // Suggestions
	colorDim    = "\033[90m" // Secondary/cause info
)

// Formatter handles error display with optional color support.
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	UseColor bool

	// Writer is the output destination. Defaults to os.Stderr.
	Writer io.Writer

	// Indent is the prefix for context and suggestion lines.
	Indent string
}

// DefaultFormatter returns a Formatter configured for standard error output.
// Color is enabled if stderr is a TTY.
func DefaultFormatter() *Formatter {
	return &Formatter{
		UseColor: IsTTY(os.Stderr),
		Writer:   os.Stderr,
		Indent:   "  ",
	}
}

// IsTTY returns true if the given file is a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// Format renders an error with the default formatter.
func Format(err error) string {
	return DefaultFormatter().Format(err)
}

// Format renders an error for terminal display. CardErrors show code,
// message, context, cause, and suggestions; other errors show a plain
// message.
func (f *Formatter) Format(err error) string {
	if err == nil {
		return ""
	}

	ce, ok := AsCardError(err)
	if !ok {
		return f.paint(colorRed, "Error: ") + err.Error()
	}

	var sb strings.Builder
	sb.WriteString(f.paint(colorRed, fmt.Sprintf("[%s] ", ce.Code)))
	sb.WriteString(ce.Message)

	if ce.Cause != nil {
		sb.WriteString("\n")
		sb.WriteString(f.Indent)
		sb.WriteString(f.paint(colorDim, "cause: "+ce.Cause.Error()))
	}

	if len(ce.Context) > 0 {
		keys := make([]string, 0, len(ce.Context))
		for k := range ce.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString("\n")
			sb.WriteString(f.Indent)
			sb.WriteString(f.paint(colorYellow, fmt.Sprintf("%s: %s", k, ce.Context[k])))
		}
	}

	for _, s := range ce.Suggestions {
		sb.WriteString("\n")
		sb.WriteString(f.Indent)
		sb.WriteString(f.paint(colorCyan, "hint: "+s))
	}

	return sb.String()
}

// Print writes the formatted error to the formatter's writer.
func (f *Formatter) Print(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(f.Writer, f.Format(err))
}

// paint wraps text in a color code when color is enabled.
func (f *Formatter) paint(color, text string) string {
	if !f.UseColor {
		return text
	}
	return color + text + colorReset
}
