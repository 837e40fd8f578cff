package diag

import (
	"fmt"
	"strings"
)

// FormatWithSource renders a diagnostic with the offending source line and a
// caret pointing at the column, in the same shape as the teacher's
// internal/errors.CompilerError.Format: a header, the source line prefixed
// with its line number, and a caret line underneath.
func (d Diagnostic) FormatWithSource(source string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("error at %s: %s\n", d.Span.String(), d.Message))

	line := sourceLine(source, d.Span.LineBegin)
	if line == "" {
		return strings.TrimRight(sb.String(), "\n")
	}

	lineNumPrefix := fmt.Sprintf("%4d | ", d.Span.LineBegin)
	sb.WriteString(lineNumPrefix)
	sb.WriteString(line)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", len(lineNumPrefix)+maxInt(d.Span.ColBegin-1, 0)))
	sb.WriteString("^")

	return sb.String()
}

// FormatAllWithSource renders every diagnostic in a Sink, separated by blank
// lines, in report order.
func FormatAllWithSource(sink Sink, source string) string {
	diags := sink.Diagnostics()
	if len(diags) == 0 {
		return ""
	}

	parts := make([]string, len(diags))
	for i, d := range diags {
		parts[i] = d.FormatWithSource(source)
	}
	return strings.Join(parts, "\n\n")
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
