// Package diag implements the diagnostic sink described in spec.md §4.1:
// semantic analysis never aborts on the first error, it accumulates one
// diagnostic per failing sub-expression and keeps walking.
package diag

import "fmt"

// Span is a half-open source range: (LineBegin, ColBegin) to (LineEnd, ColEnd).
// Columns and lines are 1-based, matching the teacher's lexer.Position
// convention.
type Span struct {
	LineBegin int
	ColBegin  int
	LineEnd   int
	ColEnd    int
}

// String renders a span as "line:col" (start position only) for compact
// diagnostic messages, or "line:col-line:col" when it spans more than one
// position.
func (s Span) String() string {
	if s.LineBegin == s.LineEnd && s.ColBegin == s.ColEnd {
		return fmt.Sprintf("%d:%d", s.LineBegin, s.ColBegin)
	}
	return fmt.Sprintf("%d:%d-%d:%d", s.LineBegin, s.ColBegin, s.LineEnd, s.ColEnd)
}

// Diagnostic is a single reported error with its source span.
type Diagnostic struct {
	Span    Span
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Span.String(), d.Message)
}

// Sink accumulates diagnostics produced while walking a HIR tree. It never
// panics and never stops the walk; every implementation must be safe to call
// from any point in the analyzer.
type Sink interface {
	// Report records one diagnostic at the given span.
	Report(span Span, format string, args ...any)
	// Diagnostics returns all diagnostics collected so far, in report order.
	Diagnostics() []Diagnostic
	// Len reports how many diagnostics have been collected.
	Len() int
}

// Collector is the concrete, append-only Sink used throughout the analyzer.
// The zero value is ready to use.
type Collector struct {
	diagnostics []Diagnostic
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Report appends a formatted diagnostic. It never panics: a nil Collector
// silently drops the report rather than crash a walk that forgot to wire one.
func (c *Collector) Report(span Span, format string, args ...any) {
	if c == nil {
		return
	}
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Span:    span,
		Message: fmt.Sprintf(format, args...),
	})
}

// Diagnostics returns the diagnostics collected so far, in report order.
func (c *Collector) Diagnostics() []Diagnostic {
	if c == nil {
		return nil
	}
	return c.diagnostics
}

// Len reports how many diagnostics have been collected.
func (c *Collector) Len() int {
	if c == nil {
		return 0
	}
	return len(c.diagnostics)
}
