// Package diag renders the body-lowering core's diagnostics. Errors are
// collected, never panicked; this package only owns turning a collected
// Diagnostic into text: a file:line:column header, the offending source
// line, and a caret, rather than going through a generic logger.
package diag

import (
	"fmt"
	"strings"

	"github.com/quag/candy/internal/ast"
	"github.com/quag/candy/internal/query"
)

// Kind classifies a diagnostic.
type Kind string

const (
	UnsupportedFeature    Kind = "unsupported-feature"
	InvalidExpressionType Kind = "invalid-expression-type"
	AmbiguousExpression   Kind = "ambiguous-expression"
	MissingReturn         Kind = "missing-return"
	InvalidReturnLabel    Kind = "invalid-return-label"
	UndefinedIdentifier   Kind = "undefined-identifier"
	InternalError         Kind = "internal-error"
)

// Location pairs a resource (source file) with the span of the offending
// construct.
type Location struct {
	Resource query.ResourceID
	Span     ast.Span
}

// Diagnostic is one compile-time error surfaced by the lowering core: a
// kind, a human-readable message, and a location.
type Diagnostic struct {
	Kind     Kind
	Message  string
	Location Location
}

// New creates a diagnostic with a formatted message.
func New(kind Kind, location Location, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Location: location,
	}
}

// Error implements the error interface so a Diagnostic can be returned
// anywhere Go code expects one.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s at %s", d.Kind, d.Message, d.Location.Span.Start)
}

// Format renders the diagnostic with source context: a header, the
// offending line, and a caret under the error column, optionally in
// color.
func (d *Diagnostic) Format(source string, color bool) string {
	var sb strings.Builder

	if d.Location.Resource != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", d.Location.Resource, d.Location.Span.Start.Line, d.Location.Span.Start.Column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", d.Location.Span.Start.Line, d.Location.Span.Start.Column)
	}

	if line := sourceLine(source, d.Location.Span.Start.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", d.Location.Span.Start.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteByte('\n')

		sb.WriteString(strings.Repeat(" ", len(prefix)+d.Location.Span.Start.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteByte('^')
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteByte('\n')
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(string(d.Kind) + ": " + d.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
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
