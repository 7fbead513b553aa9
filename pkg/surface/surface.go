// Package surface defines output rendering for Creditscope decisions.
// Implementations handle different output targets: terminal, JSON, Markdown.
package surface

import (
	"io"

	"github.com/creditscope/creditscope/pkg/decision"
)

// Renderer produces formatted output from a Decision.
type Renderer interface {
	// Render writes the formatted decision to the writer.
	Render(w io.Writer, d *decision.Decision) error
}

// ByName returns the renderer for an output format name, defaulting to
// terminal output.
func ByName(format string) Renderer {
	switch format {
	case "json":
		return &JSONRenderer{}
	case "markdown":
		return &MarkdownRenderer{}
	default:
		return &TerminalRenderer{}
	}
}
