package markdown

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Render formats markdown for the terminal, wrapping at width columns.
// A width of zero disables wrapping.
func Render(content string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("new markdown renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
