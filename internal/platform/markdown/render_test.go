package markdown_test

import (
	"strings"
	"testing"

	"pickpack/internal/platform/markdown"
)

func TestRenderStripsEmphasisMarkers(t *testing.T) {
	t.Parallel()
	out, err := markdown.Render("Matching pick: **+10**\n", 40)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "+10") || strings.Contains(out, "**") {
		t.Fatalf("unexpected render output: %q", out)
	}
}
