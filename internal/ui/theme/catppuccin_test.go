package theme_test

import (
	"testing"

	"pickpack/internal/ui/theme"
)

func TestTagColors(t *testing.T) {
	t.Parallel()
	cases := map[string]any{
		"blue":   theme.Blue,
		"green":  theme.Green,
		"yellow": theme.Yellow,
		"red":    theme.Red,
		"purple": theme.Mauve,
		"plaid":  theme.Overlay0,
	}
	for tag, want := range cases {
		if got := theme.TagColor(tag); got != want {
			t.Fatalf("tag %s: got %v, want %v", tag, got, want)
		}
	}
}

func TestPaneActiveUsesLavenderBorder(t *testing.T) {
	t.Parallel()
	if got := theme.PaneActive.GetBorderTopForeground(); got != theme.Lavender {
		t.Fatalf("active pane border: got %v", got)
	}
	if got := theme.Pane.GetBorderTopForeground(); got != theme.Surface1 {
		t.Fatalf("pane border: got %v", got)
	}
}
