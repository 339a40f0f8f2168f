package ui

import (
	"strings"
	"testing"
)

func TestGlyph_FillSteps(t *testing.T) {
	tests := []struct {
		progress float64
		want     rune
	}{
		{0.0, '○'},
		{0.25, '◔'},
		{0.5, '◑'},
		{0.75, '◕'},
		{1.0, '●'},
		{-0.5, '○'},
		{1.5, '●'},
	}
	for _, tt := range tests {
		if got := Glyph(tt.progress); got != tt.want {
			t.Errorf("Glyph(%v) = %c, want %c", tt.progress, got, tt.want)
		}
	}
}

func TestDial_HiddenRendersNothing(t *testing.T) {
	d := NewDial(NewStyles(LightTheme()))
	if got := d.Render(0.5, false); got != "" {
		t.Errorf("hidden dial rendered %q", got)
	}
}

func TestDial_VisibleShowsPercent(t *testing.T) {
	d := NewDial(NewStyles(LightTheme()))

	out := d.Render(0.275, true)
	if !strings.Contains(out, "28%") {
		t.Errorf("expected rounded percentage in %q", out)
	}

	out = d.Render(2.0, true)
	if !strings.Contains(out, "100%") {
		t.Errorf("expected clamped percentage in %q", out)
	}
}
