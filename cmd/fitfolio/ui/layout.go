// Package ui layout constants for consistent spacing and dimensions.
package ui

// Layout constants for the page chrome and section sizing.
const (
	// Page chrome
	HeaderHeight = 2 // Nav bar plus divider
	FooterHeight = 2 // Key hints plus divider

	// Viewport padding
	ViewportHorizontalPadding = 4

	// Section spacing
	SectionGap    = 2 // Blank lines between sections
	SectionIndent = 2
	CardGap       = 2 // Gap between cards in a row

	// Floating progress dial
	DialWidth = 8

	// Responsive breakpoints
	MinimumTerminalWidth  = 60
	MinimumTerminalHeight = 16
	CompactModeWidth      = 90

	// Content widths
	MaxContentWidth = 100
	MinContentWidth = 40
)

// LayoutConfig provides computed layout dimensions based on terminal size.
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	IsCompact      bool
}

// NewLayoutConfig creates a layout configuration for the given terminal size.
func NewLayoutConfig(width, height int) LayoutConfig {
	return LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		IsCompact:      width < CompactModeWidth,
	}
}

// ContentWidth returns the usable content width for the page column.
func (l LayoutConfig) ContentWidth() int {
	w := l.TerminalWidth - ViewportHorizontalPadding
	if w > MaxContentWidth {
		w = MaxContentWidth
	}
	if w < MinContentWidth {
		w = MinContentWidth
	}
	return w
}

// ViewportHeight returns the scrollable document height between the
// persistent header and the footer.
func (l LayoutConfig) ViewportHeight() int {
	h := l.TerminalHeight - HeaderHeight - FooterHeight
	if h < 1 {
		h = 1
	}
	return h
}

// CardWidth splits the content column into n cards with gaps.
func (l LayoutConfig) CardWidth(n int) int {
	if n < 1 {
		n = 1
	}
	w := (l.ContentWidth() - (n-1)*CardGap) / n
	if w < 10 {
		w = 10
	}
	return w
}
