package ui

import "fmt"

// Dial is the floating scroll-progress indicator: a small circular gauge
// whose fill follows the page progress. It stays hidden while the reader is
// still in the opening section and appears once they have scrolled past it.
type Dial struct {
	styles Styles
}

// NewDial creates a progress dial.
func NewDial(styles Styles) Dial {
	return Dial{styles: styles}
}

// Quarter-fill glyphs, empty to full.
var dialGlyphs = []rune{'○', '◔', '◑', '◕', '●'}

// Glyph maps a progress value in [0,1] to its fill glyph.
func Glyph(progress float64) rune {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	idx := int(progress*float64(len(dialGlyphs)-1) + 0.5)
	return dialGlyphs[idx]
}

// Render draws the dial for the given progress. An invisible dial renders as
// an empty string so the layout collapses instead of leaving a ghost box.
func (d Dial) Render(progress float64, visible bool) string {
	if !visible {
		return ""
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return d.styles.DialVisible.Render(fmt.Sprintf("%c %3.0f%%", Glyph(progress), progress*100))
}
