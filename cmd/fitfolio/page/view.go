package page

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fitfolio/internal/scroll"
)

// Display titles for the nav bar, keyed by section.
var navTitles = map[scroll.SectionID]string{
	scroll.SectionHome:         "Home",
	scroll.SectionAbout:        "About",
	scroll.SectionResults:      "Results",
	scroll.SectionPrograms:     "Programs",
	scroll.SectionTestimonials: "Testimonials",
	scroll.SectionContact:      "Contact",
}

// View renders the full page: persistent header, the scrollable document,
// and the footer with the floating progress dial.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	return m.renderHeader() + "\n" +
		m.viewport.View() + "\n" +
		m.renderFooter()
}

// renderHeader draws the nav bar with the current section highlighted and
// the address readout for the current anchor.
func (m Model) renderHeader() string {
	s := m.styles

	var nav strings.Builder
	nav.WriteString(s.Brand.Render(m.site.Brand))
	nav.WriteString("  ")
	for i, id := range m.registry.IDs() {
		title := navTitles[id]
		if title == "" {
			title = string(id)
		}
		if i == m.progress.CurrentIndex {
			nav.WriteString(s.NavActive.Render(title))
		} else {
			nav.WriteString(s.NavLink.Render(title))
		}
	}

	address := s.Address.Render("/" + m.registry.Anchor(m.registry.At(m.progress.CurrentIndex)))
	bar := nav.String()
	gap := m.width - lipgloss.Width(bar) - lipgloss.Width(address) - 4
	if gap > 0 {
		bar += strings.Repeat(" ", gap) + address
	}

	return s.Header.Width(m.width).Render(bar) + "\n" + s.RenderDivider(m.width)
}

// navHit maps a header-row x coordinate to the nav link under it. The spans
// mirror renderHeader's layout: two columns of header padding, the brand,
// two spaces, then the styled titles back to back.
func (m Model) navHit(x int) (scroll.SectionID, bool) {
	pos := 2 + lipgloss.Width(m.styles.Brand.Render(m.site.Brand)) + 2
	for _, id := range m.registry.IDs() {
		title := navTitles[id]
		if title == "" {
			title = string(id)
		}
		w := lipgloss.Width(m.styles.NavLink.Render(title))
		if x >= pos && x < pos+w {
			return id, true
		}
		pos += w
	}
	return "", false
}

// renderFooter draws the key hints with the progress dial on the right. The
// dial only appears once the reader has scrolled past the opening section.
func (m Model) renderFooter() string {
	s := m.styles

	hints := s.Footer.Render("↑/↓ scroll • 1-6 jump • n/p section • tab form • q quit")
	dial := m.dial.Render(m.progress.Progress, m.progress.CurrentIndex >= 1)

	line := hints
	gap := m.width - lipgloss.Width(hints) - lipgloss.Width(dial) - 2
	if dial != "" && gap > 0 {
		line = hints + strings.Repeat(" ", gap) + dial
	}

	return s.RenderDivider(m.width) + "\n" + line
}
