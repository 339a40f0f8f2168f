package page

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fitfolio/cmd/fitfolio/ui"
	"fitfolio/internal/scroll"
)

// contentIndent is the left gutter applied to every document line. The
// dropdown's x position is derived from it, so the two must stay in sync.
const contentIndent = 2

// renderDocument rebuilds the full scrollable document, records each
// section's top line into a fresh offset table, and hands the table to the
// tracker. Every layout change funnels through here: resize, content reload,
// form redraws, and dropdown expansion all shift section tops.
func (m *Model) renderDocument() {
	if !m.ready {
		return
	}

	width := m.layout.ContentWidth()
	tops := scroll.OffsetTable{}

	var doc strings.Builder
	line := 0

	write := func(id scroll.SectionID, block string) {
		tops[id] = line
		doc.WriteString(block)
		line += lipgloss.Height(block)
		gap := strings.Repeat("\n", ui.SectionGap+1)
		doc.WriteString(gap)
		line += ui.SectionGap
	}

	write(scroll.SectionHome, m.renderHero(width))
	write(scroll.SectionAbout, m.renderAbout(width))
	write(scroll.SectionResults, m.renderResults(width))
	write(scroll.SectionPrograms, m.renderPrograms(width))
	write(scroll.SectionTestimonials, m.renderTestimonials(width))

	contact, dropdownOffset := m.renderContact(width)
	tops[scroll.SectionContact] = line
	m.dropdownLine = line + dropdownOffset
	m.dropdownX = contentIndent
	doc.WriteString(contact)
	line += lipgloss.Height(contact)
	doc.WriteString(strings.Repeat("\n", ui.SectionGap+1))
	line += ui.SectionGap

	// Pad the tail so the closing section can scroll all the way to the top
	// edge. Without this a short final section would never become current.
	if minBottom := tops[scroll.SectionContact] + m.viewport.Height; line < minBottom {
		doc.WriteString(strings.Repeat("\n", minBottom-line))
	}

	indented := indent(doc.String(), contentIndent)
	m.tops = tops
	m.tracker.SetOracle(tops)

	offset := m.viewport.YOffset
	m.viewport.SetContent(indented)
	m.viewport.SetYOffset(offset)
}

// indent prefixes every line with n spaces.
func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderHero(width int) string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render(m.site.Hero.Headline))
	b.WriteString("\n")
	if m.site.Hero.Subhead != "" {
		b.WriteString(s.Subtitle.Width(width).Render(m.site.Hero.Subhead))
		b.WriteString("\n\n")
	}
	if m.site.Hero.CTA != "" {
		b.WriteString(s.Badge.Render(m.site.Hero.CTA))
		b.WriteString("  ")
		b.WriteString(s.Muted.Render("(press 6 to jump to the contact form)"))
		b.WriteString("\n")
	}
	if m.site.Tagline != "" {
		b.WriteString("\n")
		b.WriteString(s.Muted.Italic(true).Render(m.site.Tagline))
	}
	return b.String()
}

func (m Model) renderAbout(width int) string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.SectionTitle.Render(m.site.About.Heading))
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(m.markdown(m.site.About.Bio), "\n"))
	b.WriteString("\n")

	if len(m.site.About.Credentials) > 0 {
		b.WriteString("\n")
		for _, c := range m.site.About.Credentials {
			b.WriteString(s.Body.Render("  ✓ " + c))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderResults(width int) string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.SectionTitle.Render("Results"))
	b.WriteString("\n")

	n := len(m.site.Results)
	if n == 0 {
		return b.String() + s.Muted.Render("Transformations coming soon.")
	}

	cardWidth := m.layout.CardWidth(n)
	cards := make([]string, 0, n)
	for _, tr := range m.site.Results {
		var c strings.Builder
		c.WriteString(s.Bold.Render(tr.Client))
		c.WriteString("\n")
		c.WriteString(s.Muted.Render(tr.Duration))
		c.WriteString("\n\n")
		c.WriteString(s.Body.Render(tr.Before))
		c.WriteString("\n")
		c.WriteString(s.Price.Render("→ " + tr.After))
		if tr.Note != "" {
			c.WriteString("\n\n")
			c.WriteString(s.Muted.Italic(true).Render(tr.Note))
		}
		cards = append(cards, s.Card.Width(cardWidth).Render(c.String()))
	}

	if m.layout.IsCompact {
		b.WriteString(strings.Join(cards, "\n"))
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, interleave(cards, strings.Repeat(" ", ui.CardGap))...))
	}
	return b.String()
}

func (m Model) renderPrograms(width int) string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.SectionTitle.Render("Programs"))
	b.WriteString("\n")

	n := len(m.site.Programs)
	cardWidth := m.layout.CardWidth(n)
	cards := make([]string, 0, n)
	for _, p := range m.site.Programs {
		var c strings.Builder
		c.WriteString(s.Bold.Render(p.Name))
		if p.Highlight {
			c.WriteString(" ")
			c.WriteString(s.Badge.Render("POPULAR"))
		}
		c.WriteString("\n")
		c.WriteString(s.Price.Render(p.Price))
		if p.Period != "" {
			c.WriteString(s.Muted.Render(" / " + p.Period))
		}
		c.WriteString("\n\n")
		for _, f := range p.Features {
			c.WriteString(s.Body.Render("• " + f))
			c.WriteString("\n")
		}
		style := s.Card
		if p.Highlight {
			style = s.CardActive
		}
		cards = append(cards, style.Width(cardWidth).Render(strings.TrimRight(c.String(), "\n")))
	}

	if m.layout.IsCompact {
		b.WriteString(strings.Join(cards, "\n"))
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, interleave(cards, strings.Repeat(" ", ui.CardGap))...))
	}
	return b.String()
}

func (m Model) renderTestimonials(width int) string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.SectionTitle.Render("Testimonials"))
	b.WriteString("\n")

	for i, t := range m.site.Testimonials {
		if i > 0 {
			b.WriteString("\n")
		}
		quote := strings.TrimRight(m.markdown(t.Quote), "\n")
		b.WriteString(s.Quote.Width(width - 4).Render(quote))
		b.WriteString("\n")
		attribution := "— " + t.Author
		if t.Detail != "" {
			attribution += ", " + t.Detail
		}
		b.WriteString(s.Muted.Render(attribution))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderContact returns the contact section and the line offset of the goal
// dropdown within it.
func (m Model) renderContact(width int) (string, int) {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.SectionTitle.Render(m.site.Contact.Heading))
	b.WriteString("\n")
	if m.site.Contact.Blurb != "" {
		b.WriteString(s.Body.Width(width).Render(m.site.Contact.Blurb))
		b.WriteString("\n\n")
	}

	b.WriteString(s.FormLabel.Render("Email:"))
	b.WriteString(" " + s.Body.Render(m.site.Contact.Email))
	if m.site.Contact.Phone != "" {
		b.WriteString("   " + s.FormLabel.Render("Phone:"))
		b.WriteString(" " + s.Body.Render(m.site.Contact.Phone))
	}
	b.WriteString("\n\n")

	label := func(focused bool, text string) string {
		if focused {
			return s.FormFocus.Render(text)
		}
		return s.FormLabel.Render(text)
	}

	b.WriteString(label(m.focus == focusName, "Name:"))
	b.WriteString("  " + m.nameInput.View())
	b.WriteString("\n")
	b.WriteString(label(m.focus == focusEmail, "Email:"))
	b.WriteString(" " + m.email.View())
	b.WriteString("\n")

	// The dropdown starts on the line right after the head block, which ends
	// in a newline, so its offset is the head's newline count.
	head := b.String()
	dropdownOffset := strings.Count(head, "\n")

	b.WriteString(m.dropdown.View())
	b.WriteString("\n")
	b.WriteString(label(m.focus == focusMessage, "Message:"))
	b.WriteString("\n")
	b.WriteString(m.message.View())
	b.WriteString("\n\n")
	b.WriteString(s.Muted.Render(fmt.Sprintf("tab: next field • enquiry ref %s", shortID(m.sessionID))))

	return b.String(), dropdownOffset
}

// shortID trims a session UUID to its leading group for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// interleave joins blocks with a separator for horizontal layout.
func interleave(blocks []string, sep string) []string {
	out := make([]string, 0, len(blocks)*2-1)
	for i, b := range blocks {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, b)
	}
	return out
}
