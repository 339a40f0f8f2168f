// Package page is the Bubble Tea shell that presents the site as one tall
// scrollable document. It owns the viewport, the persistent header and
// footer, the floating progress dial, and the contact form controls, and it
// drives the scroll tracker through its invalidate/recompute protocol.
package page

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"

	"fitfolio/cmd/fitfolio/config"
	"fitfolio/cmd/fitfolio/ui"
	"fitfolio/internal/content"
	"fitfolio/internal/logging"
	"fitfolio/internal/scroll"
)

// Focus targets, cycled with tab. focusPage means keys drive the viewport.
const (
	focusPage = iota
	focusName
	focusEmail
	focusGoal
	focusMessage
	focusCount
)

// frameMsg is the single scheduled recomputation tick. The tracker hands out
// at most one of these at a time; scroll events arriving while it is in
// flight are absorbed.
type frameMsg struct{}

// ContentReloadedMsg carries freshly parsed site content from the file
// watcher into the update loop.
type ContentReloadedMsg struct {
	Site content.Site
}

// Model is the root page model.
type Model struct {
	cfg    config.Config
	site   content.Site
	styles ui.Styles
	layout ui.LayoutConfig

	viewport viewport.Model
	renderer *glamour.TermRenderer

	registry scroll.Registry
	tracker  *scroll.Tracker
	tops     scroll.OffsetTable
	progress scroll.ProgressState

	dial      ui.Dial
	dropdown  ui.Dropdown
	nameInput textinput.Model
	email     textinput.Model
	message   textarea.Model
	focus     int

	// Document position of the contact form's dropdown, recorded during
	// rendering so mouse presses can be mapped to screen bounds.
	dropdownLine int
	dropdownX    int

	width     int
	height    int
	ready     bool
	sessionID string
}

// New creates the page model for the given content.
func New(cfg config.Config, site content.Site) Model {
	styles := ui.NewStyles(ui.ThemeByName(cfg.Theme))
	registry := scroll.DefaultRegistry()

	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 64
	name.Width = 32

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 128
	email.Width = 32

	message := textarea.New()
	message.Placeholder = "Tell me where you're starting from..."
	message.SetWidth(48)
	message.SetHeight(3)
	message.ShowLineNumbers = false

	m := Model{
		cfg:       cfg,
		site:      site,
		styles:    styles,
		registry:  registry,
		tops:      scroll.OffsetTable{},
		dial:      ui.NewDial(styles),
		nameInput: name,
		email:     email,
		message:   message,
		sessionID: uuid.NewString(),
	}
	m.tracker = scroll.NewTracker(registry, m.tops)
	m.dropdown = m.buildGoalDropdown()
	return m
}

// buildGoalDropdown creates the training-goal select from the contact goals.
func (m Model) buildGoalDropdown() ui.Dropdown {
	goals := m.site.Contact.ParsedGoals()
	options := make([]ui.DropdownOption, 0, len(goals))
	for _, g := range goals {
		options = append(options, ui.DropdownOption{Value: g.Value, Label: g.Label})
	}
	return ui.NewDropdown("Goal:", m.styles, options...)
}

// newRenderer builds a markdown renderer for the current theme and width.
func (m Model) newRenderer(width int) *glamour.TermRenderer {
	style := "light"
	if m.styles.Theme.IsDark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logging.UI("markdown renderer unavailable: %v", err)
		return nil
	}
	return r
}

// markdown renders md through glamour, falling back to the raw text when the
// renderer is unavailable.
func (m Model) markdown(md string) string {
	if m.renderer == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

// metrics snapshots the viewport into tracker inputs.
func (m Model) metrics() scroll.Metrics {
	return scroll.Metrics{
		ScrollY:        m.viewport.YOffset,
		ViewportHeight: m.viewport.Height,
		DocHeight:      m.viewport.TotalLineCount(),
	}
}

// invalidate marks the scroll state dirty and returns the frame command when
// the tracker granted the pending slot, nil otherwise.
func (m *Model) invalidate() tea.Cmd {
	if !m.tracker.Invalidate() {
		return nil
	}
	return func() tea.Msg { return frameMsg{} }
}

// Tracker exposes the scroll tracker for teardown.
func (m Model) Tracker() *scroll.Tracker { return m.tracker }

// Init starts the page.
func (m Model) Init() tea.Cmd {
	logging.UI("page session %s started", m.sessionID)
	return nil
}
