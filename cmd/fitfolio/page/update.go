package page

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"fitfolio/cmd/fitfolio/ui"
	"fitfolio/internal/logging"
	"fitfolio/internal/scroll"
)

// Update routes messages to the viewport, the form controls, and the scroll
// tracker.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case frameMsg:
		m.progress = m.tracker.Recompute(m.metrics())
		return m, nil

	case ContentReloadedMsg:
		m.site = msg.Site
		m.dropdown = m.buildGoalDropdown()
		m.renderDocument()
		logging.Content("content reloaded into session %s", m.sessionID)
		return m, m.invalidate()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout = ui.NewLayoutConfig(msg.Width, msg.Height)

	if !m.ready {
		m.viewport = viewport.New(msg.Width, m.layout.ViewportHeight())
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = m.layout.ViewportHeight()
	}

	m.renderer = m.newRenderer(m.layout.ContentWidth())
	m.renderDocument()

	// A resize moves every section top, so the current state is stale even
	// when the scroll offset did not change.
	return m, m.invalidate()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.tracker.Close()
		return m, tea.Quit
	case "tab":
		return m.cycleFocus(1)
	case "shift+tab":
		return m.cycleFocus(-1)
	}

	if m.focus == focusPage {
		return m.handlePageKey(msg)
	}
	return m.handleFormKey(msg)
}

// handlePageKey covers navigation while no form control has focus.
func (m Model) handlePageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.tracker.Close()
		return m, tea.Quit

	case "1", "2", "3", "4", "5", "6":
		i := int(msg.Runes[0] - '1')
		return m.navigateTo(m.registry.Anchor(m.registry.At(i)))

	case "g", "home":
		m.viewport.GotoTop()
		return m, m.invalidate()

	case "G", "end":
		m.viewport.GotoBottom()
		return m, m.invalidate()

	case "n":
		next := m.progress.CurrentIndex + 1
		if next < m.registry.Len() {
			return m.navigateTo(m.registry.Anchor(m.registry.At(next)))
		}
		return m, nil

	case "p":
		prev := m.progress.CurrentIndex - 1
		if prev >= 0 {
			return m.navigateTo(m.registry.Anchor(m.registry.At(prev)))
		}
		return m, nil
	}

	before := m.viewport.YOffset
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	if m.viewport.YOffset != before {
		return m, tea.Batch(cmd, m.invalidate())
	}
	return m, cmd
}

// handleFormKey routes keys to the focused contact-form control.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" && m.focus != focusGoal {
		return m.setFocus(focusPage)
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case focusEmail:
		m.email, cmd = m.email.Update(msg)
	case focusGoal:
		wasOpen := m.dropdown.IsOpen()
		m.dropdown, cmd = m.dropdown.Update(msg)
		if msg.String() == "esc" && !wasOpen {
			// esc on a closed dropdown leaves the form.
			return m.setFocus(focusPage)
		}
	case focusMessage:
		m.message, cmd = m.message.Update(msg)
	}

	m.renderDocument()
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Map the dropdown's document position to screen coordinates for this
	// event. The control scrolls with the page, so bounds are per-frame.
	m.dropdown.SetBounds(
		m.dropdownX,
		ui.HeaderHeight+m.dropdownLine-m.viewport.YOffset,
		0,
	)

	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
		// Header clicks: dismiss any open dropdown (the press is outside it
		// by construction), then jump to the clicked nav link.
		m.dropdown, _ = m.dropdown.Update(msg)
		if id, ok := m.navHit(msg.X); ok {
			return m.navigateTo(m.registry.Anchor(id))
		}
		return m, nil
	}

	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
		wasOpen := m.dropdown.IsOpen()
		var cmd tea.Cmd
		m.dropdown, cmd = m.dropdown.Update(msg)
		if m.dropdown.IsOpen() != wasOpen {
			m.renderDocument()
			return m, tea.Batch(cmd, m.invalidate())
		}
		return m, cmd
	}

	before := m.viewport.YOffset
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	if m.viewport.YOffset != before {
		return m, tea.Batch(cmd, m.invalidate())
	}
	return m, cmd
}

// navigateTo scrolls the viewport so the named section's top sits at the top
// edge. Unknown anchors and unresolved sections are no-ops.
func (m Model) navigateTo(anchor string) (tea.Model, tea.Cmd) {
	id, ok := m.registry.Resolve(anchor)
	if !ok {
		return m, nil
	}
	top, ok := m.tops.SectionTop(id)
	if !ok {
		return m, nil
	}
	m.viewport.SetYOffset(top)
	logging.UIDebug("navigate %s -> line %d", anchor, top)
	return m, m.invalidate()
}

// cycleFocus moves keyboard focus between the page and the form controls.
func (m Model) cycleFocus(dir int) (tea.Model, tea.Cmd) {
	next := (m.focus + dir + focusCount) % focusCount
	return m.setFocus(next)
}

func (m Model) setFocus(target int) (tea.Model, tea.Cmd) {
	m.nameInput.Blur()
	m.email.Blur()
	m.message.Blur()
	m.dropdown.Blur()

	m.focus = target
	var cmd tea.Cmd
	switch target {
	case focusName:
		cmd = m.nameInput.Focus()
	case focusEmail:
		cmd = m.email.Focus()
	case focusGoal:
		m.dropdown.Focus()
	case focusMessage:
		cmd = m.message.Focus()
	}

	// Focusing a form control pulls the contact section into view.
	if target != focusPage {
		if top, ok := m.tops.SectionTop(scroll.SectionContact); ok {
			m.viewport.SetYOffset(top)
		}
	}

	m.renderDocument()
	return m, tea.Batch(cmd, m.invalidate())
}
