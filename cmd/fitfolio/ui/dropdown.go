package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"fitfolio/internal/logging"
)

// DropdownOption is one entry in an exclusive-choice control.
type DropdownOption struct {
	Value string
	Label string
}

// Dropdown is an animated select control: a labeled trigger row that expands
// into an option list. It is either Closed or Open, never both. Choosing an
// option updates the selection and closes the list in the same transition;
// a mouse press outside the control's bounds dismisses it without touching
// the selection. The selection survives open/close cycles.
type Dropdown struct {
	label   string
	options []DropdownOption
	styles  Styles

	open      bool
	selected  int // -1 until a choice is made
	highlight int
	focused   bool

	// Screen bounds of the rendered control, set by the parent after layout
	// so mouse containment checks work. Zero bounds mean "not on screen".
	x, y, width int
}

// NewDropdown creates a closed dropdown with no selection.
func NewDropdown(label string, styles Styles, options ...DropdownOption) Dropdown {
	return Dropdown{
		label:    label,
		options:  options,
		styles:   styles,
		selected: -1,
		width:    28,
	}
}

// SetBounds records where the control sits on screen. The parent calls this
// after every layout pass; stale bounds would misroute mouse presses.
func (d *Dropdown) SetBounds(x, y, width int) {
	d.x = x
	d.y = y
	if width > 0 {
		d.width = width
	}
}

// Focus gives the control keyboard focus.
func (d *Dropdown) Focus() { d.focused = true }

// Blur removes keyboard focus and closes the list.
func (d *Dropdown) Blur() {
	d.focused = false
	d.open = false
}

// Focused reports whether the control has keyboard focus.
func (d Dropdown) Focused() bool { return d.focused }

// IsOpen reports whether the option list is expanded.
func (d Dropdown) IsOpen() bool { return d.open }

// Value returns the selected option's value, or "" when nothing is selected.
func (d Dropdown) Value() string {
	if d.selected < 0 || d.selected >= len(d.options) {
		return ""
	}
	return d.options[d.selected].Value
}

// Selected returns the selected option.
func (d Dropdown) Selected() (DropdownOption, bool) {
	if d.selected < 0 || d.selected >= len(d.options) {
		return DropdownOption{}, false
	}
	return d.options[d.selected], true
}

// Height returns the number of lines the control currently occupies.
func (d Dropdown) Height() int {
	if d.open {
		return 1 + len(d.options)
	}
	return 1
}

// contains reports whether a screen coordinate falls inside the control's
// current bounds, including the expanded option list.
func (d Dropdown) contains(x, y int) bool {
	return x >= d.x && x < d.x+d.width && y >= d.y && y < d.y+d.Height()
}

// toggle flips between Open and Closed. Opening seeds the highlight from the
// current selection so the list picks up where the user left it.
func (d Dropdown) toggle() Dropdown {
	d.open = !d.open
	if d.open {
		if d.selected >= 0 {
			d.highlight = d.selected
		} else {
			d.highlight = 0
		}
	}
	return d
}

// choose selects the option at i and closes the list as one transition.
func (d Dropdown) choose(i int) Dropdown {
	if i < 0 || i >= len(d.options) {
		return d
	}
	d.selected = i
	d.open = false
	logging.UIDebug("dropdown %q selected %q", d.label, d.options[i].Value)
	return d
}

// dismiss closes the list without touching the selection. No-op when the
// control is already closed.
func (d Dropdown) dismiss() Dropdown {
	d.open = false
	return d
}

// Update handles key and mouse input. Key input is only honored while the
// control is focused; mouse containment is checked unconditionally so an
// outside press always dismisses an open list, whatever has focus.
func (d Dropdown) Update(msg tea.Msg) (Dropdown, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !d.focused {
			return d, nil
		}
		switch msg.String() {
		case "enter", " ":
			if d.open {
				return d.choose(d.highlight), nil
			}
			return d.toggle(), nil
		case "esc":
			return d.dismiss(), nil
		case "up", "k":
			if d.open && d.highlight > 0 {
				d.highlight--
			}
		case "down", "j":
			if d.open && d.highlight < len(d.options)-1 {
				d.highlight++
			}
		}

	case tea.MouseMsg:
		if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
			return d, nil
		}
		if !d.contains(msg.X, msg.Y) {
			// Outside press: dismiss, selection unchanged.
			return d.dismiss(), nil
		}
		row := msg.Y - d.y
		if row == 0 {
			return d.toggle(), nil
		}
		if d.open {
			return d.choose(row - 1), nil
		}
	}

	return d, nil
}

// View renders the control at its configured width.
func (d Dropdown) View() string {
	var sb strings.Builder

	caret := "▾"
	if d.open {
		caret = "▴"
	}

	display := "Choose..."
	if opt, ok := d.Selected(); ok {
		display = opt.Label
	}

	labelStyle := d.styles.FormLabel
	if d.focused {
		labelStyle = d.styles.FormFocus
	}

	trigger := labelStyle.Render(d.label) + " " +
		d.styles.Body.Render(truncate(display, d.width-len(d.label)-4)) + " " + caret
	sb.WriteString(trigger)

	if d.open {
		for i, opt := range d.options {
			sb.WriteString("\n")
			if i == d.highlight {
				sb.WriteString(d.styles.OptionHover.Render(opt.Label))
			} else {
				sb.WriteString(d.styles.Option.Render(opt.Label))
			}
		}
	}

	return sb.String()
}

func truncate(s string, l int) string {
	if l < 4 {
		l = 4
	}
	if len(s) > l {
		return s[:l-3] + "..."
	}
	return s
}
