package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goalDropdown() Dropdown {
	d := NewDropdown("Goal:", NewStyles(LightTheme()),
		DropdownOption{Value: "strength", Label: "Get stronger"},
		DropdownOption{Value: "hypertrophy", Label: "Build muscle"},
		DropdownOption{Value: "fat-loss", Label: "Lose fat"},
		DropdownOption{Value: "mobility", Label: "Move better"},
	)
	d.SetBounds(10, 5, 28)
	d.Focus()
	return d
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestDropdown_StartsClosedWithNoSelection(t *testing.T) {
	d := goalDropdown()

	assert.False(t, d.IsOpen())
	assert.Equal(t, "", d.Value())
	assert.Equal(t, 1, d.Height())
}

func TestDropdown_ToggleOpensAndCloses(t *testing.T) {
	d := goalDropdown()

	d, _ = d.Update(keyMsg("enter"))
	assert.True(t, d.IsOpen())
	assert.Equal(t, 5, d.Height(), "open control shows all four options")

	d, _ = d.Update(keyMsg("enter"))
	assert.False(t, d.IsOpen(), "enter on the highlight selects and closes")
}

func TestDropdown_ChoosingOptionSelectsAndClosesAtomically(t *testing.T) {
	d := goalDropdown()

	d, _ = d.Update(keyMsg("enter"))
	require.True(t, d.IsOpen())

	d, _ = d.Update(keyMsg("down")) // highlight: hypertrophy
	d, _ = d.Update(keyMsg("enter"))

	assert.False(t, d.IsOpen())
	assert.Equal(t, "hypertrophy", d.Value())
}

func TestDropdown_MouseChoose(t *testing.T) {
	d := goalDropdown()

	// Press the trigger row to open, then the third option row.
	d, _ = d.Update(press(12, 5))
	require.True(t, d.IsOpen())

	d, _ = d.Update(press(12, 8))
	assert.False(t, d.IsOpen())
	assert.Equal(t, "fat-loss", d.Value())
}

func TestDropdown_OutsidePressDismissesWithoutChangingSelection(t *testing.T) {
	d := goalDropdown()

	// Select hypertrophy first.
	d, _ = d.Update(keyMsg("enter"))
	d, _ = d.Update(keyMsg("down"))
	d, _ = d.Update(keyMsg("enter"))
	require.Equal(t, "hypertrophy", d.Value())

	// Re-open, then press well outside the bounds.
	d, _ = d.Update(keyMsg("enter"))
	require.True(t, d.IsOpen())

	d, _ = d.Update(press(0, 0))
	assert.False(t, d.IsOpen())
	assert.Equal(t, "hypertrophy", d.Value(), "dismissal must not touch the selection")
}

func TestDropdown_OutsidePressWhileClosedIsNoOp(t *testing.T) {
	d := goalDropdown()

	d, _ = d.Update(press(0, 0))
	assert.False(t, d.IsOpen())
	assert.Equal(t, "", d.Value())
}

func TestDropdown_EscDismisses(t *testing.T) {
	d := goalDropdown()

	d, _ = d.Update(keyMsg("enter"))
	require.True(t, d.IsOpen())

	d, _ = d.Update(keyMsg("esc"))
	assert.False(t, d.IsOpen())
}

func TestDropdown_HighlightClampsAtEnds(t *testing.T) {
	d := goalDropdown()
	d, _ = d.Update(keyMsg("enter"))

	for i := 0; i < 10; i++ {
		d, _ = d.Update(keyMsg("down"))
	}
	d, _ = d.Update(keyMsg("enter"))
	assert.Equal(t, "mobility", d.Value(), "highlight must clamp at the last option")

	d, _ = d.Update(keyMsg("enter"))
	for i := 0; i < 10; i++ {
		d, _ = d.Update(keyMsg("up"))
	}
	d, _ = d.Update(keyMsg("enter"))
	assert.Equal(t, "strength", d.Value(), "highlight must clamp at the first option")
}

func TestDropdown_ReopenSeedsHighlightFromSelection(t *testing.T) {
	d := goalDropdown()

	// Select the second option, reopen, confirm the highlight sits on it.
	d, _ = d.Update(keyMsg("enter"))
	d, _ = d.Update(keyMsg("down"))
	d, _ = d.Update(keyMsg("enter"))

	d, _ = d.Update(keyMsg("enter"))
	d, _ = d.Update(keyMsg("enter"))
	assert.Equal(t, "hypertrophy", d.Value())
}

func TestDropdown_IgnoresKeysWhenBlurred(t *testing.T) {
	d := goalDropdown()
	d.Blur()

	d, _ = d.Update(keyMsg("enter"))
	assert.False(t, d.IsOpen())
}

func TestDropdown_BlurCloses(t *testing.T) {
	d := goalDropdown()
	d, _ = d.Update(keyMsg("enter"))
	require.True(t, d.IsOpen())

	d.Blur()
	assert.False(t, d.IsOpen())
}

func TestDropdown_ViewShowsOptionsOnlyWhenOpen(t *testing.T) {
	d := goalDropdown()

	closed := d.View()
	assert.False(t, strings.Contains(closed, "Build muscle"))
	assert.Equal(t, 1, strings.Count(closed, "\n")+1, "closed control is one line")

	d, _ = d.Update(keyMsg("enter"))
	open := d.View()
	assert.True(t, strings.Contains(open, "Build muscle"))
	assert.True(t, strings.Contains(open, "Move better"))
}
