// Package ui provides the visual styling and reusable view components for
// the fitfolio page. Colors follow the studio brand palette with light/dark
// mode support.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Brand color palette.
var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#f7f5f2") // Warm off-white
	LightForeground = lipgloss.Color("#1d1a17") // Near-black
	LightPrimary    = lipgloss.Color("#c2410c") // Burnt orange
	LightAccent     = lipgloss.Color("#0f766e") // Deep teal
	LightSecondary  = lipgloss.Color("#e7e2db")
	LightMuted      = lipgloss.Color("#8a8378")
	LightBorder     = lipgloss.Color("#d9d2c7")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#14110e")
	DarkForeground = lipgloss.Color("#ede8e1")
	DarkPrimary    = lipgloss.Color("#fb923c") // Orange, lifted for contrast
	DarkAccent     = lipgloss.Color("#2dd4bf") // Teal, lifted
	DarkSecondary  = lipgloss.Color("#241f1a")
	DarkMuted      = lipgloss.Color("#7d766c")
	DarkBorder     = lipgloss.Color("#3a332c")
	DarkCard       = lipgloss.Color("#1d1915")
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Secondary:  LightSecondary,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Secondary:  DarkSecondary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// DetectTheme auto-detects based on the terminal or returns light mode.
func DetectTheme() Theme {
	// COLORFGBG is usually "foreground;background". ANSI backgrounds 0-6
	// and 8 are dark.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("FITFOLIO_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// ThemeByName resolves a configured theme name, falling back to detection.
func ThemeByName(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	default:
		return DetectTheme()
	}
}

// Styles holds all the styled components for the page.
type Styles struct {
	Theme Theme

	// Layout
	App    lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style

	// Navigation
	Brand     lipgloss.Style
	NavLink   lipgloss.Style
	NavActive lipgloss.Style
	Address   lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Section chrome
	SectionTitle lipgloss.Style
	Card         lipgloss.Style
	CardActive   lipgloss.Style
	Price        lipgloss.Style
	Quote        lipgloss.Style
	Badge        lipgloss.Style

	// Form
	FormLabel   lipgloss.Style
	FormFocus   lipgloss.Style
	Option      lipgloss.Style
	OptionHover lipgloss.Style

	// Indicator
	Dial        lipgloss.Style
	DialVisible lipgloss.Style

	Divider lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		App: lipgloss.NewStyle().
			Background(theme.Background).
			Foreground(theme.Foreground),

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Brand: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true),

		NavLink: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe4d1")).
			Padding(0, 1),

		NavActive: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Background(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		Address: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffd7bd")).
			Italic(true),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		SectionTitle: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Underline(true).
			MarginBottom(1),

		Card: lipgloss.NewStyle().
			Background(theme.Card).
			Foreground(theme.Foreground).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		CardActive: lipgloss.NewStyle().
			Background(theme.Card).
			Foreground(theme.Foreground).
			Padding(1, 2).
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Primary),

		Price: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Quote: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			PaddingLeft(2).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(theme.Accent),

		Badge: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		FormLabel: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Bold(true),

		FormFocus: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Option: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Padding(0, 1),

		OptionHover: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(theme.Primary).
			Padding(0, 1),

		Dial: lipgloss.NewStyle().
			Foreground(theme.Muted),

		DialVisible: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),
	}
}

// DefaultStyles returns styles with the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// RenderDivider returns a horizontal divider of the given width.
func (s Styles) RenderDivider(width int) string {
	if width < 1 {
		return ""
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
