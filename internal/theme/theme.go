package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	PanelBorder   *lipgloss.Style
	FocusedBorder *lipgloss.Style
	PanelTitle    *lipgloss.Style
	FocusedTitle  *lipgloss.Style

	Item                  *lipgloss.Style
	SelectedItem          *lipgloss.Style
	SelectedItemUnfocused *lipgloss.Style
	Placeholder           *lipgloss.Style

	DetailHeader *lipgloss.Style
	DetailBody   *lipgloss.Style
	CaptureBody  *lipgloss.Style

	MinimapBorder         *lipgloss.Style
	MinimapLabel          *lipgloss.Style
	MinimapSelectedBorder *lipgloss.Style
	MinimapSelectedLabel  *lipgloss.Style

	StatusInfo  *lipgloss.Style
	StatusError *lipgloss.Style
	StatusHint  *lipgloss.Style

	OverlayBorder *lipgloss.Style
	OverlayTitle  *lipgloss.Style
	OverlayBody   *lipgloss.Style
	HelpSection   *lipgloss.Style
	HelpKey       *lipgloss.Style
}

var defaultStyles = Styles{
	PanelBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	FocusedBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
	),
	PanelTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	FocusedTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("37")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	SelectedItemUnfocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	DetailHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("37")).Bold(true),
	),
	DetailBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	CaptureBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	MinimapBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	MinimapLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	MinimapSelectedBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
	),
	MinimapSelectedLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("37")).Bold(true),
	),
	StatusInfo: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	StatusError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	StatusHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	OverlayBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
	),
	OverlayTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("37")).Bold(true),
	),
	OverlayBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	HelpSection: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("37")).Bold(true),
	),
	HelpKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
