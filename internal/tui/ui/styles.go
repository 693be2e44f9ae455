package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Content area
	Content   lipgloss.Style
	ViewTitle lipgloss.Style
	DayHeader lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Board grid
	TaskSelected  lipgloss.Style
	TaskNormal    lipgloss.Style
	TaskID        lipgloss.Style
	TaskOrphan    lipgloss.Style
	SegmentLogged lipgloss.Style
	SegmentFree   lipgloss.Style
	SegmentCursor lipgloss.Style
	SegmentNow    lipgloss.Style
	TotalCol      lipgloss.Style

	// Timer
	TimerRunning lipgloss.Style
	TimerElapsed lipgloss.Style

	// Report
	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	// Input
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Dialog
	Dialog lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	// Color palette
	primary := lipgloss.Color("99")     // Purple
	secondary := lipgloss.Color("39")   // Cyan
	accent := lipgloss.Color("212")     // Pink
	muted := lipgloss.Color("240")      // Gray
	success := lipgloss.Color("82")     // Green
	warning := lipgloss.Color("214")    // Orange
	errorColor := lipgloss.Color("196") // Red
	fg := lipgloss.Color("252")
	bg := lipgloss.Color("236")

	return buildStyles(primary, secondary, accent, muted, success, warning, errorColor, fg, bg)
}

// NewStylesFromRegistry creates a Styles struct using colors from a
// bubbletint registry. Theme colors map to semantic board elements:
// - Primary: Purple (tabs, titles, the selected task)
// - Secondary: Cyan (task IDs, keys)
// - Accent: BrightPurple (totals, elapsed time, the segment cursor)
// - Muted: BrightBlack (free segments, labels)
// - Success/Warning/Error: Green/Yellow/Red
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return buildStyles(
		r.Purple(),
		r.Cyan(),
		r.BrightPurple(),
		r.BrightBlack(),
		r.Green(),
		r.Yellow(),
		r.Red(),
		r.Fg(),
		r.Bg(),
	)
}

func buildStyles(primary, secondary, accent, muted, success, warning, errorColor, fg, bg lipgloss.TerminalColor) Styles {
	return Styles{
		// Base styles
		App: lipgloss.NewStyle().Padding(1, 2),

		// Tab bar
		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),

		// Content area
		Content: lipgloss.NewStyle().
			Padding(0, 1),
		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),
		DayHeader: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),

		// Status bar
		StatusBar: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		// Board grid
		TaskSelected: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		TaskNormal: lipgloss.NewStyle().
			Foreground(fg),
		TaskID: lipgloss.NewStyle().
			Foreground(secondary).
			Width(5),
		TaskOrphan: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
		SegmentLogged: lipgloss.NewStyle().
			Foreground(success),
		SegmentFree: lipgloss.NewStyle().
			Foreground(muted),
		SegmentCursor: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Underline(true),
		SegmentNow: lipgloss.NewStyle().
			Foreground(warning),
		TotalCol: lipgloss.NewStyle().
			Foreground(accent).
			Width(7).
			Align(lipgloss.Right),

		// Timer
		TimerRunning: lipgloss.NewStyle().
			Foreground(success).
			Bold(true),
		TimerElapsed: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		// Report
		StatLabel: lipgloss.NewStyle().
			Foreground(muted).
			Width(20),
		StatValue: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true),

		// Input
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		// Dialog
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Width(50),

		// Errors and warnings
		Error: lipgloss.NewStyle().
			Foreground(errorColor),
		Warning: lipgloss.NewStyle().
			Foreground(warning),
		Success: lipgloss.NewStyle().
			Foreground(success),
	}
}
