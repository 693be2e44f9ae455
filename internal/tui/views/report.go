package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/solrun/kvart/internal/service"
	"github.com/solrun/kvart/internal/timeutil"
	"github.com/solrun/kvart/internal/tui/ui"
)

// ReportModel is the model for the report view
type ReportModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width    int
	height   int
	weekMode bool
}

// NewReportModel creates a new report view model
func NewReportModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) ReportModel {
	return ReportModel{
		services: services,
		styles:   styles,
		keys:     keys,
	}
}

// Init implements tea.Model
func (m ReportModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ReportModel) Update(msg tea.Msg) (ReportModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Week):
			m.weekMode = !m.weekMode
			return m, nil
		case key.Matches(msg, m.keys.PrevDay):
			_ = m.services.View.Shift(-1)
			return m, announceDayChange
		case key.Matches(msg, m.keys.NextDay):
			_ = m.services.View.Shift(1)
			return m, announceDayChange
		case key.Matches(msg, m.keys.Today):
			_ = m.services.View.Select(timeutil.Today())
			return m, announceDayChange
		}

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m ReportModel) View() string {
	if m.weekMode {
		return m.viewWeek()
	}
	return m.viewDay()
}

// viewDay renders per-task totals for the viewed day
func (m ReportModel) viewDay() string {
	var b strings.Builder

	day := m.services.View.Selected()
	b.WriteString(m.styles.ViewTitle.Render("Report"))
	b.WriteString("\n")
	b.WriteString(m.styles.DayHeader.Render(day.FormatLong()))
	b.WriteString("\n\n")

	totals, dayTotal := m.services.Ledger.Totals()
	if len(totals) == 0 {
		b.WriteString(m.styles.StatusHelp.Render("Nothing tracked"))
		return b.String()
	}

	for _, tt := range totals {
		label := fmt.Sprintf("[%d] %s", tt.Row.ID, tt.Row.Description)
		style := m.styles.StatValue
		if tt.Row.Orphan {
			style = m.styles.TaskOrphan
		}
		b.WriteString(fmt.Sprintf("%-34s %s\n",
			style.Render(label),
			m.styles.TotalCol.Render(tt.Formatted())))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Total:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(service.FormatMinutes(dayTotal)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.StatusHelp.Render("w week view  [/] change day  t today"))

	return b.String()
}

// viewWeek renders a line per day of the viewed week
func (m ReportModel) viewWeek() string {
	var b strings.Builder

	cfg := m.services.Config.Get()
	start := timeutil.StartOfWeek(m.services.View.Selected(), cfg.WeekStartDay)

	b.WriteString(m.styles.ViewTitle.Render("Report"))
	b.WriteString("\n")
	b.WriteString(m.styles.DayHeader.Render(
		fmt.Sprintf("Week %s - %s", start.Format(), start.AddDays(6).Format())))
	b.WriteString("\n\n")

	weekTotal := 0
	for n := 0; n < 7; n++ {
		day := start.AddDays(n)
		_, dayTotal := m.services.Ledger.TotalsForDate(day)
		weekTotal += dayTotal

		style := m.styles.StatValue
		if day == m.services.View.Selected() {
			style = m.styles.TaskSelected
		}
		b.WriteString(fmt.Sprintf("%-34s %s\n",
			style.Render(day.FormatLong()),
			m.styles.TotalCol.Render(service.FormatMinutes(dayTotal))))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Week total:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(service.FormatMinutes(weekTotal)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.StatusHelp.Render("w day view  [/] change day  t today"))

	return b.String()
}

// SetSize sets the view dimensions
func (m *ReportModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// announceDayChange tells the rest of the TUI that the viewed day moved
func announceDayChange() tea.Msg {
	return ui.DayChangedMsg{}
}
