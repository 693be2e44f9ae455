package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/solrun/kvart/internal/service"
	"github.com/solrun/kvart/internal/timeutil"
	"github.com/solrun/kvart/internal/track"
	"github.com/solrun/kvart/internal/tui/ui"
)

// BoardModel is the model for the day board view: the task list with one
// row of toggleable segments per task.
type BoardModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width      int
	height     int
	rows       []service.TaskRow
	taskCursor int
	segCursor  int
	err        error

	// Input state for adding or renaming a task
	inputMode bool
	editingID int // 0 means the input creates a new task
	input     textinput.Model
}

// NewBoardModel creates a new board view model
func NewBoardModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) BoardModel {
	ti := textinput.New()
	ti.Placeholder = "Task description..."
	ti.CharLimit = 200
	ti.Width = 40

	m := BoardModel{
		services: services,
		styles:   styles,
		keys:     keys,
		input:    ti,
	}
	m.restoreSelection()
	return m
}

// boardReloadMsg is sent when the board rows need re-reading
type boardReloadMsg struct {
	err error
}

// boardTickMsg is sent every second to keep totals and the clock current
type boardTickMsg time.Time

// Init implements tea.Model
func (m BoardModel) Init() tea.Cmd {
	return tea.Batch(m.reload(), m.tick())
}

// Update implements tea.Model
func (m BoardModel) Update(msg tea.Msg) (BoardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inputMode {
			return m.handleInputMode(msg)
		}
		return m.handleKeys(msg)

	case boardReloadMsg:
		// A plain reload must not wipe the error of the action that
		// requested it.
		if msg.err != nil {
			m.err = msg.err
		}
		m.rows = m.services.Task.Rows()
		m.clampCursor()
		return m, nil

	case boardTickMsg:
		return m, m.tick()

	case ui.DayChangedMsg:
		m.taskCursor = 0
		m.segCursor = 0
		return m, m.reload()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// handleKeys handles board navigation and mutation keys
func (m BoardModel) handleKeys(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.taskCursor > 0 {
			m.taskCursor--
			m.persistSelection()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.taskCursor < len(m.rows)-1 {
			m.taskCursor++
			m.persistSelection()
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if m.segCursor > 0 {
			m.segCursor--
			m.persistSelection()
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.segCursor < m.services.Window().SegmentCount()-1 {
			m.segCursor++
			m.persistSelection()
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if row, ok := m.cursorRow(); ok {
			m.err = m.services.Ledger.Toggle(row.ID, m.segCursor)
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.inputMode = true
		m.editingID = 0
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		if row, ok := m.cursorRow(); ok && !row.Orphan {
			m.inputMode = true
			m.editingID = row.ID
			m.input.SetValue(row.Description)
			m.input.Focus()
			_ = m.services.View.SetEditing(row.ID)
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if row, ok := m.cursorRow(); ok {
			_, err := m.services.Task.Delete(row.ID)
			m.err = err
			return m, m.reload()
		}
		return m, nil

	case key.Matches(msg, m.keys.Drop):
		if row, ok := m.cursorRow(); ok {
			m.err = m.services.Task.Drop(row.ID)
			return m, m.reload()
		}
		return m, nil

	case key.Matches(msg, m.keys.Start):
		if row, ok := m.cursorRow(); ok && !row.Orphan {
			m.err = m.services.Ledger.StartTimer(row.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Stop):
		if row, ok := m.cursorRow(); ok {
			_, err := m.services.Ledger.StopTimer(row.ID)
			m.err = err
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevDay):
		m.err = m.services.View.Shift(-1)
		return m, announceDayChange

	case key.Matches(msg, m.keys.NextDay):
		m.err = m.services.View.Shift(1)
		return m, announceDayChange

	case key.Matches(msg, m.keys.Today):
		m.err = m.services.View.Select(timeutil.Today())
		return m, announceDayChange
	}

	return m, nil
}

// handleInputMode handles key events while the task name input is open
func (m BoardModel) handleInputMode(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		desc := strings.TrimSpace(m.input.Value())
		m.inputMode = false
		m.input.Blur()
		_ = m.services.View.ClearEdit()
		if desc == "" {
			return m, nil
		}
		if m.editingID == 0 {
			_, m.err = m.services.Task.Add(desc, "")
		} else {
			_, m.err = m.services.Task.Edit(m.editingID, desc, nil)
		}
		return m, m.reload()

	case key.Matches(msg, m.keys.Back): // Escape
		m.inputMode = false
		m.input.Blur()
		m.input.SetValue("")
		_ = m.services.View.ClearEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m BoardModel) View() string {
	var b strings.Builder

	day := m.services.View.Selected()
	heading := day.FormatLong()
	if day == timeutil.Today() {
		heading += " (today)"
	}
	b.WriteString(m.styles.DayHeader.Render(heading))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	if m.inputMode {
		label := "New task"
		if m.editingID != 0 {
			label = fmt.Sprintf("Rename task %d", m.editingID)
		}
		b.WriteString(m.styles.StatLabel.Render(label))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatusHelp.Render("Enter to save, Esc to cancel"))
		return b.String()
	}

	if len(m.rows) == 0 {
		b.WriteString(m.styles.StatusHelp.Render("No tasks for this day. Press 'n' to add one."))
		return b.String()
	}

	window := m.services.Window()
	nowSeg := window.SegmentAt(day, time.Now())

	// Hour ruler above the grid, aligned with the segment column.
	b.WriteString(strings.Repeat(" ", 5+26))
	b.WriteString(m.styles.StatusHelp.Render(hourRuler(window.StartHour, window.SegmentsPerHour(), window.SegmentCount())))
	b.WriteString("\n")

	totals, dayTotal := m.services.Ledger.Totals()
	byID := make(map[int]service.TaskTotal, len(totals))
	for _, tt := range totals {
		byID[tt.Row.ID] = tt
	}

	for i, row := range m.rows {
		selected := i == m.taskCursor

		idCol := m.styles.TaskID.Render(fmt.Sprintf("[%d]", row.ID))

		desc := row.Description
		if r := []rune(desc); len(r) > 24 {
			desc = string(r[:23]) + "…"
		}
		descStyle := m.styles.TaskNormal
		if row.Orphan {
			descStyle = m.styles.TaskOrphan
		}
		if selected {
			descStyle = m.styles.TaskSelected
		}
		descCol := descStyle.Render(fmt.Sprintf("%-25s", desc))

		segs := m.services.Ledger.Segments(row.ID)
		grid := RenderSegmentRow(segs, m.styles, SegmentRenderOptions{
			Cursor:   m.segCursor,
			Now:      nowSeg,
			Selected: selected,
		})

		total := m.styles.TotalCol.Render(byID[row.ID].Formatted())

		b.WriteString(fmt.Sprintf("%s %s %s %s\n", idCol, descCol, grid, total))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Day total:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(service.FormatMinutes(dayTotal)))

	for _, timer := range m.services.Ledger.OpenTimers() {
		b.WriteString("\n")
		b.WriteString(m.styles.TimerRunning.Render("● "))
		b.WriteString(fmt.Sprintf("[%d] %s ", timer.Row.ID, timer.Row.Description))
		b.WriteString(m.styles.TimerElapsed.Render(formatElapsedTime(timer.Elapsed)))
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *BoardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m BoardModel) IsInputMode() bool {
	return m.inputMode
}

// cursorRow returns the task row under the cursor.
func (m BoardModel) cursorRow() (service.TaskRow, bool) {
	if m.taskCursor < 0 || m.taskCursor >= len(m.rows) {
		return service.TaskRow{}, false
	}
	return m.rows[m.taskCursor], true
}

// clampCursor keeps the cursor on the board after rows change.
func (m *BoardModel) clampCursor() {
	if m.taskCursor >= len(m.rows) {
		m.taskCursor = len(m.rows) - 1
	}
	if m.taskCursor < 0 {
		m.taskCursor = 0
	}
	if max := m.services.Window().SegmentCount() - 1; m.segCursor > max {
		m.segCursor = max
	}
}

// persistSelection mirrors the cursor into the stored edit state so it
// survives a restart.
func (m BoardModel) persistSelection() {
	if row, ok := m.cursorRow(); ok {
		_ = m.services.View.SetSelection(track.SelectSegment(row.ID, m.segCursor))
	}
}

// restoreSelection places the cursor where the stored edit state left it.
func (m *BoardModel) restoreSelection() {
	m.rows = m.services.Task.Rows()
	sel := m.services.View.Selection()
	if sel.Kind != track.SelectionSegment {
		return
	}
	for i, row := range m.rows {
		if row.ID == sel.TaskID {
			m.taskCursor = i
			m.segCursor = sel.Segment
			break
		}
	}
	m.clampCursor()
}

// reload creates a command that re-reads the board rows
func (m BoardModel) reload() tea.Cmd {
	return func() tea.Msg {
		return boardReloadMsg{}
	}
}

// tick returns a command that sends a tick every second
func (m BoardModel) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return boardTickMsg(t)
	})
}
