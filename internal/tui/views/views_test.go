package views

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/solrun/kvart/internal/config"
	"github.com/solrun/kvart/internal/service"
	"github.com/solrun/kvart/internal/tui/ui"
)

func setupTestServices(t *testing.T) *service.Services {
	t.Helper()
	tmpDir := t.TempDir()
	statePath := filepath.Join(tmpDir, "state.json")
	configPath := filepath.Join(tmpDir, "config.toml")

	svcs, err := service.NewServicesWithPaths(statePath, configPath, config.DefaultConfig())
	if err != nil {
		t.Fatalf("failed to build services: %v", err)
	}
	return svcs
}

func newBoard(t *testing.T, svcs *service.Services) BoardModel {
	t.Helper()
	return NewBoardModel(svcs, ui.DefaultStyles(), ui.DefaultKeyMap())
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func reloadBoard(m BoardModel) BoardModel {
	m, _ = m.Update(boardReloadMsg{})
	return m
}

func TestBoard_EmptyDay(t *testing.T) {
	svcs := setupTestServices(t)
	m := newBoard(t, svcs)

	view := m.View()
	if !strings.Contains(view, "No tasks for this day") {
		t.Errorf("expected empty-day message, got: %s", view)
	}
	if !strings.Contains(view, "(today)") {
		t.Errorf("expected today marker, got: %s", view)
	}
}

func TestBoard_ToggleSegment(t *testing.T) {
	svcs := setupTestServices(t)
	task, _ := svcs.Task.Add("work", "")
	m := newBoard(t, svcs)

	// Space toggles the segment under the cursor (0 initially).
	m, _ = m.Update(keyRune(' '))

	if segs := svcs.Ledger.Segments(task.ID); !segs[0] {
		t.Error("expected segment 0 logged after space")
	}

	m, _ = m.Update(keyRune(' '))
	if segs := svcs.Ledger.Segments(task.ID); segs[0] {
		t.Error("expected segment 0 cleared after second space")
	}
}

func TestBoard_SegmentCursorMoves(t *testing.T) {
	svcs := setupTestServices(t)
	task, _ := svcs.Task.Add("work", "")
	m := newBoard(t, svcs)

	m, _ = m.Update(keyRune('l'))
	m, _ = m.Update(keyRune('l'))
	m, _ = m.Update(keyRune(' '))

	if segs := svcs.Ledger.Segments(task.ID); !segs[2] {
		t.Error("expected segment 2 logged after moving right twice")
	}

	m, _ = m.Update(keyRune('h'))
	m, _ = m.Update(keyRune(' '))
	if segs := svcs.Ledger.Segments(task.ID); !segs[1] {
		t.Error("expected segment 1 logged after moving left")
	}
}

func TestBoard_SegmentCursorClamped(t *testing.T) {
	svcs := setupTestServices(t)
	_, _ = svcs.Task.Add("work", "")
	m := newBoard(t, svcs)

	for i := 0; i < 100; i++ {
		m, _ = m.Update(keyRune('l'))
	}
	if m.segCursor != svcs.Window().SegmentCount()-1 {
		t.Errorf("cursor must stop at the last segment, got %d", m.segCursor)
	}

	for i := 0; i < 100; i++ {
		m, _ = m.Update(keyRune('h'))
	}
	if m.segCursor != 0 {
		t.Errorf("cursor must stop at segment 0, got %d", m.segCursor)
	}
}

func TestBoard_TaskCursorMoves(t *testing.T) {
	svcs := setupTestServices(t)
	_, _ = svcs.Task.Add("first", "")
	second, _ := svcs.Task.Add("second", "")
	m := newBoard(t, svcs)

	m, _ = m.Update(keyRune('j'))
	m, _ = m.Update(keyRune(' '))

	if segs := svcs.Ledger.Segments(second.ID); !segs[0] {
		t.Error("expected toggle to hit the second task after j")
	}
}

func TestBoard_NewTaskViaInput(t *testing.T) {
	svcs := setupTestServices(t)
	m := newBoard(t, svcs)

	m, _ = m.Update(keyRune('n'))
	if !m.IsInputMode() {
		t.Fatal("expected input mode after n")
	}

	for _, r := range "deep work" {
		m, _ = m.Update(keyRune(r))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = reloadBoard(m)

	if m.IsInputMode() {
		t.Error("expected input mode to close on enter")
	}
	rows := svcs.Task.Rows()
	if len(rows) != 1 || rows[0].Description != "deep work" {
		t.Errorf("expected the new task, got %v", rows)
	}
}

func TestBoard_RenameViaInput(t *testing.T) {
	svcs := setupTestServices(t)
	task, _ := svcs.Task.Add("old name", "")
	m := newBoard(t, svcs)

	m, _ = m.Update(keyRune('e'))
	if !m.IsInputMode() {
		t.Fatal("expected input mode after e")
	}
	if m.input.Value() != "old name" {
		t.Errorf("expected prefilled input, got %q", m.input.Value())
	}

	m.input.SetValue("new name")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = reloadBoard(m)

	got, _ := svcs.Task.Get(task.ID)
	if got.Description != "new name" {
		t.Errorf("expected renamed task, got %q", got.Description)
	}
}

func TestBoard_InputEscapeCancels(t *testing.T) {
	svcs := setupTestServices(t)
	m := newBoard(t, svcs)

	m, _ = m.Update(keyRune('n'))
	for _, r := range "abandoned" {
		m, _ = m.Update(keyRune(r))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if m.IsInputMode() {
		t.Error("expected input mode to close on escape")
	}
	if rows := svcs.Task.Rows(); len(rows) != 0 {
		t.Errorf("escape must not create a task, got %v", rows)
	}
}

func TestBoard_DeleteLeavesOrphanRow(t *testing.T) {
	svcs := setupTestServices(t)
	_, _ = svcs.Task.Add("doomed", "")
	m := newBoard(t, svcs)

	m, _ = m.Update(keyRune('d'))
	m = reloadBoard(m)

	rows := svcs.Task.Rows()
	if len(rows) != 1 || !rows[0].Orphan {
		t.Errorf("expected one orphan row after delete, got %v", rows)
	}
	if !strings.Contains(m.View(), "(deleted task)") {
		t.Error("expected orphan placeholder in board view")
	}
}

func TestBoard_DeleteErrorSurvivesReload(t *testing.T) {
	svcs := setupTestServices(t)
	_, _ = svcs.Task.Add("doomed", "")
	m := newBoard(t, svcs)

	// First delete orphans the row; deleting the orphan fails.
	m, _ = m.Update(keyRune('d'))
	m = reloadBoard(m)
	m, _ = m.Update(keyRune('d'))
	m = reloadBoard(m)

	if m.err == nil {
		t.Fatal("expected the failed delete's error to survive the reload")
	}
	if !strings.Contains(m.View(), "Error:") {
		t.Error("expected the error on the board view after reload")
	}
}

func TestBoard_LongMultiByteDescription(t *testing.T) {
	svcs := setupTestServices(t)
	_, _ = svcs.Task.Add("ráðstefnuundirbúningur og eftirfylgni", "")
	m := newBoard(t, svcs)

	view := m.View()
	if !utf8.ValidString(view) {
		t.Error("expected valid UTF-8 after truncating a multi-byte description")
	}
	if !strings.Contains(view, "ráðstefnu") {
		t.Errorf("expected the truncated description to keep its runes, got: %s", view)
	}
}

func TestBoard_DropRemovesRow(t *testing.T) {
	svcs := setupTestServices(t)
	_, _ = svcs.Task.Add("dropped", "")
	m := newBoard(t, svcs)

	m, _ = m.Update(keyRune('x'))
	m = reloadBoard(m)

	if rows := svcs.Task.Rows(); len(rows) != 0 {
		t.Errorf("expected empty day after drop, got %v", rows)
	}
}

func TestBoard_TimerKeys(t *testing.T) {
	svcs := setupTestServices(t)
	_, _ = svcs.Task.Add("timed", "")
	m := newBoard(t, svcs)

	m, _ = m.Update(keyRune('s'))
	if !svcs.Ledger.HasOpenTimer() {
		t.Fatal("expected an open timer after s")
	}
	if !strings.Contains(m.View(), "●") {
		t.Error("expected running timer marker in view")
	}

	m, _ = m.Update(keyRune('S'))
	if svcs.Ledger.HasOpenTimer() {
		t.Error("expected timer stopped after S")
	}
}

func TestBoard_DayNavigation(t *testing.T) {
	svcs := setupTestServices(t)
	_, _ = svcs.Task.Add("today only", "")
	start := svcs.View.Selected()
	m := newBoard(t, svcs)

	m, _ = m.Update(keyRune(']'))
	if svcs.View.Selected() != start.AddDays(1) {
		t.Error("expected ] to move one day forward")
	}

	m, _ = m.Update(ui.DayChangedMsg{})
	m = reloadBoard(m)
	if !strings.Contains(m.View(), "No tasks for this day") {
		t.Error("expected the next day to be empty")
	}

	m, _ = m.Update(keyRune('t'))
	if svcs.View.Selected() != start {
		t.Error("expected t to jump back to today")
	}
}

func TestBoard_SelectionPersists(t *testing.T) {
	svcs := setupTestServices(t)
	task, _ := svcs.Task.Add("work", "")
	m := newBoard(t, svcs)

	m, _ = m.Update(keyRune('l'))
	m, _ = m.Update(keyRune('l'))
	m, _ = m.Update(keyRune('l'))

	// A fresh model over the same services lands on the stored cursor.
	m2 := newBoard(t, svcs)
	if m2.segCursor != 3 {
		t.Errorf("expected restored segment cursor 3, got %d", m2.segCursor)
	}
	sel := svcs.View.Selection()
	if sel.TaskID != task.ID || sel.Segment != 3 {
		t.Errorf("unexpected stored selection: %+v", sel)
	}
}

func TestReport_DayView(t *testing.T) {
	svcs := setupTestServices(t)
	task, _ := svcs.Task.Add("deep work", "")
	_ = svcs.Ledger.Toggle(task.ID, 0)
	_ = svcs.Ledger.Toggle(task.ID, 1)

	m := NewReportModel(svcs, ui.DefaultStyles(), ui.DefaultKeyMap())
	view := m.View()

	if !strings.Contains(view, "deep work") {
		t.Errorf("expected task in report, got: %s", view)
	}
	if !strings.Contains(view, "00:30") {
		t.Errorf("expected 00:30 total, got: %s", view)
	}
}

func TestReport_WeekToggle(t *testing.T) {
	svcs := setupTestServices(t)
	m := NewReportModel(svcs, ui.DefaultStyles(), ui.DefaultKeyMap())

	m, _ = m.Update(keyRune('w'))
	if !strings.Contains(m.View(), "Week ") {
		t.Error("expected week heading after w")
	}

	m, _ = m.Update(keyRune('w'))
	if strings.Contains(m.View(), "Week ") {
		t.Error("expected day view after second w")
	}
}

func TestConfigView_ShowsSettings(t *testing.T) {
	svcs := setupTestServices(t)
	tp := ui.NewThemeProvider("")
	m := NewConfigModel(svcs, tp, ui.DefaultStyles(), ui.DefaultKeyMap())

	view := m.View()
	if !strings.Contains(view, "start_hour:") {
		t.Errorf("expected start_hour line, got: %s", view)
	}
	if !strings.Contains(view, "week_start_day:") {
		t.Errorf("expected week_start_day line, got: %s", view)
	}
}

func TestConfigView_ThemeSelector(t *testing.T) {
	svcs := setupTestServices(t)
	tp := ui.NewThemeProvider("")
	m := NewConfigModel(svcs, tp, ui.DefaultStyles(), ui.DefaultKeyMap())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.IsInputMode() {
		t.Fatal("expected theme selector open after enter")
	}

	m, _ = m.Update(keyRune('j'))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.IsInputMode() {
		t.Error("expected selector closed after selection")
	}
	if cmd == nil {
		t.Fatal("expected a theme change request command")
	}
	msg, ok := cmd().(ui.ThemeChangeRequestMsg)
	if !ok {
		t.Fatalf("expected ThemeChangeRequestMsg, got %T", cmd())
	}
	if msg.ThemeName == "" {
		t.Error("expected a theme name in the request")
	}
}

func TestRenderSegmentRow(t *testing.T) {
	styles := ui.DefaultStyles()
	out := RenderSegmentRow([]bool{true, false}, styles, SegmentRenderOptions{Cursor: -1, Now: -1})
	if !strings.Contains(out, "█") || !strings.Contains(out, "·") {
		t.Errorf("expected filled and hollow glyphs, got %q", out)
	}
}

func TestHourRuler(t *testing.T) {
	// 7-18h, 4 segments per hour, 44 segments.
	ruler := hourRuler(7, 4, 44)
	if len(ruler) != 44 {
		t.Fatalf("expected ruler width 44, got %d", len(ruler))
	}
	if !strings.HasPrefix(ruler, "7") {
		t.Errorf("expected ruler to start with 7, got %q", ruler)
	}
	if !strings.Contains(ruler, "17") {
		t.Errorf("expected last hour label 17, got %q", ruler)
	}
}

func TestFormatElapsedTime(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{5, "5m"},
		{60, "1h"},
		{90, "1h 30m"},
	}
	for _, tt := range tests {
		d := time.Duration(tt.minutes) * time.Minute
		if got := formatElapsedTime(d); got != tt.expected {
			t.Errorf("%d minutes: expected %s, got %s", tt.minutes, tt.expected, got)
		}
	}
}
