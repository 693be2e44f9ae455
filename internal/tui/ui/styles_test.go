package ui

import (
	"testing"

	tint "github.com/lrstanley/bubbletint"
)

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles()

	if !styles.TabActive.GetBold() {
		t.Error("expected active tab to be bold")
	}
	if !styles.SegmentCursor.GetUnderline() {
		t.Error("expected segment cursor to be underlined")
	}
	if styles.TaskID.GetWidth() != 5 {
		t.Errorf("expected task ID width 5, got %d", styles.TaskID.GetWidth())
	}
	if styles.TotalCol.GetWidth() != 7 {
		t.Errorf("expected total column width 7, got %d", styles.TotalCol.GetWidth())
	}
}

func TestDefaultStyles_Render(t *testing.T) {
	styles := DefaultStyles()

	if out := styles.SegmentLogged.Render("█"); out == "" {
		t.Error("expected logged segment glyph to render")
	}
	if out := styles.Error.Render("Error"); out == "" {
		t.Error("expected error style to render")
	}
}

func TestNewStylesFromRegistry(t *testing.T) {
	tints := tint.DefaultTints()
	if len(tints) == 0 {
		t.Fatal("expected default tints")
	}
	registry := tint.NewRegistry(tints[0], tints...)

	styles := NewStylesFromRegistry(registry)

	if !styles.TabActive.GetBold() {
		t.Error("expected active tab to stay bold under a theme")
	}
	if styles.TaskID.GetWidth() != 5 {
		t.Errorf("expected task ID width 5, got %d", styles.TaskID.GetWidth())
	}
	if !styles.TaskOrphan.GetItalic() {
		t.Error("expected orphan rows to stay italic under a theme")
	}
}
