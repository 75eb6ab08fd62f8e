package components

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewTextView(t *testing.T) {
	tv := NewTextView(80, 24)
	if tv.width != 80 || tv.height != 24 {
		t.Errorf("dimensions: got %dx%d, want 80x24", tv.width, tv.height)
	}
	if tv.LineCount() != 0 {
		t.Errorf("LineCount: got %d, want 0", tv.LineCount())
	}
}

func TestTextView_SetText(t *testing.T) {
	tv := NewTextView(80, 10).SetText("line 1\nline 2\nline 3")
	if tv.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", tv.LineCount())
	}
	view := tv.View()
	for _, want := range []string{"line 1", "line 2", "line 3"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q: %q", want, view)
		}
	}
}

func TestTextView_SetText_Empty(t *testing.T) {
	tv := NewTextView(80, 10).SetText("a\nb").SetText("")
	if tv.LineCount() != 0 {
		t.Errorf("LineCount after clearing: got %d", tv.LineCount())
	}
}

func TestTextView_SetLines_IndependentCopy(t *testing.T) {
	original := []string{"a", "b"}
	tv := NewTextView(80, 10).SetLines(original)
	original[0] = "mutated"
	if tv.lines[0] != "a" {
		t.Error("SetLines should copy the slice, not reference it")
	}
}

func TestTextView_SetSize(t *testing.T) {
	tv := NewTextView(80, 10).SetSize(100, 20)
	if tv.width != 100 || tv.height != 20 {
		t.Errorf("SetSize: got %dx%d, want 100x20", tv.width, tv.height)
	}
	if tv.vp.Width != 100 || tv.vp.Height != 20 {
		t.Errorf("viewport dimensions: got %dx%d, want 100x20", tv.vp.Width, tv.vp.Height)
	}
}

func TestTextView_ScrollAndGotoTop(t *testing.T) {
	tv := NewTextView(80, 2)
	var lines []string
	for i := 0; i < 20; i++ {
		lines = append(lines, fmt.Sprintf("line %02d", i))
	}
	tv = tv.SetLines(lines)

	tv, _ = tv.Update(tea.KeyMsg{Type: tea.KeyDown})
	if tv.vp.YOffset != 1 {
		t.Fatalf("YOffset after down: got %d, want 1", tv.vp.YOffset)
	}
	if strings.Contains(tv.View(), "line 00") {
		t.Error("first line should have scrolled out of view")
	}

	tv = tv.GotoTop()
	if tv.vp.YOffset != 0 {
		t.Errorf("YOffset after GotoTop: got %d", tv.vp.YOffset)
	}
}

func TestTextView_View_Empty(t *testing.T) {
	tv := NewTextView(80, 10)
	_ = tv.View()
}
