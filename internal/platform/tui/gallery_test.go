package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sendGallery(t *testing.T, m GalleryModel, msg tea.Msg) (GalleryModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GalleryModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func TestGalleryStartsOnValidSelection(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 0},
		{3, 3},
		{4, 0}, // locked
		{-2, 0},
	}

	for _, tc := range tests {
		m := NewGalleryModel(tc.in, 100, 30)
		if m.Selected() != tc.want {
			t.Errorf("NewGalleryModel(%d).Selected() = %d, expected %d", tc.in, m.Selected(), tc.want)
		}
	}
}

func TestGalleryChooseUnlocked(t *testing.T) {
	m := NewGalleryModel(0, 100, 30)
	down := tea.KeyMsg{Type: tea.KeyDown}

	m, _ = sendGallery(t, m, down)
	m, _ = sendGallery(t, m, down)
	m, cmd := sendGallery(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() != 2 {
		t.Errorf("selected = %d, expected 2", m.Selected())
	}
	if !isQuit(cmd) {
		t.Error("choosing should close the gallery")
	}
}

func TestGalleryLockedIsUnselectable(t *testing.T) {
	m := NewGalleryModel(1, 100, 30)
	down := tea.KeyMsg{Type: tea.KeyDown}

	for range 3 {
		m, _ = sendGallery(t, m, down)
	}
	m, cmd := sendGallery(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() != 1 {
		t.Errorf("locked choice changed selection to %d", m.Selected())
	}
	if cmd != nil && isQuit(cmd) {
		t.Error("locked choice should keep the gallery open")
	}
	if !strings.Contains(m.View(), "Baguette is locked") {
		t.Error("view should explain the character is locked")
	}
}

func TestGalleryBackKeepsSelection(t *testing.T) {
	m := NewGalleryModel(3, 100, 30)
	m, _ = sendGallery(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, cmd := sendGallery(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.Selected() != 3 || m.IsQuitting() || !isQuit(cmd) {
		t.Errorf("back should leave with selection 3, got %d quitting=%v", m.Selected(), m.IsQuitting())
	}
}

func TestGalleryView(t *testing.T) {
	for _, width := range []int{100, 60} {
		m := NewGalleryModel(0, width, 30)
		out := m.View()
		for _, want := range []string{"CHOOSE YOUR RUNNER", "Cookie", "Legendary", "locked", "SELECTED"} {
			if !strings.Contains(out, want) {
				t.Errorf("width %d: view missing %q", width, want)
			}
		}
	}
}

func TestStatBar(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "□□□□□□□□□□"},
		{3, "■■■□□□□□□□"},
		{10, "■■■■■■■■■■"},
		{12, "■■■■■■■■■■"},
		{-1, "□□□□□□□□□□"},
	}
	for _, tc := range tests {
		if got := statBar(tc.n); got != tc.want {
			t.Errorf("statBar(%d) = %q, expected %q", tc.n, got, tc.want)
		}
	}
}
