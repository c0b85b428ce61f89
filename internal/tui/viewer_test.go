// internal/tui/viewer_test.go
package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwiater/minigrep/internal/params"
	"github.com/mwiater/minigrep/internal/search"
)

func testParams(t *testing.T, args ...string) params.Params {
	t.Helper()
	p, err := params.Build(append([]string{"minigrep"}, args...))
	if err != nil {
		t.Fatalf("params.Build error: %v", err)
	}
	return p
}

// TestUpdate checks that the quit keys produce a command and that a window
// resize is applied to the model and its viewport.
func TestUpdate(t *testing.T) {
	p := testParams(t, "-q=duct", "-f=poem.txt")
	m := initialModel(p, []search.Match{{Index: 1, Line: "safe, fast, productive."}})

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		if _, cmd := m.Update(key); cmd == nil {
			t.Errorf("expected a quit command for %q, got nil", key.String())
		}
	}

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = newModel.(*model)
	if m.width != 100 || m.height != 40 {
		t.Errorf("expected width 100 and height 40, got %d and %d", m.width, m.height)
	}
	if m.viewport.Width != 100 {
		t.Errorf("expected viewport width 100, got %d", m.viewport.Width)
	}
	if m.viewport.Height <= 0 || m.viewport.Height >= 40 {
		t.Errorf("expected viewport height below window height, got %d", m.viewport.Height)
	}
}

func TestUpdateTinyWindow(t *testing.T) {
	m := initialModel(testParams(t, "-q=x", "-f=y"), nil)
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 10, Height: 1})
	if got := newModel.(*model).viewport.Height; got != 1 {
		t.Fatalf("expected viewport height clamped to 1, got %d", got)
	}
}

// TestView checks the header, body and footer rendering.
func TestView(t *testing.T) {
	p := testParams(t, "-i", "-q=rUsT", "-f=poem.txt")
	matches := []search.Match{
		{Index: 0, Line: "Rust:"},
		{Index: 3, Line: "Trust me."},
	}
	view := initialModel(p, matches).View()

	for _, want := range []string{"minigrep poem.txt", `query="rUsT"`, "case-insensitive", "2 matches", "row[0]:Rust:", "row[3]:Trust me.", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestViewNoMatches(t *testing.T) {
	view := initialModel(testParams(t, "-q=absent", "-f=poem.txt"), nil).View()
	if !strings.Contains(view, "No matches found") {
		t.Fatalf("expected empty notice, got:\n%s", view)
	}
	if !strings.Contains(view, "0 matches") {
		t.Fatalf("expected match count, got:\n%s", view)
	}
}

func TestMatchCount(t *testing.T) {
	if got := matchCount(1); got != "1 match" {
		t.Errorf("matchCount(1) = %q", got)
	}
	if got := matchCount(3); got != "3 matches" {
		t.Errorf("matchCount(3) = %q", got)
	}
}

func TestLongRowsFitWindow(t *testing.T) {
	p := testParams(t, "-q=x", "-f=y")
	long := strings.Repeat("x", 200)
	m := initialModel(p, []search.Match{{Index: 7, Line: long}})

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	view := newModel.(*model).View()
	if !strings.Contains(view, "row[7]:") || !strings.Contains(view, "…") {
		t.Fatalf("expected truncated row in view, got:\n%s", view)
	}
	if strings.Contains(view, long) {
		t.Fatalf("expected long row to be cut, got:\n%s", view)
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{text: "short", width: 10, want: "short"},
		{text: "exact", width: 5, want: "exact"},
		{text: "toolong", width: 4, want: "too…"},
		{text: "héllo wörld", width: 6, want: "héllo…"},
		{text: "any", width: 0, want: "any"},
	}
	for _, tt := range tests {
		if got := truncateRunes(tt.text, tt.width); got != tt.want {
			t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
