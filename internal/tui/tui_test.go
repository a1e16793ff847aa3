package tui

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

func TestConfirmModelAnswers(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want bool
	}{
		{"yes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, true},
		{"upper yes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Y")}, true},
		{"no", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, false},
		{"enter defaults to no", tea.KeyMsg{Type: tea.KeyEnter}, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewConfirmModel("Advanced mode", "continue?")
			_, cmd := m.Update(tc.msg)
			if cmd == nil {
				t.Fatalf("expected quit command")
			}
			if m.Confirmed() != tc.want {
				t.Fatalf("expected confirmed=%v", tc.want)
			}
			if m.View() != "" {
				t.Fatalf("expected empty view after answer")
			}
		})
	}
}

func TestConfirmModelIgnoresOtherKeys(t *testing.T) {
	m := NewConfirmModel("Advanced mode", "continue?")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd != nil {
		t.Fatalf("expected no command for unrelated key")
	}
	if m.Confirmed() {
		t.Fatalf("expected unanswered prompt")
	}
	view := m.View()
	if !strings.Contains(view, "Advanced mode") || !strings.Contains(view, "continue?") {
		t.Fatalf("view missing prompt text: %q", view)
	}
}

func TestRating(t *testing.T) {
	cases := map[float64]string{
		0:   "very weak",
		30:  "weak",
		50:  "fair",
		80:  "strong",
		200: "very strong",
	}
	for bits, want := range cases {
		if got := Rating(bits); got != want {
			t.Fatalf("Rating(%v) = %q, want %q", bits, got, want)
		}
	}
}

func TestStrengthBarPlain(t *testing.T) {
	out := StrengthBar(64, 20, false)
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no escape sequences: %q", out)
	}
	if !strings.HasSuffix(out, "64.0 bits (strong)") {
		t.Fatalf("unexpected label: %q", out)
	}
	bar := strings.TrimSuffix(out, " 64.0 bits (strong)")
	if w := utf8.RuneCountInString(bar); w != 20 {
		t.Fatalf("expected bar width 20, got %d (%q)", w, bar)
	}
}

func TestShouldUseColorRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if ShouldUseColor(&bytes.Buffer{}, true) {
		t.Fatalf("expected NO_COLOR to disable colour")
	}
	t.Setenv("NO_COLOR", "")
	if !ShouldUseColor(&bytes.Buffer{}, true) {
		t.Fatalf("expected force to enable colour")
	}
	if ShouldUseColor(&bytes.Buffer{}, false) {
		t.Fatalf("expected buffers not to be terminals")
	}
}
