package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ventiq/ventiq-terminal/pkg/catalog"
	"github.com/ventiq/ventiq-terminal/pkg/models"
)

func newTestApp(opts ...AppOption) *App {
	app := NewApp(catalog.Builtin(), catalog.BuiltinScreenshots(), models.DefaultSettings(), opts...)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return app
}

// drain runs cmd and feeds every resulting message back into the app,
// skipping timers
func drain(app *App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			drain(app, c)
		}
	case clearStatusMsg, nil:
		return
	default:
		_, next := app.Update(msg)
		if _, ok := msg.(StatusMsg); ok {
			return
		}
		drain(app, next)
	}
}

func press(app *App, keys ...string) {
	for _, k := range keys {
		_, cmd := app.Update(keyMsg(k))
		drain(app, cmd)
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func TestAppStatusMessages(t *testing.T) {
	tests := []struct {
		name        string
		msg         tea.Msg
		expectClear bool
	}{
		{
			name:        "StatusMsg schedules clear",
			msg:         StatusMsg("Test status message"),
			expectClear: true,
		},
		{
			name:        "PersistentStatusMsg does not schedule clear",
			msg:         PersistentStatusMsg("Loading tutorials"),
			expectClear: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp()

			_, cmd := app.Update(tt.msg)

			var want string
			switch m := tt.msg.(type) {
			case StatusMsg:
				want = string(m)
			case PersistentStatusMsg:
				want = string(m)
			}
			if app.statusMsg != want {
				t.Errorf("expected status %q, got %q", want, app.statusMsg)
			}
			if (cmd != nil) != tt.expectClear {
				t.Errorf("expected clear command=%v, got %v", tt.expectClear, cmd != nil)
			}
			if !strings.Contains(app.View(), want) {
				t.Error("expected status bar in view")
			}
		})
	}
}

func TestAppClearStatusIgnoresStaleTicks(t *testing.T) {
	app := newTestApp()

	app.Update(StatusMsg("first"))
	stale := clearStatusMsg{seq: app.statusSeq}
	app.Update(StatusMsg("second"))

	app.Update(stale)
	if app.statusMsg != "second" {
		t.Errorf("stale clear removed newer status, got %q", app.statusMsg)
	}

	app.Update(clearStatusMsg{seq: app.statusSeq})
	if app.statusMsg != "" {
		t.Errorf("expected status cleared, got %q", app.statusMsg)
	}
}

func TestAppCtrlCQuits(t *testing.T) {
	app := newTestApp()
	_, cmd := app.Update(keyMsg("ctrl+c"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestAppOpenAndCompleteTutorial(t *testing.T) {
	app := newTestApp()

	// Seller is the first category; egresos is its fifth tutorial
	press(app, "down", "down", "down", "down", "enter")
	if app.state != walkthroughView {
		t.Fatalf("expected walkthrough view, got %v", app.state)
	}
	if !strings.Contains(app.View(), "Step 1 of 3") {
		t.Error("expected step counter in view")
	}

	press(app, "right", "l", "enter")
	if app.state != tutorialListView {
		t.Fatalf("expected list view after completion, got %v", app.state)
	}
	if !strings.HasPrefix(app.statusMsg, "✓ Tutorial completed: Manejo de Egresos") {
		t.Errorf("unexpected status %q", app.statusMsg)
	}
	if selected, _ := app.list.Selected(); selected.Key != "egresos" {
		t.Errorf("expected egresos to stay selected, got %s", selected.Key)
	}
}

func TestAppEscClosesWithoutCompletion(t *testing.T) {
	app := newTestApp(WithStartTutorial("recepcion"))
	drain(app, app.Init())

	if app.state != walkthroughView {
		t.Fatalf("expected walkthrough view, got %v", app.state)
	}

	press(app, "right", "esc")
	if app.state != tutorialListView {
		t.Fatalf("expected list view, got %v", app.state)
	}
	if app.statusMsg != "" {
		t.Errorf("closing must not report completion, got %q", app.statusMsg)
	}
	if app.list.Category() != models.CategoryAdmin {
		t.Errorf("expected admin category selected, got %s", app.list.Category())
	}
}

func TestAppStartWithUnknownTutorial(t *testing.T) {
	app := newTestApp(WithStartTutorial("nope"))
	drain(app, app.Init())

	if app.state != tutorialListView {
		t.Errorf("expected list view, got %v", app.state)
	}
	if app.statusMsg != "Unknown tutorial: nope" {
		t.Errorf("unexpected status %q", app.statusMsg)
	}
}

func TestAppViewBeforeResize(t *testing.T) {
	app := NewApp(catalog.Builtin(), nil, nil)
	if app.View() != "Loading..." {
		t.Error("expected loading view before first resize")
	}
}
