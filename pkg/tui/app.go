package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ventiq/ventiq-terminal/pkg/models"
	"github.com/ventiq/ventiq-terminal/pkg/walkthrough"
)

type sessionState int

const (
	tutorialListView sessionState = iota
	walkthroughView
)

type App struct {
	state       sessionState
	list        *TutorialListModel
	walkthrough *WalkthroughModel
	width       int
	height      int

	statusMsg     string
	statusSeq     int
	statusTimeout time.Duration

	startKey string
}

// AppOption configures an App
type AppOption func(*App)

// WithProgress records completed walkthroughs
func WithProgress(recorder ProgressRecorder) AppOption {
	return func(a *App) {
		a.walkthrough.progress = recorder
	}
}

// WithStartTutorial opens the tutorial with the given key on start
func WithStartTutorial(key string) AppOption {
	return func(a *App) {
		a.startKey = key
	}
}

func NewApp(catalog *models.Catalog, screenshots *models.ScreenshotIndex, settings *models.Settings, opts ...AppOption) *App {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	resolver := walkthrough.NewScreenshotResolver(screenshots, settings.Assets)

	a := &App{
		state:         tutorialListView,
		list:          NewTutorialListModel(catalog),
		walkthrough:   NewWalkthroughModel(catalog, resolver, settings),
		statusTimeout: time.Duration(settings.UI.StatusSeconds) * time.Second,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.statusTimeout <= 0 {
		a.statusTimeout = 4 * time.Second
	}
	return a
}

func (a *App) Init() tea.Cmd {
	if a.startKey != "" {
		key := a.startKey
		return func() tea.Msg {
			return SwitchViewMsg{view: walkthroughView, key: key}
		}
	}
	return a.list.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width, msg.Height)
		a.walkthrough.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		a.statusSeq++
		seq := a.statusSeq
		return a, tea.Tick(a.statusTimeout, func(time.Time) tea.Msg {
			return clearStatusMsg{seq: seq}
		})

	case PersistentStatusMsg:
		a.statusMsg = string(msg)
		a.statusSeq++
		return a, nil

	case clearStatusMsg:
		// A newer message replaced the one this tick was scheduled for
		if msg.seq == a.statusSeq {
			a.statusMsg = ""
		}
		return a, nil

	case SwitchViewMsg:
		switch msg.view {
		case tutorialListView:
			a.state = tutorialListView
			if msg.key != "" {
				a.list.SelectKey(msg.key)
			}
			return a, a.list.Init()
		case walkthroughView:
			if !a.walkthrough.Open(msg.key) {
				a.state = tutorialListView
				return a, func() tea.Msg {
					return StatusMsg("Unknown tutorial: " + msg.key)
				}
			}
			a.list.SelectKey(msg.key)
			a.state = walkthroughView
			return a, a.walkthrough.Init()
		}
	}

	// Route updates to the active view
	var cmd tea.Cmd
	switch a.state {
	case tutorialListView:
		var m tea.Model
		m, cmd = a.list.Update(msg)
		if l, ok := m.(*TutorialListModel); ok {
			a.list = l
		}
	case walkthroughView:
		var m tea.Model
		m, cmd = a.walkthrough.Update(msg)
		if w, ok := m.(*WalkthroughModel); ok {
			a.walkthrough = w
		}
	}

	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.state {
	case tutorialListView:
		content = a.list.View()
	case walkthroughView:
		content = a.walkthrough.View()
	default:
		content = "Unknown view"
	}

	if a.statusMsg != "" {
		statusBar := StatusBarStyle.Render(a.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
	}

	return content
}

// Messages for communication between views

// StatusMsg shows a message in the status bar that clears itself
type StatusMsg string

// PersistentStatusMsg shows a message that stays until replaced
type PersistentStatusMsg string

type clearStatusMsg struct {
	seq int
}

type SwitchViewMsg struct {
	view sessionState
	key  string // tutorial to open, or to select when returning to the list
}
