package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/ventiq/ventiq-terminal/pkg/debug"
	"github.com/ventiq/ventiq-terminal/pkg/models"
	"github.com/ventiq/ventiq-terminal/pkg/walkthrough"
)

const completionBody = "Has completado exitosamente el tutorial. ¡Ahora puedes aplicar lo aprendido!"

type walkthroughKeyMap struct {
	Next       key.Binding
	Previous   key.Binding
	Close      key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Zoom       key.Binding
	Copy       key.Binding
	Help       key.Binding
}

func (k walkthroughKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Close, k.Zoom, k.Help}
}

func (k walkthroughKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.Close},
		{k.ScrollUp, k.ScrollDown},
		{k.Zoom, k.Copy, k.Help},
	}
}

func newWalkthroughKeyMap() walkthroughKeyMap {
	return walkthroughKeyMap{
		Next:       key.NewBinding(key.WithKeys("right", "l", "enter"), key.WithHelp("→/l", "next")),
		Previous:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		ScrollUp:   key.NewBinding(key.WithKeys("up", "k", "pgup"), key.WithHelp("↑/k", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("down", "j", "pgdown"), key.WithHelp("↓/j", "scroll down")),
		Zoom:       key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "zoom screenshot")),
		Copy:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy screenshot path")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	}
}

// action maps a key to a navigation action
func (k walkthroughKeyMap) action(msg tea.KeyMsg) walkthrough.Action {
	switch {
	case key.Matches(msg, k.Next):
		return walkthrough.ActionNext
	case key.Matches(msg, k.Previous):
		return walkthrough.ActionPrevious
	case key.Matches(msg, k.Close):
		return walkthrough.ActionClose
	default:
		return walkthrough.ActionNone
	}
}

// ProgressRecorder stores finished walkthroughs
type ProgressRecorder interface {
	Record(ctx context.Context, key, title string, at time.Time) error
}

type completion struct {
	key   string
	title string
}

// WalkthroughModel shows one tutorial step at a time. It is the presenter
// and notifier of its own walkthrough controller.
type WalkthroughModel struct {
	controller *walkthrough.Controller
	state      *walkthrough.RenderState
	completed  *completion
	lightbox   bool

	viewport       viewport.Model
	keys           walkthroughKeyMap
	help           help.Model
	width          int
	height         int
	wrapWidth      int
	showScreenshot bool

	copyToClipboard func(string) error
	progress        ProgressRecorder
}

func NewWalkthroughModel(catalog *models.Catalog, resolver *walkthrough.ScreenshotResolver, settings *models.Settings) *WalkthroughModel {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	m := &WalkthroughModel{
		viewport:        viewport.New(80, 20),
		keys:            newWalkthroughKeyMap(),
		help:            help.New(),
		wrapWidth:       settings.UI.WrapWidth,
		showScreenshot:  settings.UI.ShowScreenshot,
		copyToClipboard: clipboard.WriteAll,
	}
	m.controller = walkthrough.NewController(catalog, resolver,
		walkthrough.WithPresenter(m),
		walkthrough.WithNotifier(m),
		walkthrough.WithLabels(settings.Labels),
	)
	return m
}

func (m *WalkthroughModel) Init() tea.Cmd {
	return nil
}

// Open starts the tutorial with the given key
func (m *WalkthroughModel) Open(key string) bool {
	m.lightbox = false
	return m.controller.Open(key)
}

// Render implements walkthrough.Presenter
func (m *WalkthroughModel) Render(state walkthrough.RenderState) {
	m.state = &state
	m.updateViewportContent()
	m.viewport.GotoTop()
}

// Hide implements walkthrough.Presenter
func (m *WalkthroughModel) Hide() {
	m.state = nil
	m.lightbox = false
}

// TutorialCompleted implements walkthrough.Notifier
func (m *WalkthroughModel) TutorialCompleted(key, title string) {
	m.completed = &completion{key: key, title: title}
}

// LightboxOpen reports whether the screenshot overlay is shown
func (m *WalkthroughModel) LightboxOpen() bool {
	return m.lightbox
}

func (m *WalkthroughModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.updateViewportSizes()
	m.updateViewportContent()
}

func (m *WalkthroughModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	// The lightbox swallows every key; esc closes only the lightbox
	if m.lightbox {
		if key.Matches(keyMsg, m.keys.Close) || key.Matches(keyMsg, m.keys.Zoom) {
			m.lightbox = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.updateViewportSizes()
		return m, nil

	case key.Matches(keyMsg, m.keys.Zoom):
		if m.state != nil {
			m.lightbox = true
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Copy):
		return m, m.copyScreenshot()

	case key.Matches(keyMsg, m.keys.ScrollUp), key.Matches(keyMsg, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	action := m.keys.action(keyMsg)
	if action == walkthrough.ActionNone {
		debug.Log("walkthrough: no action bound to key %q", keyMsg.String())
		return m, nil
	}

	var current string
	if session, ok := m.controller.Session(); ok {
		current = session.Key
	}

	switch m.controller.Dispatch(action) {
	case walkthrough.Completed:
		done := m.completed
		m.completed = nil
		return m, tea.Batch(
			m.recordCompletion(done),
			func() tea.Msg {
				return StatusMsg(fmt.Sprintf("✓ Tutorial completed: %s. %s", done.title, completionBody))
			},
			func() tea.Msg {
				return SwitchViewMsg{view: tutorialListView, key: done.key}
			},
		)
	case walkthrough.Closed:
		return m, func() tea.Msg {
			return SwitchViewMsg{view: tutorialListView, key: current}
		}
	}

	return m, nil
}

// recordCompletion stores a completion when a recorder is configured. It
// only produces a message on failure.
func (m *WalkthroughModel) recordCompletion(done *completion) tea.Cmd {
	if m.progress == nil {
		return nil
	}
	recorder := m.progress
	return func() tea.Msg {
		if err := recorder.Record(context.Background(), done.key, done.title, time.Now()); err != nil {
			debug.Log("progress: %v", err)
			return StatusMsg(fmt.Sprintf("× Failed to save progress: %v", err))
		}
		return nil
	}
}

func (m *WalkthroughModel) copyScreenshot() tea.Cmd {
	if m.state == nil {
		return nil
	}
	path := m.state.Screenshot
	copyFn := m.copyToClipboard
	return func() tea.Msg {
		if err := copyFn(path); err != nil {
			return StatusMsg(fmt.Sprintf("× Failed to copy to clipboard: %v", err))
		}
		return StatusMsg(path + " → clipboard")
	}
}

func (m *WalkthroughModel) paneWidths() (int, int) {
	total := m.width - 4
	if !m.showScreenshot || total < 70 {
		return total, 0
	}
	right := total / 3
	return total - right - 1, right
}

func (m *WalkthroughModel) updateViewportSizes() {
	left, _ := m.paneWidths()
	height := m.height - headerHeight() - ViewTitleHeight() - 10
	if m.help.ShowAll {
		height -= 2
	}
	if height < 5 {
		height = 5
	}
	width := left - 4
	if width < 20 {
		width = 20
	}
	m.viewport.Width = width
	m.viewport.Height = height
}

func (m *WalkthroughModel) updateViewportContent() {
	if m.state == nil {
		m.viewport.SetContent("")
		return
	}

	width := m.viewport.Width
	if m.wrapWidth > 0 && m.wrapWidth < width {
		width = m.wrapWidth
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(m.state.StepTitle))
	b.WriteString("\n\n")
	if m.state.Body != "" {
		b.WriteString(wordwrap.String(m.state.Body, width))
		b.WriteString("\n\n")
	}
	for i, instruction := range m.state.Instructions {
		prefix := fmt.Sprintf("%d. ", i+1)
		wrapped := wordwrap.String(instruction, width-len(prefix))
		indent := strings.Repeat(" ", len(prefix))
		b.WriteString(CursorStyle.Render(prefix))
		b.WriteString(strings.ReplaceAll(wrapped, "\n", "\n"+indent))
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
}

func (m *WalkthroughModel) View() string {
	if m.state == nil {
		return "No tutorial open\n\nPress 'Esc' to return"
	}
	if m.lightbox {
		return m.lightboxView()
	}

	var b strings.Builder
	b.WriteString(renderHeader(m.width, strings.ToUpper(m.state.TutorialTitle)))
	b.WriteString("\n\n")
	b.WriteString(NewViewTitle(m.state.Counter()).ViewWithAlignment(m.width))
	b.WriteString("\n\n")

	left, right := m.paneWidths()

	var stepPane strings.Builder
	stepPane.WriteString(renderHeading("STEP", left))
	stepPane.WriteString("\n\n")
	stepPane.WriteString(m.viewport.View())
	panes := ActiveBorderStyle.Width(left).Render(ContentPaddingStyle.Render(stepPane.String()))

	if right > 0 {
		var shotPane strings.Builder
		shotPane.WriteString(renderHeading("SCREENSHOT", right))
		shotPane.WriteString("\n\n")
		shotPane.WriteString(DescriptionStyle.Render(wordwrap.String(m.state.Caption(), right-4)))
		shotPane.WriteString("\n\n")
		shotPane.WriteString(NormalStyle.Render(wrapPath(m.state.Screenshot, right-4)))
		shotPane.WriteString("\n\n")
		shotPane.WriteString(EmptyStyle.Render("z zoom · c copy path"))
		panes = lipgloss.JoinHorizontal(lipgloss.Top, panes, " ",
			InactiveBorderStyle.Width(right).Render(ContentPaddingStyle.Render(shotPane.String())))
	}
	b.WriteString(panes)
	b.WriteString("\n")

	b.WriteString(ContentPaddingStyle.Render(m.navigationView()))
	b.WriteString("\n")
	b.WriteString(ContentPaddingStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m *WalkthroughModel) navigationView() string {
	prev := ButtonStyle.Render("← Previous")
	if m.state.PrevDisabled {
		prev = DisabledButtonStyle.Render("← Previous")
	}

	next := ButtonStyle.Render(m.state.NextLabel + " →")
	if m.state.IsLast {
		next = FinishButtonStyle.Render(m.state.NextLabel + " ✓")
	}

	dots := make([]string, m.state.TotalSteps)
	for i := range dots {
		if i == m.state.StepNumber-1 {
			dots[i] = CursorStyle.Render("●")
		} else {
			dots[i] = EmptyStyle.Render("○")
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, prev, "  ", strings.Join(dots, " "), "  ", next)
}

func (m *WalkthroughModel) lightboxView() string {
	width := m.width * 2 / 3
	if width < 30 {
		width = 30
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(m.state.StepTitle))
	b.WriteString("\n\n")
	b.WriteString(wrapPath(m.state.Screenshot, width-4))
	b.WriteString("\n\n")
	b.WriteString(EmptyStyle.Render("esc/z close"))

	box := ActiveBorderStyle.Width(width).Padding(1, 2).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// wrapPath breaks a path at slashes so it fits width
func wrapPath(p string, width int) string {
	if width <= 0 || lipgloss.Width(p) <= width {
		return p
	}
	var lines []string
	var line string
	for _, part := range strings.SplitAfter(p, "/") {
		if line != "" && lipgloss.Width(line+part) > width {
			lines = append(lines, line)
			line = ""
		}
		line += part
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
