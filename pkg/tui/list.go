package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/ventiq/ventiq-terminal/pkg/catalog"
	"github.com/ventiq/ventiq-terminal/pkg/models"
)

var categoryLabels = map[string]string{
	models.CategorySeller: "VentIQ Seller",
	models.CategoryAdmin:  "VentIQ Admin",
}

var categoryDescriptions = map[string]string{
	models.CategorySeller: "Point of sale app for sellers",
	models.CategoryAdmin:  "Web back office for administrators",
}

type listKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Open   key.Binding
	Quit   key.Binding
}

func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Open, k.Quit}
}

func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newListKeyMap() listKeyMap {
	return listKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Switch: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "seller/admin")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start tutorial")),
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// TutorialListModel lists the tutorials of one category at a time
type TutorialListModel struct {
	catalog    *models.Catalog
	categories []string
	category   int
	cursors    map[string]int
	keys       listKeyMap
	help       help.Model
	width      int
	height     int
}

func NewTutorialListModel(c *models.Catalog) *TutorialListModel {
	return &TutorialListModel{
		catalog:    c,
		categories: catalog.Categories(),
		cursors:    make(map[string]int),
		keys:       newListKeyMap(),
		help:       help.New(),
	}
}

func (m *TutorialListModel) Init() tea.Cmd {
	return nil
}

func (m *TutorialListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
}

// Category returns the active category
func (m *TutorialListModel) Category() string {
	return m.categories[m.category]
}

// Selected returns the tutorial under the cursor
func (m *TutorialListModel) Selected() (*models.Tutorial, bool) {
	items := m.items()
	cursor := m.cursors[m.Category()]
	if cursor < 0 || cursor >= len(items) {
		return nil, false
	}
	return items[cursor], true
}

// SelectKey switches to the tutorial's category and moves the cursor to it
func (m *TutorialListModel) SelectKey(key string) {
	t, ok := m.catalog.Get(key)
	if !ok {
		return
	}
	for i, c := range m.categories {
		if c != t.Category {
			continue
		}
		m.category = i
		for j, item := range m.catalog.ByCategory(c) {
			if item.Key == key {
				m.cursors[c] = j
			}
		}
	}
}

func (m *TutorialListModel) items() []*models.Tutorial {
	return m.catalog.ByCategory(m.Category())
}

func (m *TutorialListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	category := m.Category()
	count := len(m.items())

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Switch):
		if keyMsg.String() == "shift+tab" {
			m.category = (m.category + len(m.categories) - 1) % len(m.categories)
		} else {
			m.category = (m.category + 1) % len(m.categories)
		}

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursors[category] > 0 {
			m.cursors[category]--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursors[category] < count-1 {
			m.cursors[category]++
		}

	case key.Matches(keyMsg, m.keys.Open):
		t, ok := m.Selected()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return SwitchViewMsg{view: walkthroughView, key: t.Key}
		}
	}

	return m, nil
}

func (m *TutorialListModel) View() string {
	var b strings.Builder

	b.WriteString(renderHeader(m.width, "TUTORIALS"))
	b.WriteString("\n\n")

	// Category tabs
	var tabs []string
	for i, c := range m.categories {
		label := fmt.Sprintf("%s (%d)", categoryLabels[c], len(m.catalog.ByCategory(c)))
		tabs = append(tabs, GetTabStyle(i == m.category).Render(label))
	}
	b.WriteString(ContentPaddingStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...)))
	b.WriteString("\n\n")

	paneWidth := m.width - 4
	if paneWidth < 20 {
		paneWidth = 20
	}

	var pane strings.Builder
	category := m.Category()
	pane.WriteString(renderHeading(strings.ToUpper(category), paneWidth))
	pane.WriteString("\n")
	pane.WriteString(DescriptionStyle.Render(categoryDescriptions[category]))
	pane.WriteString("\n\n")

	items := m.items()
	if len(items) == 0 {
		pane.WriteString(EmptyStyle.Render("No tutorials in this category"))
	}
	cursor := m.cursors[category]
	for i, t := range items {
		steps := fmt.Sprintf("%d steps", len(t.Steps))
		titleWidth := paneWidth - 14
		title := lipgloss.NewStyle().Width(titleWidth).Render(truncate.StringWithTail(t.Title, uint(titleWidth), "..."))
		line := title + " " + steps
		if i == cursor {
			pane.WriteString(CursorStyle.Render("▸ ") + SelectedStyle.Render(line))
		} else {
			pane.WriteString("  " + NormalStyle.Render(line))
		}
		pane.WriteString("\n")
	}

	b.WriteString(ActiveBorderStyle.Width(paneWidth).Render(ContentPaddingStyle.Render(pane.String())))
	b.WriteString("\n")
	b.WriteString(ContentPaddingStyle.Render(m.help.View(m.keys)))

	return b.String()
}
