package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-glide/internal/games/snake"
	"github.com/vovakirdan/snake-glide/internal/storage"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuScores
	MenuQuit
)

// MenuItem represents a selectable menu entry.
type MenuItem struct {
	Label  string
	Choice MenuChoice
}

var defaultMenuItems = []MenuItem{
	{Label: "Play", Choice: MenuPlay},
	{Label: "High scores", Choice: MenuScores},
	{Label: "Quit", Choice: MenuQuit},
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuItemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// MenuModel is the Bubble Tea model for the main menu.
// It never quits the program itself; the owner reads Choice.
type MenuModel struct {
	items  []MenuItem
	cursor int
	width  int
	height int
	best   int
	keys   MenuKeyMap
	help   help.Model
	choice MenuChoice
}

// NewMenuModel creates a new menu model. The best score is read from store
// when one is available.
func NewMenuModel(store *storage.Store, width, height int) MenuModel {
	best := 0
	if store != nil {
		if v, err := store.BestScore(snake.GameID); err == nil {
			best = v
		}
	}

	h := help.New()
	h.Width = width

	return MenuModel{
		items:  defaultMenuItems,
		width:  width,
		height: height,
		best:   best,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keys.MenuAction(msg) {
		case MenuActionQuit:
			m.choice = MenuQuit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			m.choice = m.items[m.cursor].Choice
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("G L I D E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(helpStyle.Render(fmt.Sprintf("Best score: %d", m.best)), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + menuItemStyle.Render(item.Label)
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.Label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the picked entry, or MenuNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
