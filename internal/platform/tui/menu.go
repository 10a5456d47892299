package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// MenuChoice is what the user picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceSolo
	ChoiceMulti
	ChoiceHistory
	ChoiceQuit
)

type menuItem int

const (
	itemSolo menuItem = iota
	itemMulti
	itemDifficulty
	itemScheme
	itemBallSpeed
	itemPaddleSpeed
	itemWinScore
	itemHistory
	itemQuit
)

var menuItems = []menuItem{
	itemSolo, itemMulti, itemDifficulty, itemScheme,
	itemBallSpeed, itemPaddleSpeed, itemWinScore,
	itemHistory, itemQuit,
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	settingsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// MenuModel is the main menu: game modes plus the settings panel.
type MenuModel struct {
	settings  *config.Store
	keyMapper *KeyMapper
	cursor    int
	width     int
	height    int
	choice    MenuChoice
	err       error
}

// NewMenuModel creates a new menu model.
func NewMenuModel(settings *config.Store, width, height int) MenuModel {
	return MenuModel{
		settings:  settings,
		keyMapper: NewKeyMapper(),
		width:     width,
		height:    height,
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
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = ChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.err = m.adjust(menuItems[m.cursor], -1)

	case MenuActionRight:
		m.err = m.adjust(menuItems[m.cursor], 1)

	case MenuActionSelect:
		switch item := menuItems[m.cursor]; item {
		case itemSolo:
			m.choice = ChoiceSolo
		case itemMulti:
			m.choice = ChoiceMulti
		case itemHistory:
			m.choice = ChoiceHistory
		case itemQuit:
			m.choice = ChoiceQuit
		default:
			m.err = m.adjust(item, 1)
		}
	}
	return m, nil
}

// adjust changes the setting under the cursor by one step in dir.
func (m MenuModel) adjust(item menuItem, dir int) error {
	step := float64(dir)
	return m.settings.Update(func(s *config.Settings) {
		switch item {
		case itemDifficulty:
			if dir > 0 {
				s.Difficulty = s.Difficulty.Next()
			} else {
				s.Difficulty = s.Difficulty.Prev()
			}
		case itemScheme:
			s.ControlScheme = s.ControlScheme.Next()
		case itemBallSpeed:
			s.BallSpeed += step
		case itemPaddleSpeed:
			s.PaddleSpeed += step
		case itemWinScore:
			s.WinScore += dir
		}
	})
}

func (m MenuModel) label(item menuItem, s config.Settings) string {
	switch item {
	case itemSolo:
		return "Solo vs AI"
	case itemMulti:
		return "Two players"
	case itemDifficulty:
		return fmt.Sprintf("Difficulty:   < %s >", s.Difficulty)
	case itemScheme:
		return fmt.Sprintf("Keyboard:     < %s >", strings.ToUpper(string(s.ControlScheme)))
	case itemBallSpeed:
		return fmt.Sprintf("Ball speed:   < %g >", s.BallSpeed)
	case itemPaddleSpeed:
		return fmt.Sprintf("Paddle speed: < %g >", s.PaddleSpeed)
	case itemWinScore:
		return fmt.Sprintf("Win score:    < %d >", s.WinScore)
	case itemHistory:
		return "Match history"
	case itemQuit:
		return "Quit"
	}
	return ""
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != ChoiceNone {
		return ""
	}

	s := m.settings.Settings()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  P O N G  "), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		if item == itemDifficulty || item == itemHistory {
			b.WriteString("\n")
		}
		line := "  " + m.label(item, s)
		switch {
		case i == m.cursor:
			line = cursorStyle.Render("> " + m.label(item, s))
		case item >= itemDifficulty && item <= itemWinScore:
			line = settingsStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(pong.ControlsHint(s.ControlScheme, pong.ModeMulti)), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Up/Down: navigate  Left/Right: change  Enter: select  Q: quit"), m.width))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(centerText(m.err.Error(), m.width))
		b.WriteString("\n")
	}

	return b.String()
}

// Choice returns what the user picked, or ChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// centerText centers text within given width, ignoring escape codes.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
