package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// maxHistory is the number of matches loaded into the table.
const maxHistory = 100

// historyFilter selects which matches the table shows.
type historyFilter struct {
	title string
	mode  pong.Mode // Empty shows every mode
}

var historyFilters = []historyFilter{
	{"All matches", ""},
	{"Solo vs AI", pong.ModeSolo},
	{"Two players", pong.ModeMulti},
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextFilter, k.PrevFilter},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel shows the matches finished during this session.
type HistoryModel struct {
	ledger   *storage.Ledger
	filter   int
	records  []storage.MatchRecord
	tally    storage.Tally
	loadErr  error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
	back     bool
}

// NewHistoryModel creates the history screen.
func NewHistoryModel(ledger *storage.Ledger, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		ledger: ledger,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized for the screen.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Mode", Width: 12},
		{Title: "Level", Width: 11},
		{Title: "Winner", Width: 10},
		{Title: "Score", Width: 8},
		{Title: "Length", Width: 8},
		{Title: "Finished", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the records and tally for the current filter.
func (m *HistoryModel) load() {
	m.records, m.tally, m.loadErr = nil, storage.Tally{}, nil
	if m.ledger != nil {
		mode := historyFilters[m.filter].mode
		records, err := m.ledger.Recent(maxHistory)
		if err == nil {
			m.tally, err = m.ledger.Wins(mode)
		}
		if err != nil {
			m.loadErr = err
		}
		for _, r := range records {
			if mode == "" || r.Mode == mode {
				m.records = append(m.records, r)
			}
		}
	}
	m.table.SetRows(HistoryRows(m.records))
	m.table.GotoTop()
}

// HistoryRows formats records as table rows.
func HistoryRows(records []storage.MatchRecord) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		mode := "Two players"
		level := "-"
		if r.Mode == pong.ModeSolo {
			mode = "Solo"
			level = r.Difficulty
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			mode,
			level,
			r.WinnerName,
			fmt.Sprintf("%d - %d", r.Score1, r.Score2),
			formatTicks(r.Ticks),
			r.FinishedAt.Local().Format("15:04:05"),
		}
	}
	return rows
}

// formatTicks renders a match length at 60 ticks per second as m:ss.
func formatTicks(ticks int64) string {
	secs := ticks / 60
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, nil

		case key.Matches(msg, m.keys.NextFilter):
			m.filter = (m.filter + 1) % len(historyFilters)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.filter = (m.filter + len(historyFilters) - 1) % len(historyFilters)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(HistoryRows(m.records))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("MATCH HISTORY - %s", historyFilters[m.filter].title)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("Player 1: %d wins   Opponents: %d wins   Played: %d",
		m.tally.Left, m.tally.Right, m.tally.Total())
	b.WriteString(centerText(summary, m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.loadErr != nil {
		b.WriteString(dimStyle.Render("Could not load history: " + m.loadErr.Error()))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.records) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No matches finished yet.\nResults are kept until you quit.")
	}
	return m.table.View()
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user wants to go back to the menu.
func (m HistoryModel) BackToMenu() bool {
	return m.back
}
