package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cookie-run/internal/catalog"
)

// Gallery layout constants
const (
	minWidthForCard = 80 // Minimum width to show the card beside the table
	cardWidth       = 34
)

// rarityColors maps rarity to badge colors.
var rarityColors = map[catalog.Rarity]lipgloss.Color{
	catalog.Common:    lipgloss.Color("245"),
	catalog.Rare:      lipgloss.Color("33"),
	catalog.Epic:      lipgloss.Color("141"),
	catalog.Legendary: lipgloss.Color("220"),
}

// GalleryKeyMap defines the key bindings for the character gallery.
type GalleryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GalleryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k GalleryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Back, k.Quit},
	}
}

// DefaultGalleryKeyMap returns default key bindings.
func DefaultGalleryKeyMap() GalleryKeyMap {
	return GalleryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "choose"),
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

// GalleryModel is the Bubble Tea model for the character gallery.
type GalleryModel struct {
	chars    []catalog.Character
	selected int // Chosen character, always unlocked
	table    table.Model
	help     help.Model
	keys     GalleryKeyMap
	width    int
	height   int
	notice   string
	quitting bool
	done     bool
}

// NewGalleryModel creates a gallery with the cursor on the current choice.
func NewGalleryModel(selected, width, height int) GalleryModel {
	selected, _ = catalog.Select(selected)

	m := GalleryModel{
		chars:    catalog.All(),
		selected: selected,
		keys:     DefaultGalleryKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	m.table.SetCursor(selected)
	return m
}

// createTable creates the character table.
func (m *GalleryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: " ", Width: 2},
		{Title: "Name", Width: 11},
		{Title: "Rarity", Width: 10},
		{Title: "Speed", Width: 5},
		{Title: "Jump", Width: 5},
		{Title: "Status", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(len(m.chars)+3), // Header and its border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("204")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows refreshes rows after the selection changes.
func (m *GalleryModel) updateTableRows() {
	rows := make([]table.Row, len(m.chars))
	for i, c := range m.chars {
		glyph, status := string(c.Glyph), ""
		switch {
		case !c.Unlocked:
			glyph, status = "#", "locked"
		case i == m.selected:
			status = "selected"
		}
		rows[i] = table.Row{
			glyph,
			c.Name,
			c.Rarity.String(),
			fmt.Sprintf("%d", c.Speed),
			fmt.Sprintf("%d", c.Jump),
			status,
		}
	}
	m.table.SetRows(rows)
}

// Init initializes the gallery model.
func (m GalleryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the gallery.
func (m GalleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			return m.choose(m.table.Cursor())

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.notice = ""
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// choose selects the character at i. Locked characters stay unselectable.
func (m GalleryModel) choose(i int) (tea.Model, tea.Cmd) {
	if !catalog.Selectable(i) {
		if c, ok := catalog.Get(i); ok {
			m.notice = c.Name + " is locked"
		}
		return m, nil
	}
	m.selected = i
	m.done = true
	m.updateTableRows()
	return m, tea.Quit
}

// View renders the gallery.
func (m GalleryModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("204")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("CHOOSE YOUR RUNNER", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableView := tableStyle.Render(m.table.View())
	card := m.renderCard(m.table.Cursor())

	if m.width >= minWidthForCard {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableView, "  ", card))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, tableView, card))
	}
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.notice))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderCard renders the detail card for the character at i.
func (m GalleryModel) renderCard(i int) string {
	c, ok := catalog.Get(i)
	if !ok {
		return ""
	}

	color := rarityColors[c.Rarity]
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Width(cardWidth).
		Padding(0, 1)
	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(color).
		Padding(0, 1).
		Render(strings.ToUpper(c.Rarity.String()))

	var b strings.Builder
	if c.Unlocked {
		fmt.Fprintf(&b, "%s  %s\n", c.Emoji, lipgloss.NewStyle().Bold(true).Render(c.Name))
	} else {
		fmt.Fprintf(&b, "#  %s\n", lipgloss.NewStyle().Bold(true).Render(c.Name))
	}
	b.WriteString(badge)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Italic(true).Render(c.Description))
	b.WriteString("\n\n")

	switch {
	case !c.Unlocked:
		b.WriteString("LOCKED")
	default:
		fmt.Fprintf(&b, "Speed %s\n", statBar(c.Speed))
		fmt.Fprintf(&b, "Jump  %s", statBar(c.Jump))
		if i == m.selected {
			b.WriteString("\n\n")
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Render("✓ SELECTED"))
		}
	}

	return cardStyle.Render(b.String())
}

// statBar draws a fixed-width bar filled to n.
func statBar(n int) string {
	if n < 0 {
		n = 0
	}
	if n > catalog.StatMax {
		n = catalog.StatMax
	}
	return strings.Repeat("■", n) + strings.Repeat("□", catalog.StatMax-n)
}

// Selected returns the chosen character index.
func (m GalleryModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user wants to quit entirely.
func (m GalleryModel) IsQuitting() bool {
	return m.quitting
}

// GalleryResult holds the outcome of the gallery screen.
type GalleryResult struct {
	Selected int
	Quit     bool
}

// RunGallery runs the character gallery starting from the current choice.
func RunGallery(selected, width, height int) (GalleryResult, error) {
	p := tea.NewProgram(NewGalleryModel(selected, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return GalleryResult{Selected: selected}, fmt.Errorf("tui: gallery: %w", err)
	}

	m, ok := finalModel.(GalleryModel)
	if !ok {
		return GalleryResult{Selected: selected, Quit: true}, nil
	}
	return GalleryResult{Selected: m.Selected(), Quit: m.IsQuitting()}, nil
}
