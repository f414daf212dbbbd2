package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pickpack/internal/ui/components"
	"pickpack/internal/ui/theme"
	warehouseview "pickpack/internal/ui/views/warehouse"
)

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	game    warehouseview.KeyMap
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
}

func defaultKeys(game warehouseview.KeyMap) keyMap {
	return keyMap{
		game:    game,
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.game.Start, k.game.Pick, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.game.Up, k.game.Down, k.game.Left, k.game.Right},
		{k.game.Pick, k.game.Start, k.game.Restart},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It frames the game view, owns the
// help overlay, the command palette and the status bar, and tears the view
// down on quit. Game rules live entirely behind the view's port.
type Model struct {
	game     warehouseview.Model
	keys     keyMap
	help     help.Model
	palette  components.Palette
	showHelp bool
	quitting bool
	width    int
	height   int
}

func NewModel(game warehouseview.Port) Model {
	view := warehouseview.New(game)
	return Model{
		game:    view,
		keys:    defaultKeys(view.Keys()),
		help:    help.New(),
		palette: components.NewPalette(paletteEntries()),
	}
}

func (m Model) Init() tea.Cmd {
	return m.game.Init()
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The palette takes keyboard and mouse input while open. Everything
	// else, the countdown included, still reaches the game.
	if m.palette.Visible() {
		var cmd, gameCmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
		default:
			m.game, gameCmd = m.game.Update(msg)
		}
		m.palette.SetProblem(m.checkPalette(m.palette.Value()))
		return m, tea.Batch(cmd, gameCmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.palette.SetWidth(min(msg.Width-4, 48))
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg)

	case components.PaletteCancelMsg:
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if key.Matches(msg, m.keys.Help) || msg.String() == "esc" {
				m.showHelp = false
			}
			if key.Matches(msg, m.keys.Quit) {
				return m.quit()
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Palette):
			return m, m.palette.Open()
		}

	case tea.MouseMsg:
		if m.showHelp {
			return m, nil
		}
		// The view hit-tests in its own frame.
		msg.X -= theme.App.GetPaddingLeft()
		msg.Y -= theme.App.GetPaddingTop()
		var cmd tea.Cmd
		m.game, cmd = m.game.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.game, cmd = m.game.Update(msg)
	return m, cmd
}

func (m Model) quit() (Model, tea.Cmd) {
	var stop tea.Cmd
	m.game, stop = m.game.Teardown()
	m.quitting = true
	return m, tea.Sequence(stop, tea.Quit)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	statusBar := m.renderStatusBar()

	var content string
	switch {
	case m.palette.Visible():
		content = theme.App.Render(m.palette.View())
	case m.showHelp:
		content = theme.App.Render(theme.Title.Render("Keys") + "\n\n" + m.help.FullHelpView(m.keys.FullHelp()))
	default:
		content = theme.App.Render(m.game.View())
	}

	if m.height > 0 {
		contentH := m.height - lipgloss.Height(statusBar)
		if contentH < 1 {
			contentH = 1
		}
		content = lipgloss.NewStyle().Height(contentH).MaxHeight(contentH).Render(content)
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m Model) renderStatusBar() string {
	left := m.game.Status()
	if m.game.Ticking() {
		left = theme.Hot.Render("● ") + left
	}
	right := m.help.ShortHelpView(m.keys.ShortHelp())
	width := m.width
	if width <= 0 {
		width = lipgloss.Width(left) + lipgloss.Width(right) + 2
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().Background(theme.Mantle).Width(width).Render(bar)
}
