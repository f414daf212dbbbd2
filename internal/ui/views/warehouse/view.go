package warehouse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	gamedto "pickpack/internal/modules/game/dto"
	"pickpack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal interface this view needs from the game use-case.
// Calls are made inline from Update: they touch only in-memory state, and
// keeping them on the update loop serializes picks against ticks.
type Port interface {
	Start(ctx context.Context) (gamedto.SnapshotOutput, error)
	Pick(ctx context.Context, cellID int) (gamedto.PickOutput, error)
	Tick(ctx context.Context) (gamedto.TickOutput, error)
	Snapshot(ctx context.Context) (gamedto.SnapshotOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// LoadedMsg carries the session snapshot fetched on Init.
type LoadedMsg struct {
	Snapshot gamedto.SnapshotOutput
	Err      error
}

// ─── layout ──────────────────────────────────────────────────────────────────

const (
	title    = "Quetico 3PL Warehouse Pick & Pack"
	startBtn = "Start Game"

	cellWidth       = 14
	cellOuterWidth  = cellWidth + 2
	cellOuterHeight = 3
	cellGap         = 1
	cellPitch       = cellOuterWidth + cellGap
	defaultColumns  = 4
	tickInterval    = time.Second
)

var (
	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Green).
			Foreground(theme.Green).
			Bold(true).
			Align(lipgloss.Center)

	orderStyle = theme.PaneActive

	summaryStyle = theme.Pane.BorderForeground(theme.Yellow).Align(lipgloss.Center)

	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			Bold(true)
)

// ─── keys ────────────────────────────────────────────────────────────────────

type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Pick    key.Binding
	Start   key.Binding
	Restart key.Binding
}

func DefaultKeys() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Pick:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "pick / start")),
		Start:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start game")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model renders the pick-and-pack game and owns its countdown. The
// countdown is a bubbles timer whose ticks carry its id; replacing or
// stopping it makes every tick still in flight stale.
type Model struct {
	port    Port
	keys    KeyMap
	snap    gamedto.SnapshotOutput
	timer   timer.Model
	ticking bool
	cursor  int
	status  string
}

func New(port Port) Model {
	return Model{
		port:   port,
		keys:   DefaultKeys(),
		status: "press s or click Start Game",
	}
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.port.Snapshot(context.Background())
		return LoadedMsg{Snapshot: snap, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		if msg.Err != nil {
			m.status = "load: " + msg.Err.Error()
			return m, nil
		}
		m.snap = msg.Snapshot

	case timer.TickMsg:
		return m.onTick(msg)

	case timer.StartStopMsg:
		if msg.ID != m.timer.ID() {
			return m, nil
		}
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		if !m.ticking {
			return m, nil
		}
		return m, cmd

	case tea.KeyMsg:
		return m.onKey(msg)

	case tea.MouseMsg:
		return m.onMouse(msg)
	}
	return m, nil
}

func (m Model) onKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Restart):
		return m.start()
	case key.Matches(msg, m.keys.Start):
		if !m.snap.Active {
			return m.start()
		}
	case key.Matches(msg, m.keys.Pick):
		// Enter on a fresh screen starts the first round. Once a round has
		// ended the grid stays disabled until s, r or the Start control.
		if m.snap.Phase == "" || m.snap.Phase == "idle" {
			return m.start()
		}
		return m.pick(m.cursor)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)
	}
	return m, nil
}

// onMouse expects coordinates relative to the view's top-left corner.
func (m Model) onMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		if id, ok := m.cellAt(msg.X, msg.Y); ok && m.snap.Active {
			m.cursor = id
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.onStartControl(msg.X, msg.Y) {
			return m.start()
		}
		if id, ok := m.cellAt(msg.X, msg.Y); ok {
			m.cursor = id
			return m.pick(id)
		}
	}
	return m, nil
}

func (m Model) start() (Model, tea.Cmd) {
	snap, err := m.port.Start(context.Background())
	if err != nil {
		m.status = "start: " + err.Error()
		return m, nil
	}
	m.snap = snap
	m.cursor = 0
	m.status = "game on"
	m.timer = timer.NewWithInterval(time.Duration(snap.TimeRemaining)*time.Second, tickInterval)
	m.ticking = true
	return m, m.timer.Init()
}

func (m Model) pick(cellID int) (Model, tea.Cmd) {
	out, err := m.port.Pick(context.Background(), cellID)
	if err != nil {
		m.status = "pick: " + err.Error()
		return m, nil
	}
	if !out.Applied {
		return m, nil
	}
	m.snap = out.Snapshot
	switch {
	case out.OrderCompleted:
		m.status = fmt.Sprintf("order packed! +%d", out.ScoreDelta)
	case out.Matched:
		m.status = fmt.Sprintf("picked +%d", out.ScoreDelta)
	default:
		m.status = fmt.Sprintf("wrong item %d", out.ScoreDelta)
	}
	return m, nil
}

func (m Model) onTick(msg timer.TickMsg) (Model, tea.Cmd) {
	if !m.ticking || msg.ID != m.timer.ID() {
		return m, nil
	}
	out, err := m.port.Tick(context.Background())
	if err != nil {
		m.status = "tick: " + err.Error()
		return m.stop()
	}
	m.snap = out.Snapshot
	if !out.Snapshot.Active {
		m.status = "time's up"
		return m.stop()
	}
	var cmd tea.Cmd
	m.timer, cmd = m.timer.Update(msg)
	return m, cmd
}

func (m Model) stop() (Model, tea.Cmd) {
	if !m.ticking {
		return m, nil
	}
	m.ticking = false
	return m, m.timer.Stop()
}

// Teardown stops the countdown before the view is discarded.
func (m Model) Teardown() (Model, tea.Cmd) {
	return m.stop()
}

func (m *Model) moveCursor(dx, dy int) {
	n := len(m.snap.Grid)
	if n == 0 || !m.snap.Active {
		return
	}
	cols := m.columns()
	row, col := m.cursor/cols, m.cursor%cols
	col = (col + dx + cols) % cols
	rows := (n + cols - 1) / cols
	row = (row + dy + rows) % rows
	if next := row*cols + col; next < n {
		m.cursor = next
	}
}

// ─── commands ────────────────────────────────────────────────────────────────

// Start begins a round unless one is already running.
func (m Model) Start() (Model, tea.Cmd) {
	if m.snap.Active {
		m.status = "round already running, use restart"
		return m, nil
	}
	return m.start()
}

// Restart discards the current round and begins a fresh one.
func (m Model) Restart() (Model, tea.Cmd) {
	return m.start()
}

// PickCell picks the cell with the given id and moves focus to it.
func (m Model) PickCell(cellID int) (Model, tea.Cmd) {
	if !m.snap.Active {
		m.status = "no round running"
		return m, nil
	}
	if cellID < 0 || cellID >= len(m.snap.Grid) {
		m.status = fmt.Sprintf("no cell %d", cellID)
		return m, nil
	}
	m.cursor = cellID
	return m.pick(cellID)
}

// SetStatus replaces the status line.
func (m *Model) SetStatus(status string) { m.status = status }

// ─── accessors ───────────────────────────────────────────────────────────────

func (m Model) Keys() KeyMap { return m.keys }

func (m Model) Status() string { return m.status }

func (m Model) Snapshot() gamedto.SnapshotOutput { return m.snap }

// Ticking reports whether the countdown is live.
func (m Model) Ticking() bool { return m.ticking }

// ─── view ────────────────────────────────────────────────────────────────────

type layout struct {
	header   string
	control  string
	grid     string
	summary  string
	controlY int
	gridY    int
}

func (m Model) layout() layout {
	l := layout{
		header:  m.headerView(),
		control: m.controlView(),
		grid:    m.gridView(),
		summary: m.summaryView(),
	}
	l.controlY = lipgloss.Height(l.header) + 1
	l.gridY = l.controlY
	if l.control != "" {
		l.gridY += lipgloss.Height(l.control) + 1
	}
	return l
}

func (m Model) View() string {
	l := m.layout()
	parts := []string{l.header, ""}
	if l.control != "" {
		parts = append(parts, l.control, "")
	}
	parts = append(parts, l.grid)
	if l.summary != "" {
		parts = append(parts, "", l.summary)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) gridWidth() int {
	cols := m.columns()
	return cols*cellOuterWidth + (cols-1)*cellGap
}

func (m Model) columns() int {
	if m.snap.GridColumns > 0 {
		return m.snap.GridColumns
	}
	return defaultColumns
}

func (m Model) headerView() string {
	w := m.gridWidth()
	center := lipgloss.NewStyle().Width(w).Align(lipgloss.Center)
	head := center.Render(theme.Title.Render(title))
	sub := center.Render(theme.Muted.Render(fmt.Sprintf("Can you beat %d points in 60 seconds?", m.target())))

	score := theme.Hot.Render(fmt.Sprintf("Score: %d", m.snap.Score))
	clock := theme.Info.Render(fmt.Sprintf("Time: %ds", m.snap.TimeRemaining))
	gap := w - lipgloss.Width(score) - lipgloss.Width(clock)
	if gap < 1 {
		gap = 1
	}
	readouts := score + strings.Repeat(" ", gap) + clock
	return lipgloss.JoinVertical(lipgloss.Left, head, sub, "", readouts)
}

func (m Model) controlView() string {
	w := m.gridWidth()
	switch {
	case !m.snap.Active:
		return buttonStyle.Width(w - 2).Render(startBtn)
	case m.snap.HasOrder:
		body := theme.Title.Render("Current Order:") + "\n" +
			fmt.Sprintf("Pick %d %s", m.snap.Order.Remaining, m.snap.Order.Item)
		return orderStyle.Width(w - 2).Render(body)
	}
	return ""
}

func (m Model) gridView() string {
	if len(m.snap.Grid) == 0 {
		return ""
	}
	cols := m.columns()
	var rows []string
	for start := 0; start < len(m.snap.Grid); start += cols {
		end := start + cols
		if end > len(m.snap.Grid) {
			end = len(m.snap.Grid)
		}
		var cells []string
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", cellGap))
			}
			cells = append(cells, m.cellView(i, m.snap.Grid[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) cellView(idx int, cell gamedto.CellOutput) string {
	if !m.snap.Active {
		return cellStyle.
			Foreground(theme.Overlay0).
			Background(theme.Surface0).
			BorderForeground(theme.Surface1).
			Render(cell.Item)
	}
	fill := theme.TagColor(cell.Tag)
	style := cellStyle.Foreground(theme.Base).Background(fill).BorderForeground(fill)
	if idx == m.cursor {
		style = style.BorderStyle(lipgloss.ThickBorder()).BorderForeground(theme.Lavender)
	}
	return style.Render(cell.Item)
}

func (m Model) summaryView() string {
	o := m.snap.Outcome
	if !o.Show {
		return ""
	}
	var msg string
	if o.Beat {
		msg = theme.Success.Render("Congratulations! You beat the challenge! 🏆")
	} else {
		msg = theme.Info.Render(fmt.Sprintf("Try again to beat %d points!", m.target()))
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Hot.Render("Game Over!"),
		fmt.Sprintf("Final Score: %d", o.FinalScore),
		msg,
		theme.Muted.Render(fmt.Sprintf("Orders packed: %d", m.snap.OrdersCompleted)),
	)
	return summaryStyle.Width(m.gridWidth() - 2).Render(body)
}

func (m Model) target() int {
	if m.snap.Outcome.TargetScore > 0 {
		return m.snap.Outcome.TargetScore
	}
	return 500
}

// ─── hit testing ─────────────────────────────────────────────────────────────

func (m Model) onStartControl(x, y int) bool {
	if m.snap.Active {
		return false
	}
	l := m.layout()
	return x >= 0 && x < lipgloss.Width(l.control) &&
		y >= l.controlY && y < l.controlY+lipgloss.Height(l.control)
}

// cellAt maps view coordinates to a cell id. Gaps between cells miss.
func (m Model) cellAt(x, y int) (int, bool) {
	n := len(m.snap.Grid)
	if n == 0 || x < 0 {
		return 0, false
	}
	l := m.layout()
	if y < l.gridY {
		return 0, false
	}
	if x%cellPitch >= cellOuterWidth {
		return 0, false
	}
	cols := m.columns()
	col := x / cellPitch
	row := (y - l.gridY) / cellOuterHeight
	if col >= cols {
		return 0, false
	}
	id := row*cols + col
	if id >= n {
		return 0, false
	}
	return id, true
}
