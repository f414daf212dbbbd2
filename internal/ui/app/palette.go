package app

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pickpack/internal/ui/components"
)

// paletteCommand binds a palette entry to its argument check and action.
// check sees the live game, so a line is rejected while it is typed.
type paletteCommand struct {
	components.Command
	arity int
	check func(m Model, args []string) string
	run   func(m Model, args []string) (Model, tea.Cmd)
}

var paletteCommands = []paletteCommand{
	{
		Command: components.Command{Name: "start", Help: "start a round"},
		check: func(m Model, _ []string) string {
			if m.game.Snapshot().Active {
				return "round already running, use restart"
			}
			return ""
		},
		run: func(m Model, _ []string) (Model, tea.Cmd) {
			var cmd tea.Cmd
			m.game, cmd = m.game.Start()
			return m, cmd
		},
	},
	{
		Command: components.Command{Name: "restart", Help: "drop this round and start over"},
		run: func(m Model, _ []string) (Model, tea.Cmd) {
			var cmd tea.Cmd
			m.game, cmd = m.game.Restart()
			return m, cmd
		},
	},
	{
		Command: components.Command{Name: "pick", Args: "<cell>", Help: "pick a cell by number"},
		arity:   1,
		check:   checkCell,
		run: func(m Model, args []string) (Model, tea.Cmd) {
			id, _ := strconv.Atoi(args[0])
			var cmd tea.Cmd
			m.game, cmd = m.game.PickCell(id)
			return m, cmd
		},
	},
	{
		Command: components.Command{Name: "help", Help: "show key bindings"},
		run: func(m Model, _ []string) (Model, tea.Cmd) {
			m.showHelp = true
			return m, nil
		},
	},
	{
		Command: components.Command{Name: "quit", Help: "leave the game"},
		run: func(m Model, _ []string) (Model, tea.Cmd) {
			return m.quit()
		},
	},
}

func paletteEntries() []components.Command {
	out := make([]components.Command, len(paletteCommands))
	for i, c := range paletteCommands {
		out[i] = c.Command
	}
	return out
}

func lookupCommand(name string) (paletteCommand, bool) {
	for _, c := range paletteCommands {
		if c.Name == name {
			return c, true
		}
	}
	return paletteCommand{}, false
}

// checkCell accepts a cell number on the current grid.
func checkCell(m Model, args []string) string {
	snap := m.game.Snapshot()
	if !snap.Active {
		return "no round running"
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id < 0 || id >= len(snap.Grid) {
		return fmt.Sprintf("cell must be 0-%d", len(snap.Grid)-1)
	}
	return ""
}

// checkPalette returns what is wrong with the line, or "" when it can run.
// A command name still being typed is not a problem.
func (m Model) checkPalette(input string) string {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return ""
	}
	c, ok := lookupCommand(fields[0])
	if !ok {
		if len(fields) == 1 && !strings.HasSuffix(input, " ") {
			for _, other := range paletteCommands {
				if strings.HasPrefix(other.Name, fields[0]) {
					return ""
				}
			}
		}
		return "unknown command: " + fields[0]
	}
	args := fields[1:]
	if len(args) != c.arity {
		return "usage: " + c.Usage()
	}
	if c.check != nil {
		return c.check(m, args)
	}
	return ""
}

func (m Model) executePalette(msg components.PaletteSubmitMsg) (Model, tea.Cmd) {
	name := strings.ToLower(msg.Name)
	c, ok := lookupCommand(name)
	if !ok {
		m.game.SetStatus("unknown command: " + name)
		return m, nil
	}
	// The round may have ended while the palette was open.
	line := strings.Join(append([]string{name}, msg.Args...), " ")
	if problem := m.checkPalette(line); problem != "" {
		m.game.SetStatus(problem)
		return m, nil
	}
	return c.run(m, msg.Args)
}
