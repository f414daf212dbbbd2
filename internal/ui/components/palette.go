package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pickpack/internal/ui/theme"
)

// Command is one palette entry. Args is the usage suffix shown after the
// name, e.g. "<cell>".
type Command struct {
	Name string
	Args string
	Help string
}

func (c Command) Usage() string {
	if c.Args == "" {
		return c.Name
	}
	return c.Name + " " + c.Args
}

// PaletteSubmitMsg carries an accepted command line split into the command
// name and its arguments.
type PaletteSubmitMsg struct {
	Name string
	Args []string
}

type PaletteCancelMsg struct{}

var (
	paletteStyle = theme.PaneActive.
			BorderForeground(theme.Peach).
			Background(theme.Mantle)

	usageStyle   = lipgloss.NewStyle().Foreground(theme.Text)
	hintStyle    = lipgloss.NewStyle().Foreground(theme.Subtext0)
	problemStyle = lipgloss.NewStyle().Foreground(theme.Red)
)

// Palette is a single-line command prompt. The owner supplies the command
// list and re-checks the input after every keystroke with SetProblem; a
// line with a problem cannot be submitted.
type Palette struct {
	input    textinput.Model
	commands []Command
	problem  string
	visible  bool
	width    int
}

func NewPalette(commands []Command) Palette {
	ti := textinput.New()
	ti.Prompt = ": "
	ti.Placeholder = "start, restart, pick 5…"
	ti.CharLimit = 32
	return Palette{input: ti, commands: commands}
}

func (p Palette) Visible() bool { return p.visible }

// Value is the raw input line.
func (p Palette) Value() string { return p.input.Value() }

func (p Palette) Problem() string { return p.problem }

// SetProblem marks the current input as unusable. An empty string clears it.
func (p *Palette) SetProblem(problem string) { p.problem = problem }

func (p *Palette) SetWidth(w int) { p.width = w }

// Open shows the palette with an empty line and returns the focus command.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.problem = ""
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) close() {
	p.visible = false
	p.input.Blur()
}

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEsc:
			p.close()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case tea.KeyEnter:
			if p.problem != "" {
				return p, nil
			}
			fields := strings.Fields(p.input.Value())
			p.close()
			if len(fields) == 0 {
				return p, func() tea.Msg { return PaletteCancelMsg{} }
			}
			submit := PaletteSubmitMsg{Name: fields[0], Args: fields[1:]}
			return p, func() tea.Msg { return submit }
		case tea.KeyTab:
			if c, ok := p.completion(); ok {
				p.input.SetValue(c.Name + " ")
				p.input.CursorEnd()
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// completion is the only command whose name starts with the typed word.
func (p Palette) completion() (Command, bool) {
	matches := p.matching()
	if len(matches) != 1 {
		return Command{}, false
	}
	return matches[0], true
}

func (p Palette) matching() []Command {
	word := strings.ToLower(strings.TrimLeft(p.input.Value(), " "))
	name, hasArgs := word, false
	if i := strings.IndexByte(word, ' '); i >= 0 {
		name, hasArgs = word[:i], true
	}
	var out []Command
	for _, c := range p.commands {
		if hasArgs && c.Name != name {
			continue
		}
		if strings.HasPrefix(c.Name, name) {
			out = append(out, c)
		}
	}
	return out
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	lines := []string{theme.Title.Render("Command Palette"), p.input.View()}
	if p.problem != "" {
		lines = append(lines, problemStyle.Render(p.problem))
	}
	if matches := p.matching(); len(matches) > 0 {
		lines = append(lines, "")
		width := 0
		for _, c := range matches {
			width = max(width, len(c.Usage()))
		}
		for _, c := range matches {
			usage := c.Usage() + strings.Repeat(" ", width-len(c.Usage()))
			lines = append(lines, "  "+usageStyle.Render(usage)+"  "+hintStyle.Render(c.Help))
		}
	}

	w := p.width
	if w < 20 {
		w = 48
	}
	return paletteStyle.Width(w - 2).Render(strings.Join(lines, "\n"))
}
