package tui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gerunddev/evned/styles"
)

// Chooser asks the user to pick one of several options.
// Choose returns the chosen index, or -1 when the user cancels.
type Chooser interface {
	Choose(prompt string, options []string) (int, error)
}

type chooseModel struct {
	table   table.Model
	prompt  string
	choice  int
	done    bool
	options []string
	header  int
}

// InitChooseModel creates a selection model listing options in a table
func InitChooseModel(prompt string, options []string) chooseModel {
	width := len("Note")
	for _, o := range options {
		if w := lipgloss.Width(o); w > width {
			width = w
		}
	}

	rows := make([]table.Row, 0, len(options))
	for _, o := range options {
		rows = append(rows, table.Row{o})
	}

	height := len(options)
	if height > 15 {
		height = 15
	}

	t := table.New(
		table.WithColumns([]table.Column{{Title: "Note", Width: width}}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.Border)).
		BorderBottom(true).
		Bold(false)
	ts.Selected = styles.SelectedStyle
	t.SetStyles(ts)

	// The table height includes its header, which is two lines with the border.
	header := lipgloss.Height(ts.Header.Render("Note"))
	t.SetHeight(height + header)

	return chooseModel{
		table:   t,
		prompt:  prompt,
		choice:  -1,
		options: options,
		header:  header,
	}
}

func (m chooseModel) Init() tea.Cmd {
	return nil
}

func (m chooseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if h := msg.Height - 6 - m.header; h > 0 && h < len(m.options) {
			m.table.SetHeight(h + m.header)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.choice = -1
			m.done = true
			return m, tea.Quit
		case "enter":
			if len(m.options) > 0 {
				m.choice = m.table.Cursor()
			}
			m.done = true
			return m, tea.Quit
		case "up", "k", "down", "j", "home", "end", "pgup", "pgdown":
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m chooseModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(m.prompt))
	b.WriteString("\n\n")
	b.WriteString(styles.TableStyle.Render(m.table.View()))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("↑/k up • ↓/j down • enter choose • q cancel"))
	b.WriteString("\n")
	return b.String()
}

// Choice returns the chosen index, or -1
func (m chooseModel) Choice() int {
	return m.choice
}

// TableChooser runs a full-screen table selection
type TableChooser struct {
	In  io.Reader
	Out io.Writer
}

// Choose runs the selection program until the user picks or cancels
func (c TableChooser) Choose(prompt string, options []string) (int, error) {
	var opts []tea.ProgramOption
	if c.In != nil {
		opts = append(opts, tea.WithInput(c.In))
	}
	if c.Out != nil {
		opts = append(opts, tea.WithOutput(c.Out))
	}

	final, err := tea.NewProgram(InitChooseModel(prompt, options), opts...).Run()
	if err != nil {
		return -1, fmt.Errorf("failed to run chooser: %w", err)
	}

	m, ok := final.(chooseModel)
	if !ok {
		return -1, nil
	}
	return m.Choice(), nil
}

// LineChooser prints a numbered menu and reads the answer from a line of input
type LineChooser struct {
	In  io.Reader
	Out io.Writer
}

// Choose asks until a valid number is entered. End of input cancels.
func (c LineChooser) Choose(prompt string, options []string) (int, error) {
	in := bufio.NewReader(c.In)

	for {
		for i, o := range options {
			fmt.Fprintf(c.Out, "%d. %s\n", i+1, o)
		}
		fmt.Fprintf(c.Out, "%s ", prompt)

		line, err := in.ReadString('\n')
		answer := strings.TrimSpace(line)

		if answer != "" {
			if n, convErr := strconv.Atoi(answer); convErr == nil && n >= 1 && n <= len(options) {
				return n - 1, nil
			}
			// Exact label match, like typing the menu entry
			for i, o := range options {
				if strings.EqualFold(answer, o) {
					return i, nil
				}
			}
			fmt.Fprintf(c.Out, "You must choose one of [%s].\n", choiceRange(len(options)))
		}

		if err == io.EOF {
			return -1, nil
		}
		if err != nil {
			return -1, fmt.Errorf("failed to read choice: %w", err)
		}
	}
}

func choiceRange(n int) string {
	if n <= 1 {
		return "1"
	}
	return fmt.Sprintf("1-%d", n)
}
