package cli

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// instanceListModel - Interactive instance selection
// =============================================================================

// instanceListModel is the bubbletea model for picking an instance file.
type instanceListModel struct {
	files    []string
	cursor   int
	selected string
	height   int
	offset   int
}

func newInstanceListModel(files []string) instanceListModel {
	return instanceListModel{
		files:  files,
		height: 15,
	}
}

func (m instanceListModel) Init() tea.Cmd {
	return nil
}

func (m instanceListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.files)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			m.selected = m.files[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m instanceListModel) View() string {
	s := StyleTitle.Render("Select an instance") + "\n\n"

	end := m.offset + m.height
	if end > len(m.files) {
		end = len(m.files)
	}

	for i := m.offset; i < end; i++ {
		name := filepath.Base(m.files[i])
		if i == m.cursor {
			s += listSelectedStyle.Render("> "+name) + "\n"
		} else {
			s += listNormalStyle.Render("  "+name) + "\n"
		}
	}

	s += "\n" + listDimStyle.Render("↑/↓ move · enter select · q quit") + "\n"
	return s
}

// pickInstance lists the .in files under dir and lets the user choose one
// interactively. Returns the empty string when the picker is dismissed or no
// instances exist.
func pickInstance(dir string) (string, error) {
	files, err := listInstances(dir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		printWarning("No %s files in %s", inputExt, dir)
		return "", nil
	}

	final, err := tea.NewProgram(newInstanceListModel(files)).Run()
	if err != nil {
		return "", fmt.Errorf("instance picker: %w", err)
	}

	m, ok := final.(instanceListModel)
	if !ok {
		return "", nil
	}
	return m.selected, nil
}
