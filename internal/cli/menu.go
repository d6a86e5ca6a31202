package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

type menuItem struct {
	option menuOption
}

func (i menuItem) FilterValue() string { return i.option.description }

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(menuItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%s. %s", i.option.key, i.option.description)

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + s[0])
		}
	}

	_, _ = fmt.Fprint(w, fn(str))
}

// MainMenuModel is a bubbletea list of the shell commands. It quits as soon
// as a command is chosen.
type MainMenuModel struct {
	list   list.Model
	choice Command
	chosen bool
}

func (m MainMenuModel) Init() tea.Cmd {
	return nil
}

func (m MainMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)

		return m, nil

	case tea.KeyMsg:
		switch keypress := msg.String(); keypress {
		case "ctrl+c", "esc":
			return m.choose(CommandQuit)

		case "enter":
			if i, ok := m.list.SelectedItem().(menuItem); ok {
				return m.choose(i.option.command)
			}

			return m, nil

		default:
			if cmd := ParseCommand(keypress); cmd != CommandUnknown {
				return m.choose(cmd)
			}
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m MainMenuModel) choose(cmd Command) (tea.Model, tea.Cmd) {
	m.choice = cmd
	m.chosen = true

	return m, tea.Quit
}

func (m MainMenuModel) View() string {
	if m.chosen {
		return ""
	}

	return "\n" + m.list.View()
}

// Choice returns the chosen command, or CommandQuit when the program ended
// without a choice.
func (m MainMenuModel) Choice() Command {
	if !m.chosen {
		return CommandQuit
	}

	return m.choice
}

// NewMainMenu builds the command list.
func NewMainMenu() MainMenuModel {
	items := make([]list.Item, 0, len(menuOptions))
	for _, opt := range menuOptions {
		items = append(items, menuItem{option: opt})
	}

	const defaultWidth = 48

	l := list.New(items, itemDelegate{}, defaultWidth, 12)
	l.Title = "Degree Classifier"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return MainMenuModel{list: l}
}

// RunMenu shows the command list, runs the chosen command through the shell
// and repeats until quit. Program options let callers bind input and output.
func RunMenu(s *Shell, opts ...tea.ProgramOption) error {
	defer s.Close()

	s.Reload()

	for {
		p := tea.NewProgram(NewMainMenu(), opts...)

		finalModel, err := p.Run()
		if err != nil {
			return fmt.Errorf("menu failed: %w", err)
		}

		menuModel, ok := finalModel.(MainMenuModel)
		if !ok {
			return fmt.Errorf("unexpected menu model %T", finalModel)
		}

		if s.Dispatch(menuModel.Choice()) {
			return nil
		}

		s.WaitForEnter()
	}
}
