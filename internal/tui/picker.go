// Package tui holds the interactive workshop picker used by `workshop
// select` when no argument is given.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Option is one selectable workshop entry.
type Option struct {
	ID          string
	Title       string
	Description string
}

// pickerItem adapts Option to the bubbles list.Item interface.
type pickerItem struct {
	option Option
}

func (i pickerItem) Title() string       { return i.option.Title }
func (i pickerItem) Description() string { return i.option.Description }
func (i pickerItem) FilterValue() string { return i.option.ID + " " + i.option.Title }

type pickerModel struct {
	list   list.Model
	choice string
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-2, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		// Keep quit keys out of the list's filter input.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(pickerItem); ok {
				m.choice = item.option.ID
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return "\n" + m.list.View()
}

// PickWorkshop runs the interactive picker over the given options and
// returns the chosen workshop identifier. An empty string means the user
// cancelled.
func PickWorkshop(options []Option) (string, error) {
	items := make([]list.Item, len(options))
	for i, option := range options {
		items[i] = pickerItem{option: option}
	}

	l := list.New(items, newPickerDelegate(), 0, 0)
	l.Title = "Select a workshop"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)

	p := tea.NewProgram(pickerModel{list: l})
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("run picker: %w", err)
	}
	model, ok := final.(pickerModel)
	if !ok {
		return "", fmt.Errorf("unexpected picker model %T", final)
	}
	return model.choice, nil
}
