package notes

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	notesdto "weldtrack/internal/modules/notes/dto"
	"weldtrack/internal/ui/theme"
)

type NotesPort interface {
	AddNote(ctx context.Context, body, source, relatedID string, tags []string) (notesdto.NoteOutput, error)
	RemoveNote(ctx context.Context, id string) error
	List(ctx context.Context) ([]notesdto.NoteOutput, error)
}

type LoadedMsg struct {
	Notes []notesdto.NoteOutput
	Err   error
}

type MutatedMsg struct {
	Err error
}

type noteItem struct {
	note notesdto.NoteOutput
}

func (i noteItem) Title() string {
	return i.note.CreatedAt.Format("2006-01-02 15:04") + "  " + firstLine(i.note.Body)
}

func (i noteItem) Description() string {
	desc := i.note.Source
	if i.note.RelatedTitle != "" {
		desc += "  re: " + i.note.RelatedTitle
	}
	return desc
}

func (i noteItem) FilterValue() string { return i.note.Body }

func firstLine(body string) string {
	for idx, r := range body {
		if r == '\n' {
			return body[:idx]
		}
	}
	return body
}

type Model struct {
	port   NotesPort
	list   list.Model
	input  textinput.Model
	adding bool
	status string
	width  int
	height int
}

func New(port NotesPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Notes"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	input := textinput.New()
	input.Placeholder = "what did you learn today?"
	input.CharLimit = 500

	return Model{port: port, list: l, input: input}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		notes, err := m.port.List(context.Background())
		return LoadedMsg{Notes: notes, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.height-2)
		m.input.Width = m.width - 4

	case LoadedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			break
		}
		items := make([]list.Item, len(msg.Notes))
		for i, n := range msg.Notes {
			items[i] = noteItem{note: n}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case MutatedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
		} else {
			m.status = ""
		}

	case tea.KeyMsg:
		if m.adding {
			switch msg.String() {
			case "esc":
				m.adding = false
				m.input.Reset()
			case "enter":
				body := m.input.Value()
				m.adding = false
				m.input.Reset()
				cmds = append(cmds, m.addCmd(body))
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
			return m, tea.Batch(cmds...)
		}

		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "a":
			m.adding = true
			cmds = append(cmds, m.input.Focus())
			return m, tea.Batch(cmds...)
		case "d":
			if item, ok := m.list.SelectedItem().(noteItem); ok {
				cmds = append(cmds, m.removeCmd(item.note.ID))
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.adding {
		prompt := theme.Title.Render("New note") + "\n\n" +
			m.input.View() + "\n\n" +
			theme.Muted.Render("enter: save  esc: cancel")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, prompt)
	}
	view := m.list.View()
	if m.status != "" {
		view += "\n" + theme.Warn.Render(m.status)
	}
	return view
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Capturing() bool {
	return m.adding
}

func (m Model) addCmd(body string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.port.AddNote(context.Background(), body, "general", "", nil)
		return MutatedMsg{Err: err}
	}
}

func (m Model) removeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.port.RemoveNote(context.Background(), id)
		return MutatedMsg{Err: err}
	}
}
