package checklists

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"weldtrack/internal/ui/theme"
)

// Entry is one row of a checklist, already joined with its completion flag.
type Entry struct {
	ID        string
	Title     string
	Detail    string
	Done      bool
	Removable bool
}

// Port is what a checklist needs from the application: the joined entry list
// and the two mutations a user can trigger from the keyboard.
type Port interface {
	Entries(ctx context.Context) ([]Entry, error)
	Toggle(ctx context.Context, id string, done bool) error
	Remove(ctx context.Context, id string) error
}

// AddPort is implemented by checklists that accept user-added entries. The
// raw string is "title | link" from the inline input.
type AddPort interface {
	Add(ctx context.Context, title, link string) error
}

type EntriesLoadedMsg struct {
	Name    string
	Entries []Entry
	Err     error
}

type MutatedMsg struct {
	Name string
	Err  error
}

type entryItem struct {
	entry Entry
}

func (i entryItem) Title() string {
	mark := "[ ] "
	if i.entry.Done {
		mark = "[x] "
	}
	return mark + i.entry.Title
}

func (i entryItem) Description() string { return i.entry.Detail }
func (i entryItem) FilterValue() string { return i.entry.Title }

type Model struct {
	name   string
	port   Port
	list   list.Model
	input  textinput.Model
	adding bool
	status string
	width  int
	height int
}

func New(name string, port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = name
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	input := textinput.New()
	input.Placeholder = "title | link"
	input.CharLimit = 200

	return Model{name: name, port: port, list: l, input: input}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

// Reload re-reads the whole checklist. Cheap enough to run after any change
// notification.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.port.Entries(context.Background())
		return EntriesLoadedMsg{Name: m.name, Entries: entries, Err: err}
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

	case EntriesLoadedMsg:
		if msg.Name != m.name {
			break
		}
		if msg.Err != nil {
			m.status = msg.Err.Error()
			break
		}
		selected := m.list.Index()
		items := make([]list.Item, len(msg.Entries))
		for i, entry := range msg.Entries {
			items[i] = entryItem{entry: entry}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if selected < len(items) {
			m.list.Select(selected)
		}

	case MutatedMsg:
		if msg.Name != m.name {
			break
		}
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
				raw := m.input.Value()
				m.adding = false
				m.input.Reset()
				cmds = append(cmds, m.addCmd(raw))
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
		case "enter", " ":
			if item, ok := m.list.SelectedItem().(entryItem); ok {
				cmds = append(cmds, m.toggleCmd(item.entry))
			}
		case "d":
			if item, ok := m.list.SelectedItem().(entryItem); ok && item.entry.Removable {
				cmds = append(cmds, m.removeCmd(item.entry.ID))
			}
		case "a":
			if _, ok := m.port.(AddPort); ok {
				m.adding = true
				cmds = append(cmds, m.input.Focus())
				return m, tea.Batch(cmds...)
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
		prompt := theme.Title.Render("Add reading") + "\n\n" +
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

// Filtering reports whether the list search filter is capturing input, so the
// app model can keep its global keys out of the way.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Capturing reports whether the inline add input is open.
func (m Model) Capturing() bool {
	return m.adding
}

func (m Model) toggleCmd(entry Entry) tea.Cmd {
	return func() tea.Msg {
		err := m.port.Toggle(context.Background(), entry.ID, !entry.Done)
		return MutatedMsg{Name: m.name, Err: err}
	}
}

func (m Model) removeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.port.Remove(context.Background(), id)
		return MutatedMsg{Name: m.name, Err: err}
	}
}

func (m Model) addCmd(raw string) tea.Cmd {
	return func() tea.Msg {
		adder, ok := m.port.(AddPort)
		if !ok {
			return MutatedMsg{Name: m.name}
		}
		title, link, _ := strings.Cut(raw, "|")
		err := adder.Add(context.Background(), strings.TrimSpace(title), strings.TrimSpace(link))
		return MutatedMsg{Name: m.name, Err: err}
	}
}
