package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "weldtrack/internal/modules/catalog/dto"
	notesdto "weldtrack/internal/modules/notes/dto"
	progressdto "weldtrack/internal/modules/progress/dto"
	streakdto "weldtrack/internal/modules/streak/dto"
	"weldtrack/internal/platform/notify"
	"weldtrack/internal/ui/theme"
	checklistview "weldtrack/internal/ui/views/checklists"
	notesview "weldtrack/internal/ui/views/notes"
	overviewview "weldtrack/internal/ui/views/overview"
)

// Each port is the minimal interface this orchestration layer requires; the
// bootstrap satisfies them with the modules' CLI handlers.

type catalogPort interface {
	ListReadingsFiltered(ctx context.Context, filter string) ([]catalogdto.ReadingOutput, error)
	ListPractice(ctx context.Context) ([]catalogdto.PracticeOutput, error)
	AddCustomReading(ctx context.Context, title, link, description, category string) (catalogdto.ReadingOutput, error)
	RemoveCustomReading(ctx context.Context, id string) error
}

type progressPort interface {
	SetDone(ctx context.Context, kind, id string, done bool) error
	Completion(ctx context.Context, kind string) (map[string]bool, error)
	Stats(ctx context.Context) ([]progressdto.KindStatsOutput, error)
	OverallPercent(ctx context.Context) (float64, error)
}

type notesPort interface {
	AddNote(ctx context.Context, body, source, relatedID string, tags []string) (notesdto.NoteOutput, error)
	RemoveNote(ctx context.Context, id string) error
	List(ctx context.Context) ([]notesdto.NoteOutput, error)
}

type streakPort interface {
	Current(ctx context.Context) (streakdto.StreakOutput, error)
}

type tabID int

const (
	tabReadings tabID = iota
	tabPractice
	tabNotes
	tabOverview
	tabCount
)

var tabLabels = [tabCount]string{
	"Readings", "Practice", "Notes", "Overview",
}

// changedMsg carries a change notification from the hub into the Bubble Tea
// loop.
type changedMsg struct {
	topic notify.Topic
}

type keyMap struct {
	Tab    key.Binding
	Toggle key.Binding
	Add    key.Binding
	Delete key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Toggle: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle done")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Toggle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Toggle},
		{k.Add, k.Delete},
		{k.Help, k.Quit},
	}
}

// Model is the root Bubble Tea model: tab routing, help overlay, and the
// bridge between hub notifications and view reloads. Business logic stays
// behind the ports.
type Model struct {
	readView  checklistview.Model
	practView checklistview.Model
	noteView  notesview.Model
	overView  overviewview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	changes   chan notify.Topic
	width     int
	height    int
}

func NewModel(catalog catalogPort, progress progressPort, notes notesPort, streak streakPort, hub *notify.Hub) Model {
	// Mutations publish on the hub from inside command goroutines; a
	// buffered channel carries them back into the update loop.
	changes := make(chan notify.Topic, 16)
	if hub != nil {
		hub.Subscribe(func(topic notify.Topic) {
			select {
			case changes <- topic:
			default:
			}
		})
	}

	return Model{
		readView:  checklistview.New("Readings", readingBridge{catalog: catalog, progress: progress}),
		practView: checklistview.New("Practice", practiceBridge{catalog: catalog, progress: progress}),
		noteView:  notesview.New(notes),
		overView:  overviewview.New(progress, streak),
		activeTab: tabReadings,
		keys:      defaultKeys(),
		help:      help.New(),
		changes:   changes,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.readView.Init(),
		m.practView.Init(),
		m.noteView.Init(),
		m.overView.Init(),
		m.waitForChange(),
	)
}

func (m Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		return changedMsg{topic: <-m.changes}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		m.propagateSize()

	case changedMsg:
		cmds = append(cmds, m.reloadFor(msg.topic)...)
		cmds = append(cmds, m.waitForChange())

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if !m.subViewCapturing() {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "tab":
				m.activeTab = (m.activeTab + 1) % tabCount
				if m.activeTab == tabOverview {
					cmds = append(cmds, m.overView.Reload())
				}
				return m, tea.Batch(cmds...)
			case "shift+tab":
				m.activeTab = (m.activeTab + tabCount - 1) % tabCount
				return m, tea.Batch(cmds...)
			case "?":
				m.showHelp = !m.showHelp
				return m, nil
			}
		}
	}

	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabReadings:
		m.readView, tabCmd = m.readView.Update(msg)
	case tabPractice:
		m.practView, tabCmd = m.practView.Update(msg)
	case tabNotes:
		m.noteView, tabCmd = m.noteView.Update(msg)
	case tabOverview:
		m.overView, tabCmd = m.overView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	// Size and load messages concern every view, not only the active one.
	switch msg.(type) {
	case tea.WindowSizeMsg, checklistview.EntriesLoadedMsg, notesview.LoadedMsg, overviewview.LoadedMsg:
		cmds = append(cmds, m.updateInactive(msg)...)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateInactive(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	if m.activeTab != tabReadings {
		var cmd tea.Cmd
		m.readView, cmd = m.readView.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.activeTab != tabPractice {
		var cmd tea.Cmd
		m.practView, cmd = m.practView.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.activeTab != tabNotes {
		var cmd tea.Cmd
		m.noteView, cmd = m.noteView.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.activeTab != tabOverview {
		var cmd tea.Cmd
		m.overView, cmd = m.overView.Update(msg)
		cmds = append(cmds, cmd)
	}
	return cmds
}

// reloadFor maps a change topic to the views whose data went stale. Progress
// changes also refresh both checklists because entries embed their done flag.
func (m Model) reloadFor(topic notify.Topic) []tea.Cmd {
	switch topic {
	case notify.TopicCatalog:
		return []tea.Cmd{m.readView.Reload(), m.overView.Reload()}
	case notify.TopicProgress:
		return []tea.Cmd{m.readView.Reload(), m.practView.Reload(), m.overView.Reload()}
	case notify.TopicNotes:
		return []tea.Cmd{m.noteView.Reload()}
	case notify.TopicStreak:
		return []tea.Cmd{m.overView.Reload()}
	default:
		return []tea.Cmd{m.readView.Reload(), m.practView.Reload(), m.noteView.Reload(), m.overView.Reload()}
	}
}

func (m *Model) propagateSize() {
	msg := tea.WindowSizeMsg{Width: m.width, Height: m.contentHeight()}
	m.readView, _ = m.readView.Update(msg)
	m.practView, _ = m.practView.Update(msg)
	m.noteView, _ = m.noteView.Update(msg)
	m.overView, _ = m.overView.Update(msg)
}

func (m Model) subViewCapturing() bool {
	switch m.activeTab {
	case tabReadings:
		return m.readView.Filtering() || m.readView.Capturing()
	case tabPractice:
		return m.practView.Filtering() || m.practView.Capturing()
	case tabNotes:
		return m.noteView.Filtering() || m.noteView.Capturing()
	}
	return false
}

func (m Model) contentHeight() int {
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()

	var content string
	if m.showHelp {
		content = lipgloss.NewStyle().Width(m.width).Height(m.contentHeight()).
			Render(m.help.View(m.keys))
	} else {
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabReadings:
		return m.readView.View()
	case tabPractice:
		return m.practView.View()
	case tabNotes:
		return m.noteView.View()
	case tabOverview:
		return m.overView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "weldtrack  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	right := theme.Muted.Render("?:help  tab:switch  q:quit")
	gap := m.width - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}
