package overview

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	progressdto "weldtrack/internal/modules/progress/dto"
	streakdto "weldtrack/internal/modules/streak/dto"
	"weldtrack/internal/ui/theme"
)

type StatsPort interface {
	Stats(ctx context.Context) ([]progressdto.KindStatsOutput, error)
	OverallPercent(ctx context.Context) (float64, error)
}

type StreakPort interface {
	Current(ctx context.Context) (streakdto.StreakOutput, error)
}

type LoadedMsg struct {
	Stats   []progressdto.KindStatsOutput
	Overall float64
	Streak  streakdto.StreakOutput
	Err     error
}

type Model struct {
	stats   StatsPort
	streak  StreakPort
	loaded  LoadedMsg
	width   int
	height  int
}

func New(stats StatsPort, streak StreakPort) Model {
	return Model{stats: stats, streak: streak}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := m.stats.Stats(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		overall, err := m.stats.OverallPercent(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		streak, err := m.streak.Current(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		return LoadedMsg{Stats: stats, Overall: overall, Streak: streak}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case LoadedMsg:
		m.loaded = msg
	}
	return m, nil
}

func (m Model) View() string {
	if m.loaded.Err != nil {
		return theme.Warn.Render(m.loaded.Err.Error())
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Progress") + "\n\n")
	for _, s := range m.loaded.Stats {
		sb.WriteString(fmt.Sprintf("%s  %s %3.0f%%  (%d/%d)\n",
			theme.Muted.Render(fmt.Sprintf("%-9s", s.Kind)),
			bar(s.Percent, 30), s.Percent*100, s.Done, s.Total))
	}
	sb.WriteString(fmt.Sprintf("%s  %s %3.0f%%\n",
		theme.Muted.Render(fmt.Sprintf("%-9s", "overall")),
		bar(m.loaded.Overall, 30), m.loaded.Overall*100))

	sb.WriteString("\n" + theme.Title.Render("Streak") + "\n\n")
	streak := m.loaded.Streak
	if streak.Count == 0 {
		sb.WriteString(theme.Muted.Render("no streak yet, finish a reading or drill to start one") + "\n")
	} else {
		noun := "days"
		if streak.Count == 1 {
			noun = "day"
		}
		sb.WriteString(theme.Hot.Render(fmt.Sprintf("%d %s", streak.Count, noun)))
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("  last active %s (%s)\n", streak.Date, strings.Join(streak.Types, ", "))))
	}

	pane := theme.Pane.Width(m.width - 4).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, pane)
}

// bar renders a fraction in [0,1] as a fixed-width block gauge.
func bar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return theme.Done.Render(strings.Repeat("█", filled)) +
		theme.Muted.Render(strings.Repeat("░", width-filled))
}
