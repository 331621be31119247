package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"arise/internal/engine"
	"arise/internal/storage"
	"arise/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	progress *storage.Progress
	day      string
	tasks    []storage.DayTask

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	progress *storage.Progress
	day      string
	tasks    []storage.DayTask
	err      error
}

type completedMsg struct {
	id  string
	res *engine.CompleteResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

// loadCmd runs the midnight check on every refresh, so leaving the board open
// across midnight rolls the day over on the next keypress refresh.
func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		today, err := m.svc.EnsureToday(m.ctx, time.Now())
		if err != nil {
			return loadedMsg{err: err}
		}
		p, err := m.svc.ProgressRepo().GetOrCreateMain(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{progress: p, day: today.Day, tasks: today.Tasks}
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteTask(m.ctx, id, time.Now())
		return completedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.progress = msg.progress
		m.day = msg.day
		m.tasks = msg.tasks
		if m.selected >= len(m.tasks) {
			m.selected = len(m.tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		if !msg.res.Counted {
			m.lastLog = "Already done."
			return m, m.loadCmd()
		}
		m.lastLog = fmt.Sprintf("Completed %s: +%d XP", msg.res.Name, msg.res.XPAwarded)
		if msg.res.AllDone {
			m.lastLog += fmt.Sprintf(" — all done today! Streak %d", msg.res.Streak)
		}
		if msg.res.RankUp {
			m.lastLog += " " + ui.BadgeRankUp
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if m.selected < 0 || m.selected >= len(m.tasks) {
				return m, nil
			}
			t := m.tasks[m.selected]
			if t.Completed {
				m.lastLog = "Already done."
				return m, nil
			}
			return m, m.completeCmd(t.ID)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.loading {
		return ui.Muted.Render("Loading…")
	}
	if m.err != nil {
		return ui.Bad.Render("Error: " + m.err.Error())
	}

	var b strings.Builder

	rank := engine.CurrentRank(m.progress.TotalXP)
	next := engine.NextRank(m.progress.TotalXP)
	header := fmt.Sprintf("%s %s  %s %d XP  %s %d",
		ui.IconTrophy, rank.Name,
		ui.IconBolt, m.progress.TotalXP,
		ui.IconFlame, m.progress.Streak)
	b.WriteString(ui.PanelTitle.Render(header))
	b.WriteString("\n")
	if next.RequiredXP > rank.RequiredXP {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			ui.ProgressBar(engine.ProgressToNextRank(m.progress.TotalXP), 24),
			ui.Muted.Render("→"),
			ui.Muted.Render(next.Name)))
	}
	b.WriteString("\n")

	b.WriteString(ui.H2.Render(fmt.Sprintf("Today — %s", m.day)))
	b.WriteString("\n")
	if len(m.tasks) == 0 {
		b.WriteString(ui.Muted.Render("No tasks today. Set preferences with `arise prefs set`."))
		b.WriteString("\n")
	}
	for i, t := range m.tasks {
		check := "[ ]"
		style := ui.Dim
		if t.Completed {
			check = "[" + ui.IconDone + "]"
			style = ui.Good
		}
		line := fmt.Sprintf("%s %s %s %s %s",
			check,
			ui.TaskIcon(t.Name),
			t.Name,
			ui.Muted.Render(t.Description),
			ui.Gold.Render(fmt.Sprintf("+%d XP", t.XP)))
		if i == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + style.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.Muted.Render("j/k move · space complete · r refresh · q quit"))
	b.WriteString("\n")
	b.WriteString(ui.Dim.Render(m.lastLog))
	b.WriteString("\n")
	return b.String()
}
