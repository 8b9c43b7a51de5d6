package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	alertsdto "missionctl/internal/modules/alerts/dto"
	goalsdto "missionctl/internal/modules/goals/dto"
	jobsdto "missionctl/internal/modules/jobs/dto"
	overviewdto "missionctl/internal/modules/overview/dto"
	tasksdto "missionctl/internal/modules/tasks/dto"
	"missionctl/internal/ui/theme"
)

type overviewPort interface {
	Overview(ctx context.Context) (overviewdto.OverviewOutput, error)
}

type goalsPort interface {
	Goals(ctx context.Context) goalsdto.GoalsOutput
}

type jobsPort interface {
	Board(ctx context.Context) jobsdto.BoardOutput
}

type tasksPort interface {
	Buckets(ctx context.Context) tasksdto.BucketsOutput
}

type alertsPort interface {
	Alerts(ctx context.Context) alertsdto.AlertsOutput
}

type tabID int

const (
	tabOverview tabID = iota
	tabGoals
	tabPipeline
	tabTasks
	tabAlerts
	tabCount
)

var tabLabels = [tabCount]string{"Overview", "Goals", "Pipeline", "Tasks", "Alerts"}

var (
	columnOrder = []string{"identified", "radar", "applied", "interview", "offer", "closed"}
	bucketOrder = []string{"in_progress", "blocked", "todo", "done"}
)

const loadTimeout = 10 * time.Second

type boardLoadedMsg struct {
	overview overviewdto.OverviewOutput
	goals    goalsdto.GoalsOutput
	jobs     jobsdto.BoardOutput
	tasks    tasksdto.BucketsOutput
	alerts   alertsdto.AlertsOutput
	err      error
	at       time.Time
}

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next tab")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "previous tab")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Reload, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Reload, k.Help, k.Quit},
	}
}

// Model is a read-only board over the dashboard usecases. Every tab renders
// from the last snapshot; r refreshes all of them at once.
type Model struct {
	root string

	overview overviewPort
	goals    goalsPort
	jobs     jobsPort
	tasks    tasksPort
	alerts   alertsPort

	data     boardLoadedMsg
	loaded   bool
	loading  bool
	active   tabID
	keys     keyMap
	help     help.Model
	showHelp bool
	status   string
	width    int
	height   int
}

func NewModel(root string, overview overviewPort, goals goalsPort, jobs jobsPort, tasks tasksPort, alerts alertsPort) Model {
	return Model{
		root:     root,
		overview: overview,
		goals:    goals,
		jobs:     jobs,
		tasks:    tasks,
		alerts:   alerts,
		active:   tabOverview,
		keys:     defaultKeys(),
		help:     help.New(),
		status:   "loading",
		loading:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case boardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = "load failed: " + msg.err.Error()
			return m, nil
		}
		m.data = msg
		m.loaded = true
		m.status = "updated " + msg.at.Format("15:04:05")

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		case key.Matches(msg, m.keys.Next):
			m.active = (m.active + 1) % tabCount
		case key.Matches(msg, m.keys.Prev):
			m.active = (m.active + tabCount - 1) % tabCount
		case key.Matches(msg, m.keys.Reload):
			if m.loading {
				return m, nil
			}
			m.loading = true
			m.status = "reloading"
			return m, m.loadCmd()
		}
	}
	return m, nil
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		overview, err := m.overview.Overview(ctx)
		if err != nil {
			return boardLoadedMsg{err: err}
		}
		return boardLoadedMsg{
			overview: overview,
			goals:    m.goals.Goals(ctx),
			jobs:     m.jobs.Board(ctx),
			tasks:    m.tasks.Buckets(ctx),
			alerts:   m.alerts.Alerts(ctx),
			at:       time.Now(),
		}
	}
}

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()

	var content string
	switch {
	case m.showHelp:
		full := m.help
		full.ShowAll = true
		content = full.View(m.keys)
	case !m.loaded:
		content = theme.Muted.Render("reading workspace...")
	default:
		content = m.activeView()
	}

	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}
	body := lipgloss.NewStyle().Width(m.width).Height(contentH).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, body, statusBar)
}

func (m Model) activeView() string {
	switch m.active {
	case tabOverview:
		return renderOverview(m.data.overview)
	case tabGoals:
		return renderGoals(m.data.goals)
	case tabPipeline:
		return renderPipeline(m.data.jobs)
	case tabTasks:
		return renderTasks(m.data.tasks)
	case tabAlerts:
		return renderAlerts(m.data.alerts)
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		if i == m.active {
			parts[i] = theme.TabActive.Render(tabLabels[i])
		} else {
			parts[i] = theme.Tab.Render(tabLabels[i])
		}
	}
	bar := theme.Title.Render("missionctl") + "  " + strings.Join(parts, " ")
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := theme.Muted.Render(m.root) + "  " + m.status
	right := m.help.View(m.keys)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).
		Render(left+strings.Repeat(" ", gap)+right)
}

func renderOverview(o overviewdto.OverviewOutput) string {
	rows := []string{
		line("Goals", fmt.Sprintf("%d%% (%d/%d objectives, %d categories)", o.Goals.Progress, o.Goals.Done, o.Goals.Objectives, o.Goals.Categories), o.Goals.Source),
		line("Pipeline", fmt.Sprintf("%d active, %d interviewing, %d offers", o.Jobs.Active, o.Jobs.Interviews, o.Jobs.Offers), o.Jobs.Source),
		line("Content", fmt.Sprintf("%d items, %d scheduled, %d published", o.Content.Total, o.Content.Scheduled, o.Content.Published), o.Content.Source),
		line("Tasks", fmt.Sprintf("%d open, %d blocked", o.Tasks.Open, o.Tasks.Blocked), o.Tasks.Source),
		line("Alerts", fmt.Sprintf("%s %s %s",
			theme.Severity("red").Render(fmt.Sprintf("%d red", o.Alerts.Red)),
			theme.Severity("amber").Render(fmt.Sprintf("%d amber", o.Alerts.Amber)),
			theme.Severity("yellow").Render(fmt.Sprintf("%d yellow", o.Alerts.Yellow)),
		), o.Alerts.Source),
	}
	return theme.Pane.Render(strings.Join(rows, "\n"))
}

func line(label, value, source string) string {
	return fmt.Sprintf("%s %s %s", theme.Title.Width(10).Render(label), value, theme.Muted.Render("["+source+"]"))
}

func renderGoals(g goalsdto.GoalsOutput) string {
	if len(g.Categories) == 0 {
		return theme.Muted.Render("no goals")
	}
	blocks := make([]string, 0, len(g.Categories))
	for _, cat := range g.Categories {
		var b strings.Builder
		b.WriteString(theme.Title.Render(fmt.Sprintf("%s  %d%%", cat.Name, cat.Progress)))
		for _, o := range cat.Objectives {
			b.WriteString("\n")
			if o.Done {
				b.WriteString(theme.Done.Render("[x] " + o.Text))
			} else {
				b.WriteString("[ ] " + o.Text)
			}
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n") + "\n\n" + theme.Muted.Render("source: "+g.Source)
}

func renderPipeline(board jobsdto.BoardOutput) string {
	cols := make([]string, 0, len(columnOrder))
	for _, name := range columnOrder {
		jobs := board.Columns[name]
		var b strings.Builder
		b.WriteString(theme.Title.Render(fmt.Sprintf("%s (%d)", name, len(jobs))))
		for _, j := range jobs {
			b.WriteString("\n" + j.Company)
			if j.ATSScore != nil {
				b.WriteString(theme.Muted.Render(fmt.Sprintf(" %d", *j.ATSScore)))
			}
		}
		cols = append(cols, theme.Pane.Width(22).Render(b.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...) + "\n" + theme.Muted.Render("source: "+board.Source)
}

func renderTasks(t tasksdto.BucketsOutput) string {
	blocks := make([]string, 0, len(bucketOrder))
	for _, name := range bucketOrder {
		tasks := t.Buckets[name]
		if len(tasks) == 0 {
			continue
		}
		var b strings.Builder
		b.WriteString(theme.Title.Render(fmt.Sprintf("%s (%d)", name, len(tasks))))
		for _, task := range tasks {
			b.WriteString("\n- " + task.Title)
			if task.Priority != "" {
				b.WriteString(theme.Muted.Render(" " + task.Priority))
			}
			if task.DueDate != "" {
				b.WriteString(theme.Muted.Render(" due " + task.DueDate))
			}
		}
		blocks = append(blocks, b.String())
	}
	if len(blocks) == 0 {
		return theme.Muted.Render("no tasks")
	}
	return strings.Join(blocks, "\n\n") + "\n\n" + theme.Muted.Render("source: "+t.Source)
}

func renderAlerts(a alertsdto.AlertsOutput) string {
	if len(a.Alerts) == 0 {
		return theme.Muted.Render("no upcoming deadlines")
	}
	rows := make([]string, 0, len(a.Alerts))
	for _, alert := range a.Alerts {
		style := theme.Severity(alert.Severity)
		rows = append(rows, fmt.Sprintf("%s  %s  %s",
			style.Width(8).Render(alert.Severity),
			style.Render(alert.Deadline),
			alert.Text,
		))
	}
	return strings.Join(rows, "\n")
}
