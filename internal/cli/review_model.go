package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/midoradev/study-planner/internal/cli/formatter"
	"github.com/midoradev/study-planner/internal/repository"
)

type reviewKeymap struct {
	Toggle  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

var reviewKeys = reviewKeymap{
	Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle done")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// tasksLoadedMsg delivers the reloaded task list.
type tasksLoadedMsg struct {
	tasks []repository.PendingTask
	err   error
}

// toggledMsg signals one task's completion was flipped.
type toggledMsg struct{ err error }

// reviewModel is a table of every task; the space bar flips done state
// through the progress service so snapshots survive round trips.
type reviewModel struct {
	app     *App
	tasks   []repository.PendingTask
	tbl     table.Model
	loading bool
	status  string
}

func newReviewModel(app *App) *reviewModel {
	columns := []table.Column{
		{Title: "TASK", Width: 32},
		{Title: "SUBJECT", Width: 16},
		{Title: "PRI", Width: 6},
		{Title: "DUE", Width: 12},
		{Title: "LEFT", Width: 8},
		{Title: "STATE", Width: 8},
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(formatter.ColorHeader).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(formatter.ColorDim).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Foreground(formatter.ColorFg).
		Background(lipgloss.Color("#313244")).
		Bold(true)

	tbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(16),
		table.WithStyles(styles),
	)

	return &reviewModel{app: app, tbl: tbl, loading: true}
}

func (m *reviewModel) Init() tea.Cmd {
	return m.loadTasks()
}

func (m *reviewModel) loadTasks() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		tasks, err := app.Tasks.ListAll(context.Background())
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m *reviewModel) toggleSelected() tea.Cmd {
	idx := m.tbl.Cursor()
	if idx < 0 || idx >= len(m.tasks) {
		return nil
	}
	t := m.tasks[idx].Task
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if t.Done {
			_, err = app.Progress.MarkUndone(ctx, t.ID)
		} else {
			_, err = app.Progress.MarkDone(ctx, t.ID)
		}
		return toggledMsg{err: err}
	}
}

func (m *reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.tasks = msg.tasks
		m.tbl.SetRows(reviewRows(msg.tasks))
		return m, nil

	case toggledMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = ""
		return m, m.loadTasks()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, reviewKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, reviewKeys.Toggle):
			return m, m.toggleSelected()
		case key.Matches(msg, reviewKeys.Refresh):
			m.loading = true
			return m, m.loadTasks()
		}
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m *reviewModel) View() string {
	if m.loading {
		return formatter.Dim("Loading tasks...")
	}
	if len(m.tasks) == 0 {
		return formatter.Dim("No tasks yet. Press q to quit.")
	}

	help := formatter.Dim("space toggle done | r refresh | q quit")
	out := m.tbl.View() + "\n" + help
	if m.status != "" {
		out += "\n" + formatter.StyleRed.Render(m.status)
	}
	return out
}

func reviewRows(tasks []repository.PendingTask) []table.Row {
	rows := make([]table.Row, 0, len(tasks))
	for _, pt := range tasks {
		t := pt.Task
		due := "--"
		if t.Deadline != nil {
			due = t.Deadline.Format("2006-01-02")
		}
		state := "open"
		if t.Done {
			state = "done"
		}
		rows = append(rows, table.Row{
			t.Title,
			pt.SubjectName,
			string(t.Priority),
			due,
			formatter.FormatMinutes(t.RemainingMin),
			state,
		})
	}
	return rows
}
