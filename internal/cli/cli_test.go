package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midoradev/study-planner/internal/repository"
	"github.com/midoradev/study-planner/internal/service"
	"github.com/midoradev/study-planner/internal/testutil"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	subjectRepo := repository.NewSubjectRepo(database)
	taskRepo := repository.NewTaskRepo(database)

	return &App{
		Subjects: service.NewSubjectService(subjectRepo),
		Tasks:    service.NewTaskService(taskRepo, subjectRepo),
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"18:00", 18 * 60, true},
		{"09:30", 9*60 + 30, true},
		{"00:00", 0, true},
		{"24:00", 24 * 60, true},
		{"24:01", 0, false},
		{"25:00", 0, false},
		{"18", 0, false},
		{"18:60", 0, false},
		{"aa:bb", 0, false},
	}
	for _, tc := range cases {
		got, err := parseClock(tc.in)
		if tc.ok {
			require.NoError(t, err, "input %q", tc.in)
			assert.Equal(t, tc.want, got, "input %q", tc.in)
		} else {
			assert.Error(t, err, "input %q", tc.in)
		}
	}
}

func TestParseWeekday(t *testing.T) {
	d, err := parseWeekday("Mon")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, d)

	d, err = parseWeekday("saturday")
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, d)

	_, err = parseWeekday("someday")
	assert.Error(t, err)
}

func TestRootCmdRegistersSubcommands(t *testing.T) {
	root := NewRootCmd(&App{})

	want := []string{"subject", "task", "rule", "plan", "status", "calendar", "profile", "review"}
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, n := range want {
		assert.True(t, names[n], "missing subcommand %s", n)
	}
}

func TestResolveSubjectID(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	hist, err := app.Subjects.Create(ctx, "History", 300, "")
	require.NoError(t, err)
	_, err = app.Subjects.Create(ctx, "Math", 120, "")
	require.NoError(t, err)

	id, err := resolveSubjectID(ctx, app, "history")
	require.NoError(t, err)
	assert.Equal(t, hist.ID, id)

	id, err = resolveSubjectID(ctx, app, hist.ID)
	require.NoError(t, err)
	assert.Equal(t, hist.ID, id)

	id, err = resolveSubjectID(ctx, app, hist.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, hist.ID, id)

	_, err = resolveSubjectID(ctx, app, "Geography")
	assert.Error(t, err)

	_, err = resolveSubjectID(ctx, app, "")
	assert.Error(t, err)
}

func TestResolveTaskIDPrefix(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	subj, err := app.Subjects.Create(ctx, "History", 300, "")
	require.NoError(t, err)
	task, err := app.Tasks.Create(ctx, subj.ID, "Essay draft", 60, nil, "medium")
	require.NoError(t, err)

	id, err := resolveTaskID(ctx, app, task.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, task.ID, id)

	_, err = resolveTaskID(ctx, app, "ffffffff")
	assert.Error(t, err)
}
