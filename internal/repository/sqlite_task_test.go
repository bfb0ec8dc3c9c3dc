package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midoradev/study-planner/internal/domain"
	"github.com/midoradev/study-planner/internal/repository"
	"github.com/midoradev/study-planner/internal/testutil"
)

func TestTaskRepoCRUD(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	subjects := repository.NewSubjectRepo(database)
	tasks := repository.NewTaskRepo(database)

	subj := testutil.NewTestSubject("History")
	require.NoError(t, subjects.Create(ctx, subj))

	deadline := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	task := testutil.NewTestTask(subj.ID, "Essay draft",
		testutil.WithEffort(120),
		testutil.WithDeadline(deadline),
		testutil.WithPriority(domain.PriorityHigh),
	)
	require.NoError(t, tasks.Create(ctx, task))

	got, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Essay draft", got.Title)
	assert.Equal(t, 120, got.EstimatedMin)
	assert.Equal(t, 120, got.RemainingMin)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	require.NotNil(t, got.Deadline)
	assert.True(t, got.Deadline.Equal(deadline))
	assert.False(t, got.Done)
	assert.Nil(t, got.CompletedAt)

	got.RemainingMin = 30
	got.UpdatedAt = time.Now().UTC()
	require.NoError(t, tasks.Update(ctx, got))

	again, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, again.RemainingMin)

	require.NoError(t, tasks.Delete(ctx, task.ID))
	_, err = tasks.GetByID(ctx, task.ID)
	assert.Error(t, err)
	assert.Error(t, tasks.Delete(ctx, task.ID))
}

func TestTaskRepoNilDeadlineRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	subjects := repository.NewSubjectRepo(database)
	tasks := repository.NewTaskRepo(database)

	subj := testutil.NewTestSubject("Math")
	require.NoError(t, subjects.Create(ctx, subj))

	task := testutil.NewTestTask(subj.ID, "Open-ended reading")
	require.NoError(t, tasks.Create(ctx, task))

	got, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Deadline)
}

func TestTaskRepoListPending(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	subjects := repository.NewSubjectRepo(database)
	tasks := repository.NewTaskRepo(database)

	subj := testutil.NewTestSubject("Physics")
	require.NoError(t, subjects.Create(ctx, subj))

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	first := testutil.NewTestTask(subj.ID, "first", testutil.WithCreatedAt(base))
	second := testutil.NewTestTask(subj.ID, "second", testutil.WithCreatedAt(base.Add(time.Minute)))
	done := testutil.NewTestTask(subj.ID, "done", testutil.WithCreatedAt(base.Add(2*time.Minute)))
	done.Done = true
	done.RemainingMin = 0
	exhausted := testutil.NewTestTask(subj.ID, "exhausted", testutil.WithCreatedAt(base.Add(3*time.Minute)))
	exhausted.RemainingMin = 0

	for _, task := range []*domain.Task{second, first, done, exhausted} {
		require.NoError(t, tasks.Create(ctx, task))
	}

	pending, err := tasks.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	// Creation order, regardless of insert order.
	assert.Equal(t, "first", pending[0].Task.Title)
	assert.Equal(t, "second", pending[1].Task.Title)
	assert.Equal(t, "Physics", pending[0].SubjectName)

	all, err := tasks.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestTaskRepoListPendingSameSecondKeepsCreationOrder(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	subjects := repository.NewSubjectRepo(database)
	tasks := repository.NewTaskRepo(database)

	subj := testutil.NewTestSubject("Biology")
	require.NoError(t, subjects.Create(ctx, subj))

	// Two tasks created within the same wall-clock second, with IDs that
	// would invert the order if ordering fell through to comparing them.
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	older := testutil.NewTestTask(subj.ID, "older", testutil.WithCreatedAt(base.Add(100*time.Nanosecond)))
	older.ID = "zz-" + older.ID
	newer := testutil.NewTestTask(subj.ID, "newer", testutil.WithCreatedAt(base.Add(900*time.Nanosecond)))
	newer.ID = "aa-" + newer.ID

	for _, task := range []*domain.Task{newer, older} {
		require.NoError(t, tasks.Create(ctx, task))
	}

	pending, err := tasks.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "older", pending[0].Task.Title)
	assert.Equal(t, "newer", pending[1].Task.Title)
}

func TestTaskRepoCascadeOnSubjectDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	subjects := repository.NewSubjectRepo(database)
	tasks := repository.NewTaskRepo(database)

	subj := testutil.NewTestSubject("Chemistry")
	require.NoError(t, subjects.Create(ctx, subj))
	task := testutil.NewTestTask(subj.ID, "Lab report")
	require.NoError(t, tasks.Create(ctx, task))

	require.NoError(t, subjects.Delete(ctx, subj.ID))

	_, err := tasks.GetByID(ctx, task.ID)
	assert.Error(t, err)
}
