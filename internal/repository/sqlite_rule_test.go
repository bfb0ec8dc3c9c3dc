package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midoradev/study-planner/internal/repository"
	"github.com/midoradev/study-planner/internal/testutil"
)

func TestRuleRepoCreateListDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := repository.NewRuleRepo(database)

	mon := testutil.NewTestRule(time.Monday, 18*60, 20*60)
	wed := testutil.NewTestRule(time.Wednesday, 9*60, 11*60)
	require.NoError(t, repo.Create(ctx, mon))
	require.NoError(t, repo.Create(ctx, wed))

	rules, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	// Weekday then start order.
	assert.Equal(t, time.Monday, rules[0].Weekday)
	assert.Equal(t, 18*60, rules[0].StartMin)
	assert.Equal(t, time.Wednesday, rules[1].Weekday)

	require.NoError(t, repo.Delete(ctx, mon.ID))
	rules, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rules, 1)

	assert.Error(t, repo.Delete(ctx, mon.ID))
}

func TestBusyRepoReplaceCycle(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := repository.NewBusyRepo(database)

	start := time.Date(2026, 1, 5, 19, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testutil.NewTestBusy("Dentist", start, start.Add(30*time.Minute))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestBusy("Standup", start.Add(-time.Hour), start.Add(-30*time.Minute))))

	busy, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, busy, 2)
	// Sorted by start time.
	assert.Equal(t, "Standup", busy[0].Title)
	assert.Equal(t, "Dentist", busy[1].Title)
	assert.True(t, busy[1].Start.Equal(start))

	require.NoError(t, repo.DeleteAll(ctx))
	busy, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, busy)
}
