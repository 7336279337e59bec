package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophquiz/internal/common"
	"github.com/dmitrijs2005/gophquiz/internal/models"
	"github.com/dmitrijs2005/gophquiz/internal/repositories/users"
	"github.com/dmitrijs2005/gophquiz/internal/stats"
)

func TestAgeStats(t *testing.T) {
	repo := users.NewMemoryRepository(models.Users{
		"a@x.com": {Age: 20, Role: models.RoleStudent},
		"b@x.com": {Age: 20, Role: models.RoleStudent},
		"c@x.com": {Age: 25, Role: models.RoleAdmin},
	})

	s, err := NewStatsService(repo).AgeStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stats.Summary{Count: 3, Mean: 22, Mode: 20, Median: 20}, s)
}

func TestAgeStats_NoUsers(t *testing.T) {
	_, err := NewStatsService(users.NewMemoryRepository(nil)).AgeStats(context.Background())
	require.ErrorIs(t, err, ErrNoData)
}

func TestQuizStats_OnlyCompleteAttempts(t *testing.T) {
	repo := users.NewMemoryRepository(models.Users{
		"a@x.com": {Age: 20, Answers: []string{"C", "B", "B", "C", "B"}},
		"b@x.com": {Age: 21, Answers: []string{"A", "A", "A", "A", "A"}},
		"c@x.com": {Age: 22, Answers: []string{"C", "B", "B", "C", "A"}},
		"d@x.com": {Age: 23, Answers: []string{"C", "B", "B"}},
		"e@x.com": {Age: 24, Answers: []string{}},
		"f@x.com": {Age: 25},
	})

	s, err := NewStatsService(repo).QuizStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 3.0, s.Mean)
	assert.Equal(t, 0.0, s.Mode, "all distinct, smallest wins")
	assert.Equal(t, 4.0, s.Median)
}

func TestQuizStats_MeanTwoDecimals(t *testing.T) {
	repo := users.NewMemoryRepository(models.Users{
		"a@x.com": {Answers: []string{"C", "B", "B", "C", "B"}},
		"b@x.com": {Answers: []string{"C", "A", "A", "A", "A"}},
		"c@x.com": {Answers: []string{"C", "A", "A", "A", "A"}},
	})

	s, err := NewStatsService(repo).QuizStats(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 2.33, s.Mean, 1e-9)
	assert.Equal(t, 1.0, s.Mode)
	assert.Equal(t, 1.0, s.Median)
}

func TestQuizStats_NoSubmissions(t *testing.T) {
	repo := users.NewMemoryRepository(models.Users{
		"d@x.com": {Age: 23, Answers: []string{"C", "B", "B"}},
	})
	_, err := NewStatsService(repo).QuizStats(context.Background())
	require.ErrorIs(t, err, ErrNoSubmissions)
}

func TestStats_StoreError(t *testing.T) {
	repo := users.NewMemoryRepository(nil)
	repo.LoadErr = common.ErrCorruptData
	svc := NewStatsService(repo)

	_, err := svc.AgeStats(context.Background())
	require.ErrorIs(t, err, common.ErrCorruptData)
	_, err = svc.QuizStats(context.Background())
	require.ErrorIs(t, err, common.ErrCorruptData)
}
