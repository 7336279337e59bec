package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophquiz/internal/common"
	"github.com/dmitrijs2005/gophquiz/internal/repositories/users"
)

func newQuiz(t *testing.T) (QuizService, *users.MemoryRepository) {
	t.Helper()
	repo := users.NewMemoryRepository(seedUsers(t))
	return NewQuizService(repo, nopLog), repo
}

func TestSubmit_PerfectAndZero(t *testing.T) {
	svc, repo := newQuiz(t)
	ctx := context.Background()

	res, err := svc.Submit(ctx, "ana@example.com", []string{"C", "B", "B", "C", "B"})
	require.NoError(t, err)
	assert.Equal(t, QuizResult{Correct: 5, Total: 5}, res)

	res, err = svc.Submit(ctx, "ana@example.com", []string{"A", "A", "A", "A", "A"})
	require.NoError(t, err)
	assert.Equal(t, QuizResult{Correct: 0, Total: 5}, res)

	all, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A", "A", "A", "A"}, all["ana@example.com"].Answers, "retake overwrites")
	assert.Equal(t, 2, repo.Saves)
}

func TestSubmit_NormalizesLabels(t *testing.T) {
	svc, repo := newQuiz(t)
	ctx := context.Background()

	res, err := svc.Submit(ctx, "ana@example.com", []string{"c", " b", "B ", "d", "a"})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Correct)

	all, _ := repo.Load(ctx)
	assert.Equal(t, []string{"C", "B", "B", "D", "A"}, all["ana@example.com"].Answers)
}

func TestSubmit_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		answers []string
		wantErr error
	}{
		{"too few", "ana@example.com", []string{"C", "B", "B"}, ErrIncompleteQuiz},
		{"too many", "ana@example.com", []string{"C", "B", "B", "C", "B", "A"}, ErrIncompleteQuiz},
		{"bad label", "ana@example.com", []string{"C", "B", "E", "C", "B"}, ErrInvalidAnswer},
		{"unknown user", "ghost@example.com", []string{"C", "B", "B", "C", "B"}, ErrUserNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newQuiz(t)
			_, err := svc.Submit(context.Background(), tt.email, tt.answers)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, repo.Saves, "nothing persisted")
		})
	}
}

func TestSubmit_StoreError(t *testing.T) {
	svc, repo := newQuiz(t)
	repo.LoadErr = common.ErrCorruptData
	_, err := svc.Submit(context.Background(), "ana@example.com", []string{"C", "B", "B", "C", "B"})
	require.ErrorIs(t, err, common.ErrCorruptData)
}
