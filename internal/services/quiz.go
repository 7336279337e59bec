package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophquiz/internal/logging"
	"github.com/dmitrijs2005/gophquiz/internal/quiz"
	"github.com/dmitrijs2005/gophquiz/internal/repositories/users"
)

type QuizResult struct {
	Correct int
	Total   int
}

// QuizService stores a finished attempt. Only complete attempts are ever
// submitted; a new attempt replaces the previous one.
type QuizService interface {
	Submit(ctx context.Context, email string, answers []string) (QuizResult, error)
}

type quizService struct {
	repo users.Repository
	log  logging.Logger
}

func NewQuizService(repo users.Repository, log logging.Logger) QuizService {
	return &quizService{repo: repo, log: log}
}

func (s *quizService) Submit(ctx context.Context, email string, answers []string) (QuizResult, error) {
	if !quiz.IsComplete(answers) {
		return QuizResult{}, fmt.Errorf("%w: got %d of %d answers", ErrIncompleteQuiz, len(answers), quiz.Len())
	}

	questions := quiz.Questions()
	normalized := make([]string, len(answers))
	for i, a := range answers {
		label, ok := quiz.NormalizeAnswer(questions[i], a)
		if !ok {
			return QuizResult{}, fmt.Errorf("%w: question %d: %q", ErrInvalidAnswer, i+1, a)
		}
		normalized[i] = label
	}

	all, err := s.repo.Load(ctx)
	if err != nil {
		return QuizResult{}, fmt.Errorf("load users: %w", err)
	}
	u, ok := all[email]
	if !ok {
		return QuizResult{}, ErrUserNotFound
	}

	u.Answers = normalized
	if err := s.repo.Save(ctx, all); err != nil {
		return QuizResult{}, fmt.Errorf("save users: %w", err)
	}

	res := QuizResult{Correct: quiz.Score(normalized), Total: quiz.Len()}
	s.log.Info(ctx, "quiz submitted", "email", email, "correct", res.Correct, "total", res.Total)
	return res, nil
}
