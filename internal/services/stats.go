package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophquiz/internal/quiz"
	"github.com/dmitrijs2005/gophquiz/internal/repositories/users"
	"github.com/dmitrijs2005/gophquiz/internal/stats"
)

const (
	ageMeanPlaces   = 0
	scoreMeanPlaces = 2
)

// StatsService aggregates over every stored user.
//
// AgeStats returns ErrNoData when nobody is registered. QuizStats only
// counts users whose stored attempt is complete and returns ErrNoSubmissions
// when there are none.
type StatsService interface {
	AgeStats(ctx context.Context) (stats.Summary, error)
	QuizStats(ctx context.Context) (stats.Summary, error)
}

type statsService struct {
	repo users.Repository
}

func NewStatsService(repo users.Repository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) AgeStats(ctx context.Context) (stats.Summary, error) {
	all, err := s.repo.Load(ctx)
	if err != nil {
		return stats.Summary{}, fmt.Errorf("load users: %w", err)
	}
	if len(all) == 0 {
		return stats.Summary{}, ErrNoData
	}

	ages := make([]int, 0, len(all))
	for _, u := range all {
		ages = append(ages, u.Age)
	}
	return stats.Summarize(ages, ageMeanPlaces)
}

func (s *statsService) QuizStats(ctx context.Context) (stats.Summary, error) {
	all, err := s.repo.Load(ctx)
	if err != nil {
		return stats.Summary{}, fmt.Errorf("load users: %w", err)
	}

	var scores []int
	for _, u := range all {
		if quiz.IsComplete(u.Answers) {
			scores = append(scores, quiz.Score(u.Answers))
		}
	}
	if len(scores) == 0 {
		return stats.Summary{}, ErrNoSubmissions
	}
	return stats.Summarize(scores, scoreMeanPlaces)
}
