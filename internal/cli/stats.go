package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/dmitrijs2005/gophquiz/internal/services"
)

// Stats prints the age summary followed by the quiz score summary.
func (a *App) Stats(ctx context.Context) error {
	ages, err := a.statsService.AgeStats(ctx)
	if err != nil {
		return a.fail(ctx, "age stats", err)
	}

	a.println()
	a.println("=== Estatísticas de Idade dos Usuários ===")
	a.printf("Idade média: %s anos\n", formatNumber(ages.Mean))
	a.printf("Moda das idades: %s anos\n", formatNumber(ages.Mode))
	a.printf("Mediana das idades: %s anos\n", formatNumber(ages.Median))

	a.println()
	a.println("=== Estatísticas de Acertos no Questionário ===")
	scores, err := a.statsService.QuizStats(ctx)
	if errors.Is(err, services.ErrNoSubmissions) {
		msg, _ := userMessage(err)
		a.println(msg)
		return nil
	}
	if err != nil {
		return a.fail(ctx, "quiz stats", err)
	}
	a.printf("Média de acertos: %s\n", formatNumber(scores.Mean))
	a.printf("Moda dos acertos: %s\n", formatNumber(scores.Mode))
	a.printf("Mediana dos acertos: %s\n", formatNumber(scores.Median))
	return nil
}

// formatNumber prints whole numbers without decimals: 22 -> "22", 2.5 -> "2.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
