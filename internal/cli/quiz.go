package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/gophquiz/internal/quiz"
)

// TakeQuiz runs the questionnaire for the logged-in user. Every question is
// asked until a valid option is given and the answers are submitted once at
// the end, so leaving midway (EOF) keeps the previous attempt.
func (a *App) TakeQuiz(ctx context.Context) error {
	a.println()
	a.println("=== Questionário ===")
	a.println("Digite 1 para começar ou 2 para voltar.")
	choice, err := getSimpleText(a.reader, "Escolha:", a.out)
	if err != nil {
		return err
	}
	if choice != "1" {
		return nil
	}

	questions := quiz.Questions()
	answers := make([]string, 0, len(questions))
	for _, q := range questions {
		label, err := a.ask(q)
		if err != nil {
			return err
		}
		answers = append(answers, label)
	}

	res, err := a.quizService.Submit(ctx, a.identity.Email, answers)
	if err != nil {
		return a.fail(ctx, "quiz", err)
	}

	a.session.Info(ctx, "quiz submitted", "correct", res.Correct, "total", res.Total)
	a.println()
	a.println("Obrigado por responder ao questionário!")
	a.printf("Você acertou %d de %d perguntas.\n", res.Correct, res.Total)
	return nil
}

func (a *App) ask(q quiz.Question) (string, error) {
	a.println()
	a.println(q.Prompt)
	for _, o := range q.Options {
		a.printf("%s) %s\n", o.Label, o.Text)
	}
	for {
		in, err := getSimpleText(a.reader, "Sua resposta:", a.out)
		if err != nil {
			return "", err
		}
		if label, ok := quiz.NormalizeAnswer(q, in); ok {
			return label, nil
		}
		a.println("Opção inválida. Digite apenas " + joinLabels(q.Labels()) + ".")
	}
}

// joinLabels renders labels as "A, B, C ou D".
func joinLabels(labels []string) string {
	if len(labels) < 2 {
		return strings.Join(labels, "")
	}
	return strings.Join(labels[:len(labels)-1], ", ") + " ou " + labels[len(labels)-1]
}
