// Package quiz holds the fixed security-awareness questionnaire and the pure
// scoring rules. The answer key is only used here; callers never see it.
package quiz

import "strings"

// Option is one labelled choice of a question.
type Option struct {
	Label string
	Text  string
}

type Question struct {
	Prompt  string
	Options []Option
	correct string
}

// HasLabel reports whether label is one of q's option labels.
func (q Question) HasLabel(label string) bool {
	for _, o := range q.Options {
		if o.Label == label {
			return true
		}
	}
	return false
}

// Labels returns the option labels in display order.
func (q Question) Labels() []string {
	out := make([]string, len(q.Options))
	for i, o := range q.Options {
		out[i] = o.Label
	}
	return out
}

func abcd(a, b, c, d string) []Option {
	return []Option{{"A", a}, {"B", b}, {"C", c}, {"D", d}}
}

var questions = []Question{
	{
		Prompt: "1. Qual das opções é um exemplo de boa prática de segurança digital?",
		Options: abcd("Compartilhar senhas com colegas", "Usar a mesma senha em todos os sites",
			"Criar senhas fortes e únicas", "Deixar senhas anotadas no computador"),
		correct: "C",
	},
	{
		Prompt: "2. O que significa LGPD?",
		Options: abcd("Lei Geral de Programação Digital", "Lei Geral de Proteção de Dados",
			"Lista Geral de Propriedade de Dados", "Lei de Garantia da Privacidade Digital"),
		correct: "B",
	},
	{
		Prompt: "3. Qual dos itens abaixo é um exemplo de phishing?",
		Options: abcd("Atualização do antivírus", "E-mail falso pedindo dados pessoais",
			"Uso de autenticação em dois fatores", "Download de software oficial"),
		correct: "B",
	},
	{
		Prompt:  "4. Qual extensão é mais comum para arquivos executáveis no Windows?",
		Options: abcd(".docx", ".jpg", ".exe", ".mp3"),
		correct: "C",
	},
	{
		Prompt:  "5. Qual comando Python é usado para repetir algo várias vezes?",
		Options: abcd("if", "while", "print", "def"),
		correct: "B",
	},
}

// Questions returns a copy of the questionnaire in order.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// Len is the number of questions; a complete submission has exactly this
// many answers.
func Len() int { return len(questions) }

// NormalizeAnswer trims and upper-cases input and checks it against q.
func NormalizeAnswer(q Question, input string) (string, bool) {
	label := strings.ToUpper(strings.TrimSpace(input))
	if label == "" || !q.HasLabel(label) {
		return "", false
	}
	return label, true
}

// Score counts answers matching the key position by position,
// case-insensitively. Extra answers are ignored; missing ones count as wrong.
func Score(answers []string) int {
	n := 0
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		if strings.ToUpper(strings.TrimSpace(answers[i])) == q.correct {
			n++
		}
	}
	return n
}

// IsComplete reports whether answers holds one entry per question.
func IsComplete(answers []string) bool {
	return len(answers) == len(questions)
}
