package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophquiz/internal/common"
	"github.com/dmitrijs2005/gophquiz/internal/services"
)

var userMessages = []struct {
	err error
	msg string
}{
	{services.ErrAuthFailed, "Email ou senha incorretos."},
	{services.ErrInvalidName, "Nome inválido."},
	{services.ErrInvalidAge, "Idade inválida."},
	{services.ErrUnderage, "Você não tem idade suficiente."},
	{services.ErrInvalidEmail, "Email inválido. Tente novamente."},
	{services.ErrDuplicateEmail, "Esse e-mail já está cadastrado. Tente outro."},
	{services.ErrWeakPassword, "Senha fraca. Tente novamente."},
	{services.ErrUserNotFound, "Usuário não encontrado."},
	{services.ErrIncompleteQuiz, "Questionário incompleto."},
	{services.ErrInvalidAnswer, "Opção inválida."},
	{services.ErrNoData, "Nenhum usuário cadastrado para análise."},
	{services.ErrNoSubmissions, "Nenhum questionário respondido até o momento."},
	{common.ErrForbidden, "Acesso restrito a administradores."},
	{common.ErrCorruptData, "O arquivo de usuários está corrompido. Verifique o arquivo de dados."},
}

// userMessage turns an error into the text shown to the user. ok is false
// for errors the user cannot act on.
func userMessage(err error) (msg string, ok bool) {
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg, true
		}
	}
	return "Erro interno. Tente novamente.", false
}

// fail reports err to the user and to the diagnostic log and returns it.
func (a *App) fail(ctx context.Context, op string, err error) error {
	msg, ok := userMessage(err)
	a.println(msg)
	if !ok || errors.Is(err, common.ErrCorruptData) {
		a.session.Error(ctx, op+" failed", "error", err)
	} else {
		a.session.Debug(ctx, op+" failed", "error", err)
	}
	return err
}
