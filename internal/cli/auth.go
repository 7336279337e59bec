package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophquiz/internal/common"
	"github.com/dmitrijs2005/gophquiz/internal/services"
)

const passwordPolicyPrompt = "Digite sua senha (mínimo 6 caracteres, 1 letra maiúscula e 1 número):"

// Register collects a new account field by field.
//
// An invalid name or age ends the registration. Email and password are asked
// again until they pass; an unknown role falls back to student with a notice.
// The final write goes through RegistrationService.Register, which checks
// everything once more against the current store.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Digite seu nome:", a.out)
	if err != nil {
		return err
	}
	if err := services.ValidateName(name); err != nil {
		return a.fail(ctx, "register", err)
	}

	age, err := getSimpleText(a.reader, "Digite sua idade:", a.out)
	if err != nil {
		return err
	}
	if _, err := services.ParseAge(age); err != nil {
		return a.fail(ctx, "register", err)
	}

	var email string
	for {
		email, err = getSimpleText(a.reader, "Digite seu email:", a.out)
		if err != nil {
			return err
		}
		err = a.registration.CheckEmailAvailable(ctx, email)
		if err == nil {
			break
		}
		if !errors.Is(err, services.ErrInvalidEmail) && !errors.Is(err, services.ErrDuplicateEmail) {
			return a.fail(ctx, "register", err)
		}
		msg, _ := userMessage(err)
		a.println(msg)
	}

	var password []byte
	for {
		password, err = getPassword(ctx, a.reader, passwordPolicyPrompt, a.out)
		if err != nil {
			return err
		}
		if err = services.CheckPasswordStrength(password); err == nil {
			break
		}
		common.WipeByteArray(password)
		msg, _ := userMessage(err)
		a.println(msg)
	}
	defer common.WipeByteArray(password)

	role, err := getSimpleText(a.reader, "Digite o tipo de usuário (admin/aluno):", a.out)
	if err != nil {
		return err
	}
	if _, ok := services.NormalizeRole(role); !ok {
		a.println(`Tipo inválido! Padrão definido como "aluno".`)
	}

	_, err = a.registration.Register(ctx, services.RegistrationRequest{
		Name:     name,
		Age:      age,
		Email:    email,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return a.fail(ctx, "register", err)
	}

	a.println("Cadastro realizado com sucesso!")
	return nil
}

// Login asks for credentials and starts a session on success. Each session
// gets its own id in the diagnostic log.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Digite seu email:", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(ctx, a.reader, "Digite sua senha:", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.authService.Authenticate(ctx, email, password)
	if err != nil {
		return a.fail(ctx, "login", err)
	}

	a.startSession(id)
	a.session.Info(ctx, "session started", "role", id.Role)
	a.printf("Bem-vindo(a), %s!\n", id.Name)
	return nil
}

// Logout ends the current session and returns to the top-level menu.
func (a *App) Logout(ctx context.Context) error {
	a.session.Info(ctx, "session ended")
	a.endSession()
	return nil
}
