package cli

import "context"

// ListUsers prints every registered user with an anonymized email. Only
// admins get the listing; every request is written to the access log.
func (a *App) ListUsers(ctx context.Context) error {
	rows, err := a.directory.List(ctx, a.identity.Email)
	if err != nil {
		return a.fail(ctx, "list users", err)
	}

	a.println()
	a.println("=== Lista de Usuários (uso interno apenas) ===")
	for _, u := range rows {
		a.printf("Nome: %s, Email: %s, Idade: %d, Tipo: %s\n", u.Name, u.Email, u.Age, u.Role)
	}
	return nil
}
