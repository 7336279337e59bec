package cli

import "context"

const aboutText = `
=== Sobre o Sistema ===
Este sistema promove a inclusão digital e ensina programação básica e
cibersegurança, respeitando a LGPD. As senhas são armazenadas como resumo
criptográfico, acessos são registrados, e backups automáticos são feitos
para proteger as informações.`

func (a *App) About(context.Context) error {
	a.println(aboutText)
	return nil
}
