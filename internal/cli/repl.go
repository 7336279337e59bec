package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophquiz/internal/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Fprintln

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	currentRole() (models.Role, bool)
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	About(ctx context.Context) error
	ListUsers(ctx context.Context) error
	Stats(ctx context.Context) error
	TakeQuiz(ctx context.Context) error
	Logout(ctx context.Context) error
}

type menuItem struct {
	key   string
	label string
	run   func(context.Context) error // nil leaves the program
}

type menu struct {
	title string
	items []menuItem
}

func menuFor(a execIface) menu {
	role, loggedIn := a.currentRole()
	switch {
	case !loggedIn:
		return menu{title: "=== Bem-vindo(a)! ===", items: []menuItem{
			{"1", "Cadastrar", a.Register},
			{"2", "Login", a.Login},
			{"3", "Sobre o Sistema", a.About},
			{"4", "Sair", nil},
		}}
	case role.IsAdmin():
		return menu{title: "===== Menu do Administrador =====", items: []menuItem{
			{"1", "Listar usuários", a.ListUsers},
			{"2", "Estatísticas", a.Stats},
			{"3", "Questionário", a.TakeQuiz},
			{"4", "Sair do Admin", a.Logout},
		}}
	default:
		return menu{title: "===== Menu do Aluno =====", items: []menuItem{
			{"1", "Estatísticas", a.Stats},
			{"2", "Questionário", a.TakeQuiz},
			{"3", "Sair do Aluno", a.Logout},
		}}
	}
}

// runREPL shows the menu for the current session on w, reads a choice from
// reader and dispatches it to a. The loop exits when the user picks "Sair" on
// the top-level menu, when input reaches EOF (including EOF hit inside a
// command) or when ctx is done.
//
// Errors returned by command handlers are otherwise ignored here; handlers
// report them to the user themselves.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) {
	for ctx.Err() == nil {
		m := menuFor(a)
		printlnFn(w)
		printlnFn(w, m.title)
		for _, it := range m.items {
			printlnFn(w, it.key+" - "+it.label)
		}

		choice, err := getSimpleText(reader, "Escolha uma opção:", w)
		if err != nil {
			return
		}

		item, ok := m.find(choice)
		if !ok {
			printlnFn(w, "Opção inválida.")
			continue
		}
		if item.run == nil {
			printlnFn(w, "Até mais...")
			return
		}
		if err := item.run(ctx); errors.Is(err, io.EOF) || ctx.Err() != nil {
			return
		}
	}
}

func (m menu) find(key string) (menuItem, bool) {
	for _, it := range m.items {
		if it.key == key {
			return it, true
		}
	}
	return menuItem{}, false
}
