package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophquiz/internal/cryptox"
	"github.com/dmitrijs2005/gophquiz/internal/logging"
	"github.com/dmitrijs2005/gophquiz/internal/models"
	"github.com/dmitrijs2005/gophquiz/internal/repositories/users"
	"github.com/dmitrijs2005/gophquiz/internal/services"
)

type fakeRecorder struct {
	attempts []string
	access   []string
}

func (f *fakeRecorder) RecordLoginAttempt(_ context.Context, email string, success bool) {
	res := "FALHA"
	if success {
		res = "SUCESSO"
	}
	f.attempts = append(f.attempts, email+" "+res)
}

func (f *fakeRecorder) RecordAdminAccess(_ context.Context, email string) {
	f.access = append(f.access, email)
}

// stubTerminal makes password prompts read plain lines from the app reader.
func stubTerminal(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

func seedUsers(t *testing.T) models.Users {
	t.Helper()
	hash := func(pw string) string {
		d, err := cryptox.SHA256.Digest([]byte(pw))
		require.NoError(t, err)
		return d
	}
	return models.Users{
		"admin@example.com": {Name: "Admin", Age: 40, PasswordHash: hash("Admin1"), Role: models.RoleAdmin, Answers: []string{}},
		"ana@example.com":   {Name: "Ana", Age: 20, PasswordHash: hash("Senha1"), Role: models.RoleStudent, Answers: []string{}},
	}
}

type testApp struct {
	*App
	out  *bytes.Buffer
	logs *bytes.Buffer
	repo *users.MemoryRepository
	rec  *fakeRecorder
}

func newTestApp(t *testing.T, input string, seed models.Users) *testApp {
	t.Helper()
	stubTerminal(t)

	logs := &bytes.Buffer{}
	log, err := logging.New("debug", logs)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	repo := users.NewMemoryRepository(seed)
	rec := &fakeRecorder{}
	a := newApp(repo, rec, cryptox.SHA256, log, strings.NewReader(input), out)
	return &testApp{App: a, out: out, logs: logs, repo: repo, rec: rec}
}

func (ta *testApp) loginAs(t *testing.T, email string) {
	t.Helper()
	all, err := ta.repo.Load(context.Background())
	require.NoError(t, err)
	u, ok := all[email]
	require.True(t, ok, email)
	ta.startSession(&services.Identity{Email: email, Name: u.Name, Role: u.Role})
}
