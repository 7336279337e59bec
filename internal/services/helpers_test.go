package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophquiz/internal/cryptox"
	"github.com/dmitrijs2005/gophquiz/internal/logging"
	"github.com/dmitrijs2005/gophquiz/internal/models"
)

type attempt struct {
	email   string
	success bool
}

type fakeRecorder struct {
	attempts []attempt
	access   []string
}

func (f *fakeRecorder) RecordLoginAttempt(_ context.Context, email string, success bool) {
	f.attempts = append(f.attempts, attempt{email, success})
}

func (f *fakeRecorder) RecordAdminAccess(_ context.Context, email string) {
	f.access = append(f.access, email)
}

var nopLog = logging.Nop()

func digest(t *testing.T, pw string) string {
	t.Helper()
	d, err := cryptox.SHA256.Digest([]byte(pw))
	require.NoError(t, err)
	return d
}

func seedUsers(t *testing.T) models.Users {
	t.Helper()
	return models.Users{
		"admin@example.com": {Name: "Admin", Age: 40, PasswordHash: digest(t, "Admin1"), Role: models.RoleAdmin, Answers: []string{}},
		"ana@example.com":   {Name: "Ana", Age: 20, PasswordHash: digest(t, "Senha1"), Role: models.RoleStudent, Answers: []string{}},
	}
}
