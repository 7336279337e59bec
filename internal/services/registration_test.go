package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophquiz/internal/common"
	"github.com/dmitrijs2005/gophquiz/internal/cryptox"
	"github.com/dmitrijs2005/gophquiz/internal/models"
	"github.com/dmitrijs2005/gophquiz/internal/repositories/users"
)

func validRequest() RegistrationRequest {
	return RegistrationRequest{
		Name:     "Bia",
		Age:      "18",
		Email:    "bia@example.com",
		Password: []byte("Abcde1"),
		Role:     "aluno",
	}
}

func newRegistration(t *testing.T, seed models.Users) (RegistrationService, *users.MemoryRepository) {
	t.Helper()
	repo := users.NewMemoryRepository(seed)
	return NewRegistrationService(repo, cryptox.SHA256, nopLog), repo
}

func TestRegister_Success(t *testing.T) {
	svc, repo := newRegistration(t, nil)
	ctx := context.Background()

	id, err := svc.Register(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, &Identity{Email: "bia@example.com", Name: "Bia", Role: models.RoleStudent}, id)

	all, err := repo.Load(ctx)
	require.NoError(t, err)
	u := all["bia@example.com"]
	require.NotNil(t, u)
	assert.Equal(t, 18, u.Age)
	assert.NotEqual(t, "Abcde1", u.PasswordHash, "plaintext must never be stored")
	assert.Equal(t, digest(t, "Abcde1"), u.PasswordHash)
	assert.Equal(t, []string{}, u.Answers)
	assert.Equal(t, 1, repo.Saves)
}

func TestRegister_AgeBoundary(t *testing.T) {
	svc, repo := newRegistration(t, nil)
	ctx := context.Background()

	req := validRequest()
	req.Age = "17"
	_, err := svc.Register(ctx, req)
	require.ErrorIs(t, err, ErrUnderage)
	assert.Equal(t, 0, repo.Saves)

	req.Age = "18"
	_, err = svc.Register(ctx, req)
	require.NoError(t, err)
}

func TestRegister_PasswordBoundaries(t *testing.T) {
	tests := []struct {
		pw string
		ok bool
	}{
		{"Abc12", false},
		{"Abcde1", true},
		{"abcdef1", false},
		{"ABCDEFG", false},
	}
	for _, tt := range tests {
		t.Run(tt.pw, func(t *testing.T) {
			svc, _ := newRegistration(t, nil)
			req := validRequest()
			req.Password = []byte(tt.pw)
			_, err := svc.Register(context.Background(), req)
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrWeakPassword)
			}
		})
	}
}

func TestRegister_DuplicateLeavesExistingUntouched(t *testing.T) {
	seed := seedUsers(t)
	svc, repo := newRegistration(t, seed)
	ctx := context.Background()

	req := validRequest()
	req.Email = " ana@example.com "
	req.Name = "Impostor"
	req.Password = []byte("Other99")
	_, err := svc.Register(ctx, req)
	require.ErrorIs(t, err, ErrDuplicateEmail)
	assert.False(t, errors.Is(err, ErrValidation))

	all, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(seed, all))
	assert.Equal(t, 0, repo.Saves)
}

func TestRegister_UnknownRoleBecomesStudent(t *testing.T) {
	svc, repo := newRegistration(t, nil)
	req := validRequest()
	req.Role = "professor"

	id, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, id.Role)

	all, _ := repo.Load(context.Background())
	assert.Equal(t, models.RoleStudent, all["bia@example.com"].Role)
}

func TestRegister_AdminRoleNormalized(t *testing.T) {
	svc, _ := newRegistration(t, nil)
	req := validRequest()
	req.Role = "  Admin "

	id, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, id.Role)
}

func TestRegister_ValidationOrder(t *testing.T) {
	svc, _ := newRegistration(t, seedUsers(t))

	// Every field is bad; the name is checked first.
	req := RegistrationRequest{Name: "<b>", Age: "x", Email: "nope", Password: []byte("a"), Role: "?"}
	_, err := svc.Register(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidName)

	req.Name = "Ok"
	_, err = svc.Register(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidAge)

	req.Age = "30"
	_, err = svc.Register(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidEmail)

	req.Email = "ana@example.com"
	_, err = svc.Register(context.Background(), req)
	require.ErrorIs(t, err, ErrDuplicateEmail, "uniqueness is checked before password strength")

	req.Email = "new@example.com"
	_, err = svc.Register(context.Background(), req)
	require.ErrorIs(t, err, ErrWeakPassword)
}

func TestRegister_StoreErrors(t *testing.T) {
	svc, repo := newRegistration(t, nil)
	repo.LoadErr = common.ErrCorruptData
	_, err := svc.Register(context.Background(), validRequest())
	require.ErrorIs(t, err, common.ErrCorruptData)

	repo.LoadErr = nil
	repo.SaveErr = errors.New("disk full")
	_, err = svc.Register(context.Background(), validRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRegister_NullRecordInFileIsNotDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usuarios.json")
	data := `{"ghost@example.com": null}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	svc := NewRegistrationService(users.NewFileRepository(path), cryptox.SHA256, nopLog)

	_, err := svc.Register(context.Background(), validRequest())
	require.ErrorIs(t, err, common.ErrCorruptData)

	kept, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(kept), "ghost@example.com")
}

func TestCheckEmailAvailable(t *testing.T) {
	svc, _ := newRegistration(t, seedUsers(t))
	ctx := context.Background()

	assert.NoError(t, svc.CheckEmailAvailable(ctx, "new@example.com"))
	assert.ErrorIs(t, svc.CheckEmailAvailable(ctx, "ana@example.com"), ErrDuplicateEmail)
	assert.NoError(t, svc.CheckEmailAvailable(ctx, "Ana@example.com"), "emails are case-sensitive")
	assert.ErrorIs(t, svc.CheckEmailAvailable(ctx, "bad"), ErrInvalidEmail)
}
