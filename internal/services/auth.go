package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophquiz/internal/audit"
	"github.com/dmitrijs2005/gophquiz/internal/common"
	"github.com/dmitrijs2005/gophquiz/internal/cryptox"
	"github.com/dmitrijs2005/gophquiz/internal/logging"
	"github.com/dmitrijs2005/gophquiz/internal/models"
	"github.com/dmitrijs2005/gophquiz/internal/repositories/users"
)

// Identity is the authenticated user for the rest of a session.
type Identity struct {
	Email string
	Name  string
	Role  models.Role
}

// AuthService checks credentials.
//
// Authenticate returns ErrAuthFailed for an unknown email and for a wrong
// password alike, and records every attempt in the audit trail. Errors
// loading the store (e.g. common.ErrCorruptData) are returned unchanged and
// are not recorded as attempts.
type AuthService interface {
	Authenticate(ctx context.Context, email string, password []byte) (*Identity, error)
}

type authService struct {
	repo  users.Repository
	audit audit.Recorder
	alg   cryptox.Algorithm
	log   logging.Logger
}

func NewAuthService(repo users.Repository, rec audit.Recorder, alg cryptox.Algorithm, log logging.Logger) AuthService {
	return &authService{repo: repo, audit: rec, alg: alg, log: log}
}

func (s *authService) Authenticate(ctx context.Context, email string, password []byte) (*Identity, error) {
	email = strings.TrimSpace(email)

	all, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	u, found := all[email]
	stored := ""
	if found {
		stored = u.PasswordHash
	}
	ok, err := s.alg.Verify(password, stored)
	if err != nil {
		s.log.Error(ctx, "password verification failed", "error", err)
		return nil, common.ErrorInternal
	}

	if !found || !ok {
		s.audit.RecordLoginAttempt(ctx, email, false)
		s.log.Info(ctx, "login failed", "email", email)
		return nil, ErrAuthFailed
	}

	s.audit.RecordLoginAttempt(ctx, email, true)
	s.log.Info(ctx, "login succeeded", "email", email, "role", u.Role)
	return &Identity{Email: email, Name: u.Name, Role: u.Role}, nil
}
