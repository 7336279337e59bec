package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophquiz/internal/common"
	"github.com/dmitrijs2005/gophquiz/internal/cryptox"
	"github.com/dmitrijs2005/gophquiz/internal/logging"
	"github.com/dmitrijs2005/gophquiz/internal/models"
	"github.com/dmitrijs2005/gophquiz/internal/repositories/users"
)

// RegistrationRequest is raw user input. Age is text so that a non-numeric
// entry is reported as ErrInvalidAge.
type RegistrationRequest struct {
	Name     string
	Age      string
	Email    string
	Password []byte
	Role     string
}

// RegistrationService creates accounts.
//
// Register validates, in order: name, age, email shape, email uniqueness,
// password strength, role (coerced, never rejected). The first failure is
// returned as a *ValidationError.
type RegistrationService interface {
	Register(ctx context.Context, req RegistrationRequest) (*Identity, error)
	CheckEmailAvailable(ctx context.Context, email string) error
}

type registrationService struct {
	repo users.Repository
	alg  cryptox.Algorithm
	log  logging.Logger
}

func NewRegistrationService(repo users.Repository, alg cryptox.Algorithm, log logging.Logger) RegistrationService {
	return &registrationService{repo: repo, alg: alg, log: log}
}

// CheckEmailAvailable validates the shape of email and that no record uses it.
func (s *registrationService) CheckEmailAvailable(ctx context.Context, email string) error {
	email, err := ValidateEmail(email)
	if err != nil {
		return err
	}
	all, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	if _, exists := all[email]; exists {
		return invalid("email", ErrDuplicateEmail)
	}
	return nil
}

func (s *registrationService) Register(ctx context.Context, req RegistrationRequest) (*Identity, error) {
	if err := ValidateName(req.Name); err != nil {
		return nil, err
	}
	age, err := ParseAge(req.Age)
	if err != nil {
		return nil, err
	}
	email, err := ValidateEmail(req.Email)
	if err != nil {
		return nil, err
	}

	all, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if _, exists := all[email]; exists {
		return nil, invalid("email", ErrDuplicateEmail)
	}

	if err := CheckPasswordStrength(req.Password); err != nil {
		return nil, err
	}
	role, _ := NormalizeRole(req.Role)

	hash, err := s.alg.Digest(req.Password)
	if err != nil {
		s.log.Error(ctx, "password digest failed", "error", err)
		return nil, common.ErrorInternal
	}

	all[email] = &models.UserRecord{
		Name:         req.Name,
		Age:          age,
		PasswordHash: hash,
		Role:         role,
		Answers:      []string{},
	}
	if err := s.repo.Save(ctx, all); err != nil {
		return nil, fmt.Errorf("save users: %w", err)
	}

	s.log.Info(ctx, "user registered", "email", email, "role", role)
	return &Identity{Email: email, Name: req.Name, Role: role}, nil
}
