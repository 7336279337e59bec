package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/gophquiz/internal/audit"
	"github.com/dmitrijs2005/gophquiz/internal/common"
	"github.com/dmitrijs2005/gophquiz/internal/models"
	"github.com/dmitrijs2005/gophquiz/internal/repositories/users"
)

// UserView is a listing row. Email is anonymized and the password hash and
// answers are left out.
type UserView struct {
	Name  string
	Email string
	Age   int
	Role  models.Role
}

// DirectoryService lists registered users for admins. Every call is recorded
// in the admin access log, including refused ones.
type DirectoryService interface {
	List(ctx context.Context, requesterEmail string) ([]UserView, error)
}

type directoryService struct {
	repo  users.Repository
	audit audit.Recorder
}

func NewDirectoryService(repo users.Repository, rec audit.Recorder) DirectoryService {
	return &directoryService{repo: repo, audit: rec}
}

func (s *directoryService) List(ctx context.Context, requesterEmail string) ([]UserView, error) {
	s.audit.RecordAdminAccess(ctx, requesterEmail)

	all, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if r, ok := all[requesterEmail]; !ok || !r.Role.IsAdmin() {
		return nil, common.ErrForbidden
	}

	emails := make([]string, 0, len(all))
	for e := range all {
		emails = append(emails, e)
	}
	sort.Strings(emails)

	out := make([]UserView, 0, len(emails))
	for _, e := range emails {
		u := all[e]
		out = append(out, UserView{Name: u.Name, Email: Anonymize(e), Age: u.Age, Role: u.Role})
	}
	return out, nil
}

// Anonymize keeps the first two characters of the local part and the
// domain: "ab@example.com" -> "ab***@example.com".
func Anonymize(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return "***"
	}
	r := []rune(local)
	if len(r) > 2 {
		r = r[:2]
	}
	return string(r) + "***@" + domain
}
