package users

import (
	"context"

	"github.com/dmitrijs2005/gophquiz/internal/models"
)

// MemoryRepository keeps the collection in memory. Load and Save copy the
// records, so callers cannot alias stored state. LoadErr and SaveErr, when
// set, are returned instead of doing any work.
type MemoryRepository struct {
	users   models.Users
	Saves   int
	LoadErr error
	SaveErr error
}

func NewMemoryRepository(seed models.Users) *MemoryRepository {
	if seed == nil {
		seed = models.Users{}
	}
	return &MemoryRepository{users: seed.Clone()}
}

func (m *MemoryRepository) Load(ctx context.Context) (models.Users, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.users.Clone(), nil
}

func (m *MemoryRepository) Save(ctx context.Context, users models.Users) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.users = users.Clone()
	m.Saves++
	return nil
}
