package users

import (
	"context"

	"github.com/dmitrijs2005/gophquiz/internal/models"
)

// Repository persists the full record collection.
type Repository interface {
	// Load returns every stored record keyed by email. A store with no data
	// yields an empty, non-nil map. Malformed data yields common.ErrCorruptData.
	Load(ctx context.Context) (models.Users, error)

	// Save replaces the stored collection with users.
	Save(ctx context.Context, users models.Users) error
}
