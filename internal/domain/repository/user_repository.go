package repository

import (
	"context"
	"errors"

	"github.com/lifeosapp/backend/internal/domain/entity"
)

// ErrNotFound is returned by any repository when the requested record does
// not exist.
var ErrNotFound = errors.New("not found")

// UserRepository defines the interface for profile record operations.
// UpdateScores must write all six score fields in a single statement so a
// partially updated ScoreSet is never observable.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	UpdateScores(ctx context.Context, userID string, s entity.ScoreSet) error
}
