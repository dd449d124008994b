package repository

import (
	"context"

	"github.com/lifeosapp/backend/internal/domain/entity"
)

// GoalRepository stores goals.
type GoalRepository interface {
	Create(ctx context.Context, g *entity.Goal) error
	GetByID(ctx context.Context, id string) (*entity.Goal, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Goal, error)
	// ListScorable returns goals whose status is not abandoned.
	ListScorable(ctx context.Context, userID string) ([]entity.Goal, error)
	Update(ctx context.Context, g *entity.Goal) error
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}
