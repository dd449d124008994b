package repository

import (
	"context"

	"github.com/lifeosapp/backend/internal/domain/entity"
)

// TaskRepository stores tasks.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Task, error)
	ListByGoal(ctx context.Context, goalID string) ([]entity.Task, error)
	Update(ctx context.Context, t *entity.Task) error
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}
