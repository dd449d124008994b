package repository

import (
	"context"

	"github.com/lifeosapp/backend/internal/domain/entity"
)

// HabitRepository stores habits and their completion history.
type HabitRepository interface {
	Create(ctx context.Context, h *entity.Habit) error
	GetByID(ctx context.Context, id string) (*entity.Habit, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Habit, error)
	// ListActive returns habits with IsActive set.
	ListActive(ctx context.Context, userID string) ([]entity.Habit, error)
	Update(ctx context.Context, h *entity.Habit) error
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}
