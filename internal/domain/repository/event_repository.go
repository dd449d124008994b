package repository

import (
	"context"

	"github.com/lifeosapp/backend/internal/domain/entity"
)

// EventRepository is the append-only life event log. Events have no update
// operation by design.
type EventRepository interface {
	Create(ctx context.Context, e *entity.LifeEvent) error
	GetByID(ctx context.Context, id string) (*entity.LifeEvent, error)
	ListByUser(ctx context.Context, userID string) ([]entity.LifeEvent, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}
