package repository

import (
	"context"

	"github.com/lifeosapp/backend/internal/domain/entity"
)

// HealthLogRepository stores daily health logs.
type HealthLogRepository interface {
	Create(ctx context.Context, l *entity.HealthLog) error
	GetByID(ctx context.Context, id string) (*entity.HealthLog, error)
	ListByUser(ctx context.Context, userID string) ([]entity.HealthLog, error)
	// ListRecent returns up to limit logs ordered by timestamp descending.
	ListRecent(ctx context.Context, userID string, limit int) ([]entity.HealthLog, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}
