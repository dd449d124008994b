package repository

import (
	"context"

	"github.com/lifeosapp/backend/internal/domain/entity"
)

// TransactionRepository stores financial records.
type TransactionRepository interface {
	Create(ctx context.Context, t *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Transaction, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}
