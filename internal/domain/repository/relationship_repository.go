package repository

import (
	"context"

	"github.com/lifeosapp/backend/internal/domain/entity"
)

// RelationshipRepository stores social connections.
type RelationshipRepository interface {
	Create(ctx context.Context, r *entity.Relationship) error
	GetByID(ctx context.Context, id string) (*entity.Relationship, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Relationship, error)
	Update(ctx context.Context, r *entity.Relationship) error
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}
