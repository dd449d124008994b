package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lifeosapp/backend/internal/domain/entity"
	"github.com/lifeosapp/backend/internal/domain/repository"
)

type RelationshipRepository struct {
	pool *pgxpool.Pool
}

func NewRelationshipRepository(pool *pgxpool.Pool) *RelationshipRepository {
	return &RelationshipRepository{pool: pool}
}

func (r *RelationshipRepository) Create(ctx context.Context, rel *entity.Relationship) error {
	history := rel.InteractionHistory
	if history == nil {
		history = []entity.Interaction{}
	}
	raw, err := json.Marshal(history)
	if err != nil {
		return err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO relationships (user_id, name, type, health_score, last_interaction, interaction_history)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, rel.UserID, rel.Name, rel.Type, rel.HealthScore, rel.LastInteraction, raw)

	return row.Scan(&rel.ID, &rel.CreatedAt)
}

func (r *RelationshipRepository) GetByID(ctx context.Context, id string) (*entity.Relationship, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, type, health_score, last_interaction, interaction_history, created_at
		FROM relationships
		WHERE id = $1
	`, id)

	rel, err := scanRelationship(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rel, nil
}

func (r *RelationshipRepository) ListByUser(ctx context.Context, userID string) ([]entity.Relationship, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, type, health_score, last_interaction, interaction_history, created_at
		FROM relationships
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rels := make([]entity.Relationship, 0)
	for rows.Next() {
		rel, err := scanRelationship(rows)
		if err != nil {
			return nil, err
		}
		rels = append(rels, *rel)
	}
	return rels, rows.Err()
}

func (r *RelationshipRepository) Update(ctx context.Context, rel *entity.Relationship) error {
	history := rel.InteractionHistory
	if history == nil {
		history = []entity.Interaction{}
	}
	raw, err := json.Marshal(history)
	if err != nil {
		return err
	}

	res, err := r.pool.Exec(ctx, `
		UPDATE relationships
		SET name = $1, type = $2, health_score = $3, last_interaction = $4, interaction_history = $5
		WHERE id = $6
	`, rel.Name, rel.Type, rel.HealthScore, rel.LastInteraction, raw, rel.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *RelationshipRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM relationships WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *RelationshipRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM relationships WHERE user_id = $1`, userID)
	return err
}

func scanRelationship(row pgx.Row) (*entity.Relationship, error) {
	rel := &entity.Relationship{}
	var history []byte

	if err := row.Scan(&rel.ID, &rel.UserID, &rel.Name, &rel.Type, &rel.HealthScore,
		&rel.LastInteraction, &history, &rel.CreatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(history, &rel.InteractionHistory); err != nil {
		return nil, err
	}
	return rel, nil
}

var _ repository.RelationshipRepository = (*RelationshipRepository)(nil)
