package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lifeosapp/backend/internal/domain/entity"
	"github.com/lifeosapp/backend/internal/domain/repository"
)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) Create(ctx context.Context, e *entity.LifeEvent) error {
	var sourceKind, sourceID *string
	if e.Source != nil {
		k := string(e.Source.Kind)
		sourceKind, sourceID = &k, &e.Source.ID
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO life_events (user_id, type, title, description, impact, value, tags, source_kind, source_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`, e.UserID, e.Type, e.Title, e.Description, e.Impact, e.Value, e.Tags, sourceKind, sourceID, e.Timestamp)

	return row.Scan(&e.ID, &e.CreatedAt)
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*entity.LifeEvent, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, type, title, description, impact, value, tags, source_kind, source_id, occurred_at, created_at
		FROM life_events
		WHERE id = $1
	`, id)

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *EventRepository) ListByUser(ctx context.Context, userID string) ([]entity.LifeEvent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, type, title, description, impact, value, tags, source_kind, source_id, occurred_at, created_at
		FROM life_events
		WHERE user_id = $1
		ORDER BY occurred_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]entity.LifeEvent, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM life_events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *EventRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM life_events WHERE user_id = $1`, userID)
	return err
}

func scanEvent(row pgx.Row) (*entity.LifeEvent, error) {
	e := &entity.LifeEvent{}
	var sourceKind, sourceID *string

	if err := row.Scan(&e.ID, &e.UserID, &e.Type, &e.Title, &e.Description, &e.Impact,
		&e.Value, &e.Tags, &sourceKind, &sourceID, &e.Timestamp, &e.CreatedAt); err != nil {
		return nil, err
	}

	if sourceKind != nil && sourceID != nil {
		e.Source = &entity.SourceRef{Kind: entity.SourceKind(*sourceKind), ID: *sourceID}
	}
	return e, nil
}

var _ repository.EventRepository = (*EventRepository)(nil)
