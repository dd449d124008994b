package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lifeosapp/backend/internal/domain/entity"
	"github.com/lifeosapp/backend/internal/domain/repository"
)

type GoalRepository struct {
	pool *pgxpool.Pool
}

func NewGoalRepository(pool *pgxpool.Pool) *GoalRepository {
	return &GoalRepository{pool: pool}
}

func (r *GoalRepository) Create(ctx context.Context, g *entity.Goal) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO goals (user_id, title, category, deadline, priority, status, progress)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, g.UserID, g.Title, g.Category, g.Deadline, g.Priority, g.Status, g.Progress)

	return row.Scan(&g.ID, &g.CreatedAt)
}

func (r *GoalRepository) GetByID(ctx context.Context, id string) (*entity.Goal, error) {
	g := &entity.Goal{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, title, category, deadline, priority, status, progress, created_at
		FROM goals
		WHERE id = $1
	`, id)

	if err := row.Scan(&g.ID, &g.UserID, &g.Title, &g.Category, &g.Deadline,
		&g.Priority, &g.Status, &g.Progress, &g.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return g, nil
}

func (r *GoalRepository) ListByUser(ctx context.Context, userID string) ([]entity.Goal, error) {
	return r.list(ctx, userID, false)
}

func (r *GoalRepository) ListScorable(ctx context.Context, userID string) ([]entity.Goal, error) {
	return r.list(ctx, userID, true)
}

func (r *GoalRepository) list(ctx context.Context, userID string, scorableOnly bool) ([]entity.Goal, error) {
	q := `
		SELECT id, user_id, title, category, deadline, priority, status, progress, created_at
		FROM goals
		WHERE user_id = $1
	`
	if scorableOnly {
		q += ` AND status <> 'abandoned'`
	}
	q += ` ORDER BY created_at`

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]entity.Goal, 0)
	for rows.Next() {
		var g entity.Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Title, &g.Category, &g.Deadline,
			&g.Priority, &g.Status, &g.Progress, &g.CreatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *GoalRepository) Update(ctx context.Context, g *entity.Goal) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE goals
		SET title = $1, category = $2, deadline = $3, priority = $4, status = $5, progress = $6
		WHERE id = $7
	`, g.Title, g.Category, g.Deadline, g.Priority, g.Status, g.Progress, g.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *GoalRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *GoalRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM goals WHERE user_id = $1`, userID)
	return err
}

var _ repository.GoalRepository = (*GoalRepository)(nil)
