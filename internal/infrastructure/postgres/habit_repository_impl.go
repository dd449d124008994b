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

type HabitRepository struct {
	pool *pgxpool.Pool
}

func NewHabitRepository(pool *pgxpool.Pool) *HabitRepository {
	return &HabitRepository{pool: pool}
}

func (r *HabitRepository) Create(ctx context.Context, h *entity.Habit) error {
	history, err := json.Marshal(historyOrEmpty(h.History))
	if err != nil {
		return err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO habits (user_id, name, frequency, streak, best_streak, last_completed, history, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, h.UserID, h.Name, h.Frequency, h.Streak, h.BestStreak, h.LastCompleted, history, h.IsActive)

	return row.Scan(&h.ID, &h.CreatedAt)
}

func (r *HabitRepository) GetByID(ctx context.Context, id string) (*entity.Habit, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, frequency, streak, best_streak, last_completed, history, is_active, created_at
		FROM habits
		WHERE id = $1
	`, id)

	h, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

func (r *HabitRepository) ListByUser(ctx context.Context, userID string) ([]entity.Habit, error) {
	return r.list(ctx, userID, false)
}

func (r *HabitRepository) ListActive(ctx context.Context, userID string) ([]entity.Habit, error) {
	return r.list(ctx, userID, true)
}

func (r *HabitRepository) list(ctx context.Context, userID string, activeOnly bool) ([]entity.Habit, error) {
	q := `
		SELECT id, user_id, name, frequency, streak, best_streak, last_completed, history, is_active, created_at
		FROM habits
		WHERE user_id = $1
	`
	if activeOnly {
		q += ` AND is_active`
	}
	q += ` ORDER BY created_at`

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	habits := make([]entity.Habit, 0)
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, *h)
	}
	return habits, rows.Err()
}

func (r *HabitRepository) Update(ctx context.Context, h *entity.Habit) error {
	history, err := json.Marshal(historyOrEmpty(h.History))
	if err != nil {
		return err
	}

	res, err := r.pool.Exec(ctx, `
		UPDATE habits
		SET name = $1, frequency = $2, streak = $3, best_streak = $4,
		    last_completed = $5, history = $6, is_active = $7
		WHERE id = $8
	`, h.Name, h.Frequency, h.Streak, h.BestStreak, h.LastCompleted, history, h.IsActive, h.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *HabitRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *HabitRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM habits WHERE user_id = $1`, userID)
	return err
}

func scanHabit(row pgx.Row) (*entity.Habit, error) {
	h := &entity.Habit{}
	var history []byte

	if err := row.Scan(&h.ID, &h.UserID, &h.Name, &h.Frequency, &h.Streak, &h.BestStreak,
		&h.LastCompleted, &history, &h.IsActive, &h.CreatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(history, &h.History); err != nil {
		return nil, err
	}
	return h, nil
}

func historyOrEmpty(entries []entity.HabitEntry) []entity.HabitEntry {
	if entries == nil {
		return []entity.HabitEntry{}
	}
	return entries
}

var _ repository.HabitRepository = (*HabitRepository)(nil)
