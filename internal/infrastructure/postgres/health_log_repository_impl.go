package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lifeosapp/backend/internal/domain/entity"
	"github.com/lifeosapp/backend/internal/domain/repository"
)

type HealthLogRepository struct {
	pool *pgxpool.Pool
}

func NewHealthLogRepository(pool *pgxpool.Pool) *HealthLogRepository {
	return &HealthLogRepository{pool: pool}
}

func (r *HealthLogRepository) Create(ctx context.Context, l *entity.HealthLog) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO health_logs (user_id, mood, sleep_hours, sleep_quality, stress, water_intake, notes, logged_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, l.UserID, l.Mood, l.SleepHours, l.SleepQuality, l.Stress, l.WaterIntake, l.Notes, l.Timestamp)

	return row.Scan(&l.ID)
}

func (r *HealthLogRepository) GetByID(ctx context.Context, id string) (*entity.HealthLog, error) {
	l := &entity.HealthLog{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, mood, sleep_hours, sleep_quality, stress, water_intake, notes, logged_at
		FROM health_logs
		WHERE id = $1
	`, id)

	if err := row.Scan(&l.ID, &l.UserID, &l.Mood, &l.SleepHours, &l.SleepQuality,
		&l.Stress, &l.WaterIntake, &l.Notes, &l.Timestamp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return l, nil
}

func (r *HealthLogRepository) ListByUser(ctx context.Context, userID string) ([]entity.HealthLog, error) {
	return r.list(ctx, userID, 0)
}

func (r *HealthLogRepository) ListRecent(ctx context.Context, userID string, limit int) ([]entity.HealthLog, error) {
	return r.list(ctx, userID, limit)
}

func (r *HealthLogRepository) list(ctx context.Context, userID string, limit int) ([]entity.HealthLog, error) {
	q := `
		SELECT id, user_id, mood, sleep_hours, sleep_quality, stress, water_intake, notes, logged_at
		FROM health_logs
		WHERE user_id = $1
		ORDER BY logged_at DESC
	`
	args := []any{userID}
	if limit > 0 {
		q += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]entity.HealthLog, 0)
	for rows.Next() {
		var l entity.HealthLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Mood, &l.SleepHours, &l.SleepQuality,
			&l.Stress, &l.WaterIntake, &l.Notes, &l.Timestamp); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *HealthLogRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM health_logs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *HealthLogRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM health_logs WHERE user_id = $1`, userID)
	return err
}

var _ repository.HealthLogRepository = (*HealthLogRepository)(nil)
