package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lifeosapp/backend/internal/domain/entity"
	"github.com/lifeosapp/backend/internal/domain/repository"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	var goalID *string
	if t.GoalID != "" {
		goalID = &t.GoalID
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (user_id, goal_id, title, priority, due_date, completed)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, t.UserID, goalID, t.Title, t.Priority, t.DueDate, t.Completed)

	return row.Scan(&t.ID, &t.CreatedAt)
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, goal_id, title, priority, due_date, completed, created_at
		FROM tasks
		WHERE id = $1
	`, id)

	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]entity.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, goal_id, title, priority, due_date, completed, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *TaskRepository) ListByGoal(ctx context.Context, goalID string) ([]entity.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, goal_id, title, priority, due_date, completed, created_at
		FROM tasks
		WHERE goal_id = $1
		ORDER BY created_at
	`, goalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *TaskRepository) Update(ctx context.Context, t *entity.Task) error {
	var goalID *string
	if t.GoalID != "" {
		goalID = &t.GoalID
	}

	res, err := r.pool.Exec(ctx, `
		UPDATE tasks
		SET goal_id = $1, title = $2, priority = $3, due_date = $4, completed = $5
		WHERE id = $6
	`, goalID, t.Title, t.Priority, t.DueDate, t.Completed, t.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE user_id = $1`, userID)
	return err
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	t := &entity.Task{}
	var goalID *string

	if err := row.Scan(&t.ID, &t.UserID, &goalID, &t.Title, &t.Priority, &t.DueDate, &t.Completed, &t.CreatedAt); err != nil {
		return nil, err
	}
	if goalID != nil {
		t.GoalID = *goalID
	}
	return t, nil
}

func collectTasks(rows pgx.Rows) ([]entity.Task, error) {
	tasks := make([]entity.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
