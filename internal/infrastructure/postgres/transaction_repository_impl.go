package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lifeosapp/backend/internal/domain/entity"
	"github.com/lifeosapp/backend/internal/domain/repository"
)

type TransactionRepository struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

func (r *TransactionRepository) Create(ctx context.Context, t *entity.Transaction) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO transactions (user_id, type, amount, category, occurred_on)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, t.UserID, t.Type, t.Amount, t.Category, t.Date)

	return row.Scan(&t.ID)
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	t := &entity.Transaction{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, type, amount, category, occurred_on
		FROM transactions
		WHERE id = $1
	`, id)

	if err := row.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Category, &t.Date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return t, nil
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID string) ([]entity.Transaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, type, amount, category, occurred_on
		FROM transactions
		WHERE user_id = $1
		ORDER BY occurred_on DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txs := make([]entity.Transaction, 0)
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Category, &t.Date); err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TransactionRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE user_id = $1`, userID)
	return err
}

var _ repository.TransactionRepository = (*TransactionRepository)(nil)
