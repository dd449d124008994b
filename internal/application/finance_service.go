package application

import (
	"context"
	"errors"
	"time"

	"github.com/lifeosapp/backend/internal/domain/entity"
	repo "github.com/lifeosapp/backend/internal/domain/repository"
)

// FinanceService owns the transaction store.
type FinanceService struct {
	Transactions repo.TransactionRepository
	Kernel       *Kernel
}

func NewFinanceService(txs repo.TransactionRepository, kernel *Kernel) *FinanceService {
	return &FinanceService{Transactions: txs, Kernel: kernel}
}

type CreateTransactionInput struct {
	Type     entity.TransactionType
	Amount   float64
	Category string
	Date     time.Time
}

func (s *FinanceService) CreateTransaction(ctx context.Context, userID string, in CreateTransactionInput) (*entity.Transaction, error) {
	date := in.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	tx := &entity.Transaction{
		UserID:   userID,
		Type:     in.Type,
		Amount:   in.Amount,
		Category: in.Category,
		Date:     date,
	}
	if err := s.Transactions.Create(ctx, tx); err != nil {
		return nil, err
	}

	title := "Expense: " + tx.Category
	impact := entity.ImpactNegative
	if tx.Type == entity.TransactionIncome {
		title = "Income: " + tx.Category
		impact = entity.ImpactPositive
	}
	if _, err := s.Kernel.RecordEvent(ctx, userID, EventInput{
		Type:   entity.EventFinancial,
		Title:  title,
		Impact: impact,
		Value:  tx.Amount,
		Source: &entity.SourceRef{Kind: entity.SourceTransaction, ID: tx.ID},
	}); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *FinanceService) ListTransactions(ctx context.Context, userID string) ([]entity.Transaction, error) {
	return s.Transactions.ListByUser(ctx, userID)
}

func (s *FinanceService) DeleteTransaction(ctx context.Context, userID, txID string) error {
	tx, err := s.Transactions.GetByID(ctx, txID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrTransactionNotFound
		}
		return err
	}
	if tx.UserID != userID {
		return ErrTransactionNotFound
	}
	if err := s.Transactions.Delete(ctx, txID); err != nil {
		return err
	}
	_, err = s.Kernel.RecomputeScores(ctx, userID)
	return err
}
