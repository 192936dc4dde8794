package transaction

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/momoney-backend/internal/domain"
	"github.com/sirupsen/logrus"
)

// RecordTransactionInput represents the input for recording or editing a transaction
type RecordTransactionInput struct {
	Amount   decimal.Decimal
	Category string
	Date     time.Time // Optional: defaults to the current time
	Notes    string
	IsIncome bool
}

// TransactionService handles ledger write and lookup operations
type TransactionService struct {
	TransactionRepo domain.TransactionRepository
	Logger          logrus.FieldLogger
	Now             func() time.Time
}

// NewTransactionService creates a new TransactionService instance
func NewTransactionService(transactionRepo domain.TransactionRepository, logger logrus.FieldLogger) *TransactionService {
	return &TransactionService{
		TransactionRepo: transactionRepo,
		Logger:          logger.WithField("component", "transaction"),
		Now:             time.Now,
	}
}

// Record validates the input and stores a new transaction
// Logic:
//  1. Amount must be positive, the direction is carried by IsIncome
//  2. Category is trimmed, an empty category is kept and reported as Uncategorized
//  3. A missing date defaults to now
//  4. Save using TransactionRepo.Create
func (s *TransactionService) Record(ctx context.Context, input RecordTransactionInput) (*domain.Transaction, error) {
	tx, err := s.build(uuid.New(), input)
	if err != nil {
		return nil, err
	}

	if err := s.TransactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.Logger.WithFields(logrus.Fields{
		"id":        tx.ID,
		"category":  tx.Category,
		"is_income": tx.IsIncome,
	}).Info("transaction recorded")

	return tx, nil
}

// Update overwrites every field of an existing transaction
func (s *TransactionService) Update(ctx context.Context, id uuid.UUID, input RecordTransactionInput) (*domain.Transaction, error) {
	if _, err := s.TransactionRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	tx, err := s.build(id, input)
	if err != nil {
		return nil, err
	}

	if err := s.TransactionRepo.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return tx, nil
}

// Delete removes a transaction; an unknown id is reported as not found
func (s *TransactionService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.TransactionRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.TransactionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.Logger.WithField("id", id).Info("transaction deleted")
	return nil
}

// Get returns a single transaction
func (s *TransactionService) Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	return s.TransactionRepo.GetByID(ctx, id)
}

// List returns all transactions, newest first
func (s *TransactionService) List(ctx context.Context) ([]*domain.Transaction, error) {
	transactions, err := s.TransactionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})

	return transactions, nil
}

func (s *TransactionService) build(id uuid.UUID, input RecordTransactionInput) (*domain.Transaction, error) {
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: transaction amount must be positive", domain.ErrInvalidArgument)
	}

	date := input.Date
	if date.IsZero() {
		date = s.Now()
	}

	tx := &domain.Transaction{
		ID:       id,
		Amount:   input.Amount,
		Category: strings.TrimSpace(input.Category),
		Date:     date,
		Notes:    strings.TrimSpace(input.Notes),
		IsIncome: input.IsIncome,
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}

	return tx, nil
}
