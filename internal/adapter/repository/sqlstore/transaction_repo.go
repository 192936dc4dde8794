package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/momoney-backend/internal/domain"
)

const transactionColumns = `id, amount, category, date, notes, is_income`

// transactionRepository implements domain.TransactionRepository
type transactionRepository struct {
	db *DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *DB) domain.TransactionRepository {
	return &transactionRepository{db: db}
}

// List retrieves all transactions
func (r *transactionRepository) List(ctx context.Context) ([]*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}

// GetByID retrieves a transaction by its ID
func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := r.db.rebind(`SELECT ` + transactionColumns + ` FROM transactions WHERE id = ?`)

	tx, err := scanTransaction(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}

	return tx, nil
}

// Create creates a new transaction
func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := r.db.rebind(`
		INSERT INTO transactions (id, amount, category, date, notes, is_income)
		VALUES (?, ?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query,
		tx.ID,
		tx.Amount.String(),
		tx.Category,
		formatTime(tx.Date),
		tx.Notes,
		tx.IsIncome,
	)
	if err != nil {
		return writeError("create transaction", err)
	}

	return nil
}

// Update overwrites every field of an existing transaction
func (r *transactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	query := r.db.rebind(`
		UPDATE transactions
		SET amount = ?, category = ?, date = ?, notes = ?, is_income = ?
		WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query,
		tx.Amount.String(),
		tx.Category,
		formatTime(tx.Date),
		tx.Notes,
		tx.IsIncome,
		tx.ID,
	)
	if err != nil {
		return writeError("update transaction", err)
	}

	return expectAffected(result, "transaction", tx.ID)
}

// Delete removes a transaction
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := r.db.rebind(`DELETE FROM transactions WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return expectAffected(result, "transaction", id)
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var tx domain.Transaction
	var amountStr, dateStr string

	err := row.Scan(
		&tx.ID,
		&amountStr,
		&tx.Category,
		&dateStr,
		&tx.Notes,
		&tx.IsIncome,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}

	// Parse amount (NUMERIC / TEXT)
	if tx.Amount, err = parseAmount("amount", amountStr); err != nil {
		return nil, err
	}

	if tx.Date, err = parseTime("date", dateStr); err != nil {
		return nil, err
	}

	return &tx, nil
}

func expectAffected(result sql.Result, entity string, id uuid.UUID) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}
