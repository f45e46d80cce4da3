package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrail/fintrail/internal/common"
	"github.com/fintrail/fintrail/internal/model"
	"github.com/fintrail/fintrail/internal/service"
)

// SaveTransaction persists a pipeline-produced transaction. Amounts are
// stored as decimal strings to avoid float drift.
func (s *SQLiteStorage) SaveTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}

	var balance *string
	if txn.Balance != nil {
		str := txn.Balance.String()
		balance = &str
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (
			id, fingerprint, type, amount, currency, category, merchant,
			account_suffix, balance, occurred_at, source, sender, raw_message, confidence
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		txn.ID, string(txn.Fingerprint), string(txn.Type), txn.Amount.String(),
		txn.Currency, txn.Category, txn.Merchant, txn.AccountSuffix, balance,
		txn.OccurredAt.UTC(), string(txn.Source), txn.Sender, txn.RawMessage, txn.Confidence)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: transaction with fingerprint %s", common.ErrDuplicateEntry, txn.Fingerprint)
		}
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

// GetTransactionByID retrieves a single transaction.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, fingerprint, type, amount, currency, category, merchant,
		       account_suffix, balance, occurred_at, source, sender, raw_message, confidence
		FROM transactions WHERE id = ?`, id)

	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: transaction %s", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

// GetTransactions returns transactions matching the filter, newest first.
func (s *SQLiteStorage) GetTransactions(ctx context.Context, filter service.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, fingerprint, type, amount, currency, category, merchant,
		       account_suffix, balance, occurred_at, source, sender, raw_message, confidence
		FROM transactions WHERE 1=1`
	args := []any{}

	if filter.StartDate != nil {
		query += " AND occurred_at >= ?"
		args = append(args, filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		query += " AND occurred_at <= ?"
		args = append(args, filter.EndDate.UTC())
	}
	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}
	query += " ORDER BY occurred_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		txn, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", scanErr)
		}
		transactions = append(transactions, *txn)
	}
	return transactions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	var (
		txn                  model.Transaction
		fingerprint          string
		txType, source       string
		amountStr            string
		balanceStr           sql.NullString
		accountSuffix, raw   sql.NullString
		sender               sql.NullString
		occurredAt           time.Time
	)

	if err := row.Scan(&txn.ID, &fingerprint, &txType, &amountStr, &txn.Currency,
		&txn.Category, &txn.Merchant, &accountSuffix, &balanceStr, &occurredAt,
		&source, &sender, &raw, &txn.Confidence); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("stored amount %q is not a decimal: %w", amountStr, err)
	}
	txn.Amount = amount
	if balanceStr.Valid {
		balance, balErr := decimal.NewFromString(balanceStr.String)
		if balErr != nil {
			return nil, fmt.Errorf("stored balance %q is not a decimal: %w", balanceStr.String, balErr)
		}
		txn.Balance = &balance
	}

	txn.Fingerprint = model.Fingerprint(fingerprint)
	txn.Type = model.TransactionType(txType)
	txn.Source = model.TransactionSource(source)
	txn.AccountSuffix = accountSuffix.String
	txn.RawMessage = raw.String
	txn.Sender = sender.String
	txn.OccurredAt = occurredAt
	return &txn, nil
}
