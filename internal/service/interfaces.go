// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/fintrail/fintrail/internal/dedupe"
	"github.com/fintrail/fintrail/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Limit     int
}

// Storage defines the contract for the persistence layer. It doubles as
// the fingerprint registry and the category catalog the engine consumes.
type Storage interface {
	dedupe.Registry

	// Transaction operations.
	SaveTransaction(ctx context.Context, txn *model.Transaction) error
	GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error)
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)

	// Manual-resolution queue operations.
	SaveFailure(ctx context.Context, failure *model.ClassificationFailure) error
	GetFailureByID(ctx context.Context, id string) (*model.ClassificationFailure, error)
	GetPendingFailures(ctx context.Context) ([]model.ClassificationFailure, error)
	MarkFailureResolved(ctx context.Context, id string) error
	MarkFailureDiscarded(ctx context.Context, id string) error

	// Category catalog operations.
	GetCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, name, description string, categoryType model.CategoryType) (*model.Category, error)
	GetCategoryRules(ctx context.Context) ([]model.CategoryRule, error)
	CreateCategoryRule(ctx context.Context, rule *model.CategoryRule) error

	// Database management.
	Migrate(ctx context.Context) error
	Close() error
}
