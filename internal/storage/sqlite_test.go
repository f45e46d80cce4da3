package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrail/fintrail/internal/common"
	"github.com/fintrail/fintrail/internal/dedupe"
	"github.com/fintrail/fintrail/internal/model"
	"github.com/fintrail/fintrail/internal/service"
	"github.com/fintrail/fintrail/internal/storage"
	"github.com/fintrail/fintrail/internal/testutil"
)

func sampleTransaction(id, fingerprint string, occurredAt time.Time) *model.Transaction {
	balance := decimal.NewFromInt(15750)
	return &model.Transaction{
		ID:            id,
		Type:          model.TypeExpense,
		Amount:        decimal.RequireFromString("250.50"),
		Currency:      "INR",
		Category:      "FoodAndDining",
		Merchant:      "STARBUCKS COFFEE",
		AccountSuffix: "1234",
		Balance:       &balance,
		OccurredAt:    occurredAt,
		Source:        model.SourceAuto,
		Fingerprint:   model.Fingerprint(fingerprint),
		RawMessage:    "Rs 250.50 debited at STARBUCKS COFFEE",
		Sender:        "VM-HDFCBK",
		Confidence:    0.95,
	}
}

func TestSaveAndGetTransaction(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	occurredAt := time.Date(2025, 7, 25, 0, 0, 0, 0, time.UTC)
	txn := sampleTransaction("txn-1", "fp-1", occurredAt)
	require.NoError(t, store.SaveTransaction(ctx, txn))

	got, err := store.GetTransactionByID(ctx, "txn-1")
	require.NoError(t, err)
	assert.Equal(t, txn.ID, got.ID)
	assert.Equal(t, model.TypeExpense, got.Type)
	assert.True(t, txn.Amount.Equal(got.Amount), "amount survives the round trip exactly")
	assert.Equal(t, "INR", got.Currency)
	assert.Equal(t, "FoodAndDining", got.Category)
	assert.Equal(t, "STARBUCKS COFFEE", got.Merchant)
	assert.Equal(t, "1234", got.AccountSuffix)
	require.NotNil(t, got.Balance)
	assert.True(t, txn.Balance.Equal(*got.Balance))
	assert.Equal(t, occurredAt, got.OccurredAt.UTC())
	assert.Equal(t, model.SourceAuto, got.Source)
	assert.Equal(t, txn.Fingerprint, got.Fingerprint)
	assert.Equal(t, txn.RawMessage, got.RawMessage)
	assert.InDelta(t, 0.95, got.Confidence, 0.001)
}

func TestSaveTransaction_DuplicateFingerprint(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	occurredAt := time.Date(2025, 7, 25, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveTransaction(ctx, sampleTransaction("txn-1", "fp-1", occurredAt)))

	err := store.SaveTransaction(ctx, sampleTransaction("txn-2", "fp-1", occurredAt))
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)
}

func TestSaveTransaction_Invalid(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	assert.Error(t, store.SaveTransaction(ctx, nil))

	missing := sampleTransaction("", "fp-1", time.Now().UTC())
	assert.Error(t, store.SaveTransaction(ctx, missing))

	negative := sampleTransaction("txn-1", "fp-1", time.Now().UTC())
	negative.Amount = decimal.NewFromInt(-5)
	assert.Error(t, store.SaveTransaction(ctx, negative))
}

func TestGetTransactionByID_NotFound(t *testing.T) {
	store := testutil.SetupTestDB(t)

	_, err := store.GetTransactionByID(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetTransactions_Filtering(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	july := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	august := time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)

	first := sampleTransaction("txn-1", "fp-1", july)
	second := sampleTransaction("txn-2", "fp-2", august)
	second.Category = "Transport"
	require.NoError(t, store.SaveTransaction(ctx, first))
	require.NoError(t, store.SaveTransaction(ctx, second))

	all, err := store.GetTransactions(ctx, service.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "txn-2", all[0].ID, "newest first")

	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	recent, err := store.GetTransactions(ctx, service.TransactionFilter{StartDate: &start})
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "txn-2", recent[0].ID)

	food, err := store.GetTransactions(ctx, service.TransactionFilter{Category: "FoodAndDining"})
	require.NoError(t, err)
	require.Len(t, food, 1)
	assert.Equal(t, "txn-1", food[0].ID)

	limited, err := store.GetTransactions(ctx, service.TransactionFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestCheckAndRegister(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	first, err := store.CheckAndRegister(ctx, model.Fingerprint("fp-a"))
	require.NoError(t, err)
	assert.Equal(t, dedupe.ResultNew, first)

	second, err := store.CheckAndRegister(ctx, model.Fingerprint("fp-a"))
	require.NoError(t, err)
	assert.Equal(t, dedupe.ResultDuplicate, second)

	other, err := store.CheckAndRegister(ctx, model.Fingerprint("fp-b"))
	require.NoError(t, err)
	assert.Equal(t, dedupe.ResultNew, other)

	_, err = store.CheckAndRegister(ctx, model.Fingerprint(""))
	assert.Error(t, err)
}

func sampleFailure(id string) *model.ClassificationFailure {
	return &model.ClassificationFailure{
		ID:         id,
		CreatedAt:  time.Now().UTC(),
		ReceivedAt: time.Date(2025, 7, 25, 10, 30, 0, 0, time.UTC),
		Sender:     "VM-UNKNWN",
		RawText:    "Your OTP is 493021",
		Reason:     model.ReasonMissingAmount,
		Status:     model.FailurePending,
	}
}

func TestFailureLifecycle(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	failure := sampleFailure("fail-1")
	amount := decimal.RequireFromString("250.50")
	failure.Partial = &model.ExtractedFields{
		Bank:      model.BankGeneric,
		Direction: model.DirectionDebit,
		Amount:    amount,
		Merchant:  "STARBUCKS",
	}
	require.NoError(t, store.SaveFailure(ctx, failure))

	got, err := store.GetFailureByID(ctx, "fail-1")
	require.NoError(t, err)
	assert.Equal(t, model.ReasonMissingAmount, got.Reason)
	assert.Equal(t, model.FailurePending, got.Status)
	assert.Equal(t, failure.RawText, got.RawText)
	assert.Nil(t, got.ResolvedAt)
	require.NotNil(t, got.Partial)
	assert.Equal(t, "STARBUCKS", got.Partial.Merchant)
	assert.True(t, amount.Equal(got.Partial.Amount))

	pending, err := store.GetPendingFailures(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, store.MarkFailureResolved(ctx, "fail-1"))

	resolved, err := store.GetFailureByID(ctx, "fail-1")
	require.NoError(t, err)
	assert.Equal(t, model.FailureResolved, resolved.Status)
	assert.NotNil(t, resolved.ResolvedAt)

	pending, err = store.GetPendingFailures(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	// Only pending failures can transition.
	err = store.MarkFailureDiscarded(ctx, "fail-1")
	assert.ErrorIs(t, err, common.ErrFailureNotPending)
}

func TestMarkFailureDiscarded(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.SaveFailure(ctx, sampleFailure("fail-1")))
	require.NoError(t, store.MarkFailureDiscarded(ctx, "fail-1"))

	got, err := store.GetFailureByID(ctx, "fail-1")
	require.NoError(t, err)
	assert.Equal(t, model.FailureDiscarded, got.Status)
}

func TestGetPendingFailures_OldestFirst(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	older := sampleFailure("fail-old")
	older.CreatedAt = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	newer := sampleFailure("fail-new")
	newer.CreatedAt = time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveFailure(ctx, newer))
	require.NoError(t, store.SaveFailure(ctx, older))

	pending, err := store.GetPendingFailures(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "fail-old", pending[0].ID)
	assert.Equal(t, "fail-new", pending[1].ID)
}

func TestCategoryCatalog(t *testing.T) {
	store := testutil.SetupEmptyTestDB(t)
	ctx := context.Background()

	cat, err := store.CreateCategory(ctx, "Travel", "Flights and hotels", model.CategoryTypeExpense)
	require.NoError(t, err)
	assert.NotZero(t, cat.ID)
	assert.True(t, cat.IsActive)

	_, err = store.CreateCategory(ctx, "Travel", "", model.CategoryTypeExpense)
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)

	_, err = store.CreateCategory(ctx, "Bogus", "", model.CategoryType("transfer"))
	assert.Error(t, err)

	categories, err := store.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Travel", categories[0].Name)
	assert.Equal(t, model.CategoryTypeExpense, categories[0].Type)
}

func TestCategoryRules_RoundTrip(t *testing.T) {
	store := testutil.SetupEmptyTestDB(t)
	ctx := context.Background()

	rule := &model.CategoryRule{
		Category: "Travel",
		Type:     model.CategoryTypeExpense,
		Keywords: []string{"indigo", "vistara", "makemytrip"},
		Priority: 80,
		IsActive: true,
	}
	require.NoError(t, store.CreateCategoryRule(ctx, rule))
	assert.NotZero(t, rule.ID)

	low := &model.CategoryRule{
		Category: "Travel",
		Type:     model.CategoryTypeExpense,
		Keywords: []string{"travel"},
		Priority: 10,
		IsActive: true,
	}
	require.NoError(t, store.CreateCategoryRule(ctx, low))

	rules, err := store.GetCategoryRules(ctx)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, 80, rules[0].Priority, "highest priority first")
	assert.Equal(t, []string{"indigo", "vistara", "makemytrip"}, rules[0].Keywords)

	empty := &model.CategoryRule{Category: "Travel", Type: model.CategoryTypeExpense}
	assert.Error(t, store.CreateCategoryRule(ctx, empty))
}

func TestSeedDefaults_Idempotent(t *testing.T) {
	store := testutil.SetupEmptyTestDB(t)
	ctx := context.Background()

	categories := []model.Category{
		{Name: "Travel", Type: model.CategoryTypeExpense, IsActive: true},
	}
	rules := []model.CategoryRule{
		{Category: "Travel", Type: model.CategoryTypeExpense, Keywords: []string{"indigo"}, Priority: 80, IsActive: true},
	}

	require.NoError(t, store.SeedDefaults(ctx, categories, rules))
	require.NoError(t, store.SeedDefaults(ctx, categories, rules))

	got, err := store.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	gotRules, err := store.GetCategoryRules(ctx)
	require.NoError(t, err)
	assert.Len(t, gotRules, 1)
}

func TestMigrate_Idempotent(t *testing.T) {
	store := testutil.SetupEmptyTestDB(t)

	// A second run finds nothing pending and succeeds.
	require.NoError(t, store.Migrate(context.Background()))
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := storage.NewSQLiteStorage("")
	assert.Error(t, err)
}
