package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fintrail/fintrail/internal/common"
	"github.com/fintrail/fintrail/internal/model"
)

// GetCategories returns all active categories ordered by name.
func (s *SQLiteStorage) GetCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, type, is_active, created_at
		FROM categories WHERE is_active = 1 ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		var (
			cat         model.Category
			catType     string
			description sql.NullString
		)
		if err := rows.Scan(&cat.ID, &cat.Name, &description, &catType, &cat.IsActive, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		cat.Description = description.String
		cat.Type = model.CategoryType(catType)
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

// CreateCategory adds a new category to the catalog.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, name, description string, categoryType model.CategoryType) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}
	if categoryType != model.CategoryTypeIncome && categoryType != model.CategoryTypeExpense {
		return nil, fmt.Errorf("invalid category type %q", categoryType)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (name, description, type, is_active) VALUES (?, ?, ?, 1)`,
		name, description, string(categoryType))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, fmt.Errorf("%w: category %q", common.ErrDuplicateEntry, name)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get category id: %w", err)
	}

	return &model.Category{
		ID:          int(id),
		Name:        name,
		Description: description,
		Type:        categoryType,
		IsActive:    true,
	}, nil
}

// GetCategoryRules returns every active classification rule. Keyword lists
// are stored as JSON arrays.
func (s *SQLiteStorage) GetCategoryRules(ctx context.Context) ([]model.CategoryRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category, type, keywords, priority, is_active, created_at
		FROM category_rules WHERE is_active = 1 ORDER BY priority DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query category rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var rules []model.CategoryRule
	for rows.Next() {
		var (
			rule     model.CategoryRule
			ruleType string
			keywords string
		)
		if err := rows.Scan(&rule.ID, &rule.Category, &ruleType, &keywords, &rule.Priority, &rule.IsActive, &rule.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category rule: %w", err)
		}
		rule.Type = model.CategoryType(ruleType)
		if err := json.Unmarshal([]byte(keywords), &rule.Keywords); err != nil {
			return nil, fmt.Errorf("failed to unmarshal keywords for rule %d: %w", rule.ID, err)
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

// CreateCategoryRule adds a classification rule to the catalog.
func (s *SQLiteStorage) CreateCategoryRule(ctx context.Context, rule *model.CategoryRule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if rule == nil {
		return fmt.Errorf("rule cannot be nil")
	}
	if err := validateString(rule.Category, "category"); err != nil {
		return err
	}
	if len(rule.Keywords) == 0 {
		return fmt.Errorf("rule must have at least one keyword")
	}

	keywords, err := json.Marshal(rule.Keywords)
	if err != nil {
		return fmt.Errorf("failed to marshal keywords: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO category_rules (category, type, keywords, priority, is_active)
		VALUES (?, ?, ?, ?, ?)`,
		rule.Category, string(rule.Type), string(keywords), rule.Priority, rule.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create category rule: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get rule id: %w", err)
	}
	rule.ID = int(id)
	return nil
}

// SeedDefaults populates an empty catalog with the given categories and
// rules. A catalog that already has categories is left untouched.
func (s *SQLiteStorage) SeedDefaults(ctx context.Context, categories []model.Category, rules []model.CategoryRule) error {
	existing, err := s.GetCategories(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, cat := range categories {
		if _, err := s.CreateCategory(ctx, cat.Name, cat.Description, cat.Type); err != nil &&
			!errors.Is(err, common.ErrDuplicateEntry) {
			return err
		}
	}
	for i := range rules {
		rule := rules[i]
		if err := s.CreateCategoryRule(ctx, &rule); err != nil {
			return err
		}
	}
	return nil
}
