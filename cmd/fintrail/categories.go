package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/fintrail/fintrail/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage the category catalog",
	}
	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesAddCmd())
	cmd.AddCommand(categoriesAddRuleCmd())
	return cmd
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories and their classification rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			categories, err := store.GetCategories(ctx)
			if err != nil {
				return err
			}
			rules, err := store.GetCategoryRules(ctx)
			if err != nil {
				return err
			}

			rulesByCategory := make(map[string][]model.CategoryRule)
			for _, rule := range rules {
				rulesByCategory[rule.Category] = append(rulesByCategory[rule.Category], rule)
			}

			for _, cat := range categories {
				cmd.Printf("%s (%s) - %s\n", cat.Name, cat.Type, cat.Description)
				for _, rule := range rulesByCategory[cat.Name] {
					cmd.Printf("    [%d] %s\n", rule.Priority, strings.Join(rule.Keywords, ", "))
				}
			}
			return nil
		},
	}
}

func categoriesAddCmd() *cobra.Command {
	var (
		description  string
		categoryType string
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cat, err := store.CreateCategory(ctx, args[0], description, model.CategoryType(categoryType))
			if err != nil {
				return err
			}
			cmd.Printf("Created category %s (%s)\n", cat.Name, cat.Type)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "category description")
	cmd.Flags().StringVar(&categoryType, "type", "expense", "category type (expense or income)")
	return cmd
}

func categoriesAddRuleCmd() *cobra.Command {
	var (
		keywords     []string
		categoryType string
		priority     int
	)

	cmd := &cobra.Command{
		Use:   "add-rule [category]",
		Short: "Add a keyword classification rule for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			rule := &model.CategoryRule{
				Category: args[0],
				Type:     model.CategoryType(categoryType),
				Keywords: keywords,
				Priority: priority,
				IsActive: true,
			}
			if err := store.CreateCategoryRule(ctx, rule); err != nil {
				return err
			}
			cmd.Printf("Created rule %d for %s\n", rule.ID, rule.Category)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&keywords, "keywords", nil, "comma-separated merchant keywords")
	cmd.Flags().StringVar(&categoryType, "type", "expense", "rule type (expense or income)")
	cmd.Flags().IntVar(&priority, "priority", 50, "rule priority (higher wins)")
	_ = cmd.MarkFlagRequired("keywords")
	return cmd
}
