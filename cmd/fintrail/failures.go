package main

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fintrail/fintrail/internal/common"
	"github.com/fintrail/fintrail/internal/model"
)

func failuresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "failures",
		Short: "Inspect and resolve the manual-classification queue",
	}
	cmd.AddCommand(failuresListCmd())
	cmd.AddCommand(failuresResolveCmd())
	cmd.AddCommand(failuresDiscardCmd())
	return cmd
}

func failuresListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List messages awaiting manual classification",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			failures, err := store.GetPendingFailures(ctx)
			if err != nil {
				return err
			}
			if len(failures) == 0 {
				cmd.Println("No pending failures")
				return nil
			}

			for _, failure := range failures {
				cmd.Printf("%s  [%s]  from %s\n    %s\n",
					failure.ID, failure.Reason, failure.Sender, failure.RawText)
			}
			return nil
		},
	}
}

func failuresResolveCmd() *cobra.Command {
	var (
		txType    string
		amountStr string
		category  string
	)

	cmd := &cobra.Command{
		Use:   "resolve [failure-id]",
		Short: "Convert a pending failure into a manual transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountStr, err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			eng, err := buildEngine(ctx, store)
			if err != nil {
				return err
			}

			failure, err := store.GetFailureByID(ctx, args[0])
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return common.NewUserError("no such failure; see 'fintrail failures list'", err)
				}
				return err
			}

			txn, err := eng.ResolveFailure(ctx, failure, model.TransactionType(txType), amount, category)
			if err != nil {
				return err
			}
			if err := store.SaveTransaction(ctx, txn); err != nil {
				return fmt.Errorf("failed to save transaction: %w", err)
			}
			if err := store.MarkFailureResolved(ctx, failure.ID); err != nil {
				return err
			}

			cmd.Printf("Resolved %s into %s transaction %s (%s %s, category %s)\n",
				failure.ID, txn.Type, txn.ID, txn.Currency, txn.Amount, txn.Category)
			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", "", "transaction type (expense or income)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "transaction amount, e.g. 45.00")
	cmd.Flags().StringVar(&category, "category", "", "category name (default: Uncategorized)")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func failuresDiscardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discard [failure-id]",
		Short: "Discard a pending failure without creating a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.MarkFailureDiscarded(ctx, args[0]); err != nil {
				return err
			}
			cmd.Printf("Discarded %s\n", args[0])
			return nil
		},
	}
}
