package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintrail/fintrail/internal/model"
)

func processCmd() *cobra.Command {
	var sender string

	cmd := &cobra.Command{
		Use:   "process [message text]",
		Short: "Run one bank notification through the pipeline",
		Long: `Process a single notification message and print the outcome:
a created transaction, a duplicate suppression, or a manual-resolution entry.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			eng, err := buildEngine(ctx, store)
			if err != nil {
				return err
			}

			msg := model.InboundMessage{
				ReceivedAt: time.Now().UTC(),
				Sender:     sender,
				Text:       strings.Join(args, " "),
			}

			outcome, err := runAndPersist(ctx, eng, store, msg)
			if err != nil {
				return err
			}
			printOutcome(cmd, outcome)
			return nil
		},
	}

	cmd.Flags().StringVar(&sender, "sender", "", "sender identifier, e.g. VM-HDFCBK or a phone number")
	_ = cmd.MarkFlagRequired("sender")
	return cmd
}

// runAndPersist processes one message and persists whatever the pipeline
// produced. The engine registered the fingerprint before returning Created,
// so persistence here is at-most-once for a given message.
func runAndPersist(ctx context.Context, eng engineRunner, store resultStore, msg model.InboundMessage) (model.PipelineOutcome, error) {
	outcome, err := eng.Process(ctx, msg)
	if err != nil {
		return model.PipelineOutcome{}, err
	}

	switch outcome.Status {
	case model.OutcomeCreated:
		if err := store.SaveTransaction(ctx, outcome.Transaction); err != nil {
			return model.PipelineOutcome{}, fmt.Errorf("failed to save transaction: %w", err)
		}
	case model.OutcomeFailed:
		if err := store.SaveFailure(ctx, outcome.Failure); err != nil {
			return model.PipelineOutcome{}, fmt.Errorf("failed to save failure: %w", err)
		}
	case model.OutcomeDuplicate:
		// Nothing to persist.
	}
	return outcome, nil
}

type engineRunner interface {
	Process(ctx context.Context, msg model.InboundMessage) (model.PipelineOutcome, error)
}

type resultStore interface {
	SaveTransaction(ctx context.Context, txn *model.Transaction) error
	SaveFailure(ctx context.Context, failure *model.ClassificationFailure) error
}

func printOutcome(cmd *cobra.Command, outcome model.PipelineOutcome) {
	switch outcome.Status {
	case model.OutcomeCreated:
		txn := outcome.Transaction
		cmd.Printf("Created %s transaction: %s %s at %s (category %s, account %s)\n",
			txn.Type, txn.Currency, txn.Amount, txn.Merchant, txn.Category, txn.AccountSuffix)
	case model.OutcomeDuplicate:
		cmd.Println("Duplicate message, already ingested")
	case model.OutcomeFailed:
		cmd.Printf("Could not classify message (%s); queued for manual resolution as %s\n",
			outcome.Failure.Reason, outcome.Failure.ID)
	}
}
