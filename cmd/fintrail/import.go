package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/fintrail/fintrail/internal/model"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Process a file of notifications, one per line",
		Long: `Import notifications in bulk. Each line is "sender<TAB>message text".
Blank lines and lines starting with # are skipped.`,
		Args: cobra.ExactArgs(1),
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

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open import file: %w", err)
			}
			defer func() { _ = file.Close() }()

			lines, err := readImportLines(file)
			if err != nil {
				return err
			}

			bar := progressbar.Default(int64(len(lines)), "processing")
			var created, duplicates, failed int
			for _, line := range lines {
				msg := model.InboundMessage{
					ReceivedAt: time.Now().UTC(),
					Sender:     line.sender,
					Text:       line.text,
				}
				outcome, runErr := runAndPersist(ctx, eng, store, msg)
				if runErr != nil {
					return runErr
				}
				switch outcome.Status {
				case model.OutcomeCreated:
					created++
				case model.OutcomeDuplicate:
					duplicates++
				case model.OutcomeFailed:
					failed++
				}
				_ = bar.Add(1)
			}

			cmd.Printf("Imported %d messages: %d created, %d duplicates, %d queued for manual resolution\n",
				len(lines), created, duplicates, failed)
			return nil
		},
	}
	return cmd
}

type importLine struct {
	sender string
	text   string
}

func readImportLines(file *os.File) ([]importLine, error) {
	var lines []importLine
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		sender, text, found := strings.Cut(raw, "\t")
		if !found {
			return nil, fmt.Errorf("line %d: expected sender<TAB>text", lineNo)
		}
		lines = append(lines, importLine{sender: strings.TrimSpace(sender), text: strings.TrimSpace(text)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}
	return lines, nil
}
