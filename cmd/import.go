package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apmshow/apm-chatbot/internal/engine"
	"github.com/apmshow/apm-chatbot/internal/progress"
)

var importCmd = &cobra.Command{
	Use:   "import <faq.json>",
	Short: "Bulk-import a FAQ JSON file into the store",
	Long:  `Validates a JSON array of {question, answer} objects and replaces the stored FAQ collection wholesale.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := loadConfigAndStore()
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		var entries []engine.FaqEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("parsing %s: %w", args[0], err)
		}

		reporter := progress.NewReporter()
		reporter.Start(len(entries))
		for i, entry := range entries {
			if strings.TrimSpace(entry.Question) == "" {
				return fmt.Errorf("entry %d: empty question", i+1)
			}
			if strings.TrimSpace(entry.Answer) == "" {
				return fmt.Errorf("entry %d: empty answer", i+1)
			}
			reporter.Update(i+1, truncateLabel(entry.Question))
		}
		reporter.Finish()

		if err := store.Replace(entries); err != nil {
			return fmt.Errorf("replacing FAQ collection: %w", err)
		}

		fmt.Printf("Imported %d FAQ entries\n", len(entries))
		return nil
	},
}

func truncateLabel(s string) string {
	runes := []rune(s)
	if len(runes) > 30 {
		return string(runes[:30]) + "..."
	}
	return s
}

func init() {
	rootCmd.AddCommand(importCmd)
}
