package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soulful-academy/chakra-report/internal/questionnaire"
)

var bankJSON bool

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Print the question bank",
	Long:  `Print the fixed 50-question bank. Loading the bank also validates it against its schema, so this doubles as a data check.`,
	RunE:  runBank,
}

func init() {
	bankCmd.Flags().BoolVar(&bankJSON, "json", false, "Print as JSON")
	rootCmd.AddCommand(bankCmd)
}

func runBank(cmd *cobra.Command, _ []string) error {
	bank := questionnaire.Bank()

	if bankJSON {
		type entry struct {
			Index  int            `json:"index"`
			Page   int            `json:"page"`
			Prompt string         `json:"prompt"`
			Impact map[string]int `json:"impact"`
		}
		entries := make([]entry, 0, len(bank))
		for i, q := range bank {
			impact := make(map[string]int, len(q.Impact))
			for cat, delta := range q.Impact {
				impact[cat.String()] = delta
			}
			entries = append(entries, entry{
				Index:  i,
				Page:   questionnaire.PageOfQuestion(i),
				Prompt: q.Prompt,
				Impact: impact,
			})
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode bank: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	for i, q := range bank {
		cmd.Printf("%2d. [page %d] %s\n", i+1, questionnaire.PageOfQuestion(i), q.Prompt)
	}
	cmd.Println()
	cmd.Println("Per-category delta sums (all answers affirmative):")
	for _, cat := range questionnaire.Categories() {
		cmd.Printf("  %-10s %+.0f\n", cat.String()+":", questionnaire.DeltaSum(cat, questionnaire.Affirmative))
	}
	return nil
}
