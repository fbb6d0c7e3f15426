package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/soulful-academy/chakra-report/internal/config"
	"github.com/soulful-academy/chakra-report/internal/fetch"
	"github.com/soulful-academy/chakra-report/internal/questionnaire"
	"github.com/soulful-academy/chakra-report/internal/report"
)

var (
	generateAnswers string
	generateOut     string
	generateName    string
	generateGender  string
	generateEmail   string
	generateNoLogo  bool
)

// nowFunc is swappable in tests.
var nowFunc = time.Now

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a report from an answers file",
	Long: `Generate a PDF report in one shot from a JSON answers file.

The answers file maps 0-based question indexes to answer values, e.g.
{"0": "affirmative", "1": "sometimes"}. Missing indexes default to
"sometimes".`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateAnswers, "answers", "", "Path to answers JSON file (required)")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "Output PDF path (defaults to the suggested filename)")
	generateCmd.Flags().StringVar(&generateName, "name", "", "Respondent name")
	generateCmd.Flags().StringVar(&generateGender, "gender", "Other", "Respondent gender (Female, Male, Other)")
	generateCmd.Flags().StringVar(&generateEmail, "email", "", "Respondent email")
	generateCmd.Flags().BoolVar(&generateNoLogo, "no-logo", false, "Skip the logo download")
	_ = generateCmd.MarkFlagRequired("answers")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	answers, err := loadAnswers(generateAnswers)
	if err != nil {
		return err
	}

	var logo report.LogoProvider
	if !generateNoLogo && cfg.LogoURL != "" {
		logo = fetch.NewLogoCache(cfg.LogoURL, cfg.LogoCachePath, &fetch.Options{
			Timeout:   cfg.LogoTimeout,
			UserAgent: fetch.DefaultUserAgent,
		})
	}

	profile := report.BuildProfile(generateName, report.Gender(generateGender), generateEmail, answers, nowFunc())
	renderer := report.NewRenderer(logo, report.PlanVariant(cfg.PlanVariant))

	data, err := renderer.Render(context.Background(), &profile)
	if err != nil {
		return fmt.Errorf("report could not be generated: %w", err)
	}

	out := generateOut
	if out == "" {
		out = profile.Filename()
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	printSummary(cmd, &profile, out)
	return nil
}

// loadAnswers reads an answers file keyed by 0-based question index.
func loadAnswers(path string) (map[int]questionnaire.Answer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}

	var raw map[int]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse answers file: %w", err)
	}

	answers := make(map[int]questionnaire.Answer, len(raw))
	for idx, value := range raw {
		if idx < 0 || idx >= questionnaire.NumQuestions {
			return nil, fmt.Errorf("answers file: question index %d out of range", idx)
		}
		answer, err := questionnaire.ParseAnswer(value)
		if err != nil {
			return nil, fmt.Errorf("answers file: question %d: %w", idx+1, err)
		}
		answers[idx] = answer
	}
	return answers, nil
}

// printSummary writes a compact classification summary after generation.
func printSummary(cmd *cobra.Command, p *report.Profile, out string) {
	c := p.Classification
	cmd.Printf("Report written to %s\n", out)
	cmd.Printf("Personality:    %s\n", c.PersonalityLabel)
	cmd.Printf("Lowest chakra:  %s\n", c.Lowest)
	cmd.Printf("Average score:  %.1f / 10\n", c.Average)
	for _, rc := range c.LowestThree {
		cmd.Printf("  %-10s %.1f/10\n", rc.Category.String()+":", rc.Score)
	}
}
