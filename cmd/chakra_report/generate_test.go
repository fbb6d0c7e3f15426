package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/soulful-academy/chakra-report/internal/questionnaire"
)

func writeAnswersFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAnswers(t *testing.T) {
	path := writeAnswersFile(t, `{"0": "affirmative", "12": "sometimes", "49": "negative"}`)

	answers, err := loadAnswers(path)
	if err != nil {
		t.Fatalf("loadAnswers failed: %v", err)
	}
	if len(answers) != 3 {
		t.Fatalf("got %d answers, want 3", len(answers))
	}
	if answers[0] != questionnaire.Affirmative || answers[49] != questionnaire.Negative {
		t.Errorf("answers not parsed: %v", answers)
	}
}

func TestLoadAnswersRejections(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"0": `},
		{"index out of range", `{"50": "affirmative"}`},
		{"negative index", `{"-1": "affirmative"}`},
		{"unknown answer", `{"0": "maybe"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeAnswersFile(t, tc.content)
			if _, err := loadAnswers(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadAnswersMissingFile(t *testing.T) {
	if _, err := loadAnswers(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected an error")
	}
}
