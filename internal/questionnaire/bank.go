package questionnaire

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/soulful-academy/chakra-report/internal/schemas"
)

// Paging layout: five pages of ten questions each.
const (
	PageSize     = 10
	PageCount    = 5
	NumQuestions = PageSize * PageCount
)

// Question is one entry of the fixed bank: a prompt and the signed deltas it
// applies to each category it touches. Questions are immutable after load.
type Question struct {
	Prompt string
	Impact map[Category]int
}

//go:embed question_bank.json
var bankJSON []byte

//go:embed question_bank.schema.json
var bankSchema string

var bank []Question

func init() {
	var err error
	bank, err = loadBank(bankJSON)
	if err != nil {
		// The bank is a compile-time artifact; a bad bank is a build defect.
		panic(fmt.Sprintf("questionnaire: embedded bank is invalid: %v", err))
	}
}

// rawQuestion is the JSON wire form of a question, with impact keyed by
// category display label.
type rawQuestion struct {
	Prompt string         `json:"prompt"`
	Impact map[string]int `json:"impact"`
}

func loadBank(data []byte) ([]Question, error) {
	if err := schemas.ValidateJSONString(bankSchema, string(data)); err != nil {
		return nil, err
	}

	var raw struct {
		Questions []rawQuestion `json:"questions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse question bank: %w", err)
	}
	if len(raw.Questions) != NumQuestions {
		return nil, fmt.Errorf("question bank has %d questions, want %d", len(raw.Questions), NumQuestions)
	}

	questions := make([]Question, 0, len(raw.Questions))
	for i, rq := range raw.Questions {
		q := Question{
			Prompt: rq.Prompt,
			Impact: make(map[Category]int, len(rq.Impact)),
		}
		for label, delta := range rq.Impact {
			cat, err := ParseCategory(label)
			if err != nil {
				return nil, fmt.Errorf("question %d: %w", i+1, err)
			}
			q.Impact[cat] = delta
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// Bank returns the fixed ordered question bank.
func Bank() []Question {
	return bank
}

// Page returns the questions of the 1-based page n.
func Page(n int) ([]Question, error) {
	if n < 1 || n > PageCount {
		return nil, fmt.Errorf("page %d out of range [1, %d]", n, PageCount)
	}
	start := (n - 1) * PageSize
	return bank[start : start+PageSize], nil
}

// PageOfQuestion returns the 1-based page that holds the 0-based question
// index.
func PageOfQuestion(index int) int {
	return index/PageSize + 1
}

// DeltaSum returns the total weighted delta the bank applies to cat when every
// question receives the same answer. Used by tests and the bank CLI to check
// the declared arithmetic.
func DeltaSum(cat Category, answer Answer) float64 {
	sum := 0.0
	for _, q := range bank {
		if delta, ok := q.Impact[cat]; ok {
			sum += float64(delta) * answer.Weight()
		}
	}
	return sum
}
