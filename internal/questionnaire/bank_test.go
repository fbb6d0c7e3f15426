package questionnaire

import (
	"strings"
	"testing"
)

func TestBankShape(t *testing.T) {
	bank := Bank()
	if len(bank) != NumQuestions {
		t.Fatalf("bank has %d questions, want %d", len(bank), NumQuestions)
	}

	for i, q := range bank {
		if strings.TrimSpace(q.Prompt) == "" {
			t.Errorf("question %d has an empty prompt", i+1)
		}
		if len(q.Impact) == 0 || len(q.Impact) > 3 {
			t.Errorf("question %d touches %d categories, want 1-3", i+1, len(q.Impact))
		}
		for cat, delta := range q.Impact {
			if !cat.Valid() {
				t.Errorf("question %d references invalid category %d", i+1, int(cat))
			}
			if delta == 0 || delta < -2 || delta > 2 {
				t.Errorf("question %d has delta %d for %s, want nonzero in [-2, 2]", i+1, delta, cat)
			}
		}
	}
}

func TestRootDeltaSequence(t *testing.T) {
	// The declared arithmetic: Root receives these deltas from questions
	// 1-10, then -1 from Q20 and +1 from Q45, and nothing else.
	wantFirstTen := []int{-2, -1, 1, -1, -1, 1, -1, 1, -1, -1}

	bank := Bank()
	for i, want := range wantFirstTen {
		got, ok := bank[i].Impact[Root]
		if !ok {
			t.Fatalf("question %d does not touch Root", i+1)
		}
		if got != want {
			t.Errorf("question %d Root delta = %d, want %d", i+1, got, want)
		}
	}

	if got := bank[19].Impact[Root]; got != -1 {
		t.Errorf("question 20 Root delta = %d, want -1", got)
	}
	if got := bank[44].Impact[Root]; got != 1 {
		t.Errorf("question 45 Root delta = %d, want 1", got)
	}

	for i, q := range bank {
		if i < 10 || i == 19 || i == 44 {
			continue
		}
		if _, ok := q.Impact[Root]; ok {
			t.Errorf("question %d unexpectedly touches Root", i+1)
		}
	}

	if got := DeltaSum(Root, Affirmative); got != -5 {
		t.Errorf("DeltaSum(Root, Affirmative) = %v, want -5", got)
	}
	if got := DeltaSum(Root, Sometimes); got != -2.5 {
		t.Errorf("DeltaSum(Root, Sometimes) = %v, want -2.5", got)
	}
	if got := DeltaSum(Root, Negative); got != 0 {
		t.Errorf("DeltaSum(Root, Negative) = %v, want 0", got)
	}
}

func TestPaging(t *testing.T) {
	for page := 1; page <= PageCount; page++ {
		questions, err := Page(page)
		if err != nil {
			t.Fatalf("Page(%d) failed: %v", page, err)
		}
		if len(questions) != PageSize {
			t.Errorf("Page(%d) returned %d questions, want %d", page, len(questions), PageSize)
		}
	}

	for _, page := range []int{0, -1, PageCount + 1} {
		if _, err := Page(page); err == nil {
			t.Errorf("Page(%d) should fail", page)
		}
	}

	if got := PageOfQuestion(0); got != 1 {
		t.Errorf("PageOfQuestion(0) = %d, want 1", got)
	}
	if got := PageOfQuestion(9); got != 1 {
		t.Errorf("PageOfQuestion(9) = %d, want 1", got)
	}
	if got := PageOfQuestion(10); got != 2 {
		t.Errorf("PageOfQuestion(10) = %d, want 2", got)
	}
	if got := PageOfQuestion(49); got != 5 {
		t.Errorf("PageOfQuestion(49) = %d, want 5", got)
	}
}

func TestLoadBankRejectsBadData(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", `{"questions": [`},
		{"too few questions", `{"questions": [{"prompt": "x", "impact": {"Root": 1}}]}`},
		{"unknown category", strings.Replace(string(bankJSON), `"Root"`, `"Spine"`, 1)},
		{"zero delta", strings.Replace(string(bankJSON), `{"Root": -2}`, `{"Root": 0}`, 1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := loadBank([]byte(tc.data)); err == nil {
				t.Error("loadBank should reject this data")
			}
		})
	}
}

func TestCategoryOrderAndLabels(t *testing.T) {
	want := []string{"Root", "Sacral", "Solar", "Heart", "Throat", "Third Eye", "Crown"}
	cats := Categories()
	if len(cats) != len(want) {
		t.Fatalf("got %d categories, want %d", len(cats), len(want))
	}
	for i, cat := range cats {
		if cat.String() != want[i] {
			t.Errorf("category %d = %q, want %q", i, cat.String(), want[i])
		}
		parsed, err := ParseCategory(want[i])
		if err != nil {
			t.Errorf("ParseCategory(%q) failed: %v", want[i], err)
		}
		if parsed != cat {
			t.Errorf("ParseCategory(%q) = %v, want %v", want[i], parsed, cat)
		}
	}

	if _, err := ParseCategory("Aura"); err == nil {
		t.Error("ParseCategory should reject unknown labels")
	}
}

func TestAnswerWeights(t *testing.T) {
	if got := Affirmative.Weight(); got != 1.0 {
		t.Errorf("Affirmative weight = %v, want 1.0", got)
	}
	if got := Sometimes.Weight(); got != 0.5 {
		t.Errorf("Sometimes weight = %v, want 0.5", got)
	}
	if got := Negative.Weight(); got != 0.0 {
		t.Errorf("Negative weight = %v, want 0.0", got)
	}

	if _, err := ParseAnswer("maybe"); err == nil {
		t.Error("ParseAnswer should reject unknown values")
	}
	if a, err := ParseAnswer("sometimes"); err != nil || a != Sometimes {
		t.Errorf("ParseAnswer(sometimes) = %v, %v", a, err)
	}
}
