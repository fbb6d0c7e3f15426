package questionnaire

import "fmt"

// Answer is one of the three choices a respondent can give to a question.
type Answer string

// The three answer choices. Sometimes is the neutral default applied to any
// question the respondent skipped.
const (
	Affirmative Answer = "affirmative"
	Sometimes   Answer = "sometimes"
	Negative    Answer = "negative"
)

// Valid reports whether a is one of the three defined choices.
func (a Answer) Valid() bool {
	switch a {
	case Affirmative, Sometimes, Negative:
		return true
	}
	return false
}

// Weight returns the multiplier applied to a question's impact deltas for
// this answer: full weight for Affirmative, half for Sometimes, zero for
// Negative.
func (a Answer) Weight() float64 {
	switch a {
	case Affirmative:
		return 1.0
	case Sometimes:
		return 0.5
	default:
		return 0.0
	}
}

// ParseAnswer validates a wire value and returns it as an Answer.
func ParseAnswer(s string) (Answer, error) {
	a := Answer(s)
	if !a.Valid() {
		return "", fmt.Errorf("unknown answer %q (want affirmative, sometimes, or negative)", s)
	}
	return a, nil
}
