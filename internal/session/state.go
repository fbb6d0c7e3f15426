// Package session holds the questionnaire session state and the pure
// transitions that move it between pages. A transition never mutates its
// input; it returns a fresh state, so a failed downstream step (such as a
// report render) can always retry from the state it started with.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/soulful-academy/chakra-report/internal/questionnaire"
)

// ErrPageOutOfRange is returned when a transition names a page outside the
// five-page layout.
var ErrPageOutOfRange = errors.New("page out of range")

// AnswerError reports an answer that does not fit the submitted page.
type AnswerError struct {
	Index   int
	Message string
}

func (e *AnswerError) Error() string {
	return fmt.Sprintf("answer for question %d: %s", e.Index+1, e.Message)
}

// Identity carries the respondent fields collected before the first page.
type Identity struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Email  string `json:"email,omitempty"`
}

// State is the full serializable session: identity, current page, and the
// answers given so far, keyed by 0-based question index.
type State struct {
	ID        uuid.UUID                    `json:"id"`
	Identity  Identity                     `json:"identity"`
	Page      int                          `json:"page"`
	Answers   map[int]questionnaire.Answer `json:"answers"`
	CreatedAt time.Time                    `json:"created_at"`
	UpdatedAt time.Time                    `json:"updated_at"`
}

// New returns a fresh session positioned on page 1 with no answers.
func New(id uuid.UUID, identity Identity, now time.Time) State {
	return State{
		ID:        id,
		Identity:  identity,
		Page:      1,
		Answers:   map[int]questionnaire.Answer{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// clone copies the state deeply enough that the result shares nothing mutable
// with the input.
func clone(s State) State {
	answers := make(map[int]questionnaire.Answer, len(s.Answers))
	for k, v := range s.Answers {
		answers[k] = v
	}
	s.Answers = answers
	return s
}

// SubmitPage records the answers of one page and advances to the next. Every
// submitted index must belong to the named page and carry a valid answer;
// indexes the respondent skipped are simply left unanswered and pick up the
// Sometimes default at completion time.
func SubmitPage(s State, page int, answers map[int]questionnaire.Answer, now time.Time) (State, error) {
	if page < 1 || page > questionnaire.PageCount {
		return State{}, fmt.Errorf("%w: %d", ErrPageOutOfRange, page)
	}
	for idx, answer := range answers {
		if idx < 0 || idx >= questionnaire.NumQuestions {
			return State{}, &AnswerError{Index: idx, Message: "no such question"}
		}
		if questionnaire.PageOfQuestion(idx) != page {
			return State{}, &AnswerError{Index: idx, Message: fmt.Sprintf("not on page %d", page)}
		}
		if !answer.Valid() {
			return State{}, &AnswerError{Index: idx, Message: fmt.Sprintf("invalid answer %q", answer)}
		}
	}

	next := clone(s)
	for idx, answer := range answers {
		next.Answers[idx] = answer
	}
	if page < questionnaire.PageCount {
		next.Page = page + 1
	} else {
		next.Page = page
	}
	next.UpdatedAt = now
	return next, nil
}

// GoToPage moves the session to an already-reachable page without touching
// answers, for back-navigation.
func GoToPage(s State, page int, now time.Time) (State, error) {
	if page < 1 || page > questionnaire.PageCount {
		return State{}, fmt.Errorf("%w: %d", ErrPageOutOfRange, page)
	}
	next := clone(s)
	next.Page = page
	next.UpdatedAt = now
	return next, nil
}

// Complete returns the full answer set for report generation, with the
// Sometimes default applied to every unanswered question.
func Complete(s State) map[int]questionnaire.Answer {
	answers := make(map[int]questionnaire.Answer, questionnaire.NumQuestions)
	for i := 0; i < questionnaire.NumQuestions; i++ {
		if a, ok := s.Answers[i]; ok && a.Valid() {
			answers[i] = a
		} else {
			answers[i] = questionnaire.Sometimes
		}
	}
	return answers
}

// Snapshot serializes the state.
func (s State) Snapshot() ([]byte, error) {
	return json.Marshal(s)
}

// Restore deserializes a state snapshot.
func Restore(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("failed to restore session state: %w", err)
	}
	if s.Answers == nil {
		s.Answers = map[int]questionnaire.Answer{}
	}
	return s, nil
}
