// Package scoring folds a complete answer set into per-category scores.
package scoring

import (
	"github.com/soulful-academy/chakra-report/internal/questionnaire"
)

// Baseline is the score every category holds before any answer is folded in.
const Baseline = 5.0

// ScoreBoard holds the score of each of the seven categories. It is a value
// type: copies are independent and a board is never partially reused between
// generations.
type ScoreBoard [questionnaire.NumCategories]float64

// NewScoreBoard returns a board with every category at the baseline.
func NewScoreBoard() ScoreBoard {
	var b ScoreBoard
	for i := range b {
		b[i] = Baseline
	}
	return b
}

// Get returns the score of cat.
func (b ScoreBoard) Get(cat questionnaire.Category) float64 {
	return b[cat]
}

// Set returns a copy of the board with cat set to score.
func (b ScoreBoard) Set(cat questionnaire.Category, score float64) ScoreBoard {
	b[cat] = score
	return b
}

// Average returns the arithmetic mean over all seven categories.
func (b ScoreBoard) Average() float64 {
	sum := 0.0
	for _, v := range b {
		sum += v
	}
	return sum / float64(len(b))
}

// Accumulate produces a ScoreBoard from the question bank and a mapping of
// 0-based question index to answer. Questions missing from answers default to
// Sometimes. Scores are intentionally unclamped: a consistent run of negative
// deltas can push a category below 0 or above 10 even though scores display
// as "X/10".
func Accumulate(bank []questionnaire.Question, answers map[int]questionnaire.Answer) ScoreBoard {
	board := NewScoreBoard()
	for i, q := range bank {
		answer, ok := answers[i]
		if !ok || !answer.Valid() {
			answer = questionnaire.Sometimes
		}
		weight := answer.Weight()
		if weight == 0 {
			continue
		}
		for cat, delta := range q.Impact {
			board[cat] += float64(delta) * weight
		}
	}
	return board
}
