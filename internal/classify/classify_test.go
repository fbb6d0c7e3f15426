package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulful-academy/chakra-report/internal/questionnaire"
	"github.com/soulful-academy/chakra-report/internal/scoring"
)

func TestClassifyPicksLowest(t *testing.T) {
	board := scoring.NewScoreBoard().
		Set(questionnaire.Throat, 2.0).
		Set(questionnaire.Heart, 3.5).
		Set(questionnaire.Crown, 4.0)

	c := Classify(board)

	assert.Equal(t, questionnaire.Throat, c.Lowest)
	assert.Equal(t, EditedTruthTeller, c.Archetype)
	assert.Equal(t, "The Edited Truth-Teller", c.PersonalityLabel)
	assert.Equal(t, narratives[questionnaire.Throat], c.Narrative)
	assert.Equal(t, needsStatements[questionnaire.Throat], c.NeedsStatement)
	assert.Equal(t, affirmations[questionnaire.Throat], c.Affirmations)

	require.Len(t, c.LowestThree, 3)
	assert.Equal(t, questionnaire.Throat, c.LowestThree[0].Category)
	assert.Equal(t, questionnaire.Heart, c.LowestThree[1].Category)
	assert.Equal(t, questionnaire.Crown, c.LowestThree[2].Category)
	for i := 1; i < len(c.LowestThree); i++ {
		assert.LessOrEqual(t, c.LowestThree[i-1].Score, c.LowestThree[i].Score)
	}
}

func TestTieBreakFollowsDeclarationOrder(t *testing.T) {
	// Sacral and Throat tie for lowest; Sacral is declared earlier and must
	// win.
	board := scoring.NewScoreBoard().
		Set(questionnaire.Sacral, 1.5).
		Set(questionnaire.Throat, 1.5)

	c := Classify(board)
	assert.Equal(t, questionnaire.Sacral, c.Lowest)

	// All seven tied: the first declared category wins.
	c = Classify(scoring.NewScoreBoard())
	assert.Equal(t, questionnaire.Root, c.Lowest)
	assert.Equal(t, []RankedCategory{
		{Category: questionnaire.Root, Score: scoring.Baseline},
		{Category: questionnaire.Sacral, Score: scoring.Baseline},
		{Category: questionnaire.Solar, Score: scoring.Baseline},
	}, c.LowestThree)
}

func TestClassifyIsDeterministic(t *testing.T) {
	board := scoring.NewScoreBoard().
		Set(questionnaire.Root, 2.5).
		Set(questionnaire.ThirdEye, 3.0)

	first := Classify(board)
	second := Classify(board)
	assert.Equal(t, first, second)
}

func TestAverageReported(t *testing.T) {
	board := scoring.NewScoreBoard().Set(questionnaire.Crown, 12)
	c := Classify(board)
	assert.InDelta(t, board.Average(), c.Average, 1e-9)
}

func TestTablesCoverEveryCategory(t *testing.T) {
	for _, cat := range questionnaire.Categories() {
		assert.Contains(t, categoryArchetypes, cat, "archetype for %s", cat)
		assert.NotEmpty(t, narratives[cat], "narrative for %s", cat)
		assert.NotEmpty(t, needsStatements[cat], "needs statement for %s", cat)
		for i, a := range affirmations[cat] {
			assert.NotEmpty(t, a, "affirmation %d for %s", i, cat)
		}
	}
}

func TestUnknownArchetypeFallsBack(t *testing.T) {
	assert.Equal(t, "Soulful Being", ArchetypeUnknown.String())
	assert.Equal(t, "Soulful Being", Archetype(99).String())
}
