// Package classify derives the lowest-scoring category from a score board and
// maps it through static tables to personality and narrative content.
package classify

import (
	"sort"

	"github.com/soulful-academy/chakra-report/internal/questionnaire"
	"github.com/soulful-academy/chakra-report/internal/scoring"
)

// RankedCategory pairs a category with its score.
type RankedCategory struct {
	Category questionnaire.Category `json:"category"`
	Score    float64                `json:"score"`
}

// Classification is the derived, read-only bundle produced fresh per report.
type Classification struct {
	Lowest           questionnaire.Category
	LowestThree      []RankedCategory
	Archetype        Archetype
	PersonalityLabel string
	Narrative        string
	NeedsStatement   string
	Affirmations     [3]string
	Average          float64
}

// Classify ranks the board ascending and resolves the lowest category through
// the static tables. Ties for lowest go to the category declared earlier in
// the fixed order, which the stable sort over the ordered category list
// guarantees. Classify never fails: input outside the closed category set
// falls back to the generic archetype.
func Classify(board scoring.ScoreBoard) Classification {
	ranked := make([]RankedCategory, 0, questionnaire.NumCategories)
	for _, cat := range questionnaire.Categories() {
		ranked = append(ranked, RankedCategory{Category: cat, Score: board.Get(cat)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score < ranked[j].Score
	})

	lowest := ranked[0].Category
	c := Classification{
		Lowest:      lowest,
		LowestThree: ranked[:3],
		Average:     board.Average(),
	}

	archetype, ok := categoryArchetypes[lowest]
	if !ok {
		// Should be unreachable given the accumulator invariants, but a
		// report must still come out.
		c.Archetype = ArchetypeUnknown
		c.PersonalityLabel = ArchetypeUnknown.String()
		c.NeedsStatement = genericNeeds
		return c
	}

	c.Archetype = archetype
	c.PersonalityLabel = archetype.String()
	c.Narrative = narratives[lowest]
	c.NeedsStatement = needsStatements[lowest]
	c.Affirmations = affirmations[lowest]
	return c
}
