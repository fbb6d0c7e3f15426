// Package questionnaire defines the fixed question bank and the closed
// category and answer enumerations the scoring engine operates on.
package questionnaire

import "fmt"

// Category identifies one of the seven energy centers tracked by the
// questionnaire. The declaration order is load-bearing: it is the tie-break
// order when two categories share the lowest score.
type Category int

// The seven categories, in canonical order.
const (
	Root Category = iota
	Sacral
	Solar
	Heart
	Throat
	ThirdEye
	Crown

	numCategories
)

// NumCategories is the size of the closed category set.
const NumCategories = int(numCategories)

var categoryLabels = [NumCategories]string{
	Root:     "Root",
	Sacral:   "Sacral",
	Solar:    "Solar",
	Heart:    "Heart",
	Throat:   "Throat",
	ThirdEye: "Third Eye",
	Crown:    "Crown",
}

// Categories returns all categories in canonical declaration order.
func Categories() []Category {
	cats := make([]Category, NumCategories)
	for i := range cats {
		cats[i] = Category(i)
	}
	return cats
}

// Valid reports whether c is inside the closed category set.
func (c Category) Valid() bool {
	return c >= 0 && c < numCategories
}

// String returns the display label, e.g. "Third Eye".
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryLabels[c]
}

// ParseCategory maps a display label back to its Category.
func ParseCategory(label string) (Category, error) {
	for i, l := range categoryLabels {
		if l == label {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", label)
}
