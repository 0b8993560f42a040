package types

import "errors"

// Recipe storage and lookup errors.
var (
	ErrDuplicateRecipe = errors.New("recipe title or url already present")
	ErrNotFound        = errors.New("recipe not found")
)

// Recipe groups a titled, sourced dish with its resolved and unresolved
// ingredient mentions. Title and URL are each globally unique in the
// store, independently of one another. IngredientsUnknown holds the raw
// text fragments the extractor could not resolve at load time, in input
// order.
type Recipe struct {
	ID                 int64
	Title              string
	URL                string
	IngredientsKnown   []Ingredient
	IngredientsUnknown []string
}

// HasUnknowns reports whether the recipe carries unresolved fragments.
// A recipe without unknowns is "clean" and eligible for search results.
func (r Recipe) HasUnknowns() bool {
	return len(r.IngredientsUnknown) > 0
}
