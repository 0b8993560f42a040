package types

import (
	"errors"
	"strings"
)

// Ingredient identity errors.
var (
	ErrEmptyName           = errors.New("ingredient name is empty")
	ErrDuplicateIngredient = errors.New("ingredient already present")
)

// Ingredient is a canonical food item. Name is the lower-cased, trimmed
// display form; Stem is the normalized linguistic root derived from Name.
// Two ingredients are the same identity iff their stems are equal, so
// "onion" and "onions" collapse to one entry in any identity set.
// Ingredients are immutable value objects; construct them through the
// stem package, never by filling the struct directly.
type Ingredient struct {
	Name string
	Stem string
}

// Equal reports whether both ingredients share the same identity.
// Comparison is over the stem only, not the display name.
func (i Ingredient) Equal(other Ingredient) bool {
	return i.Stem == other.Stem
}

// Display returns the capitalized display form of the name.
func (i Ingredient) Display() string {
	if i.Name == "" {
		return ""
	}
	return strings.ToUpper(i.Name[:1]) + i.Name[1:]
}

func (i Ingredient) String() string {
	return i.Name
}

// IdentitySet is a set of ingredients keyed by stem. Membership tests
// and inserts follow identity equality: adding "onions" after "onion"
// is a no-op.
type IdentitySet map[string]Ingredient

// NewIdentitySet builds a set from the given ingredients.
func NewIdentitySet(ingredients ...Ingredient) IdentitySet {
	s := make(IdentitySet, len(ingredients))
	for _, ingr := range ingredients {
		s.Add(ingr)
	}
	return s
}

// Add inserts the ingredient unless an identity-equal one is present.
// Returns true if the ingredient was inserted.
func (s IdentitySet) Add(ingr Ingredient) bool {
	if _, ok := s[ingr.Stem]; ok {
		return false
	}
	s[ingr.Stem] = ingr
	return true
}

// Lookup returns the stored ingredient matching the identity of ingr.
func (s IdentitySet) Lookup(ingr Ingredient) (Ingredient, bool) {
	stored, ok := s[ingr.Stem]
	return stored, ok
}

// Has reports whether an identity-equal ingredient is in the set.
func (s IdentitySet) Has(ingr Ingredient) bool {
	_, ok := s[ingr.Stem]
	return ok
}
