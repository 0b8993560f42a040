// Package search is the read-only query facade over the store. Raw
// included names are mapped through the identity model before
// delegating, so a search for "Carote" matches an association stored
// under the stem-equivalent "carota".
package search

import (
	"github.com/ftambara/what-to-cook/internal/sqlite"
	"github.com/ftambara/what-to-cook/internal/stem"
	"github.com/ftambara/what-to-cook/pkg/types"
)

// Searcher answers ingredient-filtered recipe queries.
type Searcher struct {
	store   *sqlite.Store
	stemmer *stem.Stemmer
}

// New returns a Searcher reading from the given store.
func New(store *sqlite.Store, stemmer *stem.Stemmer) *Searcher {
	return &Searcher{store: store, stemmer: stemmer}
}

// GetRecipes returns fully resolved recipes whose ingredients include
// every name in included. Empty included returns all clean recipes.
func (s *Searcher) GetRecipes(included []string) ([]types.Recipe, error) {
	filter := make(types.IdentitySet, len(included))
	for _, raw := range included {
		ingr, err := s.stemmer.Ingredient(raw)
		if err != nil {
			return nil, err
		}
		filter.Add(ingr)
	}
	return s.store.GetRecipes(filter)
}

// GetIngredients returns all stored ingredients.
func (s *Searcher) GetIngredients() ([]types.Ingredient, error) {
	return s.store.GetIngredients()
}

// GetRecipeID looks up a recipe by exact title and url,
// case-insensitively.
func (s *Searcher) GetRecipeID(title, url string) (int64, error) {
	return s.store.GetRecipeID(title, url)
}

// GetRecipeIngredients returns the ingredients of one stored recipe.
func (s *Searcher) GetRecipeIngredients(recipeID int64) ([]types.Ingredient, error) {
	return s.store.GetRecipeIngredients(recipeID)
}
