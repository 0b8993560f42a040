package loader

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ftambara/what-to-cook/pkg/types"
)

// NumPendingReview returns the number of backlog entries awaiting
// resolution.
func (l *Loader) NumPendingReview() (int, error) {
	return l.store.NumUnknowns()
}

// GetPendingReview groups all pending unknowns by owning recipe.
func (l *Loader) GetPendingReview() (map[int64]types.ReviewGroup, error) {
	unknowns, err := l.store.GetUnknowns(0)
	if err != nil {
		return nil, err
	}
	return groupByRecipe(unknowns), nil
}

// NextPendingReview returns the first pending entry in the store's
// current ordering. Returns types.ErrNoUnknownsLeft if the backlog is
// empty.
func (l *Loader) NextPendingReview() (types.Unknown, error) {
	unknowns, err := l.store.GetUnknowns(1)
	if err != nil {
		return types.Unknown{}, err
	}
	if len(unknowns) == 0 {
		return types.Unknown{}, types.ErrNoUnknownsLeft
	}
	return unknowns[0], nil
}

// SolveUnknown resolves one backlog entry to the ingredient named by
// rawName. The ingredient must actually be extractable from the entry's
// text; this guards against a caller supplying an unrelated ingredient.
// If an identity-equal ingredient is already stored, the association
// uses its canonical form; otherwise the ingredient is stored first.
// Returns the ingredient the entry was resolved to.
func (l *Loader) SolveUnknown(recipeID int64, text, rawName string) (types.Ingredient, error) {
	ingr, err := l.stemmer.Ingredient(rawName)
	if err != nil {
		return types.Ingredient{}, err
	}

	if _, err := l.extractor.Extract(text, types.NewIdentitySet(ingr)); err != nil {
		return types.Ingredient{}, fmt.Errorf("ingredient %q does not match %q: %w", ingr.Name, text, err)
	}

	known, err := l.knownSet()
	if err != nil {
		return types.Ingredient{}, err
	}
	if stored, ok := known.Lookup(ingr); ok {
		ingr = stored
	} else if err := l.store.StoreIngredient(ingr); err != nil &&
		!errors.Is(err, types.ErrDuplicateIngredient) {
		return types.Ingredient{}, err
	}

	if err := l.store.SolveUnknown(recipeID, text, ingr); err != nil {
		return types.Ingredient{}, err
	}
	l.logger.Info("unknown resolved",
		zap.Int64("recipe_id", recipeID),
		zap.String("text", text),
		zap.String("ingredient", ingr.Name),
	)
	return ingr, nil
}

// DeleteUnknown discards one backlog entry without resolving it.
func (l *Loader) DeleteUnknown(recipeID int64, text string) error {
	return l.store.DeleteUnknown(recipeID, text)
}

// SameSolutionCandidates scans all pending unknowns and reports, grouped
// by recipe, those whose text would resolve to the given ingredient.
// Read-only and advisory: applying the resolution to any candidate is
// the caller's decision, entry by entry.
func (l *Loader) SameSolutionCandidates(ingr types.Ingredient) (map[int64]types.ReviewGroup, error) {
	unknowns, err := l.store.GetUnknowns(0)
	if err != nil {
		return nil, err
	}

	restricted := types.NewIdentitySet(ingr)
	var matches []types.Unknown
	for _, u := range unknowns {
		if _, err := l.extractor.Extract(u.Text, restricted); err == nil {
			matches = append(matches, u)
		}
	}
	return groupByRecipe(matches), nil
}

func groupByRecipe(unknowns []types.Unknown) map[int64]types.ReviewGroup {
	groups := make(map[int64]types.ReviewGroup)
	for _, u := range unknowns {
		g := groups[u.RecipeID]
		g.Title = u.Title
		g.URL = u.URL
		g.Texts = append(g.Texts, u.Text)
		groups[u.RecipeID] = g
	}
	return groups
}
