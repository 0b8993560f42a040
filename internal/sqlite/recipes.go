package sqlite

import (
	"fmt"

	"github.com/ftambara/what-to-cook/pkg/types"
)

// StoreRecipe inserts the recipe row, one unknown row per unresolved
// fragment, and one association row per known ingredient, all within a
// single transaction. Returns types.ErrDuplicateRecipe if the title or
// the url is already present (checked independently, case-insensitively);
// on any failure no partial rows remain. Known ingredients must already
// exist in the ingredients table.
func (s *Store) StoreRecipe(recipe types.Recipe) (int64, error) {
	var exists bool
	err := s.db.QueryRow(
		"SELECT 1 FROM recipes WHERE title = ? OR url = ?",
		recipe.Title, recipe.URL,
	).Scan(&exists)
	if err == nil {
		return 0, types.ErrDuplicateRecipe
	}
	if !isNoRows(err) {
		return 0, fmt.Errorf("checking recipe existence: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO recipes (title, url) VALUES (?, ?)",
		recipe.Title, recipe.URL,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting recipe %q: %w", recipe.Title, err)
	}
	recipeID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading recipe id: %w", err)
	}

	for _, text := range recipe.IngredientsUnknown {
		if _, err := tx.Exec(
			"INSERT INTO ingr_unknowns (recipe_id, text_containing_ingr) VALUES (?, ?)",
			recipeID, text,
		); err != nil {
			return 0, fmt.Errorf("inserting unknown %q: %w", text, err)
		}
	}

	for _, ingr := range recipe.IngredientsKnown {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO recipes_ingredients (recipe_id, ingr_name) VALUES (?, ?)",
			recipeID, ingr.Name,
		); err != nil {
			return 0, fmt.Errorf("associating ingredient %q: %w", ingr.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing recipe: %w", err)
	}
	return recipeID, nil
}

// GetRecipes returns the recipes whose known ingredients are a superset
// of filter. An empty (or nil) filter returns all recipes. Recipes with
// any pending unknown are excluded regardless of filter: only fully
// resolved recipes are searchable.
func (s *Store) GetRecipes(filter types.IdentitySet) ([]types.Recipe, error) {
	omit, err := s.recipeIDsWithUnknowns()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT recipe_id, title, url FROM recipes ORDER BY recipe_id")
	if err != nil {
		return nil, fmt.Errorf("querying recipes: %w", err)
	}
	defer rows.Close()

	var candidates []types.Recipe
	for rows.Next() {
		var r types.Recipe
		if err := rows.Scan(&r.ID, &r.Title, &r.URL); err != nil {
			return nil, fmt.Errorf("scanning recipe: %w", err)
		}
		candidates = append(candidates, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recipes: %w", err)
	}

	var results []types.Recipe
	for _, r := range candidates {
		if omit[r.ID] {
			continue
		}
		ingredients, err := s.GetRecipeIngredients(r.ID)
		if err != nil {
			return nil, err
		}
		r.IngredientsKnown = ingredients

		if containsAll(types.NewIdentitySet(ingredients...), filter) {
			results = append(results, r)
		}
	}
	return results, nil
}

// GetRecipeID returns the id of the recipe matching both title and url.
// Matching is exact but case-insensitive on both fields.
// Returns types.ErrNotFound if absent.
func (s *Store) GetRecipeID(title, url string) (int64, error) {
	var id int64
	err := s.db.QueryRow(
		"SELECT recipe_id FROM recipes WHERE title = ? AND url = ?",
		title, url,
	).Scan(&id)
	if isNoRows(err) {
		return 0, types.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("looking up recipe: %w", err)
	}
	return id, nil
}

// DeleteRecipe removes the recipe and cascades to its associations and
// pending unknowns in one transaction.
// Returns types.ErrNotFound if no recipe has the given id.
func (s *Store) DeleteRecipe(recipeID int64) error {
	var exists bool
	err := s.db.QueryRow(
		"SELECT 1 FROM recipes WHERE recipe_id = ?", recipeID,
	).Scan(&exists)
	if isNoRows(err) {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("checking recipe existence: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM ingr_unknowns WHERE recipe_id = ?", recipeID); err != nil {
		return fmt.Errorf("deleting recipe unknowns: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM recipes_ingredients WHERE recipe_id = ?", recipeID); err != nil {
		return fmt.Errorf("deleting recipe associations: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM recipes WHERE recipe_id = ?", recipeID); err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing recipe deletion: %w", err)
	}
	return nil
}

// recipeIDsWithUnknowns returns the ids of recipes carrying at least one
// pending unknown.
func (s *Store) recipeIDsWithUnknowns() (map[int64]bool, error) {
	rows, err := s.db.Query("SELECT DISTINCT recipe_id FROM ingr_unknowns")
	if err != nil {
		return nil, fmt.Errorf("querying recipes with unknowns: %w", err)
	}
	defer rows.Close()

	ids := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning recipe id: %w", err)
		}
		ids[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recipe ids: %w", err)
	}
	return ids, nil
}

// containsAll reports whether every identity in want is present in have.
func containsAll(have, want types.IdentitySet) bool {
	for stem := range want {
		if _, ok := have[stem]; !ok {
			return false
		}
	}
	return true
}
