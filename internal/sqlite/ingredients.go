package sqlite

import (
	"fmt"
	"sort"

	"github.com/ftambara/what-to-cook/pkg/types"
)

// StoreIngredient inserts the ingredient's canonical name.
// Returns types.ErrDuplicateIngredient if the name is already present.
func (s *Store) StoreIngredient(ingr types.Ingredient) error {
	var exists bool
	err := s.db.QueryRow(
		"SELECT 1 FROM ingredients WHERE name = ?", ingr.Name,
	).Scan(&exists)
	if err == nil {
		return types.ErrDuplicateIngredient
	}
	if !isNoRows(err) {
		return fmt.Errorf("checking ingredient existence: %w", err)
	}

	if _, err := s.db.Exec(
		"INSERT INTO ingredients (name) VALUES (?)", ingr.Name,
	); err != nil {
		return fmt.Errorf("inserting ingredient %q: %w", ingr.Name, err)
	}
	return nil
}

// GetIngredients returns all stored ingredients with stems recomputed
// from the persisted names, sorted by name.
func (s *Store) GetIngredients() ([]types.Ingredient, error) {
	return s.queryIngredients("SELECT name FROM ingredients")
}

// GetRecipeIngredients returns the ingredients associated with one
// recipe, sorted by name.
func (s *Store) GetRecipeIngredients(recipeID int64) ([]types.Ingredient, error) {
	return s.queryIngredients(
		"SELECT ingr_name FROM recipes_ingredients WHERE recipe_id = ?",
		recipeID,
	)
}

func (s *Store) queryIngredients(query string, args ...any) ([]types.Ingredient, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []types.Ingredient
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning ingredient: %w", err)
		}
		ingr, err := s.stemmer.Ingredient(name)
		if err != nil {
			return nil, fmt.Errorf("rebuilding ingredient %q: %w", name, err)
		}
		ingredients = append(ingredients, ingr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ingredients: %w", err)
	}

	sort.Slice(ingredients, func(i, j int) bool {
		return ingredients[i].Name < ingredients[j].Name
	})
	return ingredients, nil
}
