package sqlite

import (
	"fmt"

	"github.com/ftambara/what-to-cook/pkg/types"
)

// NumUnknowns returns the number of pending unknown rows.
func (s *Store) NumUnknowns() (int, error) {
	var count int
	if err := s.db.QueryRow(
		"SELECT count(*) FROM ingr_unknowns",
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting unknowns: %w", err)
	}
	return count, nil
}

// GetUnknowns returns pending unknowns joined with their owning recipe,
// in insertion order. A limit of 0 means unbounded. The view is queried
// fresh on every call so a just-applied resolution is immediately
// reflected.
func (s *Store) GetUnknowns(limit int) ([]types.Unknown, error) {
	query := `SELECT r.recipe_id, r.title, r.url, iu.text_containing_ingr
        FROM recipes r
        JOIN ingr_unknowns iu USING (recipe_id)
        ORDER BY iu.rowid`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying unknowns: %w", err)
	}
	defer rows.Close()

	var unknowns []types.Unknown
	for rows.Next() {
		var u types.Unknown
		if err := rows.Scan(&u.RecipeID, &u.Title, &u.URL, &u.Text); err != nil {
			return nil, fmt.Errorf("scanning unknown: %w", err)
		}
		unknowns = append(unknowns, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating unknowns: %w", err)
	}
	return unknowns, nil
}

// SolveUnknown deletes one unknown row matching (recipeID, text) and
// inserts the association to the given ingredient, atomically. The
// delete is scoped by both recipe id and text and limited to a single
// row, so a fragment repeated within one recipe loses exactly one
// sibling and fragments of other recipes are untouched. The ingredient
// must already exist in the ingredients table; that is the caller's
// responsibility. Returns types.ErrNotFound if no matching unknown row
// exists.
func (s *Store) SolveUnknown(recipeID int64, text string, ingr types.Ingredient) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deleteOneUnknown(tx, recipeID, text); err != nil {
		return err
	}

	// OR IGNORE: two fragments of one recipe may resolve to the same
	// ingredient; the second resolution must still succeed.
	if _, err := tx.Exec(
		"INSERT OR IGNORE INTO recipes_ingredients (recipe_id, ingr_name) VALUES (?, ?)",
		recipeID, ingr.Name,
	); err != nil {
		return fmt.Errorf("associating ingredient %q: %w", ingr.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing resolution: %w", err)
	}
	return nil
}

// DeleteUnknown discards one unknown row matching (recipeID, text)
// without resolving it. Returns types.ErrNotFound if absent.
func (s *Store) DeleteUnknown(recipeID int64, text string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deleteOneUnknown(tx, recipeID, text); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing unknown deletion: %w", err)
	}
	return nil
}

// deleteOneUnknown removes exactly one ingr_unknowns row matching the
// (recipeID, text) pair.
func deleteOneUnknown(tx execer, recipeID int64, text string) error {
	res, err := tx.Exec(
		`DELETE FROM ingr_unknowns WHERE rowid IN (
            SELECT rowid FROM ingr_unknowns
            WHERE recipe_id = ? AND text_containing_ingr = ?
            LIMIT 1
        )`,
		recipeID, text,
	)
	if err != nil {
		return fmt.Errorf("deleting unknown %q: %w", text, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}
