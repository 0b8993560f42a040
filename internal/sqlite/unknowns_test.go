package sqlite

import (
	"errors"
	"testing"

	"github.com/ftambara/what-to-cook/pkg/types"
)

func TestGetUnknowns_Limit(t *testing.T) {
	s, _ := openTestStore(t)

	id1, err := s.StoreRecipe(types.Recipe{
		Title:              "Prima",
		URL:                "http://1",
		IngredientsUnknown: []string{"200g di tahina", "succo di limone"},
	})
	if err != nil {
		t.Fatalf("StoreRecipe failed: %v", err)
	}
	if _, err := s.StoreRecipe(types.Recipe{
		Title:              "Seconda",
		URL:                "http://2",
		IngredientsUnknown: []string{"un pizzico di sommacco"},
	}); err != nil {
		t.Fatalf("StoreRecipe failed: %v", err)
	}

	n, err := s.NumUnknowns()
	if err != nil {
		t.Fatalf("NumUnknowns failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 unknowns, got %d", n)
	}

	all, err := s.GetUnknowns(0)
	if err != nil {
		t.Fatalf("GetUnknowns failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 unknowns, got %d", len(all))
	}

	first, err := s.GetUnknowns(1)
	if err != nil {
		t.Fatalf("GetUnknowns(1) failed: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 unknown, got %d", len(first))
	}
	if first[0].RecipeID != id1 || first[0].Text != "200g di tahina" {
		t.Errorf("unexpected first unknown: %+v", first[0])
	}
	if first[0].Title != "Prima" || first[0].URL != "http://1" {
		t.Errorf("unknown missing recipe context: %+v", first[0])
	}
}

func TestSolveUnknown_ScopedToRecipeAndText(t *testing.T) {
	s, stemmer := openTestStore(t)
	tahina := mustIngredient(t, stemmer, "tahina")
	if err := s.StoreIngredient(tahina); err != nil {
		t.Fatalf("StoreIngredient failed: %v", err)
	}

	// The same text pending in two different recipes.
	id1, _ := s.StoreRecipe(types.Recipe{
		Title: "Prima", URL: "http://1", IngredientsUnknown: []string{"200g di tahina"},
	})
	id2, _ := s.StoreRecipe(types.Recipe{
		Title: "Seconda", URL: "http://2", IngredientsUnknown: []string{"200g di tahina"},
	})

	if err := s.SolveUnknown(id1, "200g di tahina", tahina); err != nil {
		t.Fatalf("SolveUnknown failed: %v", err)
	}

	// Only the first recipe's row is gone.
	left, err := s.GetUnknowns(0)
	if err != nil {
		t.Fatalf("GetUnknowns failed: %v", err)
	}
	if len(left) != 1 || left[0].RecipeID != id2 {
		t.Fatalf("expected the other recipe's unknown to survive, got %v", left)
	}

	// The association landed on the first recipe only.
	got1, _ := s.GetRecipeIngredients(id1)
	if len(got1) != 1 || got1[0].Name != "tahina" {
		t.Errorf("expected tahina associated with recipe %d, got %v", id1, got1)
	}
	got2, _ := s.GetRecipeIngredients(id2)
	if len(got2) != 0 {
		t.Errorf("expected no association for recipe %d, got %v", id2, got2)
	}
}

func TestSolveUnknown_DuplicateTextWithinRecipe(t *testing.T) {
	s, stemmer := openTestStore(t)
	aglio := mustIngredient(t, stemmer, "aglio")
	if err := s.StoreIngredient(aglio); err != nil {
		t.Fatalf("StoreIngredient failed: %v", err)
	}

	id, _ := s.StoreRecipe(types.Recipe{
		Title: "Doppia", URL: "http://d",
		IngredientsUnknown: []string{"uno spicchio di aglio", "uno spicchio di aglio"},
	})

	// Resolving twice consumes one row at a time; the shared association
	// insert must not fail the second round.
	if err := s.SolveUnknown(id, "uno spicchio di aglio", aglio); err != nil {
		t.Fatalf("first SolveUnknown failed: %v", err)
	}
	if err := s.SolveUnknown(id, "uno spicchio di aglio", aglio); err != nil {
		t.Fatalf("second SolveUnknown failed: %v", err)
	}

	n, _ := s.NumUnknowns()
	if n != 0 {
		t.Errorf("expected all unknowns consumed, got %d", n)
	}

	got, _ := s.GetRecipeIngredients(id)
	if len(got) != 1 {
		t.Errorf("expected a single association row, got %v", got)
	}
}

func TestSolveUnknown_MissingRow(t *testing.T) {
	s, stemmer := openTestStore(t)
	aglio := mustIngredient(t, stemmer, "aglio")
	if err := s.StoreIngredient(aglio); err != nil {
		t.Fatalf("StoreIngredient failed: %v", err)
	}

	id, _ := s.StoreRecipe(types.Recipe{Title: "Vuota", URL: "http://v"})

	err := s.SolveUnknown(id, "testo inesistente", aglio)
	if !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteUnknown(t *testing.T) {
	s, _ := openTestStore(t)

	id, _ := s.StoreRecipe(types.Recipe{
		Title: "Scarti", URL: "http://s",
		IngredientsUnknown: []string{"sale q.b."},
	})

	if err := s.DeleteUnknown(id, "sale q.b."); err != nil {
		t.Fatalf("DeleteUnknown failed: %v", err)
	}
	n, _ := s.NumUnknowns()
	if n != 0 {
		t.Errorf("expected 0 unknowns, got %d", n)
	}

	if err := s.DeleteUnknown(id, "sale q.b."); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
