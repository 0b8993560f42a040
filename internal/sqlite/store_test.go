package sqlite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftambara/what-to-cook/internal/stem"
	"github.com/ftambara/what-to-cook/pkg/types"
)

func openTestStore(t *testing.T) (*Store, *stem.Stemmer) {
	t.Helper()
	stemmer, err := stem.New(types.LanguageItalian)
	if err != nil {
		t.Fatalf("stem.New failed: %v", err)
	}
	s, err := Open(types.Config{DataDir: t.TempDir(), Language: types.LanguageItalian}, stemmer)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, stemmer
}

func mustIngredient(t *testing.T, stemmer *stem.Stemmer, name string) types.Ingredient {
	t.Helper()
	ingr, err := stemmer.Ingredient(name)
	if err != nil {
		t.Fatalf("Ingredient(%q) failed: %v", name, err)
	}
	return ingr
}

func TestOpen_CreatesDatabase(t *testing.T) {
	stemmer, _ := stem.New(types.LanguageItalian)
	dataDir := filepath.Join(t.TempDir(), "nested")

	s, err := Open(types.Config{DataDir: dataDir, Language: types.LanguageItalian}, stemmer)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Join(dataDir, DBFileName)); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestOpen_InvalidConfig(t *testing.T) {
	stemmer, _ := stem.New(types.LanguageItalian)

	_, err := Open(types.Config{Language: types.LanguageItalian}, stemmer)
	if !errors.Is(err, types.ErrDataDirEmpty) {
		t.Errorf("expected ErrDataDirEmpty, got %v", err)
	}

	_, err = Open(types.Config{DataDir: t.TempDir(), Language: "klingon"}, stemmer)
	if !errors.Is(err, types.ErrLanguageUnknown) {
		t.Errorf("expected ErrLanguageUnknown, got %v", err)
	}
}

func TestOpen_StemmerDrift(t *testing.T) {
	dataDir := t.TempDir()
	italian, _ := stem.New(types.LanguageItalian)
	english, _ := stem.New(types.LanguageEnglish)

	s, err := Open(types.Config{DataDir: dataDir, Language: types.LanguageItalian}, italian)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	s.Close()

	// Reopening with the same transform is fine.
	s, err = Open(types.Config{DataDir: dataDir, Language: types.LanguageItalian}, italian)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	s.Close()

	// A different language must be refused.
	_, err = Open(types.Config{DataDir: dataDir, Language: types.LanguageEnglish}, english)
	if !errors.Is(err, ErrStemmerDrift) {
		t.Fatalf("expected ErrStemmerDrift, got %v", err)
	}
}

func TestStoreIngredient_Duplicate(t *testing.T) {
	s, stemmer := openTestStore(t)
	carota := mustIngredient(t, stemmer, "carota")

	if err := s.StoreIngredient(carota); err != nil {
		t.Fatalf("StoreIngredient failed: %v", err)
	}
	if err := s.StoreIngredient(carota); !errors.Is(err, types.ErrDuplicateIngredient) {
		t.Errorf("expected ErrDuplicateIngredient, got %v", err)
	}
}

func TestGetIngredients_RecomputesStems(t *testing.T) {
	s, stemmer := openTestStore(t)
	for _, name := range []string{"carota", "aglio"} {
		if err := s.StoreIngredient(mustIngredient(t, stemmer, name)); err != nil {
			t.Fatalf("StoreIngredient(%q) failed: %v", name, err)
		}
	}

	ingredients, err := s.GetIngredients()
	if err != nil {
		t.Fatalf("GetIngredients failed: %v", err)
	}
	if len(ingredients) != 2 {
		t.Fatalf("expected 2 ingredients, got %d", len(ingredients))
	}
	for _, ingr := range ingredients {
		if ingr.Stem == "" {
			t.Errorf("ingredient %q has empty stem", ingr.Name)
		}
	}
	// Sorted by name.
	if ingredients[0].Name != "aglio" || ingredients[1].Name != "carota" {
		t.Errorf("unexpected order: %v", ingredients)
	}
}

func TestStoreRecipe_RoundTrip(t *testing.T) {
	s, stemmer := openTestStore(t)
	carota := mustIngredient(t, stemmer, "carota")
	if err := s.StoreIngredient(carota); err != nil {
		t.Fatalf("StoreIngredient failed: %v", err)
	}

	id, err := s.StoreRecipe(types.Recipe{
		Title:            "Carote al forno",
		URL:              "http://example.com/carote",
		IngredientsKnown: []types.Ingredient{carota},
	})
	if err != nil {
		t.Fatalf("StoreRecipe failed: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero recipe id")
	}

	ingredients, err := s.GetRecipeIngredients(id)
	if err != nil {
		t.Fatalf("GetRecipeIngredients failed: %v", err)
	}
	if len(ingredients) != 1 || ingredients[0].Name != "carota" {
		t.Errorf("unexpected ingredients: %v", ingredients)
	}
}

func TestStoreRecipe_DuplicateTitleOrURL(t *testing.T) {
	s, _ := openTestStore(t)

	if _, err := s.StoreRecipe(types.Recipe{Title: "Hummus", URL: "http://x"}); err != nil {
		t.Fatalf("StoreRecipe failed: %v", err)
	}

	// Same title, new url.
	_, err := s.StoreRecipe(types.Recipe{
		Title:              "Hummus",
		URL:                "http://y",
		IngredientsUnknown: []string{"tahina"},
	})
	if !errors.Is(err, types.ErrDuplicateRecipe) {
		t.Fatalf("expected ErrDuplicateRecipe, got %v", err)
	}

	// Same url, new title.
	_, err = s.StoreRecipe(types.Recipe{Title: "Hummus bis", URL: "http://x"})
	if !errors.Is(err, types.ErrDuplicateRecipe) {
		t.Fatalf("expected ErrDuplicateRecipe, got %v", err)
	}

	// Case-insensitive collision.
	_, err = s.StoreRecipe(types.Recipe{Title: "HUMMUS", URL: "http://z"})
	if !errors.Is(err, types.ErrDuplicateRecipe) {
		t.Fatalf("expected case-insensitive ErrDuplicateRecipe, got %v", err)
	}

	// Atomicity: the rejected recipes must have written no unknown rows.
	n, err := s.NumUnknowns()
	if err != nil {
		t.Fatalf("NumUnknowns failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 unknown rows after rejections, got %d", n)
	}
}

func TestGetRecipeID(t *testing.T) {
	s, _ := openTestStore(t)

	id, err := s.StoreRecipe(types.Recipe{Title: "Hummus", URL: "http://x"})
	if err != nil {
		t.Fatalf("StoreRecipe failed: %v", err)
	}

	got, err := s.GetRecipeID("hummus", "HTTP://X")
	if err != nil {
		t.Fatalf("GetRecipeID failed: %v", err)
	}
	if got != id {
		t.Errorf("expected id %d, got %d", id, got)
	}

	if _, err := s.GetRecipeID("missing", "http://nope"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetRecipes_FilterAndUnknownExclusion(t *testing.T) {
	s, stemmer := openTestStore(t)

	carota := mustIngredient(t, stemmer, "carota")
	aglio := mustIngredient(t, stemmer, "aglio")
	for _, ingr := range []types.Ingredient{carota, aglio} {
		if err := s.StoreIngredient(ingr); err != nil {
			t.Fatalf("StoreIngredient failed: %v", err)
		}
	}

	if _, err := s.StoreRecipe(types.Recipe{
		Title:            "Solo carote",
		URL:              "http://a",
		IngredientsKnown: []types.Ingredient{carota},
	}); err != nil {
		t.Fatalf("StoreRecipe failed: %v", err)
	}
	if _, err := s.StoreRecipe(types.Recipe{
		Title:            "Carote e aglio",
		URL:              "http://b",
		IngredientsKnown: []types.Ingredient{carota, aglio},
	}); err != nil {
		t.Fatalf("StoreRecipe failed: %v", err)
	}
	if _, err := s.StoreRecipe(types.Recipe{
		Title:              "Con dubbi",
		URL:                "http://c",
		IngredientsKnown:   []types.Ingredient{carota, aglio},
		IngredientsUnknown: []string{"qualcosa di strano"},
	}); err != nil {
		t.Fatalf("StoreRecipe failed: %v", err)
	}

	// Empty filter: all clean recipes, never the unknown-bearing one.
	all, err := s.GetRecipes(nil)
	if err != nil {
		t.Fatalf("GetRecipes failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 clean recipes, got %d", len(all))
	}
	for _, r := range all {
		if r.Title == "Con dubbi" {
			t.Error("recipe with pending unknowns must not be searchable")
		}
	}

	// Superset filter.
	both, err := s.GetRecipes(types.NewIdentitySet(carota, aglio))
	if err != nil {
		t.Fatalf("GetRecipes failed: %v", err)
	}
	if len(both) != 1 || both[0].Title != "Carote e aglio" {
		t.Errorf("unexpected filtered result: %v", both)
	}
}

func TestDeleteRecipe_Cascades(t *testing.T) {
	s, stemmer := openTestStore(t)
	carota := mustIngredient(t, stemmer, "carota")
	if err := s.StoreIngredient(carota); err != nil {
		t.Fatalf("StoreIngredient failed: %v", err)
	}

	id, err := s.StoreRecipe(types.Recipe{
		Title:              "Da buttare",
		URL:                "http://del",
		IngredientsKnown:   []types.Ingredient{carota},
		IngredientsUnknown: []string{"boh"},
	})
	if err != nil {
		t.Fatalf("StoreRecipe failed: %v", err)
	}

	if err := s.DeleteRecipe(id); err != nil {
		t.Fatalf("DeleteRecipe failed: %v", err)
	}

	n, _ := s.NumUnknowns()
	if n != 0 {
		t.Errorf("expected unknowns cascade, got %d rows", n)
	}
	if _, err := s.GetRecipeID("Da buttare", "http://del"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if err := s.DeleteRecipe(id); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound for second delete, got %v", err)
	}
}
