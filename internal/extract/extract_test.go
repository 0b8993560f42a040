package extract

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ftambara/what-to-cook/internal/stem"
	"github.com/ftambara/what-to-cook/pkg/types"
)

func newExtractor(t *testing.T, language string) (*Extractor, *stem.Stemmer) {
	t.Helper()
	stemmer, err := stem.New(language)
	if err != nil {
		t.Fatalf("stem.New failed: %v", err)
	}
	return New(stemmer), stemmer
}

func knownSet(t *testing.T, stemmer *stem.Stemmer, names ...string) types.IdentitySet {
	t.Helper()
	set := types.IdentitySet{}
	for _, name := range names {
		ingr, err := stemmer.Ingredient(name)
		if err != nil {
			t.Fatalf("Ingredient(%q) failed: %v", name, err)
		}
		set.Add(ingr)
	}
	return set
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"100g of spring onion", []string{"g", "of", "spring", "onion"}},
		{"Aglio, Olio e Peperoncino!", []string{"aglio", "olio", "e", "peperoncino"}},
		{"   ", nil},
		{"3 1/2", nil},
		{"sale", []string{"sale"}},
	}
	for _, tt := range tests {
		if got := Tokenize(tt.line); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestExtract_LongestMatchWins(t *testing.T) {
	ext, stemmer := newExtractor(t, types.LanguageEnglish)
	known := knownSet(t, stemmer, "onion", "spring onion")

	got, err := ext.Extract("100g of spring onion", known)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got.Name != "spring onion" {
		t.Errorf("expected %q, got %q", "spring onion", got.Name)
	}
}

func TestExtract_SingleWord(t *testing.T) {
	ext, stemmer := newExtractor(t, types.LanguageItalian)
	known := knownSet(t, stemmer, "carota", "aglio")

	got, err := ext.Extract("500g carote", known)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got.Name != "carota" {
		t.Errorf("expected canonical %q, got %q", "carota", got.Name)
	}
}

func TestExtract_LeftmostWinsWithinLength(t *testing.T) {
	ext, stemmer := newExtractor(t, types.LanguageEnglish)
	known := knownSet(t, stemmer, "onion", "garlic")

	got, err := ext.Extract("onion and garlic", known)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got.Name != "onion" {
		t.Errorf("expected leftmost match %q, got %q", "onion", got.Name)
	}
}

func TestExtract_NoMatch(t *testing.T) {
	ext, stemmer := newExtractor(t, types.LanguageItalian)
	known := knownSet(t, stemmer, "carota")

	_, err := ext.Extract("200ml latte", known)
	if !errors.Is(err, ErrNoIngredientFound) {
		t.Fatalf("expected ErrNoIngredientFound, got %v", err)
	}
}

func TestExtract_EmptyLine(t *testing.T) {
	ext, stemmer := newExtractor(t, types.LanguageItalian)
	known := knownSet(t, stemmer, "carota")

	_, err := ext.Extract("", known)
	if !errors.Is(err, ErrNoIngredientFound) {
		t.Fatalf("expected ErrNoIngredientFound, got %v", err)
	}
}

func TestExtract_MatchesMorphologicalVariant(t *testing.T) {
	ext, stemmer := newExtractor(t, types.LanguageItalian)
	known := knownSet(t, stemmer, "cipolla")

	got, err := ext.Extract("due cipolle rosse", known)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	// The canonical stored form is returned, not the inflected mention.
	if got.Name != "cipolla" {
		t.Errorf("expected %q, got %q", "cipolla", got.Name)
	}
}

func TestValidateCharacters(t *testing.T) {
	got := ValidateCharacters("ab 1c")
	want := []bool{true, true, true, false, true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ValidateCharacters = %v, want %v", got, want)
	}

	for _, ok := range ValidateCharacters("olio di oliva") {
		if !ok {
			t.Error("letters and spaces should all validate")
		}
	}
}
