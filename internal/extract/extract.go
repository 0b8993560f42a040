// Package extract finds the longest known-ingredient phrase inside a
// free-text recipe line. The known set is an explicit parameter on every
// call; the extractor itself holds no catalog state.
package extract

import (
	"errors"
	"strings"
	"unicode"

	"github.com/ftambara/what-to-cook/internal/stem"
	"github.com/ftambara/what-to-cook/pkg/types"
)

// ErrNoIngredientFound is returned when no candidate phrase of the line
// matches a known identity. Expected and recoverable: the caller turns
// it into a backlog entry.
var ErrNoIngredientFound = errors.New("line did not contain any known ingredient")

// Extractor matches line phrases against ingredient identities using
// the configured stemming transform.
type Extractor struct {
	stemmer *stem.Stemmer
}

// New returns an Extractor backed by the given stemmer.
func New(stemmer *stem.Stemmer) *Extractor {
	return &Extractor{stemmer: stemmer}
}

// Extract returns the known ingredient matched by the longest contiguous
// word-phrase of line. Longer phrases strictly win over any shorter
// sub-phrase, and within equal length the leftmost phrase wins, so
// "spring onion" is never shadowed by "onion" when both are known.
// Returns ErrNoIngredientFound if no candidate phrase matches.
func (e *Extractor) Extract(line string, known types.IdentitySet) (types.Ingredient, error) {
	tokens := Tokenize(line)

	for width := len(tokens); width >= 1; width-- {
		for start := 0; start+width <= len(tokens); start++ {
			phrase := strings.Join(tokens[start:start+width], " ")
			if ingr, ok := known[e.stemmer.Word(phrase)]; ok {
				return ingr, nil
			}
		}
	}
	return types.Ingredient{}, ErrNoIngredientFound
}

// Tokenize splits line into lower-cased words. Only letter sequences
// count as words; digits and punctuation are boundaries.
func Tokenize(line string) []string {
	var tokens []string
	var current strings.Builder

	for _, r := range line {
		if unicode.IsLetter(r) {
			current.WriteRune(unicode.ToLower(r))
			continue
		}
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}

// ValidateCharacters reports, per character of line, whether it is an
// alphabetic letter or a space. Callers use it to reject catalog entries
// carrying digits or punctuation before they become known identities.
func ValidateCharacters(line string) []bool {
	checks := make([]bool, 0, len(line))
	for _, r := range line {
		checks = append(checks, unicode.IsLetter(r) || r == ' ')
	}
	return checks
}
