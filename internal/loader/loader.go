// Package loader implements the resolution engine: it ingests recipe
// records, resolves ingredient lines against the store's current
// catalog, and manages the backlog of unresolved mentions. It is the
// only writer to the store.
package loader

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ftambara/what-to-cook/internal/extract"
	"github.com/ftambara/what-to-cook/internal/source"
	"github.com/ftambara/what-to-cook/internal/sqlite"
	"github.com/ftambara/what-to-cook/internal/stem"
	"github.com/ftambara/what-to-cook/pkg/types"
)

// RejectedName reports a catalog candidate that failed character
// validation, with the reason it was refused.
type RejectedName struct {
	Name   string
	Reason string
}

// Loader orchestrates ingestion and the unknown-review workflow.
type Loader struct {
	store     *sqlite.Store
	extractor *extract.Extractor
	stemmer   *stem.Stemmer
	logger    *zap.Logger
	log       IngestLog

	// OnRecord, when set, is called after each ingested record with its
	// position, the total record count, and the outcome. Used by the CLI
	// to drive progress display.
	OnRecord func(index, total int, outcome Outcome)
}

// New returns a Loader writing through the given store.
func New(store *sqlite.Store, stemmer *stem.Stemmer, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		store:     store,
		extractor: extract.New(stemmer),
		stemmer:   stemmer,
		logger:    logger,
	}
}

// Log returns the cumulative ingestion counters for this loader.
func (l *Loader) Log() Counts {
	return l.log.Counts()
}

// LoadRecipes ingests every record from src. Each record lands on one of
// four terminal outcomes; malformed records and duplicate rejections
// never abort the batch. Returns the counters for this batch only.
// Re-ingesting the same batch is safe: already-present recipes are
// rejected as duplicates and produce no writes.
func (l *Loader) LoadRecipes(src source.RecipeSource) (Counts, error) {
	records, err := src.Records()
	if err != nil {
		return Counts{}, fmt.Errorf("reading recipe source: %w", err)
	}

	runLog := l.logger.With(zap.String("run_id", uuid.NewString()))
	runLog.Info("loading recipes", zap.Int("records", len(records)))

	known, err := l.knownSet()
	if err != nil {
		return Counts{}, err
	}

	var batch IngestLog
	for i, fields := range records {
		outcome, err := l.ingestRecord(fields, known, runLog)
		if err != nil {
			return batch.Counts(), err
		}
		batch.Record(outcome)
		l.log.Record(outcome)
		if l.OnRecord != nil {
			l.OnRecord(i, len(records), outcome)
		}
	}

	counts := batch.Counts()
	runLog.Info("batch complete",
		zap.Int("stored_clean", counts.Successes),
		zap.Int("stored_with_unknowns", counts.WithUnknowns),
		zap.Int("errors", counts.Errors),
	)
	return counts, nil
}

// ingestRecord resolves one record's ingredient lines and stores the
// recipe. Extraction failures become backlog entries, never errors.
func (l *Loader) ingestRecord(fields []string, known types.IdentitySet, runLog *zap.Logger) (Outcome, error) {
	if len(fields) < 2 {
		runLog.Warn("malformed record", zap.Strings("fields", fields))
		return OutcomeError, nil
	}

	recipe := types.Recipe{Title: fields[0], URL: fields[1]}
	for _, line := range fields[2:] {
		ingr, err := l.extractor.Extract(line, known)
		switch {
		case err == nil:
			recipe.IngredientsKnown = append(recipe.IngredientsKnown, ingr)
		case errors.Is(err, extract.ErrNoIngredientFound):
			recipe.IngredientsUnknown = append(recipe.IngredientsUnknown, line)
		default:
			return 0, fmt.Errorf("extracting from %q: %w", line, err)
		}
	}

	_, err := l.store.StoreRecipe(recipe)
	switch {
	case errors.Is(err, types.ErrDuplicateRecipe):
		runLog.Info("recipe ignored, title or url already present",
			zap.String("title", recipe.Title))
		return OutcomeRejectedDuplicate, nil
	case err != nil:
		return 0, fmt.Errorf("storing recipe %q: %w", recipe.Title, err)
	}

	if recipe.HasUnknowns() {
		runLog.Info("recipe stored with unknowns",
			zap.String("title", recipe.Title),
			zap.Strings("unknowns", recipe.IngredientsUnknown))
		return OutcomeStoredWithUnknowns, nil
	}
	runLog.Debug("recipe stored", zap.String("title", recipe.Title))
	return OutcomeStoredClean, nil
}

// FilterNewIngredients reads the catalog from src and partitions it into
// candidates not yet present (by identity, not raw string) and entries
// failing character validation. It does not write; callers may gate the
// subsequent StoreFiltered behind a confirmation.
func (l *Loader) FilterNewIngredients(src source.CatalogSource) ([]types.Ingredient, []RejectedName, error) {
	names, err := src.Names()
	if err != nil {
		return nil, nil, fmt.Errorf("reading catalog source: %w", err)
	}

	known, err := l.knownSet()
	if err != nil {
		return nil, nil, err
	}

	var valid []types.Ingredient
	var rejected []RejectedName
	for _, raw := range names {
		ingr, err := l.stemmer.Ingredient(raw)
		if errors.Is(err, types.ErrEmptyName) {
			rejected = append(rejected, RejectedName{Name: raw, Reason: "empty name"})
			continue
		}
		if err != nil {
			return nil, nil, err
		}

		if bad, ok := firstInvalidChar(ingr.Name); ok {
			rejected = append(rejected, RejectedName{
				Name:   ingr.Name,
				Reason: fmt.Sprintf("invalid character %q", bad),
			})
			continue
		}

		// Skip entries already present, including morphological variants
		// of a stored ingredient and in-batch repeats.
		if !known.Add(ingr) {
			continue
		}
		valid = append(valid, ingr)
	}
	return valid, rejected, nil
}

// StoreFiltered stores previously filtered ingredients, skipping any
// that appeared in the meantime.
func (l *Loader) StoreFiltered(ingredients []types.Ingredient) error {
	for _, ingr := range ingredients {
		err := l.store.StoreIngredient(ingr)
		if errors.Is(err, types.ErrDuplicateIngredient) {
			l.logger.Debug("ingredient already present", zap.String("name", ingr.Name))
			continue
		}
		if err != nil {
			return err
		}
		l.logger.Debug("ingredient added", zap.String("name", ingr.Name))
	}
	return nil
}

// StoreIngredients runs the full filter-then-store pipeline. Idempotent:
// a second run with an unchanged catalog adds nothing. Returns the
// ingredients added and the entries rejected by validation.
func (l *Loader) StoreIngredients(src source.CatalogSource) ([]types.Ingredient, []RejectedName, error) {
	valid, rejected, err := l.FilterNewIngredients(src)
	if err != nil {
		return nil, nil, err
	}
	if err := l.StoreFiltered(valid); err != nil {
		return nil, rejected, err
	}
	return valid, rejected, nil
}

// MakeIngredient builds the canonical ingredient for a raw name using
// the configured identity transform.
func (l *Loader) MakeIngredient(raw string) (types.Ingredient, error) {
	return l.stemmer.Ingredient(raw)
}

// DeleteRecipe removes a stored recipe with its associations and
// pending unknowns.
func (l *Loader) DeleteRecipe(recipeID int64) error {
	return l.store.DeleteRecipe(recipeID)
}

// knownSet loads the store's current ingredient identities.
func (l *Loader) knownSet() (types.IdentitySet, error) {
	ingredients, err := l.store.GetIngredients()
	if err != nil {
		return nil, fmt.Errorf("loading known ingredients: %w", err)
	}
	return types.NewIdentitySet(ingredients...), nil
}

// firstInvalidChar returns the first character of name that is neither a
// letter nor a space.
func firstInvalidChar(name string) (rune, bool) {
	checks := extract.ValidateCharacters(name)
	for i, r := range []rune(name) {
		if !checks[i] {
			return r, true
		}
	}
	return 0, false
}
