package sqlite

// Schema DDL. Title and url carry independent UNIQUE constraints, not a
// combined one, and compare case-insensitively (NOCASE), matching the
// duplicate checks and GetRecipeID. Ingredient stems are not persisted;
// they are recomputed from name on load, so the stemming transform must
// stay a pure function of name alone (see the meta table pin).
const (
	createRecipes = `CREATE TABLE IF NOT EXISTS recipes (
    recipe_id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT UNIQUE COLLATE NOCASE,
    url TEXT UNIQUE COLLATE NOCASE
);`

	createIngredients = `CREATE TABLE IF NOT EXISTS ingredients (
    name TEXT PRIMARY KEY
);`

	createRecipesIngredients = `CREATE TABLE IF NOT EXISTS recipes_ingredients (
    recipe_id INTEGER,
    ingr_name TEXT,
    PRIMARY KEY (recipe_id, ingr_name),
    FOREIGN KEY (recipe_id) REFERENCES recipes(recipe_id),
    FOREIGN KEY (ingr_name) REFERENCES ingredients(name)
);`

	createIngrUnknowns = `CREATE TABLE IF NOT EXISTS ingr_unknowns (
    recipe_id INTEGER,
    text_containing_ingr TEXT,
    FOREIGN KEY (recipe_id) REFERENCES recipes(recipe_id)
);`

	createMeta = `CREATE TABLE IF NOT EXISTS meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`
)

const idxUnknownsRecipe = `CREATE INDEX IF NOT EXISTS idx_unknowns_recipe ON ingr_unknowns(recipe_id);`

// schemaDDL lists all CREATE statements in dependency order.
var schemaDDL = []string{
	createRecipes,
	createIngredients,
	createRecipesIngredients,
	createIngrUnknowns,
	createMeta,
	idxUnknownsRecipe,
}

// Meta keys pinning the stemming transform the database was built with.
const (
	metaKeyStemAlgo = "stem_algo"
	metaKeyStemLang = "stem_lang"
)
