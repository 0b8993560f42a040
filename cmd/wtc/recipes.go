// Recipe commands: batch ingestion, listing, inspection, deletion.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ftambara/what-to-cook/internal/loader"
)

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Manage stored recipes",
}

var recipesLoadCmd = &cobra.Command{
	Use:   "load <file-or-url>",
	Short: "Ingest recipes from a CSV source",
	Long: `Load ingests recipe records ("title,url,line,line,...") from a file
or URL. Each ingredient line is resolved against the stored catalog;
lines that cannot be resolved become review backlog entries.

Example:
  wtc recipes load recipes-to-load.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runRecipesLoad,
}

var recipesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List fully resolved recipes",
	Args:  cobra.NoArgs,
	RunE:  runRecipesList,
}

var recipesShowCmd = &cobra.Command{
	Use:   "show <recipe-id>",
	Short: "Show one recipe with its ingredients",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipesShow,
}

var recipesDeleteCmd = &cobra.Command{
	Use:   "delete <recipe-id>",
	Short: "Delete a recipe with its associations and pending unknowns",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipesDelete,
}

func init() {
	recipesCmd.AddCommand(recipesLoadCmd)
	recipesCmd.AddCommand(recipesListCmd)
	recipesCmd.AddCommand(recipesShowCmd)
	recipesCmd.AddCommand(recipesDeleteCmd)
}

func runRecipesLoad(cmd *cobra.Command, args []string) error {
	var bar *progressbar.ProgressBar
	engine.OnRecord = func(index, total int, outcome loader.Outcome) {
		if bar == nil {
			bar = progressbar.Default(int64(total), "loading recipes")
		}
		_ = bar.Add(1)
	}

	counts, err := engine.LoadRecipes(recipeSourceFor(args[0]))
	if err != nil {
		return err
	}

	color.Green("stored clean:         %d", counts.Successes)
	color.Yellow("stored with unknowns: %d", counts.WithUnknowns)
	color.Red("malformed records:    %d", counts.Errors)

	if counts.WithUnknowns > 0 {
		pending, err := engine.NumPendingReview()
		if err != nil {
			return err
		}
		fmt.Printf("%d unknown(s) pending review; run \"wtc review next\".\n", pending)
	}
	return nil
}

func runRecipesList(cmd *cobra.Command, args []string) error {
	recipes, err := searcher.GetRecipes(nil)
	if err != nil {
		return err
	}
	for _, r := range recipes {
		fmt.Printf("%d\t%s\t%s\n", r.ID, r.Title, r.URL)
	}
	return nil
}

func runRecipesShow(cmd *cobra.Command, args []string) error {
	id, err := parseRecipeID(args[0])
	if err != nil {
		return err
	}
	ingredients, err := searcher.GetRecipeIngredients(id)
	if err != nil {
		return err
	}
	for _, ingr := range ingredients {
		fmt.Printf("  - %s\n", ingr.Display())
	}
	return nil
}

func runRecipesDelete(cmd *cobra.Command, args []string) error {
	id, err := parseRecipeID(args[0])
	if err != nil {
		return err
	}
	if err := engine.DeleteRecipe(id); err != nil {
		return err
	}
	fmt.Printf("Deleted recipe %d.\n", id)
	return nil
}

func parseRecipeID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid recipe id %q", arg)
	}
	return id, nil
}
