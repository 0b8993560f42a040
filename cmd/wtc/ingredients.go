// Ingredient catalog commands: load candidates from a source, list the
// stored catalog.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var flagAssumeYes bool

var ingredientsCmd = &cobra.Command{
	Use:   "ingredients",
	Short: "Manage the ingredient catalog",
}

var ingredientsLoadCmd = &cobra.Command{
	Use:   "load <file-or-url>",
	Short: "Load new ingredients from a catalog source",
	Long: `Load reads candidate ingredient names (one per line) from a file or
URL, filters out names already present and names with invalid characters,
and stores the remainder after confirmation.

Example:
  wtc ingredients load ingredients.txt
  wtc ingredients load https://example.com/ingredients.txt --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runIngredientsLoad,
}

var ingredientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored ingredients",
	Args:  cobra.NoArgs,
	RunE:  runIngredientsList,
}

func init() {
	ingredientsLoadCmd.Flags().BoolVar(&flagAssumeYes, "yes", false, "store without asking for confirmation")
	ingredientsCmd.AddCommand(ingredientsLoadCmd)
	ingredientsCmd.AddCommand(ingredientsListCmd)
}

func runIngredientsLoad(cmd *cobra.Command, args []string) error {
	valid, rejected, err := engine.FilterNewIngredients(catalogSourceFor(args[0]))
	if err != nil {
		return err
	}

	for _, r := range rejected {
		color.Yellow("skipped %q: %s", r.Name, r.Reason)
	}
	if len(valid) == 0 {
		fmt.Println("No new ingredients to add.")
		return nil
	}

	fmt.Println("Ingredients to add:")
	for _, ingr := range valid {
		fmt.Printf("  - %s\n", ingr.Name)
	}
	if !flagAssumeYes && !confirm("Add all of the above to the database?") {
		fmt.Println("Operation cancelled.")
		return nil
	}

	if err := engine.StoreFiltered(valid); err != nil {
		return err
	}
	plural := "s"
	if len(valid) == 1 {
		plural = ""
	}
	color.Green("%d ingredient%s added.", len(valid), plural)
	return nil
}

func runIngredientsList(cmd *cobra.Command, args []string) error {
	ingredients, err := searcher.GetIngredients()
	if err != nil {
		return err
	}
	for _, ingr := range ingredients {
		fmt.Println(ingr.Display())
	}
	return nil
}
