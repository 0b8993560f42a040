// Review commands: the unknown-resolution workflow.
package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ftambara/what-to-cook/pkg/types"
)

var (
	flagReviewRecipe int64
	flagReviewText   string
	flagReviewAll    bool
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review recipe lines that could not be resolved",
}

var reviewListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all pending unknowns grouped by recipe",
	Args:  cobra.NoArgs,
	RunE:  runReviewList,
}

var reviewNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the next pending unknown",
	Args:  cobra.NoArgs,
	RunE:  runReviewNext,
}

var reviewSolveCmd = &cobra.Command{
	Use:   "solve <ingredient>",
	Short: "Resolve one pending unknown to the given ingredient",
	Long: `Solve resolves the unknown selected by --recipe and --text to the
named ingredient, then offers other pending unknowns matching the same
ingredient for batch resolution.

Example:
  wtc review solve carota --recipe 3 --text "500g carote"`,
	Args: cobra.ExactArgs(1),
	RunE: runReviewSolve,
}

var reviewCandidatesCmd = &cobra.Command{
	Use:   "candidates <ingredient>",
	Short: "List pending unknowns that would resolve to the ingredient",
	Args:  cobra.ExactArgs(1),
	RunE:  runReviewCandidates,
}

var reviewDropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Discard one pending unknown without resolving it",
	Args:  cobra.NoArgs,
	RunE:  runReviewDrop,
}

func init() {
	reviewSolveCmd.Flags().Int64Var(&flagReviewRecipe, "recipe", 0, "owning recipe id (required)")
	reviewSolveCmd.Flags().StringVar(&flagReviewText, "text", "", "unknown text to resolve (required)")
	reviewSolveCmd.Flags().BoolVar(&flagReviewAll, "all", false, "also resolve matching unknowns of other recipes")
	_ = reviewSolveCmd.MarkFlagRequired("recipe")
	_ = reviewSolveCmd.MarkFlagRequired("text")

	reviewDropCmd.Flags().Int64Var(&flagReviewRecipe, "recipe", 0, "owning recipe id (required)")
	reviewDropCmd.Flags().StringVar(&flagReviewText, "text", "", "unknown text to discard (required)")
	_ = reviewDropCmd.MarkFlagRequired("recipe")
	_ = reviewDropCmd.MarkFlagRequired("text")

	reviewCmd.AddCommand(reviewListCmd)
	reviewCmd.AddCommand(reviewNextCmd)
	reviewCmd.AddCommand(reviewSolveCmd)
	reviewCmd.AddCommand(reviewCandidatesCmd)
	reviewCmd.AddCommand(reviewDropCmd)
}

func runReviewList(cmd *cobra.Command, args []string) error {
	groups, err := engine.GetPendingReview()
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		fmt.Println("Nothing to review.")
		return nil
	}
	printGroups(groups)
	return nil
}

func runReviewNext(cmd *cobra.Command, args []string) error {
	u, err := engine.NextPendingReview()
	if errors.Is(err, types.ErrNoUnknownsLeft) {
		fmt.Println("Nothing to review.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("Recipe %d: %s (%s)\n", u.RecipeID, u.Title, u.URL)
	color.Cyan("  %q", u.Text)
	fmt.Printf("Resolve with: wtc review solve <ingredient> --recipe %d --text %q\n",
		u.RecipeID, u.Text)
	return nil
}

func runReviewSolve(cmd *cobra.Command, args []string) error {
	ingr, err := engine.SolveUnknown(flagReviewRecipe, flagReviewText, args[0])
	if err != nil {
		return err
	}
	color.Green("Resolved %q to %q.", flagReviewText, ingr.Name)

	// Ripple: offer remaining unknowns matching the same ingredient.
	candidates, err := engine.SameSolutionCandidates(ingr)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return nil
	}

	fmt.Println("Other pending unknowns match the same ingredient:")
	printGroups(candidates)
	if !flagReviewAll && !confirm("Resolve all of the above the same way?") {
		return nil
	}
	for recipeID, group := range candidates {
		for _, text := range group.Texts {
			if _, err := engine.SolveUnknown(recipeID, text, ingr.Name); err != nil {
				return err
			}
			color.Green("Resolved %q to %q.", text, ingr.Name)
		}
	}
	return nil
}

func runReviewCandidates(cmd *cobra.Command, args []string) error {
	ingr, err := engine.MakeIngredient(args[0])
	if err != nil {
		return err
	}
	candidates, err := engine.SameSolutionCandidates(ingr)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		fmt.Println("No matching unknowns.")
		return nil
	}
	printGroups(candidates)
	return nil
}

func runReviewDrop(cmd *cobra.Command, args []string) error {
	if err := engine.DeleteUnknown(flagReviewRecipe, flagReviewText); err != nil {
		return err
	}
	fmt.Printf("Discarded %q from recipe %d.\n", flagReviewText, flagReviewRecipe)
	return nil
}

// printGroups writes review groups in stable recipe-id order.
func printGroups(groups map[int64]types.ReviewGroup) {
	ids := make([]int64, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		g := groups[id]
		fmt.Printf("Recipe %d: %s (%s)\n", id, g.Title, g.URL)
		for _, text := range g.Texts {
			color.Cyan("  %q", text)
		}
	}
}
