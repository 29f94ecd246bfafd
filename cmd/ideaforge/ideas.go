package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ideasFavoritesOnly bool

// ideasCmd groups saved-idea operations.
var ideasCmd = &cobra.Command{
	Use:   "ideas",
	Short: "Manage your saved idea library",
}

var ideasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved ideas",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		ideas, degraded, err := a.library.List(cmd.Context())
		if err != nil {
			return err
		}
		if degraded {
			fmt.Println(warnStyle.Render("Remote store unreachable; showing local ideas only."))
		}
		if len(ideas) == 0 {
			fmt.Println(mutedStyle.Render("No saved ideas yet. Try \"ideaforge generate --save\"."))
			return nil
		}

		fmt.Println(titleStyle.Render("Saved ideas"))
		for _, idea := range ideas {
			if ideasFavoritesOnly && !idea.IsFavorite {
				continue
			}
			marker := "  "
			if idea.IsFavorite {
				marker = favoriteStyle.Render("★ ")
			}
			fmt.Printf("%s%s  %s\n", marker, headerStyle.Render(idea.ID), idea.Title)
			fmt.Printf("    %s\n", mutedStyle.Render(idea.Difficulty+" · saved "+idea.SavedAt))
		}
		return nil
	},
}

var ideasShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved idea in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		idea, err := a.library.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printIdea(1, idea)
		if len(idea.LearningOutcomes) > 0 {
			fmt.Printf("   %s\n", headerStyle.Render("You will learn:"))
			for _, o := range idea.LearningOutcomes {
				fmt.Printf("     - %s\n", o)
			}
		}
		if len(idea.ScalabilityOptions) > 0 {
			fmt.Printf("   %s\n", headerStyle.Render("Ways to extend it:"))
			for _, o := range idea.ScalabilityOptions {
				fmt.Printf("     - %s\n", o)
			}
		}
		return nil
	},
}

var ideasFavoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle an idea's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		idea, err := a.library.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		degraded, err := a.library.ToggleFavorite(cmd.Context(), idea.ID, !idea.IsFavorite)
		if err != nil {
			return err
		}
		if degraded {
			fmt.Println(warnStyle.Render("Updated locally; remote store was unreachable."))
		}
		if idea.IsFavorite {
			fmt.Println(successStyle.Render("Removed from favorites."))
		} else {
			fmt.Println(favoriteStyle.Render("Added to favorites."))
		}
		return nil
	},
}

var ideasDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved idea",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		degraded, err := a.library.Delete(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if degraded {
			fmt.Println(warnStyle.Render("Deleted locally; remote store was unreachable."))
		} else {
			fmt.Println(successStyle.Render("Idea deleted."))
		}
		return nil
	},
}

func init() {
	ideasListCmd.Flags().BoolVar(&ideasFavoritesOnly, "favorites", false, "show favorites only")
	ideasCmd.AddCommand(ideasListCmd)
	ideasCmd.AddCommand(ideasShowCmd)
	ideasCmd.AddCommand(ideasFavoriteCmd)
	ideasCmd.AddCommand(ideasDeleteCmd)
}
