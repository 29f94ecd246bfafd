package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ideaforge/internal/llm"
	"ideaforge/internal/normalize"
	"ideaforge/internal/types"
)

var (
	genComponents []string
	genTheme      string
	genSkill      string
	genCount      int
	genModel      string
	genSave       bool
)

// generateCmd runs one idea-generation pass.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate project ideas from the selected components",
	Long: `Generate prompts the configured model with your component selection and
preferences, then prints the normalized project ideas.

Components come from the cached selection ("ideaforge components select")
unless --components is given. Use --save to store the results in your idea
library.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(true)
		if err != nil {
			return err
		}
		defer a.close()

		components, err := resolveComponents(cmd.Context(), a)
		if err != nil {
			return err
		}

		req := types.GenerationRequest{
			Components: components,
			Preferences: types.GenerationPreferences{
				Theme:      genTheme,
				SkillLevel: genSkill,
				Count:      genCount,
			},
			ModelID: genModel,
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), appCfg.LLMTimeout())
		defer cancel()

		res, err := a.generator.Generate(ctx, req)
		if err != nil {
			var malformed *normalize.MalformedResponseError
			if errors.As(err, &malformed) {
				fmt.Println(warnStyle.Render("The model reply could not be parsed. Raw response:"))
				fmt.Println(mutedStyle.Render(malformed.Raw))
			}
			return err
		}

		fmt.Println(titleStyle.Render(fmt.Sprintf("Generated %d idea(s) with %s", len(res.Ideas), res.Model)))
		for i, idea := range res.Ideas {
			printIdea(i+1, idea)
		}

		if genSave {
			degraded := false
			for _, idea := range res.Ideas {
				saved, err := a.library.Save(ctx, idea)
				if err != nil {
					return fmt.Errorf("failed to save %q: %w", idea.Title, err)
				}
				degraded = degraded || saved.Degraded
			}
			if degraded {
				fmt.Println(warnStyle.Render("Saved locally; remote store was unreachable."))
			} else {
				fmt.Println(successStyle.Render("Saved to your idea library."))
			}
		}
		return nil
	},
}

// resolveComponents picks explicit --components ids when given, otherwise the
// cached selection.
func resolveComponents(ctx context.Context, a *app) ([]types.Component, error) {
	if len(genComponents) > 0 {
		var components []types.Component
		for _, id := range genComponents {
			c, err := a.catalog.ByID(ctx, strings.TrimSpace(id))
			if err != nil {
				return nil, err
			}
			components = append(components, c)
		}
		return components, nil
	}

	components, err := a.catalog.LoadSelection()
	if err != nil {
		return nil, err
	}
	if len(components) == 0 {
		return nil, fmt.Errorf("%w; run \"ideaforge components select\" first or pass --components", types.ErrNoComponents)
	}
	return components, nil
}

func printIdea(n int, idea types.Idea) {
	fmt.Printf("\n%s %s\n", headerStyle.Render(fmt.Sprintf("%d.", n)), titleStyle.Render(idea.Title))
	fmt.Printf("   %s\n", idea.Description)
	if idea.ProblemStatement != "" {
		fmt.Printf("   %s %s\n", headerStyle.Render("Problem:"), idea.ProblemStatement)
	}
	if idea.WorkingPrinciple != "" {
		fmt.Printf("   %s %s\n", headerStyle.Render("How it works:"), idea.WorkingPrinciple)
	}
	fmt.Printf("   %s\n", mutedStyle.Render(fmt.Sprintf("%s · %s · %s", idea.Difficulty, idea.EstimatedCost, strings.Join(idea.Tags, ", "))))
	if len(idea.Components) > 0 {
		fmt.Printf("   %s %s\n", mutedStyle.Render("Components:"), mutedStyle.Render(strings.Join(idea.Components, ", ")))
	}
}

func init() {
	generateCmd.Flags().StringSliceVar(&genComponents, "components", nil, "component ids, overriding the cached selection")
	generateCmd.Flags().StringVar(&genTheme, "theme", "", "project theme, e.g. Agriculture")
	generateCmd.Flags().StringVar(&genSkill, "skill", "", "skill level: Beginner, Intermediate, Advanced")
	generateCmd.Flags().IntVar(&genCount, "count", 0, "number of ideas to request")
	generateCmd.Flags().StringVar(&genModel, "model", "", "model id (see \"ideaforge models\"), default "+llm.DefaultModelID)
	generateCmd.Flags().BoolVar(&genSave, "save", false, "save generated ideas to the library")
}
