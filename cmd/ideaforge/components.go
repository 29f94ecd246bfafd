package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ideaforge/internal/types"
)

var componentCategory string

// componentsCmd groups catalog operations.
var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "Browse and select hardware components",
}

var componentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog components",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		var components []types.Component
		if componentCategory != "" {
			components, err = a.catalog.ByCategory(cmd.Context(), componentCategory)
		} else {
			components, err = a.catalog.All(cmd.Context())
		}
		if err != nil {
			return err
		}
		if len(components) == 0 {
			fmt.Println(mutedStyle.Render("No components found."))
			return nil
		}

		selected := map[string]bool{}
		if sel, err := a.catalog.LoadSelection(); err == nil {
			for _, c := range sel {
				selected[c.ID] = true
			}
		}

		fmt.Println(titleStyle.Render("Component catalog"))
		for _, c := range components {
			marker := "  "
			if selected[c.ID] {
				marker = successStyle.Render("✓ ")
			}
			fmt.Printf("%s%s  %s\n", marker, headerStyle.Render(c.ID), c.Name)
			fmt.Printf("    %s\n", mutedStyle.Render(c.Category+" · "+c.Description))
		}
		return nil
	},
}

var componentsSelectCmd = &cobra.Command{
	Use:   "select <id>...",
	Short: "Select components for the next generation run",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		var selection []types.Component
		var missing []string
		for _, id := range args {
			c, err := a.catalog.ByID(cmd.Context(), id)
			if err != nil {
				missing = append(missing, id)
				continue
			}
			selection = append(selection, c)
		}
		if len(missing) > 0 {
			return fmt.Errorf("unknown components: %s", strings.Join(missing, ", "))
		}

		if err := a.catalog.SaveSelection(selection); err != nil {
			return err
		}
		if err := a.stats.AddComponentsSelected(len(selection)); err != nil {
			logger.Warn("failed to update selection stats")
		}
		fmt.Println(successStyle.Render(fmt.Sprintf("Selected %d component(s).", len(selection))))
		return nil
	},
}

var componentsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the current component selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.catalog.SaveSelection(nil); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("Selection cleared."))
		return nil
	},
}

var componentsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Push the built-in catalog to the remote store",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.catalog.SeedRemote(cmd.Context()); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("Catalog seeded."))
		return nil
	},
}

func init() {
	componentsListCmd.Flags().StringVar(&componentCategory, "category", "", "filter by category")
	componentsCmd.AddCommand(componentsListCmd)
	componentsCmd.AddCommand(componentsSelectCmd)
	componentsCmd.AddCommand(componentsClearCmd)
	componentsCmd.AddCommand(componentsSeedCmd)
}
