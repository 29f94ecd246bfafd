package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ideaforge/internal/llm"
)

// modelsCmd lists the selectable model catalog.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available language models",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(titleStyle.Render("Available models"))
		for _, m := range llm.Models() {
			marker := "  "
			if m.ID == llm.DefaultModelID {
				marker = successStyle.Render("* ")
			}
			fmt.Printf("%s%s\n", marker, headerStyle.Render(m.ID))
			fmt.Printf("    %s\n", m.Name)
			fmt.Printf("    %s\n", mutedStyle.Render(m.Description+" ("+m.Provider+")"))
		}
		fmt.Println(mutedStyle.Render("\n* default model"))
		return nil
	},
}

// pingCmd checks the configured invocation backend.
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Test the connection to the configured model backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(true)
		if err != nil {
			return err
		}
		defer a.close()

		ctx, cancel := context.WithTimeout(cmd.Context(), appCfg.LLMTimeout())
		defer cancel()

		if err := a.generator.TestConnection(ctx); err != nil {
			return fmt.Errorf("backend unreachable: %w", err)
		}
		fmt.Println(successStyle.Render("Backend is reachable."))
		return nil
	},
}
