package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ideaforge/internal/prefs"
	"ideaforge/internal/types"
)

var (
	prefTheme    string
	prefSkill    string
	prefCount    int
	prefDuration string
	prefTeamSize string
)

// prefsCmd groups stored-preference operations.
var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or update stored generation preferences",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show stored preferences and effective defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		stored, err := a.prefs.Load()
		if err != nil {
			return err
		}
		effective := prefs.Resolve(a.cfg.GenerationDefaults(), stored, nil)

		fmt.Println(titleStyle.Render("Generation preferences"))
		printPref("Theme", effective.Theme, stored == nil || stored.Theme == "")
		printPref("Skill level", effective.SkillLevel, stored == nil || stored.SkillLevel == "")
		printPref("Count", fmt.Sprintf("%d", effective.Count), stored == nil || stored.Count == 0)
		printPref("Duration", effective.Duration, stored == nil || stored.Duration == "")
		printPref("Team size", effective.TeamSize, stored == nil || stored.TeamSize == "")
		return nil
	},
}

func printPref(name, value string, isDefault bool) {
	suffix := ""
	if isDefault {
		suffix = mutedStyle.Render(" (default)")
	}
	fmt.Printf("  %s %s%s\n", headerStyle.Render(name+":"), value, suffix)
}

var prefsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update stored preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		stored, err := a.prefs.Load()
		if err != nil {
			return err
		}
		if stored == nil {
			stored = &types.GenerationPreferences{}
		}

		if cmd.Flags().Changed("theme") {
			stored.Theme = prefTheme
		}
		if cmd.Flags().Changed("skill") {
			stored.SkillLevel = prefSkill
		}
		if cmd.Flags().Changed("count") {
			stored.Count = prefCount
		}
		if cmd.Flags().Changed("duration") {
			stored.Duration = prefDuration
		}
		if cmd.Flags().Changed("team-size") {
			stored.TeamSize = prefTeamSize
		}

		if err := a.prefs.Save(*stored); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("Preferences saved."))
		return nil
	},
}

// statsCmd prints cumulative usage counters.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show usage statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		stats, err := a.stats.Load()
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render("Usage"))
		fmt.Printf("  %s %d\n", headerStyle.Render("Ideas generated:"), stats.IdeasGenerated)
		fmt.Printf("  %s %d\n", headerStyle.Render("Components selected:"), stats.ComponentsSelected)
		fmt.Printf("  %s %d\n", headerStyle.Render("Projects completed:"), stats.ProjectsCompleted)
		return nil
	},
}

func init() {
	prefsSetCmd.Flags().StringVar(&prefTheme, "theme", "", "default project theme")
	prefsSetCmd.Flags().StringVar(&prefSkill, "skill", "", "default skill level")
	prefsSetCmd.Flags().IntVar(&prefCount, "count", 0, "default idea count")
	prefsSetCmd.Flags().StringVar(&prefDuration, "duration", "", "preferred build duration")
	prefsSetCmd.Flags().StringVar(&prefTeamSize, "team-size", "", "team size")
	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsSetCmd)
}
