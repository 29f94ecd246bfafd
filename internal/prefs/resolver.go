// Package prefs resolves generation preferences and persists user defaults
// and usage statistics through explicit repository objects.
package prefs

import "ideaforge/internal/types"

// Hardcoded defaults applied when a field is absent from both the stored
// preferences and the session overrides.
const (
	DefaultTheme      = "General"
	DefaultSkillLevel = string(types.SkillBeginner)
	DefaultDuration   = "1-2 hours"
	DefaultTeamSize   = "Individual"
	DefaultCount      = 5
)

// Resolve merges configured defaults, stored user defaults, and in-session
// overrides into one generation configuration. Override fields win, then
// stored fields, then configured defaults, then the hardcoded fallbacks. It
// is a pure merge: absence is always resolvable, so there are no error
// conditions. Callers persist preference changes themselves; Resolve never
// writes anything.
func Resolve(configured, stored, overrides *types.GenerationPreferences) types.GenerationPreferences {
	resolved := types.GenerationPreferences{
		Theme:      DefaultTheme,
		SkillLevel: DefaultSkillLevel,
		Count:      DefaultCount,
		Duration:   DefaultDuration,
		TeamSize:   DefaultTeamSize,
	}
	apply(&resolved, configured)
	apply(&resolved, stored)
	apply(&resolved, overrides)
	return resolved
}

func apply(dst *types.GenerationPreferences, src *types.GenerationPreferences) {
	if src == nil {
		return
	}
	if src.Theme != "" {
		dst.Theme = src.Theme
	}
	if src.SkillLevel != "" {
		dst.SkillLevel = src.SkillLevel
	}
	if src.Count > 0 {
		dst.Count = src.Count
	}
	if src.Duration != "" {
		dst.Duration = src.Duration
	}
	if src.TeamSize != "" {
		dst.TeamSize = src.TeamSize
	}
}
