// Package prompt constructs the instruction set and output-schema description
// sent to the model for idea generation. Construction is pure text assembly:
// no randomness, no network access, no error paths.
package prompt

import (
	"fmt"
	"strings"

	"ideaforge/internal/types"
)

// SystemPrompt frames the model as a STEM project mentor and pins the output
// contract to JSON-only responses.
const SystemPrompt = `You are an expert electronics engineer and innovative STEM educator with deep reasoning capabilities. You specialize in creating practical, educational, and exciting project ideas that solve real-world problems.

Your expertise includes:
- Electronics and embedded systems design
- IoT and smart device development
- Robotics and automation systems
- Sustainable technology solutions
- Educational project design and pedagogy
- Problem-solving through systematic reasoning

Always respond with valid JSON only. No additional text, explanations, or reasoning outside the JSON structure.`

// Spec is the constructed prompt pair handed to the invocation adapter.
// User embeds the component list, every preference value, and an explicit
// enumeration of the required output fields with their shapes, so the
// normalizer's field set is self-documenting from this contract.
type Spec struct {
	System string
	User   string
}

// Build constructs the prompt for the given selection and resolved
// preferences. Callers must ensure components is non-empty; an empty
// selection is a precondition violation checked before generation, not here.
func Build(components []types.Component, p types.GenerationPreferences) Spec {
	names := make([]string, len(components))
	for i, c := range components {
		names[i] = c.Name
	}
	componentNames := strings.Join(names, ", ")

	var b strings.Builder
	fmt.Fprintf(&b, "Using your reasoning capabilities, analyze these components and create %d innovative electronics project ideas: %s\n\n", p.Count, componentNames)

	b.WriteString("Project Context & Requirements:\n")
	fmt.Fprintf(&b, "- Theme Focus: %s\n", p.Theme)
	fmt.Fprintf(&b, "- Target Skill Level: %s\n", p.SkillLevel)
	fmt.Fprintf(&b, "- Project Duration: %s\n", p.Duration)
	fmt.Fprintf(&b, "- Team Configuration: %s\n", p.TeamSize)
	b.WriteString("- Priority: Educational value + practical real-world application\n\n")

	b.WriteString("Think through each project systematically:\n")
	b.WriteString("1. What real problem can these components solve?\n")
	b.WriteString("2. How do the components work together technically?\n")
	b.WriteString("3. What makes this project innovative and educational?\n")
	fmt.Fprintf(&b, "4. Is it appropriate for the %s skill level?\n", p.SkillLevel)
	b.WriteString("5. What can be learned from building this?\n\n")

	b.WriteString("Required JSON Response Format:\n")
	fmt.Fprintf(&b, `{
  "projects": [
    {
      "title": "Creative and descriptive project name",
      "description": "Clear 2-3 sentence overview of what the project does",
      "problem_statement": "Specific real-world problem this project addresses",
      "working_principle": "Technical explanation of how the system operates",
      "components": ["Array", "of", "required", "components", "from", "available", "list"],
      "difficulty": "%s",
      "estimated_cost": "₹realistic cost range based on components",
      "innovation_elements": ["unique", "creative", "features"],
      "scalability_options": ["ways", "to", "expand", "the", "project"],
      "learning_outcomes": ["specific", "skills", "and", "concepts", "learned"],
      "tags": ["relevant", "technical", "keywords"]
    }
  ]
}
`, p.SkillLevel)

	b.WriteString("\nQuality Requirements for Each Project:\n")
	b.WriteString("- Technically feasible with given components\n")
	fmt.Fprintf(&b, "- Educationally valuable for %s makers\n", p.SkillLevel)
	b.WriteString("- Solves a genuine real-world problem\n")
	b.WriteString("- Creative and engaging to build\n")
	b.WriteString("- Clear learning progression and outcomes\n")
	fmt.Fprintf(&b, "- Appropriate complexity for %s timeframe\n", p.Duration)
	fmt.Fprintf(&b, "- Suitable for %s work style\n", p.TeamSize)
	b.WriteString("\nUse your reasoning to ensure each project meets all these criteria.")

	return Spec{System: SystemPrompt, User: b.String()}
}
