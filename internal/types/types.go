// Package types provides shared type definitions used across ideaforge packages.
// This package exists to break import cycles between the generator, normalizer,
// and persistence layers. Types here are foundational data structures with no
// complex dependencies.
package types

import (
	"errors"
	"fmt"
	"time"
)

// Availability describes whether a component can currently be sourced.
type Availability string

const (
	AvailabilityAvailable Availability = "Available"
	AvailabilityPartial   Availability = "Partially Available"
	AvailabilityNone      Availability = "Unavailable"
)

// SkillLevel is the difficulty tier a user self-reports.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
)

// Component is a selectable hardware part from the catalog.
// Once selected into a generation request it is treated as a value,
// not a live reference.
type Component struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	Description  string       `json:"description,omitempty"`
	UnitPrice    float64      `json:"unit_price,omitempty"`
	Availability Availability `json:"availability,omitempty"`
	StockCount   int          `json:"stock_count,omitempty"`
}

// GenerationPreferences configures a single idea-generation run.
// Zero values mean "not set"; the preference resolver fills defaults.
type GenerationPreferences struct {
	Theme      string `json:"theme,omitempty" yaml:"theme,omitempty"`
	SkillLevel string `json:"skill_level,omitempty" yaml:"skill_level,omitempty"`
	Count      int    `json:"count,omitempty" yaml:"count,omitempty"`
	Duration   string `json:"preferred_duration,omitempty" yaml:"preferred_duration,omitempty"`
	TeamSize   string `json:"team_size,omitempty" yaml:"team_size,omitempty"`
}

// ErrNoComponents signals a generation request with an empty selection.
// It is rejected before any network call is made.
var ErrNoComponents = errors.New("no components selected")

// GenerationRequest is the unit of work submitted to the invocation adapter.
type GenerationRequest struct {
	Components  []Component           `json:"selected_components"`
	Preferences GenerationPreferences `json:"preferences"`
	ModelID     string                `json:"model_id"`
}

// Validate checks request preconditions. An empty component selection is a
// caller error and must be caught before any I/O happens.
func (r GenerationRequest) Validate() error {
	if len(r.Components) == 0 {
		return ErrNoComponents
	}
	return nil
}

// Model describes one entry of the static model catalog.
type Model struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Provider    string `json:"provider"`
}

// Idea is the canonical normalized project-suggestion record. Field names
// follow the wire schema requested from the model, so the same struct round
// trips through both stores unchanged.
type Idea struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	ProblemStatement   string   `json:"problem_statement"`
	WorkingPrinciple   string   `json:"working_principle"`
	Components         []string `json:"components"`
	Difficulty         string   `json:"difficulty"`
	EstimatedCost      string   `json:"estimated_cost"`
	InnovationElements []string `json:"innovation_elements"`
	ScalabilityOptions []string `json:"scalability_options"`
	LearningOutcomes   []string `json:"learning_outcomes"`
	Tags               []string `json:"tags"`
	Availability       string   `json:"availability"`
	IsFavorite         bool     `json:"is_favorite"`
	GeneratedBy        string   `json:"generated_by,omitempty"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
	SavedAt            string   `json:"saved_at,omitempty"`
}

// Touch refreshes the updated-at timestamp.
func (i *Idea) Touch(now time.Time) {
	i.UpdatedAt = now.UTC().Format(time.RFC3339)
}

// UserStats tracks cumulative usage counters persisted between sessions.
type UserStats struct {
	IdeasGenerated     int    `json:"ideas_generated"`
	ComponentsSelected int    `json:"components_selected"`
	ProjectsCompleted  int    `json:"projects_completed"`
	LastActiveDate     string `json:"last_active_date,omitempty"`
}

func (c Component) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Category)
}
