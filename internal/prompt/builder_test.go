package prompt

import (
	"strings"
	"testing"

	"ideaforge/internal/types"
)

func testPrefs() types.GenerationPreferences {
	return types.GenerationPreferences{
		Theme:      "IoT",
		SkillLevel: "Intermediate",
		Count:      5,
		Duration:   "1-2 hours",
		TeamSize:   "Individual",
	}
}

func TestBuild_ContainsEveryComponentName(t *testing.T) {
	components := []types.Component{
		{ID: "arduino_uno", Name: "Arduino Uno", Category: "Microcontrollers"},
		{ID: "ultrasonic_sensor", Name: "Ultrasonic Sensor", Category: "Sensors"},
		{ID: "servo_motor", Name: "Servo Motor", Category: "Actuators"},
	}

	spec := Build(components, testPrefs())
	for _, c := range components {
		if !strings.Contains(spec.User, c.Name) {
			t.Errorf("prompt missing component name %q", c.Name)
		}
	}
}

func TestBuild_ContainsEveryPreferenceValue(t *testing.T) {
	p := testPrefs()
	spec := Build([]types.Component{{Name: "ESP32"}}, p)

	for _, want := range []string{p.Theme, p.SkillLevel, p.Duration, p.TeamSize, "5"} {
		if !strings.Contains(spec.User, want) {
			t.Errorf("prompt missing preference value %q", want)
		}
	}
}

func TestBuild_EnumeratesSchemaFields(t *testing.T) {
	spec := Build([]types.Component{{Name: "LED"}}, testPrefs())

	// Every field the normalizer extracts must be named in the contract.
	fields := []string{
		"title", "description", "problem_statement", "working_principle",
		"components", "difficulty", "estimated_cost", "innovation_elements",
		"scalability_options", "learning_outcomes", "tags",
	}
	for _, f := range fields {
		if !strings.Contains(spec.User, `"`+f+`"`) {
			t.Errorf("prompt schema missing field %q", f)
		}
	}
	if !strings.Contains(spec.User, `"projects"`) {
		t.Error("prompt schema missing projects wrapper key")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	components := []types.Component{{Name: "Buzzer"}, {Name: "Relay Module"}}
	a := Build(components, testPrefs())
	b := Build(components, testPrefs())
	if a != b {
		t.Error("Build is not deterministic for identical inputs")
	}
}

func TestBuild_SystemPromptPinsJSONOnly(t *testing.T) {
	spec := Build([]types.Component{{Name: "LED"}}, testPrefs())
	if !strings.Contains(spec.System, "valid JSON only") {
		t.Error("system prompt must demand JSON-only output")
	}
}
