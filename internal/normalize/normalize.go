// Package normalize turns raw model output into canonical Idea records.
//
// The policy is deliberately asymmetric: the outer payload shape was requested
// explicitly by the prompt builder, so a payload that does not parse is a
// broken integration and fails hard. Per-element shape drift is expected model
// noise, so individual elements are never rejected; missing or mistyped fields
// fall back to documented defaults.
package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ideaforge/internal/types"
)

// Documented element defaults.
const (
	DefaultDescription  = "No description provided"
	DefaultCost         = "₹500-1000"
	DefaultAvailability = "Available"
)

// MalformedResponseError reports that the outer payload was unparseable.
// It carries the original text for diagnostics. This is terminal; the
// normalizer never retries.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// Normalize parses rawText and returns the canonical idea list in the model's
// emission order. fallbackSkill fills a missing difficulty; fallbackTheme
// seeds default tags. A payload with no locatable idea list yields zero ideas
// without error, which is a valid outcome distinct from a parse failure.
func Normalize(raw, fallbackSkill, fallbackTheme string) ([]types.Idea, error) {
	return Batch(raw, fallbackSkill, fallbackTheme, "", "")
}

// Batch is Normalize with provenance: modelID, when non-empty, is recorded on
// every idea as the generating model, and batchID, when non-empty, prefixes
// the idea ids so concurrent batches never collide. An empty batchID falls
// back to the wall-clock millisecond.
func Batch(raw, fallbackSkill, fallbackTheme, modelID, batchID string) ([]types.Idea, error) {
	payload := extractJSON(raw)

	var parsed interface{}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Err: err}
	}

	elements := locateList(parsed)

	now := time.Now().UTC()
	batch := batchID
	if batch == "" {
		batch = strconv.FormatInt(now.UnixMilli(), 10)
	}
	stamp := now.Format(time.RFC3339)

	ideas := make([]types.Idea, 0, len(elements))
	for i, el := range elements {
		obj, _ := el.(map[string]interface{})
		ideas = append(ideas, buildIdea(obj, i, batch, stamp, fallbackSkill, fallbackTheme, modelID))
	}
	return ideas, nil
}

// locateList accepts either a bare list at the top level, the requested
// "projects" wrapper, or any single-key wrapper whose value is a list.
// Anything else means zero ideas.
func locateList(parsed interface{}) []interface{} {
	switch v := parsed.(type) {
	case []interface{}:
		return v
	case map[string]interface{}:
		if list, ok := v["projects"].([]interface{}); ok {
			return list
		}
		if len(v) == 1 {
			for _, value := range v {
				if list, ok := value.([]interface{}); ok {
					return list
				}
			}
		}
	}
	return nil
}

func buildIdea(obj map[string]interface{}, index int, batch, stamp, fallbackSkill, fallbackTheme, modelID string) types.Idea {
	idea := types.Idea{
		ID:                 fmt.Sprintf("generated_%s_%d", batch, index),
		Title:              stringField(obj, "title", "", "Untitled Project "+strconv.Itoa(index+1)),
		Description:        stringField(obj, "description", "", DefaultDescription),
		ProblemStatement:   stringField(obj, "problem_statement", "problemStatement", ""),
		WorkingPrinciple:   stringField(obj, "working_principle", "workingPrinciple", ""),
		Components:         listField(obj, "components", ""),
		Difficulty:         stringField(obj, "difficulty", "", fallbackSkill),
		EstimatedCost:      stringField(obj, "estimated_cost", "estimatedCost", DefaultCost),
		InnovationElements: listField(obj, "innovation_elements", "innovationElements"),
		ScalabilityOptions: listField(obj, "scalability_options", "scalabilityOptions"),
		LearningOutcomes:   listField(obj, "learning_outcomes", "learningOutcomes"),
		Tags:               listField(obj, "tags", ""),
		Availability:       DefaultAvailability,
		IsFavorite:         false,
		GeneratedBy:        modelID,
		CreatedAt:          stamp,
		UpdatedAt:          stamp,
	}
	if len(idea.Tags) == 0 {
		idea.Tags = []string{fallbackTheme, fallbackSkill}
	}
	return idea
}

// stringField takes the primary key if present and non-null, then the
// alternate-casing key, then the default.
func stringField(obj map[string]interface{}, primary, alternate, def string) string {
	if s, ok := obj[primary].(string); ok && s != "" {
		return s
	}
	if alternate != "" {
		if s, ok := obj[alternate].(string); ok && s != "" {
			return s
		}
	}
	return def
}

// listField extracts an ordered list of strings. A non-list value in a list
// position is coerced to an empty list rather than erroring; non-string
// scalars inside a list are stringified, nested structures are dropped.
func listField(obj map[string]interface{}, primary, alternate string) []string {
	raw, ok := obj[primary].([]interface{})
	if !ok && alternate != "" {
		raw, ok = obj[alternate].([]interface{})
	}
	out := make([]string, 0, len(raw))
	if !ok {
		return out
	}
	for _, v := range raw {
		switch t := v.(type) {
		case string:
			out = append(out, t)
		case float64:
			out = append(out, strconv.FormatFloat(t, 'f', -1, 64))
		case bool:
			out = append(out, strconv.FormatBool(t))
		}
	}
	return out
}

// extractJSON strips markdown fences and surrounding prose from a mixed
// response, returning the first balanced JSON object or array. Models
// sometimes wrap the payload despite the JSON-only instruction. When no JSON
// is found the text is returned as-is so the parse error carries it.
func extractJSON(text string) string {
	start := strings.IndexAny(text, "{[")
	if start == -1 {
		return text
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]

		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return text[start:]
}
