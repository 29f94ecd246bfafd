package llm

import "ideaforge/internal/types"

// DefaultModelID is the catalog entry used when a request names no model.
const DefaultModelID = "deepseek/deepseek-r1"

// catalog is the fixed set of models offered for idea generation. The ids are
// OpenRouter-style identifiers and pass through the proxy path unchanged.
var catalog = []types.Model{
	{
		ID:          "deepseek/deepseek-r1",
		Name:        "DeepSeek R1",
		Description: "Latest reasoning model from DeepSeek, excellent for complex problem solving and creative tasks",
		Provider:    "DeepSeek",
	},
	{
		ID:          "openai/gpt-4o",
		Name:        "GPT-4o",
		Description: "Most capable OpenAI model, excellent for creative tasks",
		Provider:    "OpenAI",
	},
	{
		ID:          "openai/gpt-4o-mini",
		Name:        "GPT-4o Mini",
		Description: "Fast and efficient, good for quick idea generation",
		Provider:    "OpenAI",
	},
	{
		ID:          "anthropic/claude-3.5-sonnet",
		Name:        "Claude 3.5 Sonnet",
		Description: "Excellent reasoning and creativity from Anthropic",
		Provider:    "Anthropic",
	},
	{
		ID:          "google/gemini-pro-1.5",
		Name:        "Gemini Pro 1.5",
		Description: "Google's latest model with strong analytical capabilities",
		Provider:    "Google",
	},
}

// Models returns the static model catalog. Pure, synchronous, side-effect
// free; callers receive a copy and may reorder it freely.
func Models() []types.Model {
	out := make([]types.Model, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup resolves a model id against the catalog. An unknown id is a typed
// adapter error raised before any network call.
func Lookup(id string) (types.Model, error) {
	for _, m := range catalog {
		if m.ID == id {
			return m, nil
		}
	}
	return types.Model{}, &APIError{Kind: KindUnknownModel, Message: "unknown model: " + id}
}
