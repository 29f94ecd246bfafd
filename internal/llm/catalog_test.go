package llm

import "testing"

func TestModels_ReturnsCopy(t *testing.T) {
	a := Models()
	if len(a) == 0 {
		t.Fatal("catalog must not be empty")
	}
	a[0].Name = "mutated"

	b := Models()
	if b[0].Name == "mutated" {
		t.Error("Models must return a copy, not the backing slice")
	}
}

func TestLookup(t *testing.T) {
	m, err := Lookup("openai/gpt-4o-mini")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if m.Provider != "OpenAI" {
		t.Errorf("Unexpected provider: %s", m.Provider)
	}

	if _, err := Lookup("nope/nothing"); !IsKind(err, KindUnknownModel) {
		t.Errorf("Expected unknown model error, got %v", err)
	}
}

func TestDefaultModelInCatalog(t *testing.T) {
	if _, err := Lookup(DefaultModelID); err != nil {
		t.Errorf("Default model must be a catalog member: %v", err)
	}
}
