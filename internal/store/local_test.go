package store

import (
	"errors"
	"path/filepath"
	"testing"

	"ideaforge/internal/types"
)

func newTestLocal(t *testing.T) *Local {
	t.Helper()
	s, err := OpenLocal(filepath.Join(t.TempDir(), "ideaforge.db"))
	if err != nil {
		t.Fatalf("OpenLocal failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLocal_KVRoundTrip(t *testing.T) {
	s := newTestLocal(t)

	_, ok, err := s.Get("selected_components")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Fatal("expected key to be absent")
	}

	if err := s.Put("selected_components", []byte(`[{"id":"comp_1"}]`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	value, ok, err := s.Get("selected_components")
	if err != nil || !ok {
		t.Fatalf("Get after Put: ok=%v err=%v", ok, err)
	}
	if string(value) != `[{"id":"comp_1"}]` {
		t.Errorf("unexpected value: %s", value)
	}

	// Overwrite
	if err := s.Put("selected_components", []byte(`[]`)); err != nil {
		t.Fatalf("Put overwrite failed: %v", err)
	}
	value, _, _ = s.Get("selected_components")
	if string(value) != `[]` {
		t.Errorf("overwrite not applied: %s", value)
	}

	if err := s.DeleteKey("selected_components"); err != nil {
		t.Fatalf("DeleteKey failed: %v", err)
	}
	_, ok, _ = s.Get("selected_components")
	if ok {
		t.Error("key should be gone after delete")
	}
}

func TestLocal_IdeaLedger(t *testing.T) {
	s := newTestLocal(t)

	idea := types.Idea{
		ID:         "generated_1700000000000_0",
		Title:      "Smart Plant Watering",
		Components: []string{"Arduino Uno", "Soil Sensor"},
		Difficulty: "Beginner",
	}
	if err := s.PutIdea(idea); err != nil {
		t.Fatalf("PutIdea failed: %v", err)
	}

	got, err := s.GetIdea(idea.ID)
	if err != nil {
		t.Fatalf("GetIdea failed: %v", err)
	}
	if got.Title != idea.Title || len(got.Components) != 2 {
		t.Errorf("round trip mismatch: %+v", got)
	}

	if _, err := s.GetIdea("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLocal_SetIdeaFavorite(t *testing.T) {
	s := newTestLocal(t)

	idea := types.Idea{ID: "idea_1", Title: "X", UpdatedAt: "2024-01-01T00:00:00Z"}
	if err := s.PutIdea(idea); err != nil {
		t.Fatalf("PutIdea failed: %v", err)
	}

	if err := s.SetIdeaFavorite("idea_1", true); err != nil {
		t.Fatalf("SetIdeaFavorite failed: %v", err)
	}
	got, _ := s.GetIdea("idea_1")
	if !got.IsFavorite {
		t.Error("favorite flag not persisted")
	}
	if got.UpdatedAt == "2024-01-01T00:00:00Z" {
		t.Error("updated_at should change on mutation")
	}

	if err := s.SetIdeaFavorite("absent", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for absent idea, got %v", err)
	}
}

func TestLocal_ListAndDelete(t *testing.T) {
	s := newTestLocal(t)

	for _, id := range []string{"a", "b", "c"} {
		if err := s.PutIdea(types.Idea{ID: id, Title: id}); err != nil {
			t.Fatalf("PutIdea %s failed: %v", id, err)
		}
	}

	ideas, err := s.ListIdeas()
	if err != nil {
		t.Fatalf("ListIdeas failed: %v", err)
	}
	if len(ideas) != 3 {
		t.Fatalf("expected 3 ideas, got %d", len(ideas))
	}

	if err := s.DeleteIdea("b"); err != nil {
		t.Fatalf("DeleteIdea failed: %v", err)
	}
	ideas, _ = s.ListIdeas()
	if len(ideas) != 2 {
		t.Errorf("expected 2 ideas after delete, got %d", len(ideas))
	}

	// Idempotent delete
	if err := s.DeleteIdea("b"); err != nil {
		t.Errorf("repeat delete should not error: %v", err)
	}
}
