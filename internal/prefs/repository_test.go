package prefs

import (
	"testing"

	"ideaforge/internal/types"
)

type memKV struct {
	data map[string][]byte
}

func newMemKV() *memKV { return &memKV{data: make(map[string][]byte)} }

func (m *memKV) Get(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Put(key string, value []byte) error {
	m.data[key] = value
	return nil
}

func TestPreferencesRepository_RoundTrip(t *testing.T) {
	repo := NewPreferencesRepository(newMemKV())

	loaded, err := repo.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != nil {
		t.Fatalf("expected nil before first save, got %+v", loaded)
	}

	want := types.GenerationPreferences{SkillLevel: "Intermediate", Theme: "IoT"}
	if err := repo.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err = repo.Load()
	if err != nil {
		t.Fatalf("Load after save failed: %v", err)
	}
	if loaded == nil || loaded.SkillLevel != "Intermediate" || loaded.Theme != "IoT" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestStatsRepository_Increment(t *testing.T) {
	repo := NewStatsRepository(newMemKV())

	if err := repo.AddIdeasGenerated(5); err != nil {
		t.Fatalf("AddIdeasGenerated failed: %v", err)
	}
	if err := repo.AddIdeasGenerated(3); err != nil {
		t.Fatalf("AddIdeasGenerated failed: %v", err)
	}

	s, err := repo.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.IdeasGenerated != 8 {
		t.Errorf("expected 8 ideas generated, got %d", s.IdeasGenerated)
	}
	if s.LastActiveDate == "" {
		t.Error("expected last_active_date to be stamped")
	}
}
