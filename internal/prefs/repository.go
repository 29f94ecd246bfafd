package prefs

import (
	"encoding/json"
	"fmt"
	"time"

	"ideaforge/internal/types"
)

// Namespaced local-store keys. These are the only keys this package touches.
const (
	keyPreferences = "user_preferences"
	keyStats       = "user_stats"
)

// KV is the minimal key-value contract the repositories need from the local
// store. Values are structured-data-encoded byte strings.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
}

// PreferencesRepository loads and saves the user's stored generation defaults.
// It is passed by reference to whichever component needs preferences instead
// of components reading ambient storage themselves.
type PreferencesRepository struct {
	kv KV
}

// NewPreferencesRepository creates a repository over the given key-value store.
func NewPreferencesRepository(kv KV) *PreferencesRepository {
	return &PreferencesRepository{kv: kv}
}

// Load returns the stored preferences, or nil when none have been saved yet.
func (r *PreferencesRepository) Load() (*types.GenerationPreferences, error) {
	data, ok, err := r.kv.Get(keyPreferences)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var p types.GenerationPreferences
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode preferences: %w", err)
	}
	return &p, nil
}

// Save persists the given preferences as the new stored defaults.
func (r *PreferencesRepository) Save(p types.GenerationPreferences) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := r.kv.Put(keyPreferences, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// StatsRepository tracks cumulative usage counters in the local store.
type StatsRepository struct {
	kv KV
}

// NewStatsRepository creates a repository over the given key-value store.
func NewStatsRepository(kv KV) *StatsRepository {
	return &StatsRepository{kv: kv}
}

// Load returns the stored stats, or a zero record when none exist.
func (r *StatsRepository) Load() (types.UserStats, error) {
	var s types.UserStats
	data, ok, err := r.kv.Get(keyStats)
	if err != nil {
		return s, fmt.Errorf("failed to load stats: %w", err)
	}
	if !ok {
		return s, nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to decode stats: %w", err)
	}
	return s, nil
}

// Save persists the stats record.
func (r *StatsRepository) Save(s types.UserStats) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}
	if err := r.kv.Put(keyStats, data); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}

// AddIdeasGenerated bumps the ideas_generated counter and stamps the last
// active date. Load-modify-save; the local store is single-writer.
func (r *StatsRepository) AddIdeasGenerated(n int) error {
	s, err := r.Load()
	if err != nil {
		return err
	}
	s.IdeasGenerated += n
	s.LastActiveDate = time.Now().UTC().Format(time.RFC3339)
	return r.Save(s)
}

// AddComponentsSelected bumps the components_selected counter.
func (r *StatsRepository) AddComponentsSelected(n int) error {
	s, err := r.Load()
	if err != nil {
		return err
	}
	s.ComponentsSelected += n
	s.LastActiveDate = time.Now().UTC().Format(time.RFC3339)
	return r.Save(s)
}
