// Package library persists canonical ideas across the remote document store
// and the local fallback store. All dual-write policy lives here: remote
// first, local mirror always, remote failure never blocks local success.
package library

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ideaforge/internal/store"
	"ideaforge/internal/types"
)

// SaveResult reports a persistence outcome. Degraded means the remote write
// failed and only the local fallback holds the record; the record itself is
// shaped identically either way, so the flag is the only signal and callers
// must surface it as a non-blocking notice rather than an error.
type SaveResult struct {
	Idea     types.Idea
	Degraded bool
}

// Coordinator orders writes across the two stores and merges reads.
type Coordinator struct {
	remote store.Remote
	local  *store.Local
	logger *zap.Logger
	now    func() time.Time
}

// NewCoordinator creates a coordinator over the two stores.
func NewCoordinator(remote store.Remote, local *store.Local, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{remote: remote, local: local, logger: logger, now: time.Now}
}

// Save commits an idea. The remote store is attempted first; on success the
// remote-confirmed record (which may carry a remote-assigned id) is mirrored
// locally and returned. On remote failure of any kind the idea is stamped and
// persisted locally only, and the result is flagged degraded.
func (c *Coordinator) Save(ctx context.Context, idea types.Idea) (SaveResult, error) {
	idea.SavedAt = c.now().UTC().Format(time.RFC3339)

	confirmed, err := c.createRemote(ctx, idea)
	if err != nil {
		c.logger.Warn("remote save failed, falling back to local store",
			zap.String("idea", idea.ID), zap.Error(err))
		if localErr := c.local.PutIdea(idea); localErr != nil {
			return SaveResult{}, fmt.Errorf("remote save failed (%v) and local fallback failed: %w", err, localErr)
		}
		return SaveResult{Idea: idea, Degraded: true}, nil
	}

	if err := c.local.PutIdea(confirmed); err != nil {
		// Remote is authoritative; a failed mirror is logged, not fatal.
		c.logger.Warn("local mirror failed after remote save",
			zap.String("idea", confirmed.ID), zap.Error(err))
	}
	return SaveResult{Idea: confirmed}, nil
}

// Update rewrites an existing idea in both stores, remote first.
func (c *Coordinator) Update(ctx context.Context, idea types.Idea) (SaveResult, error) {
	idea.Touch(c.now())

	degraded := false
	if _, err := c.remote.Update(ctx, store.CollectionIdeas, idea.ID, recordFromIdea(idea)); err != nil {
		c.logger.Warn("remote update failed",
			zap.String("idea", idea.ID), zap.Error(err))
		degraded = true
	}
	if err := c.local.PutIdea(idea); err != nil {
		if degraded {
			return SaveResult{}, fmt.Errorf("both stores failed updating %q: %w", idea.ID, err)
		}
		c.logger.Warn("local mirror failed after remote update",
			zap.String("idea", idea.ID), zap.Error(err))
	}
	return SaveResult{Idea: idea, Degraded: degraded}, nil
}

// ToggleFavorite flips the favorite flag on an idea in both stores, remote
// first. The returned flag reports a degraded (local-only) toggle.
func (c *Coordinator) ToggleFavorite(ctx context.Context, id string, favorite bool) (bool, error) {
	degraded := false
	patch := store.Record{
		"is_favorite": favorite,
		"updated_at":  c.now().UTC().Format(time.RFC3339),
	}
	if _, err := c.remote.Update(ctx, store.CollectionIdeas, id, patch); err != nil {
		c.logger.Warn("remote favorite toggle failed",
			zap.String("idea", id), zap.Error(err))
		degraded = true
	}

	err := c.local.SetIdeaFavorite(id, favorite)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		if degraded {
			return true, fmt.Errorf("both stores failed toggling %q: %w", id, err)
		}
		c.logger.Warn("local favorite toggle failed",
			zap.String("idea", id), zap.Error(err))
	}
	return degraded, nil
}

// Delete removes an idea from both stores. Deletion is always explicit, never
// implied; a remote failure still removes the local copy and reports degraded
// so the caller knows the remote row may resurface on the next merge.
func (c *Coordinator) Delete(ctx context.Context, id string) (bool, error) {
	degraded := false
	if err := c.remote.Delete(ctx, store.CollectionIdeas, id); err != nil && !errors.Is(err, store.ErrNotFound) {
		c.logger.Warn("remote delete failed",
			zap.String("idea", id), zap.Error(err))
		degraded = true
	}
	if err := c.local.DeleteIdea(id); err != nil {
		return degraded, fmt.Errorf("local delete of %q failed: %w", id, err)
	}
	return degraded, nil
}

// List merges remote and local records, de-duplicating by id with
// remote-sourced records taking precedence; remote is the source of truth
// when reachable. A remote fetch failure degrades to a local-only listing.
func (c *Coordinator) List(ctx context.Context) ([]types.Idea, bool, error) {
	degraded := false

	var remoteIdeas []types.Idea
	records, err := c.remote.FetchAll(ctx, store.CollectionIdeas)
	if err != nil {
		c.logger.Warn("remote list failed, serving local ledger only", zap.Error(err))
		degraded = true
	} else {
		for _, rec := range records {
			idea, err := ideaFromRecord(rec)
			if err != nil {
				c.logger.Debug("skipping undecodable remote record", zap.Error(err))
				continue
			}
			remoteIdeas = append(remoteIdeas, idea)
		}
	}

	localIdeas, err := c.local.ListIdeas()
	if err != nil {
		if degraded {
			return nil, true, fmt.Errorf("both stores failed listing ideas: %w", err)
		}
		c.logger.Warn("local list failed, serving remote records only", zap.Error(err))
		localIdeas = nil
	}

	seen := make(map[string]bool, len(remoteIdeas))
	merged := make([]types.Idea, 0, len(remoteIdeas)+len(localIdeas))
	for _, idea := range remoteIdeas {
		seen[idea.ID] = true
		merged = append(merged, idea)
	}
	for _, idea := range localIdeas {
		if !seen[idea.ID] {
			merged = append(merged, idea)
		}
	}
	return merged, degraded, nil
}

// Get returns a single idea, preferring the remote copy.
func (c *Coordinator) Get(ctx context.Context, id string) (types.Idea, error) {
	if rec, err := c.remote.FetchByID(ctx, store.CollectionIdeas, id); err == nil {
		if idea, err := ideaFromRecord(rec); err == nil {
			return idea, nil
		}
	}
	return c.local.GetIdea(id)
}

func (c *Coordinator) createRemote(ctx context.Context, idea types.Idea) (types.Idea, error) {
	rec, err := c.remote.Create(ctx, store.CollectionIdeas, recordFromIdea(idea))
	if err != nil {
		return types.Idea{}, err
	}
	confirmed, err := ideaFromRecord(rec)
	if err != nil {
		return types.Idea{}, fmt.Errorf("remote returned undecodable record: %w", err)
	}
	if confirmed.ID == "" {
		confirmed.ID = idea.ID
	}
	return confirmed, nil
}

// recordFromIdea converts through JSON so wire field names stay the single
// point of truth.
func recordFromIdea(idea types.Idea) store.Record {
	data, _ := json.Marshal(idea)
	var rec store.Record
	_ = json.Unmarshal(data, &rec)
	return rec
}

func ideaFromRecord(rec store.Record) (types.Idea, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return types.Idea{}, err
	}
	var idea types.Idea
	if err := json.Unmarshal(data, &idea); err != nil {
		return types.Idea{}, err
	}
	return idea, nil
}
