package library

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"testing"

	"go.uber.org/zap"

	"ideaforge/internal/store"
	"ideaforge/internal/types"
)

// fakeRemote is an in-memory document store that can be told to fail.
type fakeRemote struct {
	records map[string]store.Record
	nextID  int
	fail    bool
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{records: make(map[string]store.Record)}
}

var errRemoteDown = errors.New("remote store unreachable")

func (f *fakeRemote) FetchAll(ctx context.Context, collection string) ([]store.Record, error) {
	if f.fail {
		return nil, errRemoteDown
	}
	out := make([]store.Record, 0, len(f.records))
	for _, rec := range f.records {
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeRemote) Query(ctx context.Context, collection string, filter map[string]string) ([]store.Record, error) {
	return f.FetchAll(ctx, collection)
}

func (f *fakeRemote) FetchByID(ctx context.Context, collection, id string) (store.Record, error) {
	if f.fail {
		return nil, errRemoteDown
	}
	rec, ok := f.records[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return rec, nil
}

func (f *fakeRemote) Create(ctx context.Context, collection string, rec store.Record) (store.Record, error) {
	if f.fail {
		return nil, errRemoteDown
	}
	f.nextID++
	id := rec.ID()
	if id == "" {
		id = "remote_" + strconv.Itoa(f.nextID)
	}
	stored := store.Record{}
	for k, v := range rec {
		stored[k] = v
	}
	stored["id"] = id
	f.records[id] = stored
	return stored, nil
}

func (f *fakeRemote) Update(ctx context.Context, collection, id string, patch store.Record) (store.Record, error) {
	if f.fail {
		return nil, errRemoteDown
	}
	rec, ok := f.records[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	for k, v := range patch {
		rec[k] = v
	}
	return rec, nil
}

func (f *fakeRemote) Delete(ctx context.Context, collection, id string) error {
	if f.fail {
		return errRemoteDown
	}
	if _, ok := f.records[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.records, id)
	return nil
}

func newTestCoordinator(t *testing.T) (*Coordinator, *fakeRemote, *store.Local) {
	t.Helper()
	local, err := store.OpenLocal(filepath.Join(t.TempDir(), "ideaforge.db"))
	if err != nil {
		t.Fatalf("OpenLocal failed: %v", err)
	}
	t.Cleanup(func() { local.Close() })

	remote := newFakeRemote()
	return NewCoordinator(remote, local, zap.NewNop()), remote, local
}

func TestSave_RemoteFirstThenMirror(t *testing.T) {
	coord, remote, local := newTestCoordinator(t)

	result, err := coord.Save(context.Background(), types.Idea{ID: "generated_1_0", Title: "X"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if result.Degraded {
		t.Error("healthy save must not be degraded")
	}
	if result.Idea.SavedAt == "" {
		t.Error("saved record must carry a save timestamp")
	}

	if _, ok := remote.records[result.Idea.ID]; !ok {
		t.Error("remote store missing the record")
	}
	if _, err := local.GetIdea(result.Idea.ID); err != nil {
		t.Errorf("local mirror missing the record: %v", err)
	}
}

func TestSave_DegradedOnRemoteFailure(t *testing.T) {
	coord, remote, _ := newTestCoordinator(t)
	remote.fail = true

	idea := types.Idea{ID: "generated_2_0", Title: "Offline Idea"}
	result, err := coord.Save(context.Background(), idea)
	if err != nil {
		t.Fatalf("degraded save must not error: %v", err)
	}
	if !result.Degraded {
		t.Error("expected degraded flag when remote is down")
	}
	if result.Idea.SavedAt == "" {
		t.Error("degraded record must still carry a save timestamp")
	}

	// The record must be retrievable via List afterward.
	ideas, degraded, err := coord.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if !degraded {
		t.Error("listing with remote down must report degraded")
	}
	found := false
	for _, got := range ideas {
		if got.ID == idea.ID {
			found = true
		}
	}
	if !found {
		t.Error("degraded save not visible in merged listing")
	}
}

func TestList_RemoteWinsOnConflict(t *testing.T) {
	coord, remote, local := newTestCoordinator(t)

	remote.records["shared"] = store.Record{"id": "shared", "title": "Remote Truth"}
	if err := local.PutIdea(types.Idea{ID: "shared", Title: "Stale Local"}); err != nil {
		t.Fatalf("PutIdea failed: %v", err)
	}
	if err := local.PutIdea(types.Idea{ID: "local_only", Title: "Local Only"}); err != nil {
		t.Fatalf("PutIdea failed: %v", err)
	}

	ideas, degraded, err := coord.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if degraded {
		t.Error("healthy listing must not be degraded")
	}
	if len(ideas) != 2 {
		t.Fatalf("expected 2 merged ideas, got %d", len(ideas))
	}

	byID := make(map[string]types.Idea)
	for _, idea := range ideas {
		byID[idea.ID] = idea
	}
	if byID["shared"].Title != "Remote Truth" {
		t.Errorf("remote record must win on conflict, got %q", byID["shared"].Title)
	}
	if _, ok := byID["local_only"]; !ok {
		t.Error("local-only record missing from merge")
	}
}

func TestToggleFavorite_DegradesButApplies(t *testing.T) {
	coord, remote, local := newTestCoordinator(t)

	if err := local.PutIdea(types.Idea{ID: "fav_1", Title: "X"}); err != nil {
		t.Fatalf("PutIdea failed: %v", err)
	}
	remote.fail = true

	degraded, err := coord.ToggleFavorite(context.Background(), "fav_1", true)
	if err != nil {
		t.Fatalf("ToggleFavorite failed: %v", err)
	}
	if !degraded {
		t.Error("expected degraded toggle with remote down")
	}
	got, _ := local.GetIdea("fav_1")
	if !got.IsFavorite {
		t.Error("local toggle must apply despite remote failure")
	}
}

func TestDelete_ForwardedToBothStores(t *testing.T) {
	coord, remote, local := newTestCoordinator(t)

	result, err := coord.Save(context.Background(), types.Idea{ID: "doomed", Title: "X"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	degraded, err := coord.Delete(context.Background(), result.Idea.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if degraded {
		t.Error("healthy delete must not be degraded")
	}
	if _, ok := remote.records[result.Idea.ID]; ok {
		t.Error("remote record not deleted")
	}
	if _, err := local.GetIdea(result.Idea.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("local record not deleted: %v", err)
	}
}

func TestUpdate_Degraded(t *testing.T) {
	coord, remote, local := newTestCoordinator(t)

	if err := local.PutIdea(types.Idea{ID: "u1", Title: "Old"}); err != nil {
		t.Fatalf("PutIdea failed: %v", err)
	}
	remote.fail = true

	result, err := coord.Update(context.Background(), types.Idea{ID: "u1", Title: "New"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !result.Degraded {
		t.Error("expected degraded update")
	}
	got, _ := local.GetIdea("u1")
	if got.Title != "New" {
		t.Errorf("local update not applied: %q", got.Title)
	}
}

func TestGet_PrefersRemote(t *testing.T) {
	coord, remote, local := newTestCoordinator(t)

	remote.records["g1"] = store.Record{"id": "g1", "title": "Remote"}
	if err := local.PutIdea(types.Idea{ID: "g1", Title: "Local"}); err != nil {
		t.Fatalf("PutIdea failed: %v", err)
	}

	idea, err := coord.Get(context.Background(), "g1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if idea.Title != "Remote" {
		t.Errorf("expected remote copy, got %q", idea.Title)
	}

	remote.fail = true
	idea, err = coord.Get(context.Background(), "g1")
	if err != nil {
		t.Fatalf("Get with remote down failed: %v", err)
	}
	if idea.Title != "Local" {
		t.Errorf("expected local fallback, got %q", idea.Title)
	}
}
