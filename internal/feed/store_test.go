package feed

import (
	"reflect"
	"testing"

	"github.com/jimezsa/zupro/internal/models"
)

func sampleJobs() []models.Job {
	return []models.Job{
		{ID: "a", Title: "Job A"},
		{ID: "b", Title: "Job B"},
		{ID: "c", Title: "Job C"},
	}
}

func ids(jobs []models.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, job.ID)
	}
	return out
}

func TestSkipThenRefreshRestoresOrder(t *testing.T) {
	store := NewStore(sampleJobs())

	if got := ids(store.Initialize()); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("Initialize() = %v", got)
	}
	if got := ids(store.Remove("b")); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("Remove(b) = %v, want [a c]", got)
	}
	if got := ids(store.Reload()); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("Reload() = %v, want [a b c]", got)
	}
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	lists := [][]models.Job{
		nil,
		{},
		sampleJobs(),
		{{ID: "x"}},
	}
	for _, list := range lists {
		got := Remove(list, "missing")
		if len(got) != len(list) {
			t.Fatalf("Remove(%v, missing) len = %d, want %d", ids(list), len(got), len(list))
		}
		for i := range list {
			if got[i] != list[i] {
				t.Fatalf("Remove(%v, missing)[%d] = %+v, want %+v", ids(list), i, got[i], list[i])
			}
		}
	}

	store := NewStore(sampleJobs())
	store.Remove("zzz")
	if store.Len() != 3 {
		t.Fatalf("Len() = %d after removing unknown id, want 3", store.Len())
	}
}

func TestReloadAlwaysEqualsSeed(t *testing.T) {
	seed := sampleJobs()
	store := NewStore(seed)
	for _, sequence := range [][]string{{}, {"a"}, {"a", "b", "c"}, {"c", "c", "zz"}} {
		for _, id := range sequence {
			store.Remove(id)
		}
		if got := store.Reload(); !reflect.DeepEqual(got, seed) {
			t.Fatalf("Reload() after removing %v = %v, want seed", sequence, ids(got))
		}
	}
}

func TestStoreDoesNotAliasSeed(t *testing.T) {
	seed := sampleJobs()
	store := NewStore(seed)

	seed[0].Title = "mutated by caller"
	jobs := store.Initialize()
	jobs[1].Title = "mutated copy"

	again := store.Reload()
	if again[0].Title != "Job A" || again[1].Title != "Job B" {
		t.Fatalf("seed aliased: %+v", again)
	}
}

func TestEmptyAfterSkippingEverything(t *testing.T) {
	store := NewStore(sampleJobs())
	for _, id := range []string{"a", "b", "c"} {
		store.Remove(id)
	}
	if !store.Empty() {
		t.Fatalf("Empty() = false with %d jobs", store.Len())
	}
	store.Reload()
	if store.Empty() {
		t.Fatalf("Empty() = true after Reload")
	}
	if job, ok := store.Find("b"); !ok || job.Title != "Job B" {
		t.Fatalf("Find(b) = %+v, %v", job, ok)
	}
	if _, ok := store.Find("nope"); ok {
		t.Fatalf("Find(nope) ok = true")
	}
}
