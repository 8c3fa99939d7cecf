package orbit

import (
	"math/rand"
	"testing"
)

func TestSpatialInsertQuery(t *testing.T) {
	idx := NewSpatialIndex(16)
	idx.Insert(1, 10, 10, 3)
	idx.Insert(2, 100, 100, 3)

	got := idx.Query(12, 12, 5)
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("query near object 1: got %v, want [1]", got)
	}

	got = idx.Query(500, 500, 5)
	if len(got) != 0 {
		t.Errorf("query in empty space: got %v, want empty", got)
	}
}

func TestSpatialQueryIsSuperset(t *testing.T) {
	// The grid must never produce a false negative: every object whose
	// bounding circle intersects the query circle appears in the result.
	rng := rand.New(rand.NewSource(7))
	idx := NewSpatialIndex(16)

	type obj struct {
		x, y, r float64
	}
	objs := make(map[int]obj)
	for id := 0; id < 200; id++ {
		o := obj{
			x: rng.Float64() * 300,
			y: rng.Float64() * 200,
			r: 1 + rng.Float64()*8,
		}
		objs[id] = o
		idx.Insert(id, o.x, o.y, o.r)
	}

	// Churn: remove some, re-insert some at new positions.
	for id := 0; id < 200; id += 3 {
		idx.Remove(id)
		delete(objs, id)
	}
	for id := 1; id < 200; id += 4 {
		if o, ok := objs[id]; ok {
			o.x = rng.Float64() * 300
			o.y = rng.Float64() * 200
			objs[id] = o
			idx.Insert(id, o.x, o.y, o.r)
		}
	}

	for trial := 0; trial < 50; trial++ {
		qx := rng.Float64() * 300
		qy := rng.Float64() * 200
		qr := 1 + rng.Float64()*10

		found := make(map[int]bool)
		for _, id := range idx.Query(qx, qy, qr) {
			found[id] = true
		}

		for id, o := range objs {
			dx := o.x - qx
			dy := o.y - qy
			sum := o.r + qr
			if dx*dx+dy*dy <= sum*sum && !found[id] {
				t.Fatalf("trial %d: object %d at (%f,%f) r=%f missed by query (%f,%f) r=%f",
					trial, id, o.x, o.y, o.r, qx, qy, qr)
			}
		}
	}
}

func TestSpatialQueryDeterministicOrder(t *testing.T) {
	idx := NewSpatialIndex(16)
	idx.Insert(5, 10, 10, 2)
	idx.Insert(1, 11, 11, 2)
	idx.Insert(3, 12, 12, 2)

	got := idx.Query(11, 11, 10)
	want := []int{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("query: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("query order: got %v, want %v", got, want)
		}
	}
}

func TestSpatialRemove(t *testing.T) {
	idx := NewSpatialIndex(16)
	idx.Insert(1, 10, 10, 3)
	idx.Remove(1)

	if got := idx.Query(10, 10, 5); len(got) != 0 {
		t.Errorf("removed object still returned: %v", got)
	}
	if idx.Len() != 0 {
		t.Errorf("Len after remove: got %d, want 0", idx.Len())
	}

	// Removing an absent id must be a no-op.
	idx.Remove(42)
	idx.Remove(1)
}

func TestSpatialReinsertReplaces(t *testing.T) {
	idx := NewSpatialIndex(16)
	idx.Insert(1, 10, 10, 3)
	idx.Insert(1, 200, 200, 3)

	if got := idx.Query(10, 10, 5); len(got) != 0 {
		t.Errorf("old position still registered: %v", got)
	}
	got := idx.Query(200, 200, 5)
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("new position not registered: %v", got)
	}
	if idx.Len() != 1 {
		t.Errorf("Len after re-insert: got %d, want 1", idx.Len())
	}
}

func TestSpatialObjectSpanningCells(t *testing.T) {
	// A large object near a cell corner occupies several cells and must be
	// reported once, from any of them.
	idx := NewSpatialIndex(16)
	idx.Insert(1, 16, 16, 20)

	for _, probe := range [][2]float64{{0, 0}, {30, 0}, {0, 30}, {30, 30}} {
		got := idx.Query(probe[0], probe[1], 1)
		if len(got) != 1 || got[0] != 1 {
			t.Errorf("probe (%f,%f): got %v, want [1]", probe[0], probe[1], got)
		}
	}
}

func TestSpatialClear(t *testing.T) {
	idx := NewSpatialIndex(16)
	for id := 0; id < 10; id++ {
		idx.Insert(id, float64(id)*20, 0, 3)
	}

	idx.Clear()
	if idx.Len() != 0 {
		t.Errorf("Len after clear: got %d, want 0", idx.Len())
	}
	if got := idx.Query(0, 0, 500); len(got) != 0 {
		t.Errorf("query after clear: got %v", got)
	}

	// Clear does not break subsequent use.
	idx.Insert(1, 5, 5, 2)
	if got := idx.Query(5, 5, 3); len(got) != 1 {
		t.Errorf("insert after clear: got %v", got)
	}
}

func TestSpatialNonPositiveCellSize(t *testing.T) {
	idx := NewSpatialIndex(0)
	idx.Insert(1, 2.5, 2.5, 1)
	if got := idx.Query(2.5, 2.5, 1); len(got) != 1 {
		t.Errorf("fallback cell size index broken: %v", got)
	}
}
