package orbit

import (
	"math"
	"sort"
)

// cellKey addresses one grid cell by its independent floor-divided
// coordinates.
type cellKey struct {
	X, Y int
}

// SpatialIndex is a uniform grid for broad-phase candidate pruning.
// Objects are registered by integer id in every cell their bounding square
// (center +/- radius) overlaps, and each id tracks its occupied cells so
// removal never scans the whole grid.
//
// Cell membership is conservative: Query returns a superset of the objects
// whose bounding circles intersect the query circle. Callers must follow up
// with exact narrow-phase tests.
type SpatialIndex struct {
	cellSize    float64
	invCellSize float64
	cells       map[cellKey][]int
	entries     map[int][]cellKey
}

// NewSpatialIndex creates an index with the given cell size. A sensible
// cell size is on the order of the largest object radius plus the largest
// query radius; non-positive sizes fall back to 1.
func NewSpatialIndex(cellSize float64) *SpatialIndex {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &SpatialIndex{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cells:       make(map[cellKey][]int),
		entries:     make(map[int][]cellKey),
	}
}

// cellRange returns the inclusive cell bounds covering a circle.
func (s *SpatialIndex) cellRange(x, y, radius float64) (minX, minY, maxX, maxY int) {
	if radius < 0 {
		radius = 0
	}
	minX = int(math.Floor((x - radius) * s.invCellSize))
	maxX = int(math.Floor((x + radius) * s.invCellSize))
	minY = int(math.Floor((y - radius) * s.invCellSize))
	maxY = int(math.Floor((y + radius) * s.invCellSize))
	return
}

// Insert registers an object in every cell overlapped by its bounding
// region. Inserting an id that is already present replaces its previous
// registration.
func (s *SpatialIndex) Insert(id int, x, y, radius float64) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	if _, exists := s.entries[id]; exists {
		s.Remove(id)
	}

	minX, minY, maxX, maxY := s.cellRange(x, y, radius)
	occupied := make([]cellKey, 0, (maxX-minX+1)*(maxY-minY+1))
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			key := cellKey{X: cx, Y: cy}
			s.cells[key] = append(s.cells[key], id)
			occupied = append(occupied, key)
		}
	}
	s.entries[id] = occupied
}

// Remove deletes an object from every cell it was registered in.
// Removing an id that is not present is a no-op.
func (s *SpatialIndex) Remove(id int) {
	occupied, ok := s.entries[id]
	if !ok {
		return
	}
	for _, key := range occupied {
		bucket := s.cells[key]
		for i, other := range bucket {
			if other == id {
				bucket = append(bucket[:i], bucket[i+1:]...)
				break
			}
		}
		if len(bucket) == 0 {
			delete(s.cells, key)
		} else {
			s.cells[key] = bucket
		}
	}
	delete(s.entries, id)
}

// Query returns the deduplicated candidate ids whose cells fall within the
// cell range covering the query circle, sorted ascending so iteration order
// is deterministic. False positives are expected; false negatives are not.
func (s *SpatialIndex) Query(x, y, radius float64) []int {
	if math.IsNaN(x) || math.IsNaN(y) {
		return nil
	}

	minX, minY, maxX, maxY := s.cellRange(x, y, radius)
	seen := make(map[int]struct{})
	var result []int
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			for _, id := range s.cells[cellKey{X: cx, Y: cy}] {
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
				result = append(result, id)
			}
		}
	}
	sort.Ints(result)
	return result
}

// Clear drops all cell contents and tracking records. Cost is proportional
// to the number of populated cells, not to everything ever inserted.
func (s *SpatialIndex) Clear() {
	s.cells = make(map[cellKey][]int)
	s.entries = make(map[int][]cellKey)
}

// Len returns the number of registered objects.
func (s *SpatialIndex) Len() int {
	return len(s.entries)
}
