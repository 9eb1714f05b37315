package state

import (
	"sync"

	"RasterBoard/internal/raster"
)

// Store accumulates rasterized points across every drawing action of a
// session. Points are only ever appended; Clear is the sole way back to
// empty.
type Store struct {
	points []raster.Point
	mu     sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		points: make([]raster.Point, 0),
	}
}

// Append adds pts after the existing points, preserving their order.
// Duplicates are kept.
func (s *Store) Append(pts ...raster.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = append(s.points, pts...)
}

// Points returns a copy of the stored points in insertion order.
func (s *Store) Points() []raster.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()

	points := make([]raster.Point, len(s.points))
	copy(points, s.points)
	return points
}

// Each calls f for every stored point in insertion order while holding the
// read lock. f must not call back into the Store.
func (s *Store) Each(f func(raster.Point)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.points {
		f(p)
	}
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.points)
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = make([]raster.Point, 0)
}
