package world

import "github.com/zyedidia/generic/mapset"

// Point is a map coordinate.
type Point struct {
	X, Y int
}

// PointSet is an unordered set of map coordinates.
type PointSet = mapset.Set[Point]

// NewPointSet returns an empty set.
func NewPointSet() PointSet {
	return mapset.New[Point]()
}
