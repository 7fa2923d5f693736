// Package leveldata provides TMX level parsing shared by the sandbox and the
// headless replay tool. It has no dependencies on ebitengine or donburi.
package leveldata

import "errors"

// ErrNoSpawn is returned for a level without a PlayerSpawn object.
var ErrNoSpawn = errors.New("level has no player spawn")

// Level holds everything the collision world is built from.
type Level struct {
	Name       string
	MapWidth   int
	MapHeight  int
	TileWidth  int
	TileHeight int

	Solids      []Solid
	SpawnPoints []SpawnPoint
	Crates      []CrateSpawn
	Platforms   []PlatformSpawn
	DeadZones   []Area
}

// Shape is the outline of a solid.
type Shape int

const (
	ShapeRect Shape = iota
	ShapePolygon
	ShapeCircle
)

func (s Shape) String() string {
	switch s {
	case ShapePolygon:
		return "polygon"
	case ShapeCircle:
		return "circle"
	}
	return "rect"
}

// Point is a position relative to the owning object.
type Point struct {
	X, Y float64
}

// Solid is a static obstacle. X and Y are the object's origin: the top-left
// corner for rects, the first-vertex origin for polygons and the center for
// circles.
type Solid struct {
	Shape  Shape
	X, Y   float64
	W, H   float64
	Radius float64
	Points []Point
	// Surfaces names the solid sides, e.g. "up" or "left,right". Empty means all.
	Surfaces string
}

// Area is an axis-aligned rectangle.
type Area struct {
	X, Y, W, H float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// CrateSpawn is a pushable box.
type CrateSpawn struct {
	X, Y, Size float64
	// Leader names a platform the crate rides on.
	Leader string
	// Priority overrides the configured crate priority when positive.
	// Descending priorities let a row of crates push each other.
	Priority int
}

// PlatformSpawn is a kinematic platform that travels by (DX, DY) and back,
// taking Seconds for each leg.
type PlatformSpawn struct {
	Name       string
	X, Y, W, H float64
	DX, DY     float64
	Seconds    float64
}
