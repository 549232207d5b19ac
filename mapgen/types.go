// Package mapgen defines the Strategy interface and shared sentinel errors.
package mapgen

import (
	"errors"

	"github.com/jannef/RogueSharp/tilemap"
)

// Sentinel errors for strategy construction.
var (
	// ErrInvalidDimensions indicates a non-positive map width or height.
	ErrInvalidDimensions = errors.New("mapgen: width and height must be positive")
	// ErrInvalidRoomSize indicates room size bounds that cannot fit the map.
	ErrInvalidRoomSize = errors.New("mapgen: room sizes must satisfy 2 <= min <= max <= side-2")
)

// Strategy is a pluggable map generation algorithm. Implementations are
// parameterized at construction; CreateMap performs one full generation
// and returns a map the caller exclusively owns.
type Strategy interface {
	// CreateMap generates a new map. Randomized strategies advance their
	// random source, so consecutive calls produce different maps unless the
	// source is reset.
	CreateMap() (*tilemap.Map, error)
	// Name returns a short human-readable strategy name.
	Name() string
}
