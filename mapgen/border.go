package mapgen

import (
	"github.com/jannef/RogueSharp/tilemap"
)

// BorderOnlyStrategy generates an open arena: every interior cell is
// floor, every border cell is wall. Useful for tests, sandboxes, and as
// the simplest possible Strategy reference.
type BorderOnlyStrategy struct {
	width, height int
}

// NewBorderOnlyStrategy constructs a border-only strategy.
// Returns ErrInvalidDimensions for non-positive dimensions.
func NewBorderOnlyStrategy(width, height int) (*BorderOnlyStrategy, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &BorderOnlyStrategy{width: width, height: height}, nil
}

// Name returns the strategy name.
func (s *BorderOnlyStrategy) Name() string { return "Border Only" }

// CreateMap floors everything except the outermost ring of cells.
// Complexity: O(W×H).
func (s *BorderOnlyStrategy) CreateMap() (*tilemap.Map, error) {
	m, err := tilemap.New(s.width, s.height)
	if err != nil {
		return nil, err
	}
	for y := 1; y < s.height-1; y++ {
		for x := 1; x < s.width-1; x++ {
			_ = m.SetCellProperties(x, y, true, true)
		}
	}

	return m, nil
}
