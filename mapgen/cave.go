package mapgen

import (
	"github.com/jannef/RogueSharp/random"
	"github.com/jannef/RogueSharp/tilemap"
)

// Erosion rule thresholds. Counts exclude the cell itself; out-of-bounds
// positions simply contribute nothing (neighborhood queries clip).
const (
	// crowdedWallCount is the radius-1 wall count at or above which a cell
	// closes into a wall under both rule regimes.
	crowdedWallCount = 5
	// openAreaWallCount is the radius-2 wall count at or below which the
	// big-area rule seeds a wall, breaking up large open spaces.
	openAreaWallCount = 2
)

// CaveOptions contains the tunable parameters of cave synthesis.
type CaveOptions struct {
	// FillProbability is the percentage [1,100] of interior cells that start
	// as floor. Values ≤ 0 behave as all-wall fill, values ≥ 100 as
	// all-floor fill; no explicit clamping is applied. Recommended 40–60.
	FillProbability int
	// TotalIterations is the number of erosion passes. Zero skips erosion
	// entirely, leaving the random fill as the pre-repair state.
	// Recommended 2–5.
	TotalIterations int
	// CutoffOfBigAreaFill is the iteration index below which the big-area
	// rule runs instead of the nearest-neighbor rule. Recommended < 4.
	CutoffOfBigAreaFill int
	// Source supplies random draws; nil selects random.Default.
	Source random.Source
}

// DefaultCaveOptions returns the recommended cave parameters:
// FillProbability=45, TotalIterations=4, CutoffOfBigAreaFill=3.
func DefaultCaveOptions() CaveOptions {
	return CaveOptions{
		FillProbability:     45,
		TotalIterations:     4,
		CutoffOfBigAreaFill: 3,
	}
}

// CaveStrategy synthesizes cave-like maps: a cellular-automata terrain
// pass followed by connectivity repair guaranteeing a single traversable
// region. See the package documentation for the pipeline.
type CaveStrategy struct {
	width, height int
	opts          CaveOptions
	src           random.Source
}

// NewCaveStrategy constructs a cave strategy for a width×height map.
// Returns ErrInvalidDimensions if either dimension is not positive.
func NewCaveStrategy(width, height int, opts CaveOptions) (*CaveStrategy, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	src := opts.Source
	if src == nil {
		src = random.Default
	}

	return &CaveStrategy{width: width, height: height, opts: opts, src: src}, nil
}

// Name returns the strategy name.
func (s *CaveStrategy) Name() string { return "Cave" }

// CreateMap runs one full cave generation:
//
//  1. allocate the grid;
//  2. random-fill it (border forced wall);
//  3. run TotalIterations erosion passes, each reading a clone of the
//     previous state so neighbor counts never mix old and new cells;
//  4. repair connectivity so one walkable region remains.
//
// Given an identical random sequence and identical parameters the output
// is cell-for-cell identical.
// Complexity: O(I×W×H×r²) for erosion plus the repair cost (quadratic-ish
// in region count, small after erosion).
func (s *CaveStrategy) CreateMap() (*tilemap.Map, error) {
	m, err := tilemap.New(s.width, s.height)
	if err != nil {
		return nil, err
	}

	s.randomFill(m)

	for i := 0; i < s.opts.TotalIterations; i++ {
		if i < s.opts.CutoffOfBigAreaFill {
			m = s.erode(m, bigAreaRule)
		} else {
			m = s.erode(m, nearestNeighborRule)
		}
	}

	regions, err := walkableRegions(m)
	if err != nil {
		return nil, err
	}
	connectRegions(m, regions)

	return m, nil
}

// randomFill seeds the initial terrain: border cells become walls, every
// other cell becomes floor when a draw from [1,100) lands strictly below
// FillProbability.
func (s *CaveStrategy) randomFill(m *tilemap.Map) {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			if s.isBorder(x, y) {
				_ = m.SetCellProperties(x, y, false, false)
				continue
			}
			if s.src.Next(1, 100) < s.opts.FillProbability {
				_ = m.SetCellProperties(x, y, true, true)
			} else {
				_ = m.SetCellProperties(x, y, false, false)
			}
		}
	}
}

// erosionRule decides whether the cell at (x,y) becomes a wall, reading
// only the previous iteration's state.
type erosionRule func(prev *tilemap.Map, x, y int) bool

// erode runs one cellular-automata pass. Every non-border cell is
// recomputed against the pre-iteration state; the new buffer replaces the
// old one atomically. Border cells are skipped and stay walls from the
// fill step.
func (s *CaveStrategy) erode(prev *tilemap.Map, rule erosionRule) *tilemap.Map {
	next := prev.Clone()
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			if s.isBorder(x, y) {
				continue
			}
			if rule(prev, x, y) {
				_ = next.SetCellProperties(x, y, false, false)
			} else {
				_ = next.SetCellProperties(x, y, true, true)
			}
		}
	}

	return next
}

// bigAreaRule closes crowded cells and additionally seeds walls inside
// large open areas: wall when the radius-1 wall count reaches
// crowdedWallCount, or when the radius-2 wall count is at most
// openAreaWallCount.
func bigAreaRule(prev *tilemap.Map, x, y int) bool {
	return wallsWithin(prev, x, y, 1) >= crowdedWallCount ||
		wallsWithin(prev, x, y, 2) <= openAreaWallCount
}

// nearestNeighborRule closes crowded cells only.
func nearestNeighborRule(prev *tilemap.Map, x, y int) bool {
	return wallsWithin(prev, x, y, 1) >= crowdedWallCount
}

// wallsWithin counts non-walkable cells within Chebyshev distance radius
// of (x,y), excluding the cell itself.
func wallsWithin(m *tilemap.Map, x, y, radius int) int {
	count := 0
	for _, c := range m.CellsInSquare(x, y, radius) {
		if c.X == x && c.Y == y {
			continue
		}
		if !c.Walkable {
			count++
		}
	}

	return count
}

// isBorder reports whether (x,y) lies on the outermost edge of the map.
func (s *CaveStrategy) isBorder(x, y int) bool {
	return x == 0 || y == 0 || x == s.width-1 || y == s.height-1
}
