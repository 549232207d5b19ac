package mapgen

import (
	"github.com/jannef/RogueSharp/random"
	"github.com/jannef/RogueSharp/tilemap"
)

// RandomRoomsOptions contains the tunable parameters of room placement.
type RandomRoomsOptions struct {
	// MaxRooms is the number of placement attempts; overlapping attempts
	// are discarded, so the final room count may be lower.
	MaxRooms int
	// RoomMaxSize and RoomMinSize bound the side length of a room
	// rectangle, inclusive. Carved interiors are one cell smaller on each
	// side, so neighboring rooms stay separated by walls.
	RoomMaxSize int
	RoomMinSize int
	// Source supplies random draws; nil selects random.Default.
	Source random.Source
}

// DefaultRandomRoomsOptions returns the recommended room parameters:
// MaxRooms=30, RoomMaxSize=10, RoomMinSize=6.
func DefaultRandomRoomsOptions() RandomRoomsOptions {
	return RandomRoomsOptions{
		MaxRooms:    30,
		RoomMaxSize: 10,
		RoomMinSize: 6,
	}
}

// RandomRoomsStrategy generates the classic rooms-and-corridors layout:
// random non-overlapping rectangles carved into an all-wall map, joined by
// L-shaped corridors between successive room centers.
type RandomRoomsStrategy struct {
	width, height int
	opts          RandomRoomsOptions
	src           random.Source
}

// NewRandomRoomsStrategy constructs a rooms strategy for a width×height
// map. Returns ErrInvalidDimensions for non-positive dimensions and
// ErrInvalidRoomSize when the size bounds cannot fit the map.
func NewRandomRoomsStrategy(width, height int, opts RandomRoomsOptions) (*RandomRoomsStrategy, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	side := width
	if height < side {
		side = height
	}
	if opts.RoomMinSize < 2 || opts.RoomMinSize > opts.RoomMaxSize || opts.RoomMaxSize > side-2 {
		return nil, ErrInvalidRoomSize
	}
	src := opts.Source
	if src == nil {
		src = random.Default
	}

	return &RandomRoomsStrategy{width: width, height: height, opts: opts, src: src}, nil
}

// Name returns the strategy name.
func (s *RandomRoomsStrategy) Name() string { return "Random Rooms" }

// CreateMap places up to MaxRooms rooms and joins them with corridors.
// The map starts all wall; each placement attempt draws a rectangle size
// and position, keeps it only when it intersects no accepted rectangle,
// and every accepted room is linked to the previously accepted one by a
// horizontal-then-vertical or vertical-then-horizontal corridor, the order
// chosen by a coin flip from the source.
func (s *RandomRoomsStrategy) CreateMap() (*tilemap.Map, error) {
	m, err := tilemap.New(s.width, s.height)
	if err != nil {
		return nil, err
	}

	var rooms []roomRect
	for attempt := 0; attempt < s.opts.MaxRooms; attempt++ {
		w := s.src.Next(s.opts.RoomMinSize, s.opts.RoomMaxSize+1)
		h := s.src.Next(s.opts.RoomMinSize, s.opts.RoomMaxSize+1)
		r := roomRect{
			x: s.src.Next(0, s.width-w),
			y: s.src.Next(0, s.height-h),
			w: w,
			h: h,
		}
		overlaps := false
		for _, placed := range rooms {
			if r.intersects(placed) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			rooms = append(rooms, r)
		}
	}

	for _, r := range rooms {
		s.carveRoom(m, r)
	}
	for i := 1; i < len(rooms); i++ {
		px, py := rooms[i-1].center()
		cx, cy := rooms[i].center()
		if s.src.Next(0, 2) == 0 {
			s.carveHorizontalCorridor(m, px, cx, py)
			s.carveVerticalCorridor(m, py, cy, cx)
		} else {
			s.carveVerticalCorridor(m, py, cy, px)
			s.carveHorizontalCorridor(m, px, cx, cy)
		}
	}

	return m, nil
}

// roomRect is a placed room rectangle; the walkable interior excludes its
// outermost ring.
type roomRect struct {
	x, y, w, h int
}

// center returns the rectangle midpoint.
func (r roomRect) center() (int, int) {
	return r.x + r.w/2, r.y + r.h/2
}

// intersects reports whether two rectangles touch or overlap; touching
// counts, which keeps a wall between neighboring room interiors.
func (r roomRect) intersects(o roomRect) bool {
	return r.x <= o.x+o.w && o.x <= r.x+r.w &&
		r.y <= o.y+o.h && o.y <= r.y+r.h
}

// carveRoom floors the rectangle interior.
func (s *RandomRoomsStrategy) carveRoom(m *tilemap.Map, r roomRect) {
	for y := r.y + 1; y < r.y+r.h; y++ {
		for x := r.x + 1; x < r.x+r.w; x++ {
			_ = m.SetCellProperties(x, y, true, true)
		}
	}
}

// carveHorizontalCorridor floors the row y between x1 and x2 inclusive.
func (s *RandomRoomsStrategy) carveHorizontalCorridor(m *tilemap.Map, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		_ = m.SetCellProperties(x, y, true, true)
	}
}

// carveVerticalCorridor floors the column x between y1 and y2 inclusive.
func (s *RandomRoomsStrategy) carveVerticalCorridor(m *tilemap.Map, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		_ = m.SetCellProperties(x, y, true, true)
	}
}
