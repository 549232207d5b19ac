package mapgen

import (
	"github.com/jannef/RogueSharp/tilemap"
)

// StringDeserializeStrategy rebuilds a map from its four-symbol text form
// (see tilemap.Parse). It is the fixture-loading strategy: a hand-written
// literal becomes an exact, reproducible map.
type StringDeserializeStrategy struct {
	representation string
}

// NewStringDeserializeStrategy constructs the strategy around a map
// representation. The string is validated lazily by CreateMap, which
// surfaces tilemap's parse sentinels.
func NewStringDeserializeStrategy(representation string) *StringDeserializeStrategy {
	return &StringDeserializeStrategy{representation: representation}
}

// Name returns the strategy name.
func (s *StringDeserializeStrategy) Name() string { return "String Deserialize" }

// CreateMap parses the stored representation into a fresh map. Each call
// returns an independent copy.
func (s *StringDeserializeStrategy) CreateMap() (*tilemap.Map, error) {
	return tilemap.Parse(s.representation)
}
