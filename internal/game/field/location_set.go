package field

import (
	"cmp"
	"encoding/json"
	"iter"
	"slices"

	"github.com/dolthub/swiss"
)

// LocationSet is an immutable set of locations.
//
// Add never modifies the receiver, it returns a new set.
// The zero value is an empty set.
type LocationSet struct {
	m *swiss.Map[Location, struct{}]
}

func NewLocationSet(locs ...Location) LocationSet {
	m := swiss.NewMap[Location, struct{}](uint32(len(locs)))
	for _, loc := range locs {
		m.Put(loc, struct{}{})
	}
	return LocationSet{m}
}

func (s LocationSet) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Count()
}

func (s LocationSet) Contains(loc Location) bool {
	return s.m != nil && s.m.Has(loc)
}

func (s LocationSet) Add(loc Location) LocationSet {
	if s.Contains(loc) {
		return s
	}

	m := s.clone(1)
	m.Put(loc, struct{}{})
	return LocationSet{m}
}

func (s LocationSet) All() iter.Seq[Location] {
	return func(yield func(Location) bool) {
		if s.m == nil {
			return
		}
		s.m.Iter(func(loc Location, _ struct{}) (stop bool) {
			return !yield(loc)
		})
	}
}

// Returns set members ordered by column, then by row.
func (s LocationSet) Sorted() []Location {
	locs := make([]Location, 0, s.Len())
	locs = slices.AppendSeq(locs, s.All())
	slices.SortFunc(locs, func(a, b Location) int {
		if c := cmp.Compare(a.Col, b.Col); c != 0 {
			return c
		}
		return cmp.Compare(a.Row, b.Row)
	})
	return locs
}

func (s LocationSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *LocationSet) UnmarshalJSON(data []byte) error {
	var locs []Location
	if err := json.Unmarshal(data, &locs); err != nil {
		return err
	}
	*s = NewLocationSet(locs...)
	return nil
}

func (s LocationSet) clone(extra int) *swiss.Map[Location, struct{}] {
	m := swiss.NewMap[Location, struct{}](uint32(s.Len() + extra))
	if s.m != nil {
		s.m.Iter(func(loc Location, _ struct{}) (stop bool) {
			m.Put(loc, struct{}{})
			return false
		})
	}
	return m
}
