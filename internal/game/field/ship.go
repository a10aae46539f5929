package field

import "fmt"

const (
	hitMsg  = "Hit a %s at (%d,%d)."
	sunkMsg = "%s sunk!"
)

// Ship is an immutable value. Operations that change a ship
// return a modified copy.
//
// Ship occupies Size consecutive cells starting at Location, growing
// along columns if Horizontal and along rows if Vertical.
type Ship struct {
	Name        string      `json:"name"`
	Size        int         `json:"size"`
	Location    Location    `json:"location"`
	Orientation Orientation `json:"orientation"`
	Hits        LocationSet `json:"hits"`
}

// Creates a ship that is not placed yet. It sits horizontally
// at the zero location until SetPosition is called.
func NewShip(name string, size int) Ship {
	return Ship{Name: name, Size: size}
}

func NewPlacedShip(name string, size int, loc Location, orient Orientation) Ship {
	return Ship{
		Name:        name,
		Size:        size,
		Location:    loc,
		Orientation: orient,
	}
}

func (s Ship) SetPosition(loc Location, orient Orientation) Ship {
	s.Location = loc
	s.Orientation = orient
	return s
}

func (s Ship) Horizontal() bool {
	return s.Orientation == Horizontal
}

func (s Ship) Vertical() bool {
	return s.Orientation == Vertical
}

// Column span of a horizontal ship, row span of a vertical one.
func (s Ship) Extent() Extent {
	if s.Horizontal() {
		return NewExtent(s.Location.Col, s.Location.Col+s.Size-1)
	}
	return NewExtent(s.Location.Row, s.Location.Row+s.Size-1)
}

func (s Ship) Occupies(loc Location) bool {
	if s.Horizontal() {
		return s.Location.Row == loc.Row &&
			loc.Col >= s.Location.Col && loc.Col < s.Location.Col+s.Size
	}
	return s.Location.Col == loc.Col &&
		loc.Row >= s.Location.Row && loc.Row < s.Location.Row+s.Size
}

// Returns occupied cells from the head to the tail.
func (s Ship) Locations() []Location {
	locs := make([]Location, s.Size)
	for i := range locs {
		if s.Horizontal() {
			locs[i] = s.Location.Add(i, 0)
		} else {
			locs[i] = s.Location.Add(0, i)
		}
	}
	return locs
}

func (s Ship) IsSunk() bool {
	return s.Hits.Len() >= s.Size
}

func (s Ship) IsHitInLocation(loc Location) bool {
	return s.Hits.Contains(loc)
}

// Shot is the outcome of firing at a single ship.
type Shot struct {
	Ship    Ship
	Hit     bool
	Message string
}

// Fires at loc. Firing again at an already hit cell keeps hits
// unchanged but still reports the hit (or the sinking).
func (s Ship) FireAt(loc Location) Shot {
	if !s.Occupies(loc) {
		return Shot{Ship: s}
	}

	s.Hits = s.Hits.Add(loc)

	var msg string
	if s.IsSunk() {
		msg = fmt.Sprintf(sunkMsg, s.Name)
	} else {
		msg = fmt.Sprintf(hitMsg, s.Name, loc.Col, loc.Row)
	}

	return Shot{
		Ship:    s,
		Hit:     true,
		Message: msg,
	}
}

// Coordinates must use the same base as boardSize.
func (s Ship) FitsWithin(boardSize int) bool {
	if s.Horizontal() {
		return s.Size <= boardSize-s.Location.Col
	}
	return s.Size <= boardSize-s.Location.Row
}

func IsValidPosition(boardSize int, existing []Ship, candidate Ship) bool {
	if !candidate.FitsWithin(boardSize) {
		return false
	}

	for _, ship := range existing {
		if Intersects(ship, candidate) {
			return false
		}
	}

	return true
}
