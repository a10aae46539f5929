package field

import (
	"fmt"
	"strings"
)

const (
	allSunkMsg = "All ships sunk!"
	missMsg    = "Sorry, (%d,%d) is a miss."
)

// Board is a Size x Size grid with a fleet on it. Like Ship, it is a
// value: every attack returns a new Board and leaves the old one intact.
type Board struct {
	Size     int         `json:"size"`
	Ships    []Ship      `json:"ships"`
	Messages string      `json:"messages"`
	Misses   LocationSet `json:"misses"`
}

func NewBoard(size int, ships []Ship) Board {
	return Board{
		Size:  size,
		Ships: append([]Ship(nil), ships...),
	}
}

func AllSunk(ships []Ship) bool {
	for _, ship := range ships {
		if !ship.IsSunk() {
			return false
		}
	}
	return true
}

func (b Board) AllSunk() bool {
	return AllSunk(b.Ships)
}

// Finds a ship by name. Names are not required to be unique,
// the first match wins.
func (b Board) Ship(name string) (Ship, bool) {
	for _, ship := range b.Ships {
		if ship.Name == name {
			return ship, true
		}
	}
	return Ship{}, false
}

// Reports recorded outcomes only: a cell of a ship nobody
// fired at reads as Empty.
func (b Board) ReadSquare(loc Location) Square {
	for _, ship := range b.Ships {
		if ship.IsHitInLocation(loc) {
			return Hit
		}
	}

	if b.Misses.Contains(loc) {
		return Miss
	}

	return Empty
}

// Fires a single missile. Messages of the returned board describe
// this shot only.
func (b Board) FireMissile(loc Location) Board {
	return b.checkSquare(loc, false)
}

// Fires at the 3x3 block centred on loc. Outcomes of all nine squares
// are appended to the board messages, in BombTargets order. A square
// that sinks the last ship drops the messages gathered before it.
func (b Board) FireBomb(loc Location) Board {
	for _, target := range BombTargets(loc) {
		b = b.checkSquare(target, true)
	}

	return b
}

// Column-major, ascending on both axes.
func BombTargets(center Location) []Location {
	targets := make([]Location, 0, 9)
	for col := center.Col - 1; col <= center.Col+1; col++ {
		for row := center.Row - 1; row <= center.Row+1; row++ {
			targets = append(targets, Location{Col: col, Row: row})
		}
	}
	return targets
}

func (b Board) checkSquare(loc Location, aggregate bool) Board {
	ships := make([]Ship, len(b.Ships))

	var hit bool
	var msgs strings.Builder

	// Footprints do not overlap, so at most one ship reports a hit.
	for i, ship := range b.Ships {
		shot := ship.FireAt(loc)
		ships[i] = shot.Ship
		hit = hit || shot.Hit
		msgs.WriteString(shot.Message)
	}

	var prev string
	if aggregate {
		prev = b.Messages
	}

	next := Board{
		Size:   b.Size,
		Ships:  ships,
		Misses: b.Misses,
	}

	switch {
	case hit && AllSunk(ships):
		// The final hit restarts the log, even within a bomb.
		next.Messages = msgs.String() + allSunkMsg
	case hit:
		next.Messages = prev + msgs.String()
	default:
		next.Messages = prev + msgs.String() + fmt.Sprintf(missMsg, loc.Col, loc.Row)
		next.Misses = b.Misses.Add(loc)
	}

	return next
}
