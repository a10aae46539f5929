package fleet

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/mrsobakin/battleships/internal/game/field"
)

const (
	AircraftCarrier = "Aircraft Carrier"
	Battleship      = "Battleship"
	Submarine       = "Submarine"
	Destroyer       = "Destroyer"
	PatrolBoat      = "Patrol Boat"
	Minesweeper     = "Minesweeper"
	Frigate         = "Frigate"
)

// Five unplaced ships of the classic game.
func Classic() []field.Ship {
	return []field.Ship{
		field.NewShip(AircraftCarrier, 5),
		field.NewShip(Battleship, 4),
		field.NewShip(Submarine, 3),
		field.NewShip(Destroyer, 3),
		field.NewShip(PatrolBoat, 2),
	}
}

// Four unplaced patrol boats.
func Patrol() []field.Ship {
	return []field.Ship{
		field.NewShip(PatrolBoat, 2),
		field.NewShip(PatrolBoat, 2),
		field.NewShip(PatrolBoat, 2),
		field.NewShip(PatrolBoat, 2),
	}
}

// Two small placed ships, enough to play a game to the end.
func Small() []field.Ship {
	return []field.Ship{
		field.NewPlacedShip(Minesweeper, 1, field.Location{Col: 2, Row: 3}, field.Horizontal),
		field.NewPlacedShip(Frigate, 2, field.Location{Col: 4, Row: 5}, field.Vertical),
	}
}

// The classic fleet at fixed positions on a 10x10 board.
func Training() []field.Ship {
	return []field.Ship{
		field.NewPlacedShip(AircraftCarrier, 5, field.Location{Col: 1, Row: 8}, field.Horizontal),
		field.NewPlacedShip(Battleship, 4, field.Location{Col: 8, Row: 1}, field.Vertical),
		field.NewPlacedShip(Submarine, 3, field.Location{Col: 7, Row: 6}, field.Vertical),
		field.NewPlacedShip(Destroyer, 3, field.Location{Col: 5, Row: 9}, field.Horizontal),
		field.NewPlacedShip(PatrolBoat, 2, field.Location{Col: 1, Row: 4}, field.Vertical),
	}
}

var standard = map[string]func() []field.Ship{
	"classic":  Classic,
	"patrol":   Patrol,
	"small":    Small,
	"training": Training,
}

func Names() []string {
	names := make([]string, 0, len(standard))
	for name := range standard {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func ByName(name string) ([]field.Ship, error) {
	f, ok := standard[name]
	if !ok {
		return nil, fmt.Errorf("unknown fleet %q", name)
	}
	return f(), nil
}

// Reads ships, one per line:
//
//	<size> <h|v> <col> <row> <name>
//
// Blank lines and lines starting with '#' are skipped. The sequence
// ends at the first malformed line.
func Parse(src io.Reader) iter.Seq[field.Ship] {
	return func(yield func(s field.Ship) bool) {
		lines := bufio.NewScanner(src)

		for lines.Scan() {
			line := strings.TrimSpace(lines.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			fields := strings.Fields(line)
			if len(fields) < 5 {
				return
			}

			var ship field.Ship
			var direction rune

			n, err := fmt.Sscanf(strings.Join(fields[:4], " "), "%d %c %d %d",
				&ship.Size, &direction, &ship.Location.Col, &ship.Location.Row)

			if err != nil || n != 4 || ship.Size <= 0 {
				return
			}

			switch direction {
			case 'v':
				ship.Orientation = field.Vertical
			case 'h':
				ship.Orientation = field.Horizontal
			default:
				return
			}

			ship.Name = strings.Join(fields[4:], " ")

			if !yield(ship) {
				return
			}
		}
	}
}
