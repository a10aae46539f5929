package placement

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrsobakin/battleships/internal/game/field"
)

const placingMsg = "Computer placing the %s\n"

type ErrorUnplaceable struct {
	Ship     string
	Attempts int
}

var (
	ErrUnplaceable error = &ErrorUnplaceable{}
)

func (e *ErrorUnplaceable) Is(target error) bool {
	_, ok := target.(*ErrorUnplaceable)
	return ok
}

func (e *ErrorUnplaceable) Error() string {
	return fmt.Sprintf("no valid position for %q after %d attempts", e.Ship, e.Attempts)
}

// Position is a drawn head location and orientation, together with
// the source to continue drawing from.
type Position struct {
	Location    field.Location
	Orientation field.Orientation
	Next        Source
}

// Placed is a positioned ship and the message announcing it.
type Placed struct {
	Ship    field.Ship
	Message string
}

// Draws column from slot 0, row from slot 1 and orientation from
// slot 2 of src. The source following the orientation draw is the
// one to continue from.
func RandomPosition(boardSize int, src Source) Position {
	col, _ := Skip(src, 0, 0, boardSize)
	row, _ := Skip(src, 1, 0, boardSize)
	orient, next := Skip(src, 2, 0, 2)

	return Position{
		Location:    field.Location{Col: col, Row: row},
		Orientation: field.Orientation(orient),
		Next:        next,
	}
}

// Draws positions until one is inside the board and clear of placed.
//
// There is no attempt limit: if ship cannot be placed at all, this
// never returns. Use Placer when that cannot be ruled out.
func ValidRandomPosition(boardSize int, placed []field.Ship, ship field.Ship, src Source) Position {
	pos, _ := validRandomPosition(context.Background(), boardSize, placed, ship, src, 0)
	return pos
}

func LocateShip(boardSize int, placed []field.Ship, ship field.Ship, src Source) (Placed, Source) {
	p, next, _ := locateShip(context.Background(), boardSize, placed, ship, src, 0)
	return p, next
}

// Places ships in order, each one clear of placed and of the ships
// placed before it.
func LocateShips(boardSize int, unplaced, placed []field.Ship, src Source) ([]Placed, Source) {
	res, next, _ := locateShips(context.Background(), boardSize, unplaced, placed, src, 0)
	return res, next
}

// Builds a board with the fleet placed at random. The fleet must be
// placeable on the board, otherwise this never returns.
func NewRandomBoard(boardSize int, fleet []field.Ship, src Source) field.Board {
	res, _, _ := locateShips(context.Background(), boardSize, fleet, nil, src, 0)
	return newBoard(boardSize, res)
}

// Placer places fleets with a bound on the search.
type Placer struct {
	// Draws allowed per ship. Zero or less means no limit.
	MaxAttempts int
}

// Same as NewRandomBoard, but gives up with ErrorUnplaceable once a
// ship runs out of attempts, or with the context cause once ctx is done.
func (p *Placer) Place(ctx context.Context, boardSize int, fleet []field.Ship, src Source) (field.Board, error) {
	res, _, err := locateShips(ctx, boardSize, fleet, nil, src, p.MaxAttempts)
	if err != nil {
		return field.Board{}, fmt.Errorf("failed to place fleet: %w", err)
	}
	return newBoard(boardSize, res), nil
}

func newBoard(boardSize int, placements []Placed) field.Board {
	ships := make([]field.Ship, len(placements))
	var msgs strings.Builder

	for i, p := range placements {
		ships[i] = p.Ship
		msgs.WriteString(p.Message)
	}

	board := field.NewBoard(boardSize, ships)
	board.Messages = msgs.String()
	return board
}

func locateShips(ctx context.Context, boardSize int, unplaced, placed []field.Ship, src Source, maxAttempts int) ([]Placed, Source, error) {
	res := make([]Placed, 0, len(unplaced))
	placed = append([]field.Ship(nil), placed...)

	for _, ship := range unplaced {
		p, next, err := locateShip(ctx, boardSize, placed, ship, src, maxAttempts)
		if err != nil {
			return nil, src, err
		}

		res = append(res, p)
		placed = append(placed, p.Ship)
		src = next
	}

	return res, src, nil
}

func locateShip(ctx context.Context, boardSize int, placed []field.Ship, ship field.Ship, src Source, maxAttempts int) (Placed, Source, error) {
	pos, err := validRandomPosition(ctx, boardSize, placed, ship, src, maxAttempts)
	if err != nil {
		return Placed{}, src, err
	}

	return Placed{
		Ship:    ship.SetPosition(pos.Location, pos.Orientation),
		Message: fmt.Sprintf(placingMsg, ship.Name),
	}, pos.Next, nil
}

func validRandomPosition(ctx context.Context, boardSize int, placed []field.Ship, ship field.Ship, src Source, maxAttempts int) (Position, error) {
	for attempt := 1; maxAttempts <= 0 || attempt <= maxAttempts; attempt++ {
		if ctx.Err() != nil {
			return Position{}, context.Cause(ctx)
		}

		pos := RandomPosition(boardSize, src)
		candidate := field.NewPlacedShip(ship.Name, ship.Size, pos.Location, pos.Orientation)

		if field.IsValidPosition(boardSize, placed, candidate) {
			return pos, nil
		}

		// Rejected draws are dropped, only their continuation is kept.
		src = pos.Next
	}

	return Position{}, &ErrorUnplaceable{
		Ship:     ship.Name,
		Attempts: maxAttempts,
	}
}
