package placement_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsobakin/battleships/internal/game/field"
	"github.com/mrsobakin/battleships/internal/game/fleet"
	"github.com/mrsobakin/battleships/internal/game/placement"
)

func loc(col, row int) field.Location {
	return field.Location{Col: col, Row: row}
}

func assertPlacedValidly(t *testing.T, b field.Board) {
	for i, ship := range b.Ships {
		assert.True(t, field.IsValidPosition(b.Size, b.Ships[:i], ship), "%s at %v is placed invalidly", ship.Name, ship.Location)
	}
}

func TestSource(t *testing.T) {
	t.Run("PCG_Pure", func(t *testing.T) {
		src := placement.NewPCG(1, 2)

		a, nextA := src.Intn(0, 100)
		b, nextB := src.Intn(0, 100)
		assert.Equal(t, a, b, "drawing from the same state should replay the value")

		c, _ := nextA.Intn(0, 100)
		d, _ := nextB.Intn(0, 100)
		assert.Equal(t, c, d)
	})

	t.Run("PCG_Range", func(t *testing.T) {
		var src placement.Source = placement.NewPCG(42, 42)
		for range 1000 {
			var v int
			v, src = src.Intn(3, 7)
			assert.GreaterOrEqual(t, v, 3)
			assert.Less(t, v, 7)
		}
	})

	t.Run("Sequence", func(t *testing.T) {
		var src placement.Source = placement.NewSequence(4, 11, -1)

		var got []int
		for range 4 {
			var v int
			v, src = src.Intn(0, 10)
			got = append(got, v)
		}
		assert.Equal(t, []int{4, 1, 9, 4}, got)

		v, _ := placement.NewSequence(7).Intn(5, 8)
		assert.Equal(t, 6, v)
	})

	t.Run("Skip", func(t *testing.T) {
		src := placement.NewSequence(1, 2, 3, 4)

		v, next := placement.Skip(src, 2, 0, 10)
		assert.Equal(t, 3, v)

		v, _ = next.Intn(0, 10)
		assert.Equal(t, 4, v)

		v, _ = placement.Skip(src, 0, 0, 10)
		assert.Equal(t, 1, v)
	})
}

func TestRandomPosition(t *testing.T) {
	src := placement.NewSequence(5, 1, 1, 7)

	pos := placement.RandomPosition(10, src)
	assert.Equal(t, loc(5, 1), pos.Location)
	assert.Equal(t, field.Vertical, pos.Orientation)

	v, _ := pos.Next.Intn(0, 10)
	assert.Equal(t, 7, v, "continuation should follow the orientation draw")
}

// A A A A A . .
// . . B B . . .
func TestValidRandomPosition(t *testing.T) {
	placed := []field.Ship{
		field.NewPlacedShip("A", 5, loc(0, 0), field.Horizontal),
	}
	ship := field.NewShip("B", 2)

	src := placement.NewSequence(
		2, 0, 1, // crosses A
		9, 5, 0, // out of board
		2, 1, 0,
		8,
	)

	pos := placement.ValidRandomPosition(10, placed, ship, src)
	assert.Equal(t, loc(2, 1), pos.Location)
	assert.Equal(t, field.Horizontal, pos.Orientation)

	v, _ := pos.Next.Intn(0, 10)
	assert.Equal(t, 8, v)
}

func TestLocateShip(t *testing.T) {
	p, next := placement.LocateShip(10, nil, field.NewShip(fleet.Destroyer, 3), placement.NewSequence(4, 4, 1, 6))

	assert.Equal(t, "Computer placing the Destroyer\n", p.Message)
	assert.Equal(t, loc(4, 4), p.Ship.Location)
	assert.Equal(t, field.Vertical, p.Ship.Orientation)
	assert.Equal(t, 3, p.Ship.Size)

	v, _ := next.Intn(0, 10)
	assert.Equal(t, 6, v)
}

// 2 . . . . . . . . .
// 2 . . . . 0 0 . . .
// . . . . . . . . . .
// . . . 3 . . . . . .
// . . . 3 . . . . . .
// . . . . . . . . . .
// . . . . . . . . . .
// . . . . . . . . . .
// . . 1 1 . . . . . .
func TestNewRandomBoard_Scripted(t *testing.T) {
	src := placement.NewSequence(
		5, 1, 0,
		2, 8, 0,
		5, 1, 1, // crosses ship 0
		0, 0, 1,
		9, 0, 0, // out of board
		3, 3, 1,
	)

	b := placement.NewRandomBoard(10, fleet.Patrol(), src)

	require.Len(t, b.Ships, 4)
	assert.Equal(t, 10, b.Size)
	assert.Equal(t, 0, b.Misses.Len())

	s0, s1, s2, s3 := b.Ships[0], b.Ships[1], b.Ships[2], b.Ships[3]

	assert.True(t, s0.Occupies(loc(5, 1)))
	assert.True(t, s0.Occupies(loc(6, 1)))

	assert.True(t, s1.Occupies(loc(2, 8)))
	assert.True(t, s1.Occupies(loc(3, 8)))

	assert.Equal(t, []field.Location{loc(0, 0), loc(0, 1)}, s2.Locations())
	assert.Equal(t, []field.Location{loc(3, 3), loc(3, 4)}, s3.Locations())

	assert.Equal(t,
		"Computer placing the Patrol Boat\n"+
			"Computer placing the Patrol Boat\n"+
			"Computer placing the Patrol Boat\n"+
			"Computer placing the Patrol Boat\n",
		b.Messages)

	assertPlacedValidly(t, b)
}

func TestLocateShips_AvoidsPlaced(t *testing.T) {
	placed := fleet.Small()

	src := placement.NewSequence(
		2, 3, 0, // crosses the minesweeper
		4, 4, 1, // crosses the frigate
		7, 7, 0,
	)

	res, _ := placement.LocateShips(10, []field.Ship{field.NewShip(fleet.Submarine, 3)}, placed, src)

	require.Len(t, res, 1)
	assert.Equal(t, loc(7, 7), res[0].Ship.Location)
	assert.Equal(t, field.Horizontal, res[0].Ship.Orientation)
	assert.Len(t, placed, 2, "placed ships should not be modified")
}

func TestLocateShips_Empty(t *testing.T) {
	src := placement.NewSequence(1)

	res, next := placement.LocateShips(10, nil, nil, src)
	assert.Empty(t, res)
	assert.Equal(t, placement.Source(src), next)

	b := placement.NewRandomBoard(10, nil, src)
	assert.Empty(t, b.Ships)
	assert.Empty(t, b.Messages)
	assert.True(t, b.AllSunk())
}

func TestNewRandomBoard_Deterministic(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		a := placement.NewRandomBoard(10, fleet.Classic(), placement.NewPCG(seed, 7))
		b := placement.NewRandomBoard(10, fleet.Classic(), placement.NewPCG(seed, 7))

		require.Len(t, a.Ships, 5)
		require.Len(t, b.Ships, 5)

		for i := range a.Ships {
			assert.Equal(t, a.Ships[i].Name, b.Ships[i].Name)
			assert.Equal(t, a.Ships[i].Location, b.Ships[i].Location)
			assert.Equal(t, a.Ships[i].Orientation, b.Ships[i].Orientation)
		}
		assert.Equal(t, a.Messages, b.Messages)

		assertPlacedValidly(t, a)
	}
}

func TestNewRandomBoard_Playable(t *testing.T) {
	b := placement.NewRandomBoard(10, fleet.Classic(), placement.NewPCG(3, 14))

	for _, ship := range b.Ships {
		for _, l := range ship.Locations() {
			b = b.FireMissile(l)
		}
	}

	assert.True(t, b.AllSunk())
	assert.Equal(t, 0, b.Misses.Len())
	assert.Contains(t, b.Messages, "All ships sunk!")
}

func TestPlacer(t *testing.T) {
	t.Run("MatchesUnbounded", func(t *testing.T) {
		p := placement.Placer{MaxAttempts: 10000}

		got, err := p.Place(context.Background(), 10, fleet.Classic(), placement.NewPCG(9, 9))
		require.NoError(t, err)

		want := placement.NewRandomBoard(10, fleet.Classic(), placement.NewPCG(9, 9))
		for i := range want.Ships {
			assert.Equal(t, want.Ships[i].Location, got.Ships[i].Location)
			assert.Equal(t, want.Ships[i].Orientation, got.Ships[i].Orientation)
		}
		assert.Equal(t, want.Messages, got.Messages)
	})

	t.Run("Unplaceable", func(t *testing.T) {
		p := placement.Placer{MaxAttempts: 50}

		_, err := p.Place(context.Background(), 3, fleet.Classic(), placement.NewPCG(1, 1))
		require.Error(t, err)
		assert.ErrorIs(t, err, placement.ErrUnplaceable)

		var unplaceable *placement.ErrorUnplaceable
		require.True(t, errors.As(err, &unplaceable))
		assert.Equal(t, fleet.AircraftCarrier, unplaceable.Ship)
		assert.Equal(t, 50, unplaceable.Attempts)
	})

	// At most two 2-cell ships fit on a 2x2 board.
	t.Run("UnplaceableLaterShip", func(t *testing.T) {
		p := placement.Placer{MaxAttempts: 200}

		_, err := p.Place(context.Background(), 2, fleet.Patrol(), placement.NewPCG(5, 5))
		assert.ErrorIs(t, err, placement.ErrUnplaceable)
	})

	t.Run("Cancelled", func(t *testing.T) {
		errStop := errors.New("stop")
		ctx, cancel := context.WithCancelCause(context.Background())
		cancel(errStop)

		p := placement.Placer{}
		_, err := p.Place(ctx, 3, fleet.Classic(), placement.NewPCG(1, 1))
		assert.ErrorIs(t, err, errStop)
	})
}
