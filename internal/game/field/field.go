package field

import (
	"encoding/json"
	"fmt"
)

type Location struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (l Location) Add(colInc, rowInc int) Location {
	return Location{Col: l.Col + colInc, Row: l.Row + rowInc}
}

func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Col, l.Row)
}

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o *Orientation) FromString(str string) error {
	switch str {
	case "horizontal", "h":
		*o = Horizontal
	case "vertical", "v":
		*o = Vertical
	default:
		return fmt.Errorf("invalid orientation: %q", str)
	}
	return nil
}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		panic("invalid orientation")
	}
}

func (o Orientation) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *Orientation) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	return o.FromString(str)
}

// Square is what an observer of the board sees at a location.
type Square int

const (
	Empty Square = iota
	Miss
	Hit
)

func (s *Square) FromString(str string) error {
	switch str {
	case "empty":
		*s = Empty
	case "miss":
		*s = Miss
	case "hit":
		*s = Hit
	default:
		return fmt.Errorf("invalid square: %q", str)
	}
	return nil
}

func (s Square) String() string {
	switch s {
	case Empty:
		return "empty"
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	default:
		panic("invalid square")
	}
}

func (s Square) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
