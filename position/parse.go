package position

import (
	"errors"
	"fmt"
)

// ErrUnknownName is returned when a name doesn't match any value of the
// requested type.
var ErrUnknownName = errors.New("unknown name")

// ParseTurn parses "Left" or "Right".
func ParseTurn(s string) (Turn, error) {
	return parse(s, TurnLeft, TurnRight)
}

// ParseCardinal parses one of "North", "South", "East" and "West".
func ParseCardinal(s string) (Cardinal, error) {
	return parse(s, North, South, East, West)
}

// ParseDirection parses one of "Up", "Down", "Right" and "Left".
func ParseDirection(s string) (Direction, error) {
	return parse(s, Up, Down, Right, Left)
}

func parse[T fmt.Stringer](s string, values ...T) (T, error) {
	for _, v := range values {
		if v.String() == s {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("parsing %T %q: %w", zero, s, ErrUnknownName)
}
