package position

import (
	"fmt"
)

type Turn int

const (
	TurnLeft Turn = iota + 1
	TurnRight
)

func (t Turn) String() string {
	switch t {
	case TurnLeft:
		return "Left"
	case TurnRight:
		return "Right"
	default:
		return fmt.Sprintf("Turn(%d)", int(t))
	}
}

// Cardinal is a compass direction.
type Cardinal int

const (
	North Cardinal = iota + 1
	South
	East
	West
)

func (c Cardinal) String() string {
	switch c {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Cardinal(%d)", int(c))
	}
}

func (c Cardinal) offset() Position {
	return c.Direction().offset()
}

// Turn returns the direction faced after turning a quarter in direction t.
func (c Cardinal) Turn(t Turn) Cardinal {
	return c.Direction().Turn(t).Cardinal()
}

// Direction returns the screen direction corresponding to c.
func (c Cardinal) Direction() Direction {
	switch c {
	case North:
		return Up
	case South:
		return Down
	case East:
		return Right
	case West:
		return Left
	default:
		panic(fmt.Sprintf("unhandled case %v", c))
	}
}

// Direction is a screen direction.
type Direction int

const (
	Up Direction = iota + 1
	Down
	Right
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Right:
		return "Right"
	case Left:
		return "Left"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func (d Direction) offset() Position {
	switch d {
	case Up:
		return Position{0, -1}
	case Down:
		return Position{0, 1}
	case Right:
		return Position{1, 0}
	case Left:
		return Position{-1, 0}
	default:
		panic(fmt.Sprintf("unhandled case %v", d))
	}
}

// Turn returns the direction faced after turning a quarter in direction t.
func (d Direction) Turn(t Turn) Direction {
	switch t {
	case TurnLeft:
		switch d {
		case Up:
			return Left
		case Left:
			return Down
		case Down:
			return Right
		case Right:
			return Up
		}
	case TurnRight:
		switch d {
		case Up:
			return Right
		case Right:
			return Down
		case Down:
			return Left
		case Left:
			return Up
		}
	}
	panic(fmt.Sprintf("unhandled case %v, %v", d, t))
}

// Cardinal returns the compass direction corresponding to d.
func (d Direction) Cardinal() Cardinal {
	switch d {
	case Up:
		return North
	case Down:
		return South
	case Right:
		return East
	case Left:
		return West
	default:
		panic(fmt.Sprintf("unhandled case %v", d))
	}
}
