package position_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/geom/position"
)

func TestStep(t *testing.T) {
	p := position.Pos(3, 4)
	assert.Equal(t, position.Pos(3, 3), p.Step(position.North))
	assert.Equal(t, position.Pos(3, 5), p.Step(position.South))
	assert.Equal(t, position.Pos(4, 4), p.Step(position.East))
	assert.Equal(t, position.Pos(2, 4), p.Step(position.West))

	assert.Equal(t, position.Pos(3, 3), p.Step(position.Up))
	assert.Equal(t, position.Pos(3, 5), p.Step(position.Down))
	assert.Equal(t, position.Pos(4, 4), p.Step(position.Right))
	assert.Equal(t, position.Pos(2, 4), p.Step(position.Left))
}

func TestStepBy(t *testing.T) {
	p := position.Pos(0, 0)
	assert.Equal(t, position.Pos(0, -7), p.StepBy(position.North, 7))
	assert.Equal(t, position.Pos(-3, 0), p.StepBy(position.Left, 3))
	assert.Equal(t, position.Pos(0, 2), p.StepBy(position.Up, -2))
	assert.Equal(t, p, p.StepBy(position.East, 0))
}

func TestTurn(t *testing.T) {
	// Four turns the same way come back to the start.
	for _, c := range []position.Cardinal{position.North, position.South, position.East, position.West} {
		for _, turn := range []position.Turn{position.TurnLeft, position.TurnRight} {
			got := c
			for range 4 {
				got = got.Turn(turn)
			}
			assert.Equal(t, c, got, "%v turning %v", c, turn)
		}
	}

	assert.Equal(t, position.West, position.North.Turn(position.TurnLeft))
	assert.Equal(t, position.East, position.North.Turn(position.TurnRight))
	assert.Equal(t, position.East, position.South.Turn(position.TurnLeft))
	assert.Equal(t, position.South, position.East.Turn(position.TurnRight))
	assert.Equal(t, position.Down, position.Left.Turn(position.TurnLeft))
	assert.Equal(t, position.Up, position.Left.Turn(position.TurnRight))
}

func TestConversions(t *testing.T) {
	for _, d := range []position.Direction{position.Up, position.Down, position.Right, position.Left} {
		assert.Equal(t, d, d.Cardinal().Direction())
		assert.Equal(t, position.Pos(0, 0).Step(d), position.Pos(0, 0).Step(d.Cardinal()))
	}
	assert.Equal(t, position.North, position.Up.Cardinal())
	assert.Equal(t, position.Left, position.West.Direction())
}

func TestNeighbours(t *testing.T) {
	p := position.Pos(1, 1)
	assert.Equal(t, []position.Position{
		position.Pos(1, 0),
		position.Pos(2, 1),
		position.Pos(1, 2),
		position.Pos(0, 1),
	}, slices.Collect(p.Neighbours4()))

	n8 := slices.Collect(p.Neighbours8())
	require.Len(t, n8, 8)
	assert.Equal(t, position.Pos(1, 0), n8[0])
	assert.Equal(t, position.Pos(2, 0), n8[1])
	assert.Equal(t, position.Pos(0, 0), n8[7])
	assert.NotContains(t, n8, p)

	var n int
	for range p.Neighbours8() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestParse(t *testing.T) {
	c, err := position.ParseCardinal("East")
	require.NoError(t, err)
	assert.Equal(t, position.East, c)

	d, err := position.ParseDirection("Down")
	require.NoError(t, err)
	assert.Equal(t, position.Down, d)

	turn, err := position.ParseTurn("Right")
	require.NoError(t, err)
	assert.Equal(t, position.TurnRight, turn)

	_, err = position.ParseCardinal("Up")
	assert.ErrorIs(t, err, position.ErrUnknownName)
	_, err = position.ParseTurn("left")
	assert.ErrorIs(t, err, position.ErrUnknownName)
}

func TestString(t *testing.T) {
	assert.Equal(t, "(-1,2)", position.Pos(-1, 2).String())
	assert.Equal(t, "West", position.West.String())
	assert.Equal(t, "Direction(0)", position.Direction(0).String())
}
