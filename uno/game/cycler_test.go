package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 1, cycler.Current())
	cycler.Next()
	assert.Equal(t, 2, cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, 1, cycler.Current())
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 3, cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
}

func TestNext(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
	assert.Equal(t, 3, cycler.Next())
	assert.Equal(t, 0, cycler.Next())
	assert.Equal(t, 1, cycler.Next())
}

func TestPeek(t *testing.T) {
	cycler := game.NewCycler(3)
	require.Equal(t, 1, cycler.Peek())
	require.Equal(t, 0, cycler.Current())
	cycler.Reverse()
	require.Equal(t, 2, cycler.Peek())
}

func TestReverse(t *testing.T) {
	cycler := game.NewCycler(4)
	require.Equal(t, game.Clockwise, cycler.Direction())
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
	cycler.Reverse()
	require.Equal(t, game.CounterClockwise, cycler.Direction())
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 0, cycler.Next())
	assert.Equal(t, 3, cycler.Next())
	cycler.Reverse()
	assert.Equal(t, 0, cycler.Next())
	assert.Equal(t, 1, cycler.Next())
}

func TestTwoSeatsAlternate(t *testing.T) {
	cycler := game.NewCycler(2)
	assert.Equal(t, 1, cycler.Next())
	cycler.Reverse()
	assert.Equal(t, 0, cycler.Next())
	assert.Equal(t, 1, cycler.Next())
}
