package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zucenko/ladders/model"
)

func TestAdvanceAlongRow(t *testing.T) {
	p := &model.Player{Id: model.PlayerOne}
	Advance(p, 4)
	assert.Equal(t, model.Point{X: 4, Y: 0}, p.Position())
	assert.False(t, p.Ascended)
}

func TestAdvanceTurnsAtRowEnd(t *testing.T) {
	p := &model.Player{Id: model.PlayerOne, X: 6, Y: 0}
	Advance(p, 3)
	assert.Equal(t, model.Point{X: 6, Y: 1}, p.Position())
	assert.True(t, p.Ascended)

	// odd rows run right to left and turn at column 0
	p = &model.Player{Id: model.PlayerOne, X: 1, Y: 1}
	Advance(p, 2)
	assert.Equal(t, model.Point{X: 0, Y: 2}, p.Position())
	assert.True(t, p.Ascended)

	Advance(p, 1)
	assert.False(t, p.Ascended)
}

func TestAdvanceStopsAtFinish(t *testing.T) {
	p := &model.Player{Id: model.PlayerOne, X: 1, Y: model.Height - 1}
	Advance(p, 6)
	assert.Equal(t, model.Point{X: 0, Y: model.Height - 1}, p.Position())

	Advance(p, 3)
	assert.Equal(t, model.Point{X: 0, Y: model.Height - 1}, p.Position())
}

func TestAdvanceNegativeStaysPut(t *testing.T) {
	p := &model.Player{Id: model.PlayerOne, X: 3, Y: 2}
	Advance(p, -2)
	assert.Equal(t, model.Point{X: 3, Y: 2}, p.Position())
}

func TestAdvancePathEquivalence(t *testing.T) {
	for pos := 0; pos < model.TrackLength; pos++ {
		for steps := 0; steps <= 12; steps++ {
			x, y := model.FromTrack(pos)
			once := &model.Player{X: x, Y: y}
			stepwise := &model.Player{X: x, Y: y}

			Advance(once, steps)
			for i := 0; i < steps; i++ {
				Advance(stepwise, 1)
			}
			assert.Equal(t, once.Position(), stepwise.Position(), "from %d by %d", pos, steps)
		}
	}
}

func TestNudgeWraps(t *testing.T) {
	p := &model.Player{X: 3, Y: 5}
	for i := 0; i < model.Width; i++ {
		Nudge(p, 1, 0)
	}
	assert.Equal(t, model.Point{X: 3, Y: 5}, p.Position())

	for i := 0; i < model.Height; i++ {
		Nudge(p, 0, -1)
	}
	assert.Equal(t, model.Point{X: 3, Y: 5}, p.Position())

	p = &model.Player{X: 0, Y: 0}
	Nudge(p, -1, 0)
	assert.Equal(t, model.Point{X: model.Width - 1, Y: 0}, p.Position())
	Nudge(p, 0, -1)
	assert.Equal(t, model.Point{X: model.Width - 1, Y: model.Height - 1}, p.Position())
	Nudge(p, 1, 0)
	Nudge(p, 0, 1)
	assert.Equal(t, model.Point{X: 0, Y: 0}, p.Position())
}

func TestNudgeIsOneCellOnOneAxis(t *testing.T) {
	p := &model.Player{X: 0, Y: 0}
	assert.True(t, Nudge(p, 0, 15))
	assert.Equal(t, model.Point{X: 0, Y: 1}, p.Position())
	assert.True(t, Nudge(p, -7, 0))
	assert.Equal(t, model.Point{X: model.Width - 1, Y: 1}, p.Position())

	assert.False(t, Nudge(p, 1, 1))
	assert.False(t, Nudge(p, 0, 0))
	assert.Equal(t, model.Point{X: model.Width - 1, Y: 1}, p.Position())
}

func TestNudgeStep(t *testing.T) {
	tests := []struct {
		dx, dy     int
		wantX      int
		wantY      int
		wantAccept bool
	}{
		{3, 0, 1, 0, true},
		{0, -9, 0, -1, true},
		{0, 1, 0, 1, true},
		{2, -2, 0, 0, false},
		{0, 0, 0, 0, false},
	}
	for _, tt := range tests {
		x, y, ok := NudgeStep(tt.dx, tt.dy)
		assert.Equal(t, tt.wantAccept, ok, "(%d,%d)", tt.dx, tt.dy)
		assert.Equal(t, tt.wantX, x, "(%d,%d)", tt.dx, tt.dy)
		assert.Equal(t, tt.wantY, y, "(%d,%d)", tt.dx, tt.dy)
	}
}
