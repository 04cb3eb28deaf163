package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted returns the given dice faces in order, cycling.
type scripted struct {
	faces []int
	i     int
}

func (s *scripted) Intn(n int) int {
	v := s.faces[s.i%len(s.faces)]
	s.i++
	return v - 1
}

func TestDiceSamplesOnCadence(t *testing.T) {
	d := NewDice(&scripted{faces: []int{3, 5, 2}})
	assert.False(t, d.Tick(1000), "idle dice never sample")

	d.Start(1000)
	assert.True(t, d.Rolling)
	assert.Equal(t, 3, d.Value)

	assert.False(t, d.Tick(1099))
	assert.Equal(t, 3, d.Value)

	assert.True(t, d.Tick(1100))
	assert.Equal(t, 5, d.Value)

	assert.True(t, d.Tick(1250))
	assert.Equal(t, 2, d.Value)

	assert.Equal(t, 2, d.Stop())
	assert.False(t, d.Rolling)
	assert.False(t, d.Tick(5000))
	assert.Equal(t, 2, d.Value)
}

func TestDiceAnchorDelaysNextSample(t *testing.T) {
	d := NewDice(&scripted{faces: []int{1, 6}})
	d.Start(0)
	d.Anchor(5000)
	assert.False(t, d.Tick(5050))
	assert.True(t, d.Tick(5100))
	assert.Equal(t, 6, d.Value)
}

func TestDiceFacesAreInRange(t *testing.T) {
	d := NewDice(rand.New(rand.NewSource(7)))
	seen := make(map[int]int)
	d.Start(0)
	for now := int64(100); now <= 60000; now += 100 {
		d.Tick(now)
		require.GreaterOrEqual(t, d.Value, DiceMin)
		require.LessOrEqual(t, d.Value, DiceMax)
		seen[d.Value]++
	}
	assert.Len(t, seen, 6)
}

func TestNewSeed(t *testing.T) {
	_, err := NewSeed()
	assert.NoError(t, err)
}
