package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// Rand is the source of dice values. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Dice is the roll state machine. While Rolling a new candidate is sampled
// every DiceSamplePeriod; Stop commits the last candidate.
type Dice struct {
	rng      Rand
	Rolling  bool
	Value    int
	baseline int64
}

func NewDice(rng Rand) *Dice {
	return &Dice{rng: rng}
}

func (d *Dice) Start(now int64) {
	d.Rolling = true
	d.sample(now)
}

func (d *Dice) Stop() int {
	d.Rolling = false
	return d.Value
}

// Tick samples a new candidate when the period has elapsed. It reports
// whether the value changed.
func (d *Dice) Tick(now int64) bool {
	if !d.Rolling || now-d.baseline < DiceSamplePeriod {
		return false
	}
	prev := d.Value
	d.sample(now)
	return d.Value != prev
}

// Anchor restarts the sampling period at now.
func (d *Dice) Anchor(now int64) {
	d.baseline = now
}

func (d *Dice) sample(now int64) {
	d.Value = DiceMin + d.rng.Intn(DiceMax-DiceMin+1)
	d.baseline = now
}

// NewSeed reads a seed for the dice generator from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
