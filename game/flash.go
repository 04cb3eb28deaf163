package game

import "github.com/zucenko/ladders/model"

// FlashScheduler blinks each player marker every FlashPeriod.
type FlashScheduler struct {
	baselines []int64
}

func NewFlashScheduler(players int, now int64) *FlashScheduler {
	f := &FlashScheduler{baselines: make([]int64, players)}
	f.Anchor(now)
	return f
}

// Reset shows the marker solid and starts a fresh period. Called after every
// move of that player.
func (f *FlashScheduler) Reset(i int, p *model.Player, now int64) {
	p.Visible = true
	f.baselines[i] = now
}

// Tick toggles the marker when its period has elapsed and reports what the
// cell should show. under is what the cell shows without the marker.
func (f *FlashScheduler) Tick(i int, p *model.Player, under model.Descriptor, now int64) (model.CellUpdate, bool) {
	if now-f.baselines[i] < FlashPeriod {
		return model.CellUpdate{}, false
	}
	f.baselines[i] = now
	p.Visible = !p.Visible
	cell := under
	if p.Visible {
		cell = p.Marker()
	}
	return model.CellUpdate{X: p.X, Y: p.Y, Cell: cell}, true
}

func (f *FlashScheduler) Anchor(now int64) {
	for i := range f.baselines {
		f.baselines[i] = now
	}
}
