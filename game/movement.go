package game

import "github.com/zucenko/ladders/model"

// Advance moves the player steps cells forward along the serpentine track.
// The track ends at the finish corner; steps past it are dropped.
func Advance(p *model.Player, steps int) {
	if steps < 0 {
		steps = 0
	}
	x, y := model.FromTrack(model.ToTrack(p.X, p.Y) + steps)
	p.Ascended = y != p.Y
	p.X, p.Y = x, y
}

// NudgeStep reduces a nudge request to one cell along one axis. It reports
// false when both axes or neither are set.
func NudgeStep(dx, dy int) (int, int, bool) {
	dx, dy = sign(dx), sign(dy)
	if (dx == 0) == (dy == 0) {
		return 0, 0, false
	}
	return dx, dy, true
}

// Nudge moves the player one cell along a single axis, wrapping around the
// board. Requests NudgeStep refuses leave the player in place.
func Nudge(p *model.Player, dx, dy int) bool {
	dx, dy, ok := NudgeStep(dx, dy)
	if !ok {
		return false
	}
	p.X = wrap(p.X+dx, model.Width)
	p.Y = wrap(p.Y+dy, model.Height)
	p.Ascended = false
	return true
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
