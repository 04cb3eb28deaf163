package game

import "github.com/zucenko/ladders/model"

// Resolve jumps a player standing on a snake or ladder start to the matching
// end. It reports whether the player moved.
func Resolve(b *model.Board, p *model.Player) bool {
	end, ok := b.TunnelEnd(b.Get(p.X, p.Y))
	if !ok {
		return false
	}
	p.X, p.Y = end.X, end.Y
	return true
}

// Finished reports whether the player stands on the finish cell.
func Finished(b *model.Board, p *model.Player) bool {
	return b.Get(p.X, p.Y).Kind() == model.Finish
}
