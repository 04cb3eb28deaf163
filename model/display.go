package model

// Display mirrors what a console shows. It only ever receives updates; the
// game never reads it back.
type Display struct {
	Cells  [Width][Height]Descriptor
	Setup  *Setup
	Status Status
	Over   *GameOver
	Errors []string
}

func (d *Display) SetCellDisplay(x, y int, cell Descriptor) {
	if !(Point{X: x, Y: y}).In() {
		return
	}
	d.Cells[x][y] = cell
}

// Apply folds a server message into the display. A Setup clears the previous
// game.
func (d *Display) Apply(m ServerMessage) {
	for _, s := range m.Setup {
		setup := s
		*d = Display{Setup: &setup}
	}
	for _, c := range m.Cells {
		d.SetCellDisplay(c.X, c.Y, c.Cell)
	}
	for _, s := range m.Status {
		d.Status = s
	}
	for _, o := range m.Over {
		over := o
		d.Over = &over
	}
	d.Errors = append(d.Errors, m.Errors...)
}
