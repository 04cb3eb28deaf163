package game

import "github.com/zucenko/ladders/model"

// RenderSink shows cells. It is never read back.
type RenderSink interface {
	SetCellDisplay(x, y int, cell model.Descriptor)
}

func Flush(sink RenderSink, updates []model.CellUpdate) {
	for _, u := range updates {
		sink.SetCellDisplay(u.X, u.Y, u.Cell)
	}
}
