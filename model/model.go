package model

import "fmt"

// Board dimensions. The grid is fixed.
const (
	Width  = 8
	Height = 16
)

// Descriptor is a cell value. Upper 4 bits are the kind, lower 4 bits the
// tunnel identifier (0 when unused).
type Descriptor uint8

type Kind uint8

const (
	Empty         Kind = 0x00
	Start         Kind = 0x10
	Finish        Kind = 0x20
	Player1Marker Kind = 0x40
	Player2Marker Kind = 0x50
	SnakeStart    Kind = 0x80
	SnakeEnd      Kind = 0x90
	SnakeMiddle   Kind = 0xA0
	LadderStart   Kind = 0xC0
	LadderEnd     Kind = 0xD0
	LadderMiddle  Kind = 0xE0
)

func (d Descriptor) Kind() Kind {
	return Kind(d & 0xF0)
}

func (d Descriptor) Id() uint8 {
	return uint8(d & 0x0F)
}

func (d Descriptor) String() string {
	if d.Id() == 0 {
		return d.Kind().Name()
	}
	return fmt.Sprintf("%s#%d", d.Kind().Name(), d.Id())
}

// With builds a descriptor of this kind carrying the tunnel identifier id.
func (k Kind) With(id uint8) Descriptor {
	return Descriptor(uint8(k) | id&0x0F)
}

func (k Kind) Descriptor() Descriptor {
	return Descriptor(k)
}

func (k Kind) Name() string {
	switch k {
	case Empty:
		return "EMPTY"
	case Start:
		return "START"
	case Finish:
		return "FINISH"
	case Player1Marker:
		return "PLAYER_1"
	case Player2Marker:
		return "PLAYER_2"
	case SnakeStart:
		return "SNAKE_START"
	case SnakeEnd:
		return "SNAKE_END"
	case SnakeMiddle:
		return "SNAKE_MIDDLE"
	case LadderStart:
		return "LADDER_START"
	case LadderEnd:
		return "LADDER_END"
	case LadderMiddle:
		return "LADDER_MIDDLE"
	default:
		return fmt.Sprintf("n/a:%#x", uint8(k))
	}
}

// EndOf returns the end kind matching a tunnel start kind.
func (k Kind) EndOf() (Kind, bool) {
	switch k {
	case SnakeStart:
		return SnakeEnd, true
	case LadderStart:
		return LadderEnd, true
	default:
		return Empty, false
	}
}

type Point struct {
	X, Y int
}

func (p Point) In() bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

const (
	PlayerOne int32 = 1
	PlayerTwo int32 = 2
)

type Player struct {
	Id      int32
	X, Y    int
	Visible bool
	// Ascended is set when the last command moved the player to another row.
	// It is reported with every move in the session log.
	Ascended bool
}

func (p *Player) Marker() Descriptor {
	if p.Id == PlayerTwo {
		return Player2Marker.Descriptor()
	}
	return Player1Marker.Descriptor()
}

func (p *Player) Position() Point {
	return Point{X: p.X, Y: p.Y}
}

// Board is the per-session copy of a layout in runtime coordinates,
// (0,0) being the bottom left cell. Players are not stored on it.
type Board struct {
	cells [Width][Height]Descriptor
	ends  map[Descriptor]Point
}
