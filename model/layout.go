package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Layout is a board as declared: row 0 is the top of the board as drawn, so
// Layout[row][col] is not an (x, y) coordinate. See LayoutToBoard.
type Layout [Height][Width]Descriptor

var (
	ErrLayoutShape = errors.New("layout must have 16 rows of 8 cells")
	ErrLayoutToken = errors.New("unknown layout token")
)

// LayoutToBoard maps a declared row/column to runtime coordinates.
func LayoutToBoard(row, col int) (x, y int) {
	return col, Height - 1 - row
}

// BoardToLayout is the inverse of LayoutToBoard.
func BoardToLayout(x, y int) (row, col int) {
	return Height - 1 - y, x
}

var ClassicLayout = Layout{
	{d(Finish, 0), 0, 0, 0, 0, 0, 0, 0},
	{0, d(SnakeStart, 4), 0, 0, d(LadderEnd, 4), 0, 0, 0},
	{0, d(SnakeMiddle, 0), 0, d(LadderMiddle, 0), 0, 0, 0, 0},
	{0, d(SnakeMiddle, 0), d(LadderStart, 4), 0, 0, 0, 0, 0},
	{0, d(SnakeEnd, 4), 0, 0, 0, 0, d(SnakeStart, 3), 0},
	{0, 0, 0, 0, d(LadderEnd, 3), 0, d(SnakeMiddle, 0), 0},
	{d(SnakeStart, 2), 0, 0, 0, d(LadderMiddle, 0), 0, d(SnakeMiddle, 0), 0},
	{0, d(SnakeMiddle, 0), 0, 0, d(LadderStart, 3), 0, d(SnakeEnd, 3), 0},
	{0, 0, d(SnakeEnd, 2), 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, d(SnakeStart, 1), 0, 0, 0, d(LadderEnd, 1)},
	{0, d(LadderEnd, 2), 0, d(SnakeMiddle, 0), 0, 0, d(LadderMiddle, 0), 0},
	{0, d(LadderMiddle, 0), 0, d(SnakeMiddle, 0), 0, d(LadderStart, 1), 0, 0},
	{0, d(LadderStart, 2), 0, d(SnakeMiddle, 0), 0, 0, 0, 0},
	{d(Start, 0), 0, 0, d(SnakeEnd, 1), 0, 0, 0, 0},
}

var CustomLayout = Layout{
	{d(Finish, 0), d(SnakeStart, 5), 0, 0, 0, d(LadderEnd, 4), 0, 0},
	{0, d(SnakeMiddle, 0), 0, 0, d(LadderMiddle, 0), 0, 0, 0},
	{0, d(SnakeMiddle, 0), 0, d(LadderMiddle, 0), 0, 0, 0, 0},
	{0, d(SnakeMiddle, 0), d(LadderStart, 4), d(SnakeStart, 4), 0, 0, 0, 0},
	{0, d(SnakeEnd, 5), 0, d(SnakeMiddle, 0), d(LadderEnd, 3), 0, 0, 0},
	{0, 0, 0, d(SnakeEnd, 4), 0, d(LadderMiddle, 0), 0, 0},
	{0, 0, 0, 0, 0, 0, d(LadderStart, 3), 0},
	{0, 0, 0, 0, d(SnakeStart, 3), 0, 0, 0},
	{0, d(SnakeStart, 2), 0, 0, 0, d(SnakeMiddle, 0), 0, 0},
	{0, d(SnakeEnd, 2), 0, 0, 0, 0, d(SnakeEnd, 3), d(LadderEnd, 2)},
	{0, 0, 0, 0, 0, 0, 0, d(LadderMiddle, 0)},
	{0, d(SnakeStart, 1), 0, 0, 0, 0, 0, d(LadderStart, 2)},
	{0, d(LadderEnd, 1), d(SnakeMiddle, 0), 0, 0, 0, 0, 0},
	{0, d(LadderMiddle, 0), 0, d(SnakeMiddle, 0), 0, 0, 0, 0},
	{0, d(LadderMiddle, 0), 0, 0, d(SnakeMiddle, 0), 0, 0, 0},
	{d(Start, 0), d(LadderStart, 1), 0, 0, 0, d(SnakeEnd, 1), 0, 0},
}

func d(k Kind, id uint8) Descriptor {
	return k.With(id)
}

// Catalog holds the selectable layouts by board number.
type Catalog map[int]Layout

func DefaultCatalog() Catalog {
	return Catalog{1: ClassicLayout, 2: CustomLayout}
}

// Boards returns the board numbers in ascending order.
func (c Catalog) Boards() []int {
	keys := make([]int, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

var tokens = map[Kind]string{
	Empty:        ".",
	Start:        "@",
	Finish:       "F",
	SnakeStart:   "S",
	SnakeEnd:     "s",
	SnakeMiddle:  "~",
	LadderStart:  "L",
	LadderEnd:    "l",
	LadderMiddle: "|",
}

// String renders the layout in the text form read by ParseLayout.
func (l Layout) String() string {
	var sb strings.Builder
	for _, row := range l {
		for col, cell := range row {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(tokens[cell.Kind()])
			switch cell.Kind() {
			case SnakeStart, SnakeEnd, LadderStart, LadderEnd:
				sb.WriteString(strconv.Itoa(int(cell.Id())))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseLayout reads a layout in text form: one line per row, top row first,
// eight whitespace separated tokens per line. Blank lines and lines starting
// with '#' are skipped.
func ParseLayout(reader io.Reader) (l Layout, err error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	row := 0
	line := 0
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		fields := strings.Fields(s)
		if row >= Height || len(fields) != Width {
			return l, fmt.Errorf("line %d: %w", line, ErrLayoutShape)
		}
		for col, field := range fields {
			cell, perr := parseToken(field)
			if perr != nil {
				return l, fmt.Errorf("line %d column %d: %w", line, col+1, perr)
			}
			l[row][col] = cell
		}
		row++
	}
	if err = scanner.Err(); err != nil {
		return l, err
	}
	if row != Height {
		return l, fmt.Errorf("read %d rows: %w", row, ErrLayoutShape)
	}
	return l, nil
}

func parseToken(field string) (Descriptor, error) {
	var kind Kind
	switch field[0] {
	case '.':
		kind = Empty
	case '@':
		kind = Start
	case 'F':
		kind = Finish
	case '~':
		kind = SnakeMiddle
	case '|':
		kind = LadderMiddle
	case 'S':
		kind = SnakeStart
	case 's':
		kind = SnakeEnd
	case 'L':
		kind = LadderStart
	case 'l':
		kind = LadderEnd
	default:
		return 0, fmt.Errorf("%q: %w", field, ErrLayoutToken)
	}
	switch kind {
	case SnakeStart, SnakeEnd, LadderStart, LadderEnd:
		id, err := strconv.ParseUint(field[1:], 10, 4)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", field, ErrLayoutToken)
		}
		return kind.With(uint8(id)), nil
	}
	if len(field) != 1 {
		return 0, fmt.Errorf("%q: %w", field, ErrLayoutToken)
	}
	return kind.Descriptor(), nil
}
