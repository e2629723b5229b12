package game

import "fmt"

type options struct {
	size  int
	empty *Pos
}

type Option func(*options)

// WithSize overrides the topology's default size.
func WithSize(size int) Option {
	return func(o *options) { o.size = size }
}

// WithEmpty places the starting hole at (row, col) instead of the default.
func WithEmpty(row, col int) Option {
	return func(o *options) { o.empty = &Pos{Row: row, Col: col} }
}

// New builds a board for t. Without options the topology default size and
// hole are used.
func New(t *Topology, opts ...Option) (*Board, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: no board type", ErrInvalidConfiguration)
	}
	o := options{size: t.DefaultSize}
	for _, opt := range opts {
		opt(&o)
	}

	if !t.validSize(o.size) {
		return nil, fmt.Errorf("%w: invalid size %d for %s board", ErrInvalidConfiguration, o.size, t.Name)
	}
	empty := t.defaultEmpty(o.size)
	if o.empty != nil {
		empty = *o.empty
	}
	if !t.ValidEmpty(o.size, empty.Row, empty.Col) {
		return nil, fmt.Errorf("%w: invalid empty cell position (%d,%d)", ErrInvalidConfiguration, empty.Row, empty.Col)
	}

	b := &Board{topo: t, size: o.size}
	b.generate(empty)
	return b, nil
}

func NewEnglish(opts ...Option) (*Board, error)  { return New(English, opts...) }
func NewEuropean(opts ...Option) (*Board, error) { return New(European, opts...) }
func NewTriangle(opts ...Option) (*Board, error) { return New(Triangle, opts...) }

func (b *Board) generate(empty Pos) {
	d := b.topo.dimension(b.size)
	b.cells = make([][]Slot, d)
	for r := 0; r < d; r++ {
		b.cells[r] = make([]Slot, d)
		for c := 0; c < d; c++ {
			if b.topo.playable(b.size, r, c) {
				b.cells[r][c] = SlotMarble
				b.score++
			} else {
				b.cells[r][c] = SlotInvalid
			}
		}
	}
	b.cells[empty.Row][empty.Col] = SlotEmpty
	b.score--
}

// Size returns the number of rows (and columns) of the grid.
func (b *Board) Size() int { return len(b.cells) }

// Score is the number of marbles left on the board.
func (b *Board) Score() int { return b.score }

func (b *Board) Topology() *Topology { return b.topo }

// ArmSize is the size parameter the board was built with.
func (b *Board) ArmSize() int { return b.size }

func (b *Board) SlotAt(row, col int) (Slot, error) {
	if !b.inBounds(row, col) {
		return SlotInvalid, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	return b.cells[row][col], nil
}

// Marbles counts marble cells from scratch. Score should always match it.
func (b *Board) Marbles() int {
	n := 0
	for _, row := range b.cells {
		for _, s := range row {
			if s == SlotMarble {
				n++
			}
		}
	}
	return n
}

func (b *Board) inBounds(row, col int) bool {
	d := len(b.cells)
	return row >= 0 && row < d && col >= 0 && col < d
}
