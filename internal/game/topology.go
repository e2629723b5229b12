package game

import (
	"fmt"
	"strings"
)

// Topology describes one board shape: which cells hold marbles, which sizes
// are allowed, where the hole goes by default and which jumps are legal.
type Topology struct {
	Name        string
	DefaultSize int

	validSize    func(size int) bool
	dimension    func(size int) int
	playable     func(size, r, c int) bool
	defaultEmpty func(size int) Pos
	jumps        []Pos
}

var orthogonalJumps = []Pos{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}

var allJumps = []Pos{
	{-2, 0}, {2, 0}, {0, -2}, {0, 2},
	{-2, -2}, {2, 2}, {2, -2}, {-2, 2},
}

// English is the cross-shaped board. Arm size must be odd.
var English = &Topology{
	Name:        "english",
	DefaultSize: 3,
	validSize: func(size int) bool {
		return size > 0 && size%2 == 1
	},
	dimension:    crossDimension,
	playable:     crossPlayable,
	defaultEmpty: centre,
	jumps:        orthogonalJumps,
}

// European is the octagon: the cross plus the diagonal corner wedges.
var European = &Topology{
	Name:         "european",
	DefaultSize:  3,
	validSize:    positive,
	dimension:    crossDimension,
	playable:     octagonPlayable,
	defaultEmpty: centre,
	jumps:        orthogonalJumps,
}

// Triangle keeps the lower-left half of a size x size grid and allows
// diagonal jumps.
var Triangle = &Topology{
	Name:        "triangular",
	DefaultSize: 5,
	validSize:   positive,
	dimension:   func(size int) int { return size },
	playable: func(_, r, c int) bool {
		return c <= r
	},
	defaultEmpty: func(int) Pos { return Pos{} },
	jumps:        allJumps,
}

var topologies = map[string]*Topology{
	"english":    English,
	"european":   European,
	"triangular": Triangle,
	"triangle":   Triangle,
}

// ParseTopology resolves a topology by name.
func ParseTopology(name string) (*Topology, error) {
	t, ok := topologies[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: unknown board type %q", ErrInvalidConfiguration, name)
	}
	return t, nil
}

func (t *Topology) String() string { return t.Name }

// Jumps returns a copy of the legal jump offsets.
func (t *Topology) Jumps() []Pos {
	return append([]Pos(nil), t.jumps...)
}

// ValidSize reports whether size can be used to build this topology.
func (t *Topology) ValidSize(size int) bool { return t.validSize(size) }

// Dimension is the side length of the square grid backing a board of size.
func (t *Topology) Dimension(size int) int { return t.dimension(size) }

// DefaultEmpty is the starting hole when none is given.
func (t *Topology) DefaultEmpty(size int) Pos { return t.defaultEmpty(size) }

// ValidEmpty reports whether (r,c) is on the grid and on a marble cell.
func (t *Topology) ValidEmpty(size, r, c int) bool {
	d := t.dimension(size)
	if r < 0 || c < 0 || r >= d || c >= d {
		return false
	}
	return t.playable(size, r, c)
}

func (t *Topology) allows(dr, dc int) bool {
	for _, j := range t.jumps {
		if j.Row == dr && j.Col == dc {
			return true
		}
	}
	return false
}

func positive(size int) bool { return size > 0 }

func crossDimension(size int) int { return 3*(size-1) + 1 }

// centre is floor(1.5*size - 1.5) on both axes.
func centre(size int) Pos {
	m := (3*size - 3) / 2
	return Pos{Row: m, Col: m}
}

func crossPlayable(size, r, c int) bool {
	return (r > size-2 && r < 2*size-1) || (c > size-2 && c < 2*size-1)
}

// octagonPlayable splits the board into a left trapezoid, the middle band of
// columns and a right trapezoid. The coefficients are kept literal.
func octagonPlayable(size, r, c int) bool {
	left := c <= size-2 && r >= size-1-c && r <= 2*size-2+c
	middle := c > size-2 && c < 2*size-1
	right := c >= 2*size-1 && r >= c-2*size+2 && r <= -5+5*size-c
	return left || middle || right
}
