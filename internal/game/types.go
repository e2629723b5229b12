package game

type Slot int

const (
	SlotInvalid Slot = iota
	SlotMarble
	SlotEmpty
)

func (s Slot) String() string {
	switch s {
	case SlotMarble:
		return "Marble"
	case SlotEmpty:
		return "Empty"
	default:
		return "Invalid"
	}
}

type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a peg-solitaire board. The grid and the score are owned by the
// board; readers only ever get copies of slot values.
type Board struct {
	topo  *Topology
	size  int
	cells [][]Slot
	score int // live count of SlotMarble cells
}

type Move struct {
	From Pos `json:"from"`
	To   Pos `json:"to"`
}

// Over returns the cell jumped over by the move.
func (m Move) Over() Pos {
	return Pos{Row: (m.From.Row + m.To.Row) / 2, Col: (m.From.Col + m.To.Col) / 2}
}
