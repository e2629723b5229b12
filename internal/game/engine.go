package game

import "fmt"

type fault int

const (
	faultNone fault = iota
	faultDistance
	faultFromBounds
	faultToBounds
	faultSource
	faultDestination
	faultNothingToJump
)

var faultMessages = map[fault]string{
	faultDistance:      "must move 2 cells in one line",
	faultFromBounds:    "from out of bounds",
	faultToBounds:      "to out of bounds",
	faultSource:        "source is not a marble",
	faultDestination:   "destination is not empty",
	faultNothingToJump: "nothing to jump over",
}

// check runs the move rules in order and reports the first one broken.
// It never mutates the board.
func (b *Board) check(m Move) fault {
	if !b.topo.allows(m.To.Row-m.From.Row, m.To.Col-m.From.Col) {
		return faultDistance
	}
	if !b.inBounds(m.From.Row, m.From.Col) {
		return faultFromBounds
	}
	if !b.inBounds(m.To.Row, m.To.Col) {
		return faultToBounds
	}
	if b.cells[m.From.Row][m.From.Col] != SlotMarble {
		return faultSource
	}
	if b.cells[m.To.Row][m.To.Col] != SlotEmpty {
		return faultDestination
	}
	over := m.Over()
	if b.cells[over.Row][over.Col] != SlotMarble {
		return faultNothingToJump
	}
	return faultNone
}

// CanMove reports whether the jump is legal right now.
func (b *Board) CanMove(fromRow, fromCol, toRow, toCol int) bool {
	return b.check(Move{From: Pos{fromRow, fromCol}, To: Pos{toRow, toCol}}) == faultNone
}

// Move jumps the marble at (fromRow, fromCol) to (toRow, toCol), removing the
// marble in between. On error the board is left untouched.
func (b *Board) Move(fromRow, fromCol, toRow, toCol int) error {
	m := Move{From: Pos{fromRow, fromCol}, To: Pos{toRow, toCol}}
	if f := b.check(m); f != faultNone {
		return fmt.Errorf("%w: %s", ErrIllegalMove, faultMessages[f])
	}
	b.apply(m)
	return nil
}

func (b *Board) apply(m Move) {
	over := m.Over()
	b.cells[m.From.Row][m.From.Col] = SlotEmpty
	b.cells[over.Row][over.Col] = SlotEmpty
	b.cells[m.To.Row][m.To.Col] = SlotMarble
	b.score--
}
