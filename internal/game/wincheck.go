package game

// IsGameOver scans every cell for a legal jump in any of the topology's
// directions. The scan is redone in full on each call.
func (b *Board) IsGameOver() bool {
	d := b.Size()
	for r := 0; r < d; r++ {
		for c := 0; c < d; c++ {
			if b.cells[r][c] != SlotMarble {
				continue
			}
			for _, j := range b.topo.jumps {
				if b.CanMove(r, c, r+j.Row, c+j.Col) {
					return false
				}
			}
		}
	}
	return true
}

// LegalMoves lists every jump currently available, row-major by source cell.
func (b *Board) LegalMoves() []Move {
	var moves []Move
	d := b.Size()
	for r := 0; r < d; r++ {
		for c := 0; c < d; c++ {
			for _, j := range b.topo.jumps {
				m := Move{From: Pos{r, c}, To: Pos{r + j.Row, c + j.Col}}
				if b.check(m) == faultNone {
					moves = append(moves, m)
				}
			}
		}
	}
	return moves
}
