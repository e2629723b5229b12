// Package view renders a board as plain text.
package view

import (
	"strconv"
	"strings"

	"marble-solitaire/internal/game"
)

// Board is the read-only view of a game the renderer needs.
type Board interface {
	Size() int
	Score() int
	SlotAt(row, col int) (game.Slot, error)
	Topology() *game.Topology
}

const (
	marble = "O"
	hole   = "_"
)

// Render draws the board. Square boards keep their left padding so the arms
// line up; triangles are centred with one leading space per missing cell.
func Render(b Board) string {
	if b.Topology() == game.Triangle {
		return renderTriangle(b)
	}
	return renderSquare(b)
}

// RenderScore is Render followed by the score line.
func RenderScore(b Board) string {
	return Render(b) + "\nScore: " + strconv.Itoa(b.Score()) + "\n"
}

func renderSquare(b Board) string {
	d := b.Size()
	center := (d - 1) / 2
	var sb strings.Builder
	for r := 0; r < d; r++ {
		if r != 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < d; c++ {
			s, _ := b.SlotAt(r, c)
			switch s {
			case game.SlotInvalid:
				// only the left side is padded; nothing trails a row
				if c < center {
					sb.WriteByte(' ')
					if c != 0 {
						sb.WriteByte(' ')
					}
				}
			default:
				if c != 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(glyph(s))
			}
		}
	}
	return sb.String()
}

func renderTriangle(b Board) string {
	d := b.Size()
	var sb strings.Builder
	for r := 0; r < d; r++ {
		if r != 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.Repeat(" ", d-1-r))
		for c := 0; c <= r; c++ {
			if c != 0 {
				sb.WriteByte(' ')
			}
			s, _ := b.SlotAt(r, c)
			sb.WriteString(glyph(s))
		}
	}
	return sb.String()
}

func glyph(s game.Slot) string {
	if s == game.SlotMarble {
		return marble
	}
	return hole
}
