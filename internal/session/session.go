// Package session runs an interactive game over a token stream: it reads
// moves from an io.Reader and writes boards and messages to an io.Writer.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"marble-solitaire/internal/game"
	"marble-solitaire/internal/view"
)

// ErrInputExhausted is returned when the input ends before the game is over
// or the player quits.
var ErrInputExhausted = errors.New("input ended before the game finished")

const (
	msgInvalidMove = "Invalid move. Play again.\n"
	msgQuit        = "Game quit!\nState of game when quit:\n"
	msgGameOver    = "Game over!\n"
)

// Game is what a session drives.
type Game interface {
	view.Board
	Move(fromRow, fromCol, toRow, toCol int) error
	IsGameOver() bool
}

type Session struct {
	ID string

	game Game
	in   *bufio.Scanner
	out  io.Writer
	log  zerolog.Logger
}

func New(g Game, in io.Reader, out io.Writer, logger zerolog.Logger) *Session {
	id := uuid.NewString()
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Session{
		ID:   id,
		game: g,
		in:   sc,
		out:  out,
		log:  logger.With().Str("session", id).Logger(),
	}
}

// Play runs the game until it is over, the player types q/Q, or the input
// runs dry. Coordinates are read 1-based.
func (s *Session) Play() error {
	s.log.Info().
		Str("board", s.game.Topology().Name).
		Int("score", s.game.Score()).
		Msg("game started")

	if err := s.renderBoard(); err != nil {
		return err
	}

	for !s.game.IsGameOver() {
		mv, quit, err := s.readMove()
		if err != nil {
			return err
		}
		if quit {
			s.log.Info().Int("score", s.game.Score()).Msg("game quit")
			if err := s.write(msgQuit); err != nil {
				return err
			}
			return s.renderBoard()
		}

		err = s.game.Move(mv.From.Row, mv.From.Col, mv.To.Row, mv.To.Col)
		if errors.Is(err, game.ErrIllegalMove) {
			s.log.Debug().Err(err).Interface("move", mv).Msg("rejected move")
			if err := s.write(msgInvalidMove); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		s.log.Debug().Interface("move", mv).Int("score", s.game.Score()).Msg("move applied")
		if !s.game.IsGameOver() {
			if err := s.renderBoard(); err != nil {
				return err
			}
		}
	}

	s.log.Info().Int("score", s.game.Score()).Msg("game over")
	if err := s.write(msgGameOver); err != nil {
		return err
	}
	return s.renderBoard()
}

// readMove collects four integers, ignoring any other token. A q or Q token
// ends the game even mid-move.
func (s *Session) readMove() (game.Move, bool, error) {
	var vals [4]int
	n := 0
	for n < len(vals) {
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return game.Move{}, false, fmt.Errorf("read input: %w", err)
			}
			return game.Move{}, false, ErrInputExhausted
		}
		tok := s.in.Text()
		if tok == "q" || tok == "Q" {
			return game.Move{}, true, nil
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		vals[n] = v
		n++
	}
	return game.Move{
		From: game.Pos{Row: vals[0] - 1, Col: vals[1] - 1},
		To:   game.Pos{Row: vals[2] - 1, Col: vals[3] - 1},
	}, false, nil
}

func (s *Session) renderBoard() error {
	return s.write(view.RenderScore(s.game))
}

func (s *Session) write(msg string) error {
	if _, err := io.WriteString(s.out, msg); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
