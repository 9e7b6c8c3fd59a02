package pgn

import (
	"errors"

	"github.com/jconsidi/cutechess/pkg/chess"
)

// fakeBoard is a deterministic rules engine for parser and writer
// tests. Moves are their own SAN strings; every decoded move is legal
// unless it is listed in illegal, and SetBoard rejects the positions
// listed in badFEN.
type fakeBoard struct {
	variant  chess.Variant
	random   bool
	startFEN string
	illegal  map[string]bool
	badFEN   map[string]bool
	history  []chess.Move
}

func newFakeBoard() *fakeBoard {
	return &fakeBoard{
		variant:  chess.Standard,
		startFEN: chess.StartingFEN,
	}
}

func (b *fakeBoard) SetBoard(fen string) error {
	if b.badFEN[fen] {
		return errors.New("fake: bad position")
	}
	b.startFEN = fen
	b.history = nil
	return nil
}

func (b *fakeBoard) MoveFromString(str string) chess.Move {
	return str
}

func (b *fakeBoard) IsLegalMove(move chess.Move) bool {
	str, ok := move.(string)
	return ok && !b.illegal[str]
}

func (b *fakeBoard) MakeMove(move chess.Move) {
	b.history = append(b.history, move)
}

func (b *fakeBoard) MoveString(move chess.Move, _ chess.Notation) string {
	return move.(string)
}

func (b *fakeBoard) MoveHistory() []chess.Move { return b.history }
func (b *fakeBoard) StartingFEN() string       { return b.startFEN }
func (b *fakeBoard) Variant() chess.Variant    { return b.variant }
func (b *fakeBoard) IsRandomVariant() bool     { return b.random }

// sanMoves unwraps the fake board's string moves.
func sanMoves(moves []chess.Move) []string {
	san := make([]string, len(moves))
	for i, move := range moves {
		san[i] = move.(string)
	}
	return san
}
