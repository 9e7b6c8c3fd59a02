package chess

import "fmt"

// Move is an opaque move token. Moves are produced and consumed only by
// the Board implementation that created them; callers never inspect their
// structure and must not mix moves between boards.
type Move any

// Notation selects a textual move encoding.
type Notation int

const (
	StandardAlgebraic Notation = iota
	LongAlgebraic
	UCI
)

// Board is the rules engine a game record is built against. It owns the
// position state, decodes and encodes move text, and answers legality
// questions. Implementations are not safe for concurrent use.
type Board interface {
	// SetBoard resets the board to the position described by fen.
	SetBoard(fen string) error

	// MoveFromString decodes move text against the current position. The
	// returned move may be invalid; check it with IsLegalMove.
	MoveFromString(str string) Move

	// IsLegalMove reports whether move is legal in the current position.
	IsLegalMove(move Move) bool

	// MakeMove plays move, advancing the board state.
	MakeMove(move Move)

	// MoveString encodes move relative to the current position, before
	// the move is made.
	MoveString(move Move, notation Notation) string

	// MoveHistory returns the moves made since the last SetBoard.
	MoveHistory() []Move

	// StartingFEN returns the position the board was last set to.
	StartingFEN() string

	Variant() Variant
	IsRandomVariant() bool
}

// NewBoard returns a rules engine for the given variant.
func NewBoard(variant Variant) (Board, error) {
	switch variant {
	case Standard:
		return newStandardBoard(), nil
	default:
		return nil, fmt.Errorf("chess: no rules engine for variant %s", variant)
	}
}
