package chess

import (
	chesslib "github.com/corentings/chess/v2"
)

// standardBoard implements Board for standard chess on top of
// corentings/chess.
type standardBoard struct {
	startFEN string
	pos      *chesslib.Position
	history  []Move
}

func newStandardBoard() *standardBoard {
	return &standardBoard{
		startFEN: StartingFEN,
		pos:      chesslib.StartingPosition(),
	}
}

func (board *standardBoard) SetBoard(fen string) error {
	opt, err := chesslib.FEN(fen)
	if err != nil {
		return err
	}

	board.pos = chesslib.NewGame(opt).Position()
	board.startFEN = fen
	board.history = nil
	return nil
}

func (board *standardBoard) MoveFromString(str string) Move {
	move, err := chesslib.AlgebraicNotation{}.Decode(board.pos, str)
	if err != nil {
		return nil
	}
	return move
}

func (board *standardBoard) IsLegalMove(move Move) bool {
	mv, ok := move.(*chesslib.Move)
	if !ok || mv == nil {
		return false
	}

	for _, valid := range board.pos.ValidMoves() {
		if valid.S1() == mv.S1() && valid.S2() == mv.S2() && valid.Promo() == mv.Promo() {
			return true
		}
	}
	return false
}

func (board *standardBoard) MakeMove(move Move) {
	mv := move.(*chesslib.Move)
	if next := board.pos.Update(mv); next != nil {
		board.pos = next
	}
	board.history = append(board.history, move)
}

func (board *standardBoard) MoveString(move Move, notation Notation) string {
	mv := move.(*chesslib.Move)
	switch notation {
	case LongAlgebraic:
		return chesslib.LongAlgebraicNotation{}.Encode(board.pos, mv)
	case UCI:
		return chesslib.UCINotation{}.Encode(board.pos, mv)
	default:
		return chesslib.AlgebraicNotation{}.Encode(board.pos, mv)
	}
}

func (board *standardBoard) MoveHistory() []Move {
	return board.history
}

func (board *standardBoard) StartingFEN() string {
	return board.startFEN
}

func (board *standardBoard) Variant() Variant {
	return Standard
}

func (board *standardBoard) IsRandomVariant() bool {
	return false
}
