package pgn

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jconsidi/cutechess/pkg/chess"
)

// Game is a single chess game record: the players, the result, the
// starting position and the move sequence.
type Game struct {
	white   string
	black   string
	round   int
	result  chess.Result
	fen     string
	variant chess.Variant
	random  bool
	moves   []chess.Move
	isEmpty bool
}

// LiveGame is a game in progress, used to build a record directly
// instead of parsing it from text.
type LiveGame interface {
	WhitePlayer() string
	BlackPlayer() string
	Board() chess.Board
	Result() chess.Result
}

// NewGame builds a record from a live game without going through PGN
// text. The players, moves, starting position, variant and result are
// copied verbatim.
func NewGame(game LiveGame) *Game {
	board := game.Board()
	return &Game{
		white:   game.WhitePlayer(),
		black:   game.BlackPlayer(),
		moves:   board.MoveHistory(),
		fen:     board.StartingFEN(),
		variant: board.Variant(),
		random:  board.IsRandomVariant(),
		result:  game.Result(),
	}
}

func (g *Game) White() string          { return g.white }
func (g *Game) Black() string          { return g.black }
func (g *Game) Result() chess.Result   { return g.result }
func (g *Game) StartingFEN() string    { return g.fen }
func (g *Game) Variant() chess.Variant { return g.variant }
func (g *Game) IsRandomVariant() bool  { return g.random }
func (g *Game) Moves() []chess.Move    { return g.moves }

// Round is the game's round number. It is not populated by parsing.
func (g *Game) Round() int     { return g.round }
func (g *Game) SetRound(n int) { g.round = n }

// IsEmpty reports whether no tag has been accepted into the record.
// An empty record has no moves.
func (g *Game) IsEmpty() bool { return g.isEmpty }

// Option configures a single ReadGame call.
type Option func(*parser)

// WithBoard substitutes the rules engine used to decode and validate
// moves. The default is a standard chess board.
func WithBoard(board chess.Board) Option {
	return func(p *parser) { p.board = board }
}

// WithDiagnostics routes non-fatal parse diagnostics to fn instead of
// the process logger.
func WithDiagnostics(fn func(msg string)) Option {
	return func(p *parser) { p.diag = fn }
}

// ReadGame parses the next game from the stream, reading at most
// maxMoves plies. The returned record always holds whatever was
// accumulated before termination; callers should check IsEmpty and the
// move count to judge completeness.
//
// ReadGame returns io.EOF when the stream is exhausted without any game
// content, and ErrUnexpectedTag when a tag is found after moves have
// been read. In the latter case the stream is left positioned on the
// tag's opening bracket, so the next call reads it as the start of a
// new game.
//
// maxMoves must be at least one; a non-positive limit is rejected
// without consuming any input, since a parse that can make no progress
// would leave driver loops spinning on the same stream position.
func (r *Reader) ReadGame(maxMoves int, opts ...Option) (*Game, error) {
	game := &Game{
		result:  chess.NoResult,
		fen:     chess.StartingFEN,
		variant: chess.Standard,
		isEmpty: true,
	}

	if maxMoves < 1 {
		return game, fmt.Errorf("pgn: move limit must be positive: %d", maxMoves)
	}

	p := &parser{
		br:   r.br,
		game: game,
		diag: func(msg string) { logrus.Debug(msg) },
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.board == nil {
		board, err := chess.NewBoard(chess.Standard)
		if err != nil {
			return game, err
		}
		p.board = board
	}
	if err := p.board.SetBoard(chess.StartingFEN); err != nil {
		return game, err
	}

	for len(game.moves) < maxMoves {
		it := p.readItem()
		switch it.kind {
		case itemTag:
			if err := p.applyTag(it.text); err != nil {
				return game, err
			}
			game.isEmpty = false
		case itemMove:
			if err := p.applyMove(it.text); err != nil {
				return game, err
			}
		case itemNag:
			if err := p.applyNag(it.text); err != nil {
				return game, err
			}
		case itemResult:
			// Normal end of game; the result was already recorded
			// by the classifier.
			return game, nil
		case itemError:
			if errors.Is(it.err, io.EOF) {
				if game.isEmpty {
					return game, io.EOF
				}
				// Unterminated but non-empty game at the end of
				// the stream.
				return game, nil
			}
			return game, it.err
		}
	}

	return game, nil
}

// applyTag splits a tag item into its name and parameter and folds it
// into the record. Unrecognized tag names keep parsing alive but are
// not stored.
func (p *parser) applyTag(text string) error {
	name, param, _ := strings.Cut(text, " ")
	param = strings.ReplaceAll(param, `"`, "")

	switch name {
	case "White":
		p.game.white = param
	case "Black":
		p.game.black = param
	case "Result":
		p.game.result = chess.ResultFromString(param)
		if p.game.result == chess.ResultError {
			p.diag("invalid result: " + param)
		}
	case "FEN":
		p.game.fen = param
		if err := p.board.SetBoard(param); err != nil {
			p.diag("invalid FEN: " + param)
			return fmt.Errorf("%w: %q", ErrInvalidFEN, param)
		}
	}
	return nil
}

func (p *parser) applyMove(text string) error {
	if p.game.isEmpty {
		p.diag("no tags found")
		return ErrNoTags
	}

	move := p.board.MoveFromString(text)
	if !p.board.IsLegalMove(move) {
		p.diag("illegal move: " + text)
		return fmt.Errorf("%w: %q", ErrIllegalMove, text)
	}

	p.game.moves = append(p.game.moves, move)
	p.board.MakeMove(move)
	return nil
}

// applyNag validates a numeric annotation glyph. The value itself is
// not stored in the record.
func (p *parser) applyNag(text string) error {
	nag, err := strconv.Atoi(text)
	if err != nil || nag < 0 || nag > 255 {
		p.diag("invalid NAG: " + text)
		return fmt.Errorf("%w: %q", ErrInvalidAnnotation, text)
	}
	return nil
}
