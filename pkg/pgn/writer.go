package pgn

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jconsidi/cutechess/pkg/chess"
)

// WriteOption configures serialization.
type WriteOption func(*writer)

// WithDate sets the date written to the Date tag. The default is the
// current date.
func WithDate(date time.Time) WriteOption {
	return func(w *writer) { w.date = date }
}

// WithReplayBoard substitutes the rules engine used to regenerate move
// text. The default is a fresh board for the record's variant.
func WithReplayBoard(board chess.Board) WriteOption {
	return func(w *writer) { w.board = board }
}

type writer struct {
	date  time.Time
	board chess.Board
}

// WriteTo serializes the record as canonical PGN. Writing an empty
// record produces no bytes.
func (g *Game) WriteTo(w io.Writer, opts ...WriteOption) error {
	if g.isEmpty {
		return nil
	}

	cfg := writer{date: time.Now()}
	for _, opt := range opts {
		opt(&cfg)
	}

	useFen := false
	var variantTag string
	switch g.variant {
	case chess.Standard:
		if g.fen != chess.StartingFEN {
			useFen = true
		}
		if g.random {
			variantTag = "Fischerandom"
		}
	default:
		switch g.fen {
		case chess.CapablancaFEN:
			variantTag = "Capablanca"
		case chess.GothicFEN:
			variantTag = "Gothic"
		default:
			useFen = true
		}
		if g.random {
			variantTag = g.variant.String() + "random"
		}
	}

	board := cfg.board
	if board == nil {
		var err error
		board, err = chess.NewBoard(g.variant)
		if err != nil {
			return err
		}
	}
	if err := board.SetBoard(g.fen); err != nil {
		return err
	}

	result := g.result.String()
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "[Date %q]\n", cfg.date.Format("2006.01.02"))
	fmt.Fprintf(bw, "[White %q]\n", g.white)
	fmt.Fprintf(bw, "[Black %q]\n", g.black)
	fmt.Fprintf(bw, "[Result %q]\n", result)
	if variantTag != "" {
		fmt.Fprintf(bw, "[Variant %q]\n", variantTag)
	}
	if useFen {
		fmt.Fprintf(bw, "[FEN %q]\n", g.fen)
	}

	for i, move := range g.moves {
		if i%8 == 0 {
			bw.WriteByte('\n')
		}
		if i%2 == 0 {
			fmt.Fprintf(bw, "%d. ", i/2+1)
		}
		bw.WriteString(board.MoveString(move, chess.StandardAlgebraic))
		bw.WriteByte(' ')
		board.MakeMove(move)
	}

	bw.WriteString(result)
	bw.WriteString("\n\n")
	return bw.Flush()
}

// WriteToFile appends the record to the named file, creating it if
// needed. The file is held open only for the duration of the call.
func (g *Game) WriteToFile(name string, opts ...WriteOption) error {
	if g.isEmpty {
		return nil
	}

	file, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	return g.WriteTo(file, opts...)
}
