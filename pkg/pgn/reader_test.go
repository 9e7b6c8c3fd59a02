package pgn

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jconsidi/cutechess/pkg/chess"
)

func newTestParser(input string) (*parser, *[]string) {
	var diags []string
	p := &parser{
		br: bufio.NewReader(strings.NewReader(input)),
		game: &Game{
			result:  chess.NoResult,
			fen:     chess.StartingFEN,
			isEmpty: true,
		},
		board: newFakeBoard(),
		diag:  func(msg string) { diags = append(diags, msg) },
	}
	return p, &diags
}

func TestReadItemSequence(t *testing.T) {
	p, _ := newTestParser(`[White "A"] 1. e4 {a {nested} comment} $1 (skip) ; eol comment
Nf3+ 1-0`)

	want := []struct {
		kind itemKind
		text string
	}{
		{itemTag, `White "A"`},
		{itemMoveNumber, "1"},
		{itemMove, "e4"},
		{itemComment, "a nested comment"},
		{itemNag, "1"},
		{itemComment, "skip"},
		{itemComment, "eol comment"},
		{itemMove, "Nf3+"},
		{itemResult, "1-0"},
	}

	for i, w := range want {
		it := p.readItem()
		if it.kind != w.kind || it.text != w.text {
			t.Fatalf("item %d: got (%v, %q), want (%v, %q)", i, it.kind, it.text, w.kind, w.text)
		}
		// The builder clears this after the first tag; the classifier
		// discards non-tag input until then.
		p.game.isEmpty = false
	}

	if it := p.readItem(); !errors.Is(it.err, io.EOF) {
		t.Fatalf("after last item: got (%v, %v), want EOF", it.kind, it.err)
	}
}

func TestReadItemDiscardsUntilFirstTag(t *testing.T) {
	p, _ := newTestParser("junk before the game 1. e4\n[White \"A\"]")

	it := p.readItem()
	if it.kind != itemTag || it.text != `White "A"` {
		t.Fatalf("got (%v, %q), want tag", it.kind, it.text)
	}
}

func TestReadItemEscapeLine(t *testing.T) {
	p, _ := newTestParser("%this whole line is skipped\ne4")
	p.game.isEmpty = false

	it := p.readItem()
	if it.kind != itemMove || it.text != "e4" {
		t.Fatalf("got (%v, %q), want move e4", it.kind, it.text)
	}
}

func TestReadItemLeadingPeriods(t *testing.T) {
	p, _ := newTestParser("1... e5")
	p.game.isEmpty = false

	if it := p.readItem(); it.kind != itemMoveNumber || it.text != "1" {
		t.Fatalf("got (%v, %q), want move number 1", it.kind, it.text)
	}
	if it := p.readItem(); it.kind != itemMove || it.text != "e5" {
		t.Fatalf("got (%v, %q), want move e5", it.kind, it.text)
	}
}

func TestReadItemResultReclassification(t *testing.T) {
	for _, tc := range []struct {
		text   string
		result chess.Result
	}{
		{"1-0", chess.WhiteWins},
		{"0-1", chess.BlackWins},
		{"1/2-1/2", chess.Draw},
		{"*", chess.NoResult},
	} {
		p, _ := newTestParser(tc.text)
		p.game.isEmpty = false

		it := p.readItem()
		if it.kind != itemResult {
			t.Errorf("%q: got %v, want result", tc.text, it.kind)
		}
		if p.game.result != tc.result {
			t.Errorf("%q: got result %v, want %v", tc.text, p.game.result, tc.result)
		}
	}
}

func TestReadItemResultMismatchDiagnostic(t *testing.T) {
	p, diags := newTestParser("0-1")
	p.game.isEmpty = false
	p.game.result = chess.WhiteWins

	it := p.readItem()
	if it.kind != itemResult {
		t.Fatalf("got %v, want result", it.kind)
	}
	if p.game.result != chess.BlackWins {
		t.Errorf("got result %v, want the freshly parsed marker to win", p.game.result)
	}
	if len(*diags) != 1 {
		t.Errorf("got %d diagnostics, want 1", len(*diags))
	}
}

func TestReadItemRewindsOnUnexpectedTag(t *testing.T) {
	p, diags := newTestParser(`[White "B"]`)
	p.game.isEmpty = false
	p.game.moves = append(p.game.moves, "e4")

	it := p.readItem()
	if !errors.Is(it.err, ErrUnexpectedTag) {
		t.Fatalf("got (%v, %v), want ErrUnexpectedTag", it.kind, it.err)
	}
	if len(*diags) != 1 {
		t.Errorf("got %d diagnostics, want 1", len(*diags))
	}

	// The stream must be positioned to re-read the bracket as the
	// start of the next game.
	if c, _, err := p.br.ReadRune(); err != nil || c != '[' {
		t.Fatalf("next rune is %q (err %v), want '['", c, err)
	}
}

func TestReadItemMalformed(t *testing.T) {
	// An empty brace comment trims to nothing.
	p, _ := newTestParser("{}")
	p.game.isEmpty = false

	it := p.readItem()
	if !errors.Is(it.err, ErrMalformedItem) {
		t.Fatalf("got (%v, %v), want ErrMalformedItem", it.kind, it.err)
	}
}

func TestReadItemEOF(t *testing.T) {
	for _, input := range []string{"", "   \n\t  "} {
		p, _ := newTestParser(input)
		if it := p.readItem(); !errors.Is(it.err, io.EOF) {
			t.Errorf("input %q: got (%v, %v), want EOF", input, it.kind, it.err)
		}
	}
}
