package pgn

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/jconsidi/cutechess/pkg/chess"
)

// Reader pulls games one at a time from a PGN text stream.
type Reader struct {
	br *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// parser holds the state of a single ReadGame call.
type parser struct {
	br    *bufio.Reader
	game  *Game
	board chess.Board
	diag  func(msg string)
}

// readItem classifies and consumes the next item from the stream. It has
// no knowledge of chess semantics beyond the four result tokens; board
// state is only touched by the dispatch in ReadGame.
func (p *parser) readItem() item {
	p.skipSpace()

	kind := itemMove
	var br bracket
	var sb strings.Builder
	var readErr error

scan:
	for {
		c, _, err := p.br.ReadRune()
		if err != nil {
			readErr = err
			break
		}

		// Discard everything preceding the first tag of a game. This
		// suppresses garbage between games in a multi-game stream.
		if p.game.isEmpty && kind != itemTag && c != '[' {
			continue
		}
		if (c == '\n' || c == '\r') && kind != itemComment {
			break
		}

		if !br.active() {
			if sb.Len() == 0 {
				switch c {
				case ';':
					// Rest-of-the-line comment.
					kind = itemComment
					line, _ := p.br.ReadString('\n')
					sb.WriteString(strings.TrimRight(line, "\r\n"))
					break scan
				case '%':
					// Escape mechanism: skip this line.
					_, _ = p.br.ReadString('\n')
					continue
				case '.':
					// Leading move number punctuation.
					p.skipSpace()
					continue
				case '$':
					// NAG (Numeric Annotation Glyph).
					kind = itemNag
					continue
				}
				if unicode.IsDigit(c) && kind == itemMove {
					kind = itemMoveNumber
				}
			}

			switch c {
			case '[':
				// Tags are not allowed once moves have been read: we
				// may be looking at the next game in the stream, so
				// rewind by one rune and let the caller re-read it.
				if len(p.game.moves) > 0 {
					_ = p.br.UnreadRune()
					p.diag("no termination marker")
					return item{kind: itemError, err: ErrUnexpectedTag}
				}
				kind = itemTag
				br = bracket{open: '[', close: ']'}
			case '(':
				kind = itemComment
				br = bracket{open: '(', close: ')'}
			case '{':
				kind = itemComment
				br = bracket{open: '{', close: '}'}
			}
		}

		switch {
		case br.active() && c == br.open:
			br.depth++
		case br.active() && c == br.close:
			br.depth--
			if br.depth <= 0 {
				break scan
			}
		case kind == itemMove && unicode.IsSpace(c):
			break scan
		case kind == itemMoveNumber && (unicode.IsSpace(c) || c == '.'):
			break scan
		case kind == itemNag && unicode.IsSpace(c):
			break scan
		default:
			sb.WriteRune(c)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		if readErr != nil {
			return item{kind: itemError, err: io.EOF}
		}
		return item{kind: itemError, err: ErrMalformedItem}
	}

	// A move-shaped token may turn out to be the game's termination
	// marker. The marker wins over a previously parsed Result tag.
	if kind == itemMove || kind == itemMoveNumber {
		switch text {
		case "*", "1-0", "0-1", "1/2-1/2":
			result := chess.ResultFromString(text)
			if result != p.game.result {
				p.diag("the termination marker is different from the result tag")
			}
			p.game.result = result
			return item{kind: itemResult, text: text}
		}
	}

	return item{kind: kind, text: text}
}

// skipSpace consumes a run of whitespace, leaving the stream positioned
// on the first rune after it.
func (p *parser) skipSpace() {
	for {
		c, _, err := p.br.ReadRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(c) {
			_ = p.br.UnreadRune()
			return
		}
	}
}
