package pgn

import "errors"

// Parse failures. Each one terminates the ReadGame call that produced it;
// the partially populated record is still returned to the caller.
var (
	// ErrMalformedItem means an item's text was empty after trimming.
	ErrMalformedItem = errors.New("pgn: malformed item")

	// ErrUnexpectedTag means a tag was found after moves had already been
	// read. The stream is rewound by one rune so the tag can be re-read
	// as the start of the next game.
	ErrUnexpectedTag = errors.New("pgn: no termination marker before next game")

	// ErrInvalidFEN means the rules engine rejected a FEN tag's value.
	ErrInvalidFEN = errors.New("pgn: invalid FEN tag")

	// ErrNoTags means a move appeared before any tag was accepted.
	ErrNoTags = errors.New("pgn: no tags found before moves")

	// ErrIllegalMove means the rules engine rejected a decoded move.
	ErrIllegalMove = errors.New("pgn: illegal move")

	// ErrInvalidAnnotation means a numeric annotation glyph was
	// unparseable or outside the range 0-255.
	ErrInvalidAnnotation = errors.New("pgn: invalid numeric annotation")
)
