package pgn

// itemKind classifies one semantic item pulled from a PGN stream.
type itemKind int

const (
	itemMove itemKind = iota
	itemMoveNumber
	itemTag
	itemNag
	itemComment
	itemResult
	itemError
)

var itemNames = map[itemKind]string{
	itemMove:       "move",
	itemMoveNumber: "move number",
	itemTag:        "tag",
	itemNag:        "annotation",
	itemComment:    "comment",
	itemResult:     "result",
	itemError:      "error",
}

func (kind itemKind) String() string {
	return itemNames[kind]
}

// item is one classified token together with its accumulated text.
type item struct {
	kind itemKind
	text string
	err  error
}

// bracket tracks the delimiters of a bracketed item while it is being
// accumulated. The zero value means no bracket is active.
type bracket struct {
	open  rune
	close rune
	depth int
}

func (b bracket) active() bool {
	return b.open != 0
}
