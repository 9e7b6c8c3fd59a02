package chess

// Variant identifies the family of rules a game is played under.
type Variant int

const (
	Standard Variant = iota
	Capablanca
)

// Canonical starting positions.
const (
	StartingFEN   = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	CapablancaFEN = "rnabqkbcnr/pppppppppp/10/10/10/10/PPPPPPPPPP/RNABQKBCNR w KQkq - 0 1"
	GothicFEN     = "rnbqckabnr/pppppppppp/10/10/10/10/PPPPPPPPPP/RNBQCKABNR w KQkq - 0 1"
)

func (variant Variant) String() string {
	switch variant {
	case Capablanca:
		return "Capablanca"
	default:
		return "Standard"
	}
}
