package chess

// Result is the outcome of a game from White's perspective.
type Result int

const (
	NoResult Result = iota
	WhiteWins
	BlackWins
	Draw
	ResultError
)

// String returns the PGN result token for the given Result. Results
// without a defined token, including ResultError, map to "*".
func (result Result) String() string {
	switch result {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// ResultFromString parses a PGN result token. Anything other than the
// four defined tokens yields ResultError.
func ResultFromString(str string) Result {
	switch str {
	case "*":
		return NoResult
	case "1-0":
		return WhiteWins
	case "0-1":
		return BlackWins
	case "1/2-1/2":
		return Draw
	default:
		return ResultError
	}
}
