package pgn

// ResultKind classifies the Result tag of a game.
type ResultKind int

const (
	ResultUnknown ResultKind = iota
	ResultDecisive
	ResultDraw
	ResultOngoing
)

// Result is the parsed form of a Result tag. Raw keeps the original tag value
// for decisive games (e.g. "1-0").
type Result struct {
	Kind ResultKind
	Raw  string
}

// ParseResult interprets a Result tag value.
func ParseResult(s string) Result {
	switch s {
	case "":
		return Result{Kind: ResultUnknown}
	case "1/2-1/2":
		return Result{Kind: ResultDraw, Raw: s}
	case "*":
		return Result{Kind: ResultOngoing, Raw: s}
	default:
		return Result{Kind: ResultDecisive, Raw: s}
	}
}

// Label returns the filename form of the result: "draw" for drawn games,
// "ongoing" for unterminated ones, the raw value for decisive results and ""
// when the tag was absent.
func (r Result) Label() string {
	switch r.Kind {
	case ResultDraw:
		return "draw"
	case ResultOngoing:
		return "ongoing"
	case ResultDecisive:
		return r.Raw
	default:
		return ""
	}
}
