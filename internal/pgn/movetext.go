package pgn

import (
	"strings"

	"github.com/corentings/chess/v2"
	"github.com/corentings/chess/v2/opening"
)

// MainlinePlies parses the record's movetext and returns the number of
// mainline half-moves. A record the parser rejects counts as 0 plies; the
// splitter never refuses a game over bad movetext.
func MainlinePlies(record string) int {
	pgnOpt, err := chess.PGN(strings.NewReader(record))
	if err != nil {
		return 0
	}
	return len(chess.NewGame(pgnOpt).Moves())
}

// DetectOpening looks the game's moves up in the ECO book and returns the
// opening code and title, or empty strings when the game cannot be parsed or
// the moves match no book line.
func DetectOpening(record string) (code, title string) {
	pgnOpt, err := chess.PGN(strings.NewReader(record))
	if err != nil {
		return "", ""
	}
	game := chess.NewGame(pgnOpt)
	book := opening.NewBookECO()
	found := book.Find(game.Moves())
	if found == nil {
		return "", ""
	}
	return found.Code(), found.Title()
}
