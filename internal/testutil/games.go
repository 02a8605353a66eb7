package testutil

import (
	"strings"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"

	"github.com/chesskit-go/chesskit/internal/chess"
	"github.com/chesskit-go/chesskit/internal/fen"
	"github.com/chesskit-go/chesskit/internal/pgn"
)

// quietLogger discards parser diagnostics during tests.
func quietLogger() log.Interface {
	return &log.Logger{Level: log.ErrorLevel, Handler: discard.New()}
}

// ParseGames parses a PGN string and returns all games found, or nil
// when nothing parses. Use it where parse failure is acceptable.
func ParseGames(movetext string) []*pgn.Game {
	p := pgn.NewParser(strings.NewReader(movetext), pgn.Options{
		Lenient: true,
		Logger:  quietLogger(),
	})
	games, err := p.ParseAllGames()
	if err != nil || len(games) == 0 {
		return nil
	}
	return games
}

// MustParseGame parses a PGN string and returns the first game,
// aborting the test on failure.
func MustParseGame(t *testing.T, movetext string) *pgn.Game {
	t.Helper()
	games := ParseGames(movetext)
	if len(games) == 0 {
		t.Fatalf("failed to parse test game:\n%s", movetext)
	}
	return games[0]
}

// MustParseFEN parses a FEN string, aborting the test on failure.
func MustParseFEN(t *testing.T, notation string) *chess.Game {
	t.Helper()
	game, err := fen.Parse(notation)
	if err != nil {
		t.Fatalf("failed to parse FEN %q: %v", notation, err)
	}
	return game
}
