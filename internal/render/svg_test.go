package render

import (
	"strings"
	"testing"

	"github.com/chesskit-go/chesskit/internal/chess"
)

func TestWriteSVGStartingPosition(t *testing.T) {
	var sb strings.Builder
	WriteSVG(&sb, chess.NewStartingBoard(chess.BitboardRepr))
	out := sb.String()

	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("output is not an SVG document:\n%.200s", out)
	}
	if got := strings.Count(out, "<rect"); got != 64 {
		t.Errorf("rect count = %d, want 64", got)
	}
	for _, glyph := range []string{"♔", "♛", "♙", "♟"} {
		if !strings.Contains(out, glyph) {
			t.Errorf("output missing %s glyph", glyph)
		}
	}
	// 32 pieces plus 16 coordinate labels.
	if got := strings.Count(out, "<text"); got != 48 {
		t.Errorf("text count = %d, want 48", got)
	}
}

func TestWriteSVGEmptyBoard(t *testing.T) {
	var sb strings.Builder
	WriteSVG(&sb, chess.NewBoard(chess.PieceCentricRepr))
	out := sb.String()

	if got := strings.Count(out, "<rect"); got != 64 {
		t.Errorf("rect count = %d, want 64", got)
	}
	if got := strings.Count(out, "<text"); got != 16 {
		t.Errorf("text count = %d, want 16 coordinate labels", got)
	}
}
