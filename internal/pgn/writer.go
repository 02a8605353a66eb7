package pgn

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Export line width for movetext, per the PGN export format.
const defaultMaxLineLength = 80

// outputWriter wraps movetext at a maximum line length, breaking only
// at token boundaries.
type outputWriter struct {
	w          io.Writer
	lineLength int
	maxLength  int
}

func newOutputWriter(w io.Writer, maxLength int) *outputWriter {
	if maxLength <= 0 {
		maxLength = defaultMaxLineLength
	}
	return &outputWriter{w: w, maxLength: maxLength}
}

// writeToken writes s preceded by a space or a line break.
func (o *outputWriter) writeToken(s string) {
	if o.lineLength > 0 {
		if o.lineLength+1+len(s) > o.maxLength {
			fmt.Fprint(o.w, "\n")
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
}

func (o *outputWriter) newLine() {
	fmt.Fprint(o.w, "\n")
	o.lineLength = 0
}

// Writer emits games in the PGN export format.
type Writer struct {
	w         io.Writer
	maxLength int
}

// NewWriter creates a PGN writer targeting w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, maxLength: defaultMaxLineLength}
}

// WriteGame writes one game: the tag-pair block in seven tag roster
// order (remaining tags alphabetically), a blank line, then wrapped
// movetext ending with the result marker.
func (w *Writer) WriteGame(game *Game) error {
	if err := w.writeTags(game); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w.w, "\n"); err != nil {
		return err
	}

	ow := newOutputWriter(w.w, w.maxLength)
	for _, comment := range game.PrefixComments {
		ow.writeToken("{" + comment + "}")
	}

	number, whiteToMove := startingMoveContext(game)
	writeMoveSequence(ow, game.Moves, number, whiteToMove)

	result := game.Result
	if result == "" {
		result = "*"
	}
	ow.writeToken(result)
	ow.newLine()
	_, err := fmt.Fprint(w.w, "\n")
	return err
}

func (w *Writer) writeTags(game *Game) error {
	emitted := make(map[string]bool, len(game.Tags))

	writeTag := func(name, value string) error {
		_, err := fmt.Fprintf(w.w, "[%s \"%s\"]\n", name, escapeTagValue(value))
		return err
	}

	for _, name := range rosterTags {
		value, ok := game.Tags[name]
		if !ok {
			// The roster is mandatory in export format.
			value = "?"
			if name == "Result" {
				value = "*"
				if game.Result != "" {
					value = game.Result
				}
			}
		}
		if err := writeTag(name, value); err != nil {
			return err
		}
		emitted[name] = true
	}

	rest := make([]string, 0, len(game.Tags))
	for name := range game.Tags {
		if !emitted[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		if err := writeTag(name, game.Tags[name]); err != nil {
			return err
		}
	}
	return nil
}

func escapeTagValue(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// startingMoveContext reads the move number and side to move from a
// FEN tag when present, so games from arbitrary positions number their
// moves correctly.
func startingMoveContext(game *Game) (number int, whiteToMove bool) {
	number, whiteToMove = 1, true
	fields := strings.Fields(game.Tag("FEN"))
	if len(fields) < 6 {
		return number, whiteToMove
	}
	if fields[1] == "b" {
		whiteToMove = false
	}
	if n, err := strconv.Atoi(fields[5]); err == nil && n > 0 {
		number = n
	}
	return number, whiteToMove
}

// writeMoveSequence emits moves with their numbers, NAGs, comments,
// and variations. A Black move after an interruption (start of line,
// comment, variation) gets a "N..." continuation number.
func writeMoveSequence(ow *outputWriter, moves []*Move, number int, whiteToMove bool) {
	interrupted := true
	for _, move := range moves {
		if whiteToMove {
			ow.writeToken(strconv.Itoa(number) + ".")
		} else if interrupted {
			ow.writeToken(strconv.Itoa(number) + "...")
		}
		ow.writeToken(move.Text)
		if !whiteToMove {
			number++
		}
		whiteToMove = !whiteToMove
		interrupted = false

		for _, nag := range move.NAGs {
			ow.writeToken(nag)
		}
		for _, comment := range move.Comments {
			ow.writeToken("{" + comment + "}")
			interrupted = true
		}
		for _, variation := range move.Variations {
			writeVariation(ow, variation, number, whiteToMove)
			interrupted = true
		}
	}
}

// writeVariation emits one parenthesized alternative. number and
// whiteToMove describe the position after the main-line move the
// variation replaces, so the variation rewinds one half-move.
func writeVariation(ow *outputWriter, variation *Variation, number int, whiteToMove bool) {
	startsWhite := !whiteToMove
	if !startsWhite {
		number--
	}
	ow.writeToken("(")
	writeMoveSequence(ow, variation.Moves, number, startsWhite)
	for _, comment := range variation.Comments {
		ow.writeToken("{" + comment + "}")
	}
	ow.writeToken(")")
}
