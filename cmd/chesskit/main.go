// chesskit is a tool for parsing, inspecting, and reformatting chess
// positions and games in FEN, EPD, and PGN notation.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/chesskit-go/chesskit/internal/chess"
	"github.com/chesskit-go/chesskit/internal/fen"
	"github.com/chesskit-go/chesskit/internal/pgn"
	"github.com/chesskit-go/chesskit/internal/render"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	log.SetHandler(cli.New(os.Stderr))
	log.SetLevel(log.InfoLevel)
	if *verboseFlag {
		log.SetLevel(log.DebugLevel)
	}

	if *versionFlag {
		fmt.Printf("chesskit version %s\n", programVersion)
		os.Exit(0)
	}

	out, closeOut := setupOutput()
	defer closeOut()

	if *fenFlag != "" || *epdFlag != "" {
		if err := showPosition(out); err != nil {
			log.WithError(err).Error("cannot display position")
			os.Exit(1)
		}
		return
	}

	opts := pgn.Options{
		Lenient:             *lenientFlag,
		AllowNestedComments: *nestedCommentsFlag,
		AllowNullMoves:      *nullMovesFlag,
		Logger:              log.Log,
	}

	summary, err := processInputs(flag.Args(), opts, out)
	if err != nil {
		log.WithError(err).Error("processing failed")
		os.Exit(1)
	}

	if *statsFlag {
		reportSummary(summary)
	}
}

// setupOutput opens the -o target, defaulting to stdout.
func setupOutput() (io.Writer, func()) {
	if *outputFile == "" {
		return os.Stdout, func() {}
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		log.WithError(err).WithField("file", *outputFile).Error("cannot create output file")
		os.Exit(1)
	}
	return file, func() { file.Close() }
}

// showPosition parses the -fen or -epd record and renders it in the
// requested format.
func showPosition(out io.Writer) error {
	repr, err := parseRepresentation(*reprFlag)
	if err != nil {
		return err
	}

	var game *chess.Game
	if *fenFlag != "" {
		game, err = fen.ParseAs(*fenFlag, repr)
	} else {
		game, err = fen.ParseEPD(*epdFlag, repr)
	}
	if err != nil {
		return err
	}

	switch *formatFlag {
	case "text":
		game.Board().Dump(out)
	case "figurine":
		game.Board().DumpFigurine(out)
	case "fen":
		fmt.Fprintln(out, fen.Format(game))
	case "svg":
		render.WriteSVG(out, game.Board())
	default:
		return fmt.Errorf("unknown display format %q", *formatFlag)
	}

	log.WithFields(log.Fields{
		"active":   game.ActivePlayer(),
		"castling": game.CastlingRights(),
		"halfmove": game.HalfmoveClock(),
		"fullmove": game.FullmoveNumber(),
	}).Debug("position state")
	return nil
}

func parseRepresentation(name string) (chess.Representation, error) {
	switch name {
	case "bitboard":
		return chess.BitboardRepr, nil
	case "piececentric":
		return chess.PieceCentricRepr, nil
	default:
		return chess.BitboardRepr, fmt.Errorf("unknown board representation %q", name)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chesskit [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "A tool for chess positions and games in FEN, EPD, and PGN notation.\n")
	fmt.Fprintf(os.Stderr, "With no input files, PGN is read from stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nDisplay formats (-format):\n")
	fmt.Fprintf(os.Stderr, "  text      Letters on an 8x8 grid (default)\n")
	fmt.Fprintf(os.Stderr, "  figurine  Unicode chess glyphs\n")
	fmt.Fprintf(os.Stderr, "  fen       The position's FEN record\n")
	fmt.Fprintf(os.Stderr, "  svg       An SVG board diagram\n")
}
