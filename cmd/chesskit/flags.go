// flags.go - Command-line flag definitions
package main

import (
	"flag"
	"runtime"
)

var (
	// Position display
	fenFlag    = flag.String("fen", "", "Parse a FEN record and display the position")
	epdFlag    = flag.String("epd", "", "Parse an EPD record and display the position")
	formatFlag = flag.String("format", "text", "Display format: text, figurine, fen, svg")
	reprFlag   = flag.String("repr", "bitboard", "Board representation: bitboard, piececentric")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")

	// Game processing
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate games from output")
	statsFlag          = flag.Bool("stats", false, "Report collection statistics")
	workersFlag        = flag.Int("workers", runtime.NumCPU(), "Number of game-processing workers")

	// Parsing behavior
	lenientFlag        = flag.Bool("lenient", false, "Log and skip malformed movetext instead of failing")
	nestedCommentsFlag = flag.Bool("nestedcomments", false, "Allow nested brace comments")
	nullMovesFlag      = flag.Bool("nullmoves", false, "Allow null moves on the main line")

	// Diagnostics
	verboseFlag = flag.Bool("v", false, "Enable debug logging")
	versionFlag = flag.Bool("version", false, "Print version and exit")
)
