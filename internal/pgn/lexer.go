package pgn

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/apex/log"

	"github.com/chesskit-go/chesskit/internal/chess"
)

// Lexer tokenizes PGN input line by line.
type Lexer struct {
	reader   *bufio.Reader
	line     string
	pos      int
	lineNum  int
	ravLevel int
	eof      bool
	opts     Options
}

// Character classification table.
var chTab [256]TokenType

// Characters that may appear inside a SAN move token.
var moveChars [256]bool

func init() {
	initLexTables()
}

func initLexTables() {
	for i := range chTab {
		chTab[i] = errorChar
	}

	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		chTab[c] = whitespaceChar
	}

	chTab['['] = tagStartChar
	chTab[']'] = tagEndChar
	chTab['"'] = quoteChar
	chTab['{'] = commentStartChar
	chTab['}'] = commentEndChar
	chTab['$'] = nagStartChar
	chTab['!'] = annotationChar
	chTab['?'] = annotationChar
	chTab['+'] = checkChar
	chTab['#'] = checkChar
	chTab['.'] = dotChar
	chTab['('] = VariationStart
	chTab[')'] = VariationEnd
	chTab['%'] = percentChar
	chTab['\\'] = escapeChar
	chTab['*'] = starChar
	chTab['-'] = dashChar

	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = digitChar
	}
	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = alphaChar
		chTab[c+32] = alphaChar
	}
	chTab['_'] = alphaChar
	chTab['='] = alphaChar

	initMoveChars()
}

func initMoveChars() {
	// Files and ranks
	for c := byte('a'); c <= 'h'; c++ {
		moveChars[c] = true
	}
	for c := byte('1'); c <= '8'; c++ {
		moveChars[c] = true
	}

	// Piece letters, capture markers, promotion, castling, en passant
	for _, c := range []byte{'K', 'Q', 'R', 'B', 'N', 'x', 'X', ':', '-', '=', 'O', 'o', '0', 'p'} {
		moveChars[c] = true
	}
}

// NewLexer creates a lexer over r using the given options.
func NewLexer(r io.Reader, opts Options) *Lexer {
	opts = opts.withDefaults()
	return &Lexer{
		reader: bufio.NewReader(r),
		opts:   opts,
	}
}

// LineNumber returns the current input line, 1-based.
func (l *Lexer) LineNumber() int {
	return l.lineNum
}

// RAVLevel returns the current variation nesting level.
func (l *Lexer) RAVLevel() int {
	return l.ravLevel
}

// RestartForNewGame resets per-game lexer state.
func (l *Lexer) RestartForNewGame() {
	l.ravLevel = 0
}

func (l *Lexer) readLine() bool {
	line, err := l.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && len(line) > 0 {
			l.line = line
			l.pos = 0
			l.lineNum++
			return true
		}
		l.eof = true
		return false
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

// NextToken returns the next token from the input. A MoveToken with a
// nil Move carries SAN text that did not decode; the parser decides
// whether that is fatal.
func (l *Lexer) NextToken() *Token {
	for {
		token := l.getNextSymbol()
		if token.Type != noToken {
			if token.Line == 0 {
				token.Line = l.lineNum
			}
			return token
		}
	}
}

func (l *Lexer) getNextSymbol() *Token {
	if l.line == "" || l.pos >= len(l.line) {
		if !l.readLine() {
			return &Token{Type: EOFToken, Line: l.lineNum}
		}
		return &Token{Type: noToken}
	}

	ch := l.currentChar()
	symbolStart := l.pos
	l.advance()

	switch chTab[ch] {
	case whitespaceChar:
		for l.pos < len(l.line) && chTab[l.currentChar()] == whitespaceChar {
			l.advance()
		}
		return &Token{Type: noToken}

	case tagStartChar:
		return l.gatherTag(symbolStart)

	case tagEndChar:
		return &Token{Type: noToken}

	case quoteChar:
		return l.gatherString(symbolStart)

	case commentStartChar:
		return l.gatherComment(symbolStart)

	case commentEndChar:
		l.opts.Logger.WithField("line", l.lineNum).Warn("unmatched comment end")
		return &Token{Type: noToken}

	case nagStartChar:
		start := l.pos
		for l.pos < len(l.line) && unicode.IsDigit(rune(l.currentChar())) {
			l.advance()
		}
		return &Token{Type: NAGToken, Text: "$" + l.line[start:l.pos], Column: symbolStart + 1}

	case annotationChar:
		for l.pos < len(l.line) && chTab[l.currentChar()] == annotationChar {
			l.advance()
		}
		return &Token{Type: NAGToken, Text: annotationNAG(l.line[symbolStart:l.pos]), Column: symbolStart + 1}

	case checkChar:
		// Stray check symbol outside a move token.
		for l.pos < len(l.line) && chTab[l.currentChar()] == checkChar {
			l.advance()
		}
		return &Token{Type: noToken}

	case dotChar:
		for l.pos < len(l.line) && chTab[l.currentChar()] == dotChar {
			l.advance()
		}
		return &Token{Type: noToken}

	case VariationStart:
		l.ravLevel++
		return &Token{Type: VariationStart, Column: symbolStart + 1}

	case VariationEnd:
		if l.ravLevel > 0 {
			l.ravLevel--
			return &Token{Type: VariationEnd, Column: symbolStart + 1}
		}
		l.opts.Logger.WithField("line", l.lineNum).Warn("unmatched ')'")
		return &Token{Type: noToken}

	case percentChar:
		// Escape mechanism: rest of the line is ignored.
		l.pos = len(l.line)
		return &Token{Type: noToken}

	case escapeChar:
		if l.pos < len(l.line) {
			l.advance()
		}
		return &Token{Type: noToken}

	case alphaChar:
		return l.gatherAlpha(ch, symbolStart)

	case digitChar:
		return l.gatherNumeric(ch, symbolStart)

	case starChar:
		return &Token{Type: ResultToken, Text: "*", Column: symbolStart + 1}

	case dashChar:
		if l.currentChar() == '-' {
			l.advance()
			return l.makeNullMoveToken(symbolStart)
		}
		l.opts.Logger.WithField("line", l.lineNum).Warn("single '-' in movetext")
		return &Token{Type: noToken}

	default:
		l.opts.Logger.WithFields(log.Fields{
			"line": l.lineNum,
			"char": string(rune(ch)),
		}).Warn("unknown character")
		for l.pos < len(l.line) && chTab[l.currentChar()] == errorChar {
			l.advance()
		}
		return &Token{Type: noToken}
	}
}

// gatherTag gathers a tag name after '['.
func (l *Lexer) gatherTag(symbolStart int) *Token {
	for l.pos < len(l.line) && chTab[l.currentChar()] == whitespaceChar {
		l.advance()
	}

	start := l.pos
	for l.pos < len(l.line) {
		ch := l.currentChar()
		if unicode.IsLetter(rune(ch)) || unicode.IsDigit(rune(ch)) || ch == '_' {
			l.advance()
		} else {
			break
		}
	}

	if l.pos > start {
		return &Token{Type: TagToken, Text: l.line[start:l.pos], Column: symbolStart + 1}
	}
	return &Token{Type: noToken}
}

// gatherString gathers a quoted string, honoring backslash escapes.
func (l *Lexer) gatherString(symbolStart int) *Token {
	var sb strings.Builder
	escaped := false

	for l.pos < len(l.line) {
		ch := l.currentChar()
		l.advance()

		if escaped {
			sb.WriteByte(ch)
			escaped = false
			continue
		}
		if ch == '\\' {
			escaped = true
			continue
		}
		if ch == '"' {
			return &Token{Type: StringToken, Text: sb.String(), Column: symbolStart + 1}
		}
		sb.WriteByte(ch)
	}

	l.opts.Logger.WithField("line", l.lineNum).Warn("missing closing quote")
	return &Token{Type: StringToken, Text: sb.String(), Column: symbolStart + 1}
}

// gatherComment gathers a brace comment, possibly spanning lines.
func (l *Lexer) gatherComment(symbolStart int) *Token {
	var sb strings.Builder
	depth := 1
	startLine := l.lineNum

	for {
		for l.pos < len(l.line) {
			ch := l.currentChar()
			l.advance()

			switch {
			case ch == '{' && l.opts.AllowNestedComments:
				depth++
				sb.WriteByte(ch)
			case ch == '}':
				if l.opts.AllowNestedComments && depth > 1 {
					depth--
					sb.WriteByte(ch)
					continue
				}
				return &Token{
					Type:   CommentToken,
					Text:   strings.TrimSpace(sb.String()),
					Line:   startLine,
					Column: symbolStart + 1,
				}
			default:
				sb.WriteByte(ch)
			}
		}

		if !l.readLine() {
			break
		}
		sb.WriteByte('\n')
	}

	l.opts.Logger.WithField("line", startLine).Warn("missing end of comment")
	return &Token{
		Type:   CommentToken,
		Text:   strings.TrimSpace(sb.String()),
		Line:   startLine,
		Column: symbolStart + 1,
	}
}

// gatherAlpha handles alphabetic tokens, which in movetext are SAN
// moves or the Z0 null move.
func (l *Lexer) gatherAlpha(ch byte, symbolStart int) *Token {
	if ch == 'Z' && l.currentChar() == '0' {
		l.advance()
		return l.makeNullMoveToken(symbolStart)
	}

	if !moveChars[ch] {
		l.opts.Logger.WithFields(log.Fields{
			"line": l.lineNum,
			"char": string(rune(ch)),
		}).Warn("unexpected character in movetext")
		return &Token{Type: noToken}
	}

	for l.pos < len(l.line) && moveChars[l.currentChar()] {
		l.advance()
	}

	// Fold a trailing check or checkmate suffix into the move text.
	for l.pos < len(l.line) && chTab[l.currentChar()] == checkChar {
		l.advance()
	}

	moveText := l.line[symbolStart:l.pos]
	token := &Token{Type: MoveToken, Text: moveText, Column: symbolStart + 1}
	if move, err := DecodeSAN(moveText); err == nil {
		token.Move = move
	}
	return token
}

func (l *Lexer) makeNullMoveToken(symbolStart int) *Token {
	move := &Move{
		Text:     NullMoveText,
		Class:    NullMove,
		FromFile: NoDisambiguation,
		FromRank: NoDisambiguation,
	}
	return &Token{Type: MoveToken, Text: NullMoveText, Move: move, Column: symbolStart + 1}
}

// gatherNumeric handles digit-led tokens: move numbers, game results,
// and zero-spelled castling.
func (l *Lexer) gatherNumeric(initialDigit byte, symbolStart int) *Token {
	remaining := l.line[l.pos:]

	switch initialDigit {
	case '0':
		if strings.HasPrefix(remaining, "-1") {
			l.pos += 2
			return &Token{Type: ResultToken, Text: "0-1", Column: symbolStart + 1}
		}
		if strings.HasPrefix(remaining, "-0-0") {
			l.pos += 4
			return l.makeCastleToken("O-O-O", QueensideCastle, symbolStart)
		}
		if strings.HasPrefix(remaining, "-0") {
			l.pos += 2
			return l.makeCastleToken("O-O", KingsideCastle, symbolStart)
		}
	case '1':
		if strings.HasPrefix(remaining, "-0") {
			l.pos += 2
			return &Token{Type: ResultToken, Text: "1-0", Column: symbolStart + 1}
		}
		if strings.HasPrefix(remaining, "/2") {
			l.pos += 2
			if strings.HasPrefix(l.line[l.pos:], "-1/2") {
				l.pos += 4
			}
			return &Token{Type: ResultToken, Text: "1/2-1/2", Column: symbolStart + 1}
		}
	}

	return l.gatherMoveNumber(symbolStart)
}

func (l *Lexer) makeCastleToken(text string, class MoveClass, symbolStart int) *Token {
	// Castles may carry a check suffix too.
	for l.pos < len(l.line) && chTab[l.currentChar()] == checkChar {
		text += string(l.currentChar())
		l.advance()
	}
	move, err := DecodeSAN(text)
	if err != nil {
		move = &Move{Text: text, Class: class, Piece: chess.King, FromFile: NoDisambiguation, FromRank: NoDisambiguation}
	}
	return &Token{Type: MoveToken, Text: text, Move: move, Column: symbolStart + 1}
}

func (l *Lexer) gatherMoveNumber(symbolStart int) *Token {
	for l.pos < len(l.line) && unicode.IsDigit(rune(l.currentChar())) {
		l.advance()
	}

	numText := l.line[symbolStart:l.pos]

	// Trailing dots belong to the move number.
	for l.pos < len(l.line) && l.currentChar() == '.' {
		l.advance()
	}

	number, err := strconv.Atoi(numText)
	if err != nil {
		number = 0
	}
	return &Token{Type: MoveNumberToken, Number: number, Text: numText, Column: symbolStart + 1}
}

// annotationNAG maps suffix annotation glyphs to their NAG spellings.
func annotationNAG(text string) string {
	switch text {
	case "!":
		return "$1"
	case "?":
		return "$2"
	case "!!":
		return "$3"
	case "??":
		return "$4"
	case "!?":
		return "$5"
	case "?!":
		return "$6"
	default:
		return "$0"
	}
}
