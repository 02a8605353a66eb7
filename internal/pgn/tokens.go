// Package pgn tokenizes and parses Portable Game Notation: tag pairs,
// SAN movetext, comments, annotation glyphs, variations, and result
// markers. The codec decodes SAN tokens into partially specified moves
// and hands them to the caller; resolving them against a position is
// the external move generator's job.
package pgn

// TokenType identifies a lexical token.
type TokenType int

const (
	// Tokens returned to the parser
	EOFToken TokenType = iota
	TagToken
	StringToken
	CommentToken
	NAGToken
	MoveNumberToken
	VariationStart
	VariationEnd
	MoveToken
	ResultToken

	// Internal classifications used while scanning
	whitespaceChar
	tagStartChar
	tagEndChar
	quoteChar
	commentStartChar
	commentEndChar
	nagStartChar
	annotationChar
	checkChar
	dotChar
	percentChar
	escapeChar
	alphaChar
	digitChar
	starChar
	dashChar
	noToken
	errorChar
)

var tokenTypeNames = [...]string{
	EOFToken:        "EOF",
	TagToken:        "TAG",
	StringToken:     "STRING",
	CommentToken:    "COMMENT",
	NAGToken:        "NAG",
	MoveNumberToken: "MOVE_NUMBER",
	VariationStart:  "VARIATION_START",
	VariationEnd:    "VARIATION_END",
	MoveToken:       "MOVE",
	ResultToken:     "RESULT",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) && tokenTypeNames[t] != "" {
		return tokenTypeNames[t]
	}
	return "INTERNAL"
}

// Token is a lexical token with its decoded payload.
type Token struct {
	Type TokenType

	// Text holds tag names, strings, NAGs, and result markers.
	Text string

	// Move holds the decoded SAN move for MoveToken.
	Move *Move

	// Number holds the move number for MoveNumberToken.
	Number int

	// Line and Column locate the token for error reporting.
	Line   int
	Column int
}
