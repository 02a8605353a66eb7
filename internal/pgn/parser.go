package pgn

import (
	"io"

	"github.com/apex/log"

	"github.com/chesskit-go/chesskit/internal/errors"
)

// Options configures parsing behavior.
type Options struct {
	// Lenient makes the parser log and skip malformed movetext
	// instead of failing the game.
	Lenient bool

	// AllowNestedComments permits brace comments inside brace
	// comments.
	AllowNestedComments bool

	// AllowNullMoves permits "--" and "Z0" on the main line. Null
	// moves inside variations are always accepted.
	AllowNullMoves bool

	// Logger receives diagnostics for recoverable input problems.
	// Defaults to the package-level apex logger.
	Logger log.Interface
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.Log
	}
	return o
}

// Parser parses PGN input into Game values.
type Parser struct {
	lexer    *Lexer
	tok      *Token
	ravLevel int
	opts     Options
}

// NewParser creates a parser over r.
func NewParser(r io.Reader, opts Options) *Parser {
	opts = opts.withDefaults()
	return &Parser{
		lexer: NewLexer(r, opts),
		opts:  opts,
	}
}

func (p *Parser) nextToken() {
	p.tok = p.lexer.NextToken()
}

func (p *Parser) parseErr(expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrMalformedPGN,
		Line:     p.tok.Line,
		Column:   p.tok.Column,
		Expected: expected,
		Got:      got,
	}
}

// ParseGame parses the next game from the input. It returns (nil, nil)
// once the input is exhausted.
func (p *Parser) ParseGame() (*Game, error) {
	if p.tok == nil {
		p.nextToken()
	}

	p.skipToNextGame()
	p.lexer.RestartForNewGame()

	game := NewGame()
	game.StartLine = p.lexer.LineNumber()

	if err := p.parseTagList(game); err != nil {
		return nil, err
	}
	game.PrefixComments = p.parseCommentList()

	// Stray NAGs before the first move are non-standard but occur.
	for p.tok.Type == NAGToken {
		p.nextToken()
	}

	moves, err := p.parseMoveList()
	if err != nil {
		return nil, err
	}
	game.Moves = moves

	trailing := p.parseCommentList()
	if len(moves) > 0 {
		last := moves[len(moves)-1]
		last.Comments = append(last.Comments, trailing...)
	}

	game.Result = p.parseResult()
	game.EndLine = p.lexer.LineNumber()

	if game.Result != "" {
		if v := game.Tag("Result"); v == "" || v == "?" {
			game.SetTag("Result", game.Result)
		}
	} else if v := game.Tag("Result"); v != "" {
		game.Result = v
	}

	if p.tok.Type == EOFToken && len(game.Moves) == 0 && len(game.Tags) == 0 {
		return nil, nil
	}
	return game, nil
}

// ParseAllGames parses every game remaining in the input. In lenient
// mode a game that fails to parse is logged and skipped.
func (p *Parser) ParseAllGames() ([]*Game, error) {
	var games []*Game
	for {
		game, err := p.ParseGame()
		if err != nil {
			if !p.opts.Lenient {
				return games, err
			}
			p.opts.Logger.WithError(err).Warn("skipping malformed game")
			continue
		}
		if game == nil {
			return games, nil
		}
		games = append(games, game)
	}
}

// skipToNextGame skips tokens until something that can start a game.
func (p *Parser) skipToNextGame() {
	for {
		switch p.tok.Type {
		case EOFToken, TagToken, MoveToken, CommentToken, ResultToken:
			return
		default:
			p.nextToken()
		}
	}
}

func (p *Parser) parseTagList(game *Game) error {
	for {
		switch p.tok.Type {
		case TagToken:
			name := p.tok.Text
			p.nextToken()
			if p.tok.Type != StringToken {
				if !p.opts.Lenient {
					return p.parseErr("a quoted value for tag "+name, p.tok.Type.String())
				}
				p.opts.Logger.WithField("tag", name).Warn("missing tag value")
				continue
			}
			game.SetTag(name, p.tok.Text)
			p.nextToken()
		case StringToken:
			if !p.opts.Lenient {
				return p.parseErr("a tag name before the quoted value", "a bare string")
			}
			p.opts.Logger.WithField("value", p.tok.Text).Warn("quoted string without a tag name")
			p.nextToken()
		default:
			return nil
		}
	}
}

func (p *Parser) parseMoveList() ([]*Move, error) {
	var moves []*Move
	for {
		move, err := p.parseMoveAndVariations()
		if err != nil {
			return nil, err
		}
		if move == nil {
			return moves, nil
		}
		moves = append(moves, move)
	}
}

func (p *Parser) parseMoveAndVariations() (*Move, error) {
	move, err := p.parseMove()
	if err != nil || move == nil {
		return nil, err
	}

	for p.tok.Type == VariationStart {
		variation, err := p.parseVariation()
		if err != nil {
			return nil, err
		}
		move.Variations = append(move.Variations, variation)
		// NAGs and comments may trail the closing parenthesis.
		p.attachNAGs(move)
		move.Comments = append(move.Comments, p.parseCommentList()...)
	}
	return move, nil
}

func (p *Parser) parseMove() (*Move, error) {
	for {
		if p.tok.Type == MoveNumberToken {
			p.nextToken()
			continue
		}
		if p.tok.Type != MoveToken {
			return nil, nil
		}

		if p.tok.Move == nil {
			if !p.opts.Lenient {
				return nil, p.parseErr("a legal SAN move", p.tok.Text)
			}
			p.opts.Logger.WithFields(log.Fields{
				"line": p.tok.Line,
				"text": p.tok.Text,
			}).Warn("skipping unreadable move")
			p.nextToken()
			continue
		}

		move := p.tok.Move
		p.nextToken()

		if move.Class == NullMove && p.ravLevel == 0 && !p.opts.AllowNullMoves {
			if !p.opts.Lenient {
				return nil, p.parseErr("a real move on the main line", "a null move")
			}
			p.opts.Logger.Warn("null move outside a variation")
		}

		p.attachNAGs(move)
		move.Comments = append(move.Comments, p.parseCommentList()...)
		p.attachNAGs(move)
		return move, nil
	}
}

func (p *Parser) attachNAGs(move *Move) {
	for p.tok.Type == NAGToken {
		move.NAGs = append(move.NAGs, p.tok.Text)
		p.nextToken()
	}
}

func (p *Parser) parseCommentList() []string {
	var comments []string
	for p.tok.Type == CommentToken {
		comments = append(comments, p.tok.Text)
		p.nextToken()
	}
	return comments
}

func (p *Parser) parseVariation() (*Variation, error) {
	// Caller checked for VariationStart.
	p.ravLevel++
	p.nextToken()

	variation := &Variation{
		Comments: p.parseCommentList(),
	}

	moves, err := p.parseMoveList()
	if err != nil {
		p.ravLevel--
		return nil, err
	}
	variation.Moves = moves

	// A variation may end with its own result marker.
	if p.tok.Type == ResultToken {
		p.nextToken()
	}
	variation.Comments = append(variation.Comments, p.parseCommentList()...)

	if p.tok.Type != VariationEnd {
		p.ravLevel--
		if !p.opts.Lenient {
			return nil, p.parseErr("')' to close the variation", p.tok.Type.String())
		}
		p.opts.Logger.WithField("line", p.tok.Line).Warn("unterminated variation")
		return variation, nil
	}
	p.ravLevel--
	p.nextToken()
	return variation, nil
}

func (p *Parser) parseResult() string {
	if p.tok.Type != ResultToken {
		return ""
	}
	result := p.tok.Text
	p.nextToken()
	return result
}
