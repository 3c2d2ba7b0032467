package formula

import "github.com/cfdwalrus/deepfrac/fracerr"

// functionWhitelist is the closed set of callable names §4.H allows; every
// one of them takes exactly one argument.
var functionWhitelist = map[string]bool{
	"sin": true, "cos": true, "tan": true, "cot": true, "sec": true, "csc": true,
	"asin": true, "acos": true, "atan": true,
	"sinh": true, "cosh": true, "tanh": true,
	"asinh": true, "acosh": true, "atanh": true,
	"exp": true, "log": true, "ln": true, "log10": true, "log2": true,
	"sqrt": true, "cbrt": true,
	"abs": true, "arg": true, "conj": true, "real": true, "re": true,
	"imag": true, "im": true, "norm": true,
	"floor": true, "ceil": true, "round": true, "frac": true, "sign": true,
}

// variableWhitelist is the read-only environment §4.H names plus the
// closed constant set; anything outside this set is an unknown identifier.
var variableWhitelist = map[string]bool{
	"z": true, "c": true, "p": true, "n": true, "i": true,
	"pi": true, "e": true, "phi": true, "tau": true,
}

type parser struct {
	lex *lexer
	cur Token
}

func newParser(input string) (*parser, error) {
	p := &parser{lex: newLexer(input)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// parse parses a full expression and validates every identifier and
// function call against the whitelists, per §4.H's combined
// syntax+semantic error conditions.
func parse(input string) (*Node, error) {
	p, err := newParser(input)
	if err != nil {
		return nil, err
	}
	node, err := p.parseExpr(1)
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != TokEOF {
		return nil, fracerr.NewParseError(p.cur.Pos, "unexpected token %q", p.cur.Text)
	}
	if err := checkIdentifiers(node); err != nil {
		return nil, err
	}
	return node, nil
}

func checkIdentifiers(node *Node) error {
	if node == nil {
		return nil
	}
	switch node.Kind {
	case NodeVariable:
		if !variableWhitelist[node.Name] {
			return fracerr.NewParseError(node.Pos, "unknown identifier %q", node.Name)
		}
	case NodeCall:
		if !functionWhitelist[node.Name] {
			return fracerr.NewParseError(node.Pos, "unknown function %q", node.Name)
		}
		if len(node.Args) != 1 {
			return fracerr.NewParseError(node.Pos, "function %q takes exactly one argument, got %d", node.Name, len(node.Args))
		}
	case NodeBinary:
		if err := checkIdentifiers(node.Left); err != nil {
			return err
		}
		return checkIdentifiers(node.Right)
	case NodeUnary:
		return checkIdentifiers(node.Operand)
	}
	for _, arg := range node.Args {
		if err := checkIdentifiers(arg); err != nil {
			return err
		}
	}
	return nil
}

// binOpInfo returns the operator byte and precedence (1=+- , 2=*/ ) for the
// non-exponentiation binary operators, all of which are left-associative; '^' is handled in parsePow since it
// binds tighter than unary minus and is right-associative.
func binOpInfo(kind TokenKind) (op byte, prec int, ok bool) {
	switch kind {
	case TokPlus:
		return '+', 1, true
	case TokMinus:
		return '-', 1, true
	case TokStar:
		return '*', 2, true
	case TokSlash:
		return '/', 2, true
	default:
		return 0, 0, false
	}
}

func (p *parser) parseExpr(minPrec int) (*Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, prec, ok := binOpInfo(p.cur.Kind)
		if !ok || prec < minPrec {
			break
		}
		pos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &Node{Kind: NodeBinary, Op: op, Left: left, Right: right, Pos: pos}
	}
	return left, nil
}

// parseUnary handles prefix +/- ; its operand is parsePow's level, so
// "-2^2" parses as -(2^2) per the usual math convention.
func (p *parser) parseUnary() (*Node, error) {
	if p.cur.Kind == TokPlus || p.cur.Kind == TokMinus {
		op := byte('+')
		if p.cur.Kind == TokMinus {
			op = '-'
		}
		pos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Node{Kind: NodeUnary, Op: op, Operand: operand, Pos: pos}, nil
	}
	return p.parsePow()
}

// parsePow binds '^' tighter than any other binary operator and
// right-associatively, with a unary-capable exponent so "x^-1" parses.
func (p *parser) parsePow() (*Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind == TokCaret {
		pos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		exponent, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Node{Kind: NodeBinary, Op: '^', Left: base, Right: exponent, Pos: pos}, nil
	}
	return base, nil
}

func (p *parser) parsePrimary() (*Node, error) {
	tok := p.cur
	switch tok.Kind {
	case TokNumber:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Node{Kind: NodeNumber, NumberValue: tok.Value, Pos: tok.Pos}, nil

	case TokImaginary:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Node{Kind: NodeComplex, ComplexValue: complexFromImaginary(tok.Value), Pos: tok.Pos}, nil

	case TokIdent:
		name := tok.Text
		pos := tok.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Kind == TokLParen {
			if err := p.advance(); err != nil {
				return nil, err
			}
			var args []*Node
			if p.cur.Kind != TokRParen {
				for {
					arg, err := p.parseExpr(1)
					if err != nil {
						return nil, err
					}
					args = append(args, arg)
					if p.cur.Kind == TokComma {
						if err := p.advance(); err != nil {
							return nil, err
						}
						continue
					}
					break
				}
			}
			if p.cur.Kind != TokRParen {
				return nil, fracerr.NewParseError(p.cur.Pos, "unterminated parenthesis in call to %q", name)
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			return &Node{Kind: NodeCall, Name: name, Args: args, Pos: pos}, nil
		}
		return &Node{Kind: NodeVariable, Name: name, Pos: pos}, nil

	case TokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpr(1)
		if err != nil {
			return nil, err
		}
		if p.cur.Kind != TokRParen {
			return nil, fracerr.NewParseError(p.cur.Pos, "unterminated parenthesis")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, fracerr.NewParseError(tok.Pos, "unexpected token %q", tok.Text)
	}
}
