package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// VarFunc resolves an @ref to a numeric value. Returning false means the
// reference is unknown; evaluation treats it as 0 so dry-run validation of
// formulas like "@ability.mod + 2" succeeds without entity context.
type VarFunc func(name string) (float64, bool)

// Expression is a parsed roll expression. It is immutable and safe to share.
type Expression struct {
	root node
	src  string
}

// Parse parses src as a roll expression: dice terms ("2d6", "d20"), numbers,
// @dotted.refs, the four arithmetic operators, unary minus, and parentheses.
func Parse(src string) (*Expression, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, fmt.Errorf("dice: unexpected %q in %q", p.peek().text, src)
	}
	return &Expression{root: root, src: src}, nil
}

// String returns the source text the expression was parsed from.
func (e *Expression) String() string { return e.src }

// Deterministic reports whether the expression contains no dice terms, so
// every evaluation yields the same result.
func (e *Expression) Deterministic() bool { return !e.root.random() }

// Eval evaluates the expression. Dice terms are resolved through r; an
// expression with dice terms and a nil roller fails. vars may be nil, in
// which case every @ref evaluates as 0.
func (e *Expression) Eval(r Roller, vars VarFunc) (float64, error) {
	return e.root.eval(r, vars)
}

// ---- AST ----

type node interface {
	eval(r Roller, vars VarFunc) (float64, error)
	random() bool
}

type numberNode struct{ val float64 }

func (n numberNode) eval(Roller, VarFunc) (float64, error) { return n.val, nil }
func (n numberNode) random() bool                          { return false }

type refNode struct{ name string }

func (n refNode) eval(_ Roller, vars VarFunc) (float64, error) {
	if vars != nil {
		if v, ok := vars(n.name); ok {
			return v, nil
		}
	}
	return 0, nil
}
func (n refNode) random() bool { return false }

type diceNode struct{ count, sides int }

func (n diceNode) eval(r Roller, _ VarFunc) (float64, error) {
	if r == nil {
		return 0, fmt.Errorf("dice: %dd%d requires a roller", n.count, n.sides)
	}
	res, err := r.Roll(n.count, n.sides)
	if err != nil {
		return 0, err
	}
	return float64(res.Total), nil
}
func (n diceNode) random() bool { return true }

type unaryNode struct{ operand node }

func (n unaryNode) eval(r Roller, vars VarFunc) (float64, error) {
	v, err := n.operand.eval(r, vars)
	if err != nil {
		return 0, err
	}
	return -v, nil
}
func (n unaryNode) random() bool { return n.operand.random() }

type binaryNode struct {
	op          byte
	left, right node
}

func (n binaryNode) eval(r Roller, vars VarFunc) (float64, error) {
	l, err := n.left.eval(r, vars)
	if err != nil {
		return 0, err
	}
	rv, err := n.right.eval(r, vars)
	if err != nil {
		return 0, err
	}
	switch n.op {
	case '+':
		return l + rv, nil
	case '-':
		return l - rv, nil
	case '*':
		return l * rv, nil
	default:
		if rv == 0 {
			return 0, fmt.Errorf("dice: division by zero")
		}
		return l / rv, nil
	}
}
func (n binaryNode) random() bool { return n.left.random() || n.right.random() }

// ---- lexer ----

type tokKind int

const (
	tokNumber tokKind = iota
	tokDice
	tokRef
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind         tokKind
	text         string
	val          float64
	count, sides int
}

func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, text: "("})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, text: ")"})
			i++
		case c == '+' || c == '-' || c == '*' || c == '/':
			toks = append(toks, token{kind: tokOp, text: string(c)})
			i++
		case c == '@':
			j := i + 1
			for j < len(src) && isRefChar(src[j]) {
				j++
			}
			if j == i+1 {
				return nil, fmt.Errorf("dice: dangling @ in %q", src)
			}
			toks = append(toks, token{kind: tokRef, text: src[i+1 : j]})
			i = j
		case c >= '0' && c <= '9':
			j := i
			dotted := false
			for j < len(src) && (src[j] >= '0' && src[j] <= '9' || src[j] == '.' && !dotted) {
				if src[j] == '.' {
					dotted = true
				}
				j++
			}
			// NdS dice term
			if j < len(src) && (src[j] == 'd' || src[j] == 'D') && j+1 < len(src) && isDigit(src[j+1]) {
				if dotted {
					return nil, fmt.Errorf("dice: fractional dice count in %q", src)
				}
				count, _ := strconv.Atoi(src[i:j])
				k := j + 1
				for k < len(src) && isDigit(src[k]) {
					k++
				}
				sides, _ := strconv.Atoi(src[j+1 : k])
				toks = append(toks, token{kind: tokDice, text: src[i:k], count: count, sides: sides})
				i = k
				continue
			}
			v, err := strconv.ParseFloat(src[i:j], 64)
			if err != nil {
				return nil, fmt.Errorf("dice: bad number %q", src[i:j])
			}
			toks = append(toks, token{kind: tokNumber, text: src[i:j], val: v})
			i = j
		case (c == 'd' || c == 'D') && i+1 < len(src) && isDigit(src[i+1]):
			// bare dS means 1dS
			k := i + 1
			for k < len(src) && isDigit(src[k]) {
				k++
			}
			sides, _ := strconv.Atoi(src[i+1 : k])
			toks = append(toks, token{kind: tokDice, text: src[i:k], count: 1, sides: sides})
			i = k
		default:
			return nil, fmt.Errorf("dice: unexpected %q in %q", string(c), src)
		}
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("dice: empty expression")
	}
	return toks, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isRefChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || isDigit(c) || c == '.' || c == '_'
}

// ---- parser ----

type parser struct {
	toks []token
	pos  int
}

func (p *parser) done() bool { return p.pos >= len(p.toks) }

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	p.pos++
	return t
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for !p.done() && p.peek().kind == tokOp && strings.ContainsAny(p.peek().text, "+-") {
		op := p.next().text[0]
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for !p.done() && p.peek().kind == tokOp && strings.ContainsAny(p.peek().text, "*/") {
		op := p.next().text[0]
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	if !p.done() && p.peek().kind == tokOp && p.peek().text == "-" {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryNode{operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (node, error) {
	if p.done() {
		return nil, fmt.Errorf("dice: unexpected end of expression")
	}
	t := p.next()
	switch t.kind {
	case tokNumber:
		return numberNode{val: t.val}, nil
	case tokDice:
		if t.count < 1 || t.sides < 1 {
			return nil, fmt.Errorf("dice: invalid dice term %q", t.text)
		}
		return diceNode{count: t.count, sides: t.sides}, nil
	case tokRef:
		return refNode{name: t.text}, nil
	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.done() || p.peek().kind != tokRParen {
			return nil, fmt.Errorf("dice: missing closing parenthesis")
		}
		p.next()
		return inner, nil
	default:
		return nil, fmt.Errorf("dice: unexpected %q", t.text)
	}
}
