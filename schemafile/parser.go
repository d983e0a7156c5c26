package schemafile

import (
	"errors"
	"fmt"
	"strings"
)

// TypeExpr is a parsed type expression: a head identifier and optional
// generic arguments, e.g. map<string, int64> parses as
// {Name: "map", Args: [{Name: "string"}, {Name: "int64"}]}.
type TypeExpr struct {
	Name string
	Args []*TypeExpr
}

// String renders the expression back to its canonical source form.
func (e *TypeExpr) String() string {
	if len(e.Args) == 0 {
		return e.Name
	}

	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}

	return e.Name + "<" + strings.Join(parts, ", ") + ">"
}

// ParseTypeExpr parses a type expression such as "int32", "optional<string>",
// "map<string, int64>", or a reference to a named type.
func ParseTypeExpr(s string) (*TypeExpr, error) {
	p := &exprParser{input: s}

	expr, err := p.parse()
	if err != nil {
		return nil, fmt.Errorf("invalid type expression %q: %w", s, err)
	}

	p.skipSpaces()

	if p.pos != len(p.input) {
		return nil, fmt.Errorf("invalid type expression %q: trailing input at offset %d", s, p.pos)
	}

	return expr, nil
}

type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) parse() (*TypeExpr, error) {
	p.skipSpaces()

	name := p.ident()
	if name == "" {
		return nil, errors.New("expected identifier")
	}

	if !isValidIdent(name) {
		return nil, fmt.Errorf("invalid identifier %q", name)
	}

	expr := &TypeExpr{Name: name}

	p.skipSpaces()

	if !p.consume('<') {
		return expr, nil
	}

	for {
		arg, err := p.parse()
		if err != nil {
			return nil, err
		}

		expr.Args = append(expr.Args, arg)

		p.skipSpaces()

		if p.consume(',') {
			continue
		}

		if p.consume('>') {
			return expr, nil
		}

		return nil, errors.New("expected ',' or '>'")
	}
}

func (p *exprParser) ident() string {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if !isLetter(rune(c)) && !isDigit(rune(c)) && c != '_' {
			break
		}

		p.pos++
	}

	return p.input[start:p.pos]
}

func (p *exprParser) consume(c byte) bool {
	if p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++
		return true
	}

	return false
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

// isValidIdent checks if a string is a valid type identifier.
func isValidIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			if !isLetter(r) && r != '_' {
				return false
			}
		} else {
			if !isLetter(r) && !isDigit(r) && r != '_' {
				return false
			}
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
