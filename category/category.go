// Package category parses CG category labels in the slash notation emitted
// by the CCG parser and renders them in the fully-bracketed angle notation
// of the ABC Treebank.
package category

import (
	"fmt"
	"strings"
)

// Node is a parsed CG category. Parenthesization in the source notation is
// resolved into tree structure; there is no grouping node.
type Node interface {
	node()
}

// Base is an atomic category with feature brackets already stripped,
// e.g. S[m] parses to Base{Label: "Sm"}.
type Base struct {
	Label string
}

// Left is a backward-slash functor: Consequence\Antecedent read outside-in,
// with consecutive backslashes associating left to right.
type Left struct {
	Antecedent  Node
	Consequence Node
}

// Right is a forward-slash functor, the mirror of Left.
type Right struct {
	Antecedent  Node
	Consequence Node
}

func (Base) node()  {}
func (Left) node()  {}
func (Right) node() {}

// SyntaxError reports a category string that does not match the grammar.
type SyntaxError struct {
	Input string
	Pos   int
	Msg   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("category %q: offset %d: %s", e.Input, e.Pos, e.Msg)
}

// Parse reads a category in slash notation:
//
//	Category := Forward ('\' Forward)*
//	Forward  := Atom ('/' Atom)*
//	Atom     := Base | '(' Category ')'
//	Base     := one or more characters other than ( ) \ /
//
// Both slash directions fold strictly left to right: each further operand
// becomes the antecedent of a new node whose consequence is the tree built
// so far. Feature brackets [ ] inside a base token are stripped.
func Parse(text string) (Node, error) {
	p := &parser{input: []rune(text), text: text}
	n, err := p.backward()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.input) {
		return nil, p.errorf("unexpected %q", p.input[p.pos])
	}
	return n, nil
}

type parser struct {
	input []rune
	text  string
	pos   int
}

func (p *parser) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Input: p.text, Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) peek() (rune, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *parser) backward() (Node, error) {
	res, err := p.forward()
	if err != nil {
		return nil, err
	}
	for {
		r, ok := p.peek()
		if !ok || r != '\\' {
			return res, nil
		}
		p.pos++
		next, err := p.forward()
		if err != nil {
			return nil, err
		}
		res = Left{Antecedent: next, Consequence: res}
	}
}

func (p *parser) forward() (Node, error) {
	res, err := p.atom()
	if err != nil {
		return nil, err
	}
	for {
		r, ok := p.peek()
		if !ok || r != '/' {
			return res, nil
		}
		p.pos++
		next, err := p.atom()
		if err != nil {
			return nil, err
		}
		res = Right{Antecedent: next, Consequence: res}
	}
}

func (p *parser) atom() (Node, error) {
	r, ok := p.peek()
	if !ok {
		return nil, p.errorf("unexpected end of input")
	}
	if r == '(' {
		p.pos++
		n, err := p.backward()
		if err != nil {
			return nil, err
		}
		r, ok := p.peek()
		if !ok || r != ')' {
			return nil, p.errorf("missing ')'")
		}
		p.pos++
		return n, nil
	}
	return p.base()
}

func (p *parser) base() (Node, error) {
	start := p.pos
	var label strings.Builder
	for {
		r, ok := p.peek()
		if !ok || r == '(' || r == ')' || r == '\\' || r == '/' {
			break
		}
		// strip feature decoration, S[m] -> Sm
		if r != '[' && r != ']' {
			label.WriteRune(r)
		}
		p.pos++
	}
	if p.pos == start {
		r, _ := p.peek()
		return nil, p.errorf("expected category, found %q", r)
	}
	return Base{Label: label.String()}, nil
}

// Render prints a category tree in the ABC Treebank angle notation. Every
// functor is bracketed regardless of how the input was parenthesized, so the
// output has no precedence ambiguity. Render is total over well-formed trees.
func Render(n Node) string {
	var b strings.Builder
	render(&b, n)
	return b.String()
}

func render(b *strings.Builder, n Node) {
	switch c := n.(type) {
	case Base:
		b.WriteString(c.Label)
	case Left:
		b.WriteByte('<')
		render(b, c.Antecedent)
		b.WriteByte('\\')
		render(b, c.Consequence)
		b.WriteByte('>')
	case Right:
		b.WriteByte('<')
		render(b, c.Consequence)
		b.WriteByte('/')
		render(b, c.Antecedent)
		b.WriteByte('>')
	}
}

// Translate parses a category in slash notation and renders it in angle
// notation in one step.
func Translate(text string) (string, error) {
	n, err := Parse(text)
	if err != nil {
		return "", err
	}
	return Render(n), nil
}
