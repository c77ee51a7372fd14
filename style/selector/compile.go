package selector

import (
	"fmt"
	"strings"

	"github.com/gorilla/css/scanner"
)

// Error is a compile error for a selector. Selector errors are never
// recovered from: a selector which does not compile would silently change
// which widgets a rule applies to.
type Error struct {
	Line   int
	Column int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

// Compile compiles a single selector, e.g. "window > .fancy text:hover".
func Compile(text string) (Chain, Specificity, error) {
	s := scanner.New(text)
	var toks []*scanner.Token
	for t := s.Next(); t.Type != scanner.TokenEOF; t = s.Next() {
		if t.Type == scanner.TokenError {
			return nil, Specificity{}, &Error{t.Line, t.Column, "malformed selector"}
		}
		toks = append(toks, t)
	}
	chain, err := CompileTokens(toks)
	if err != nil {
		return nil, Specificity{}, err
	}
	return chain, chain.Specificity(), nil
}

// CompileTokens compiles a single selector from gorilla/css tokens. Whitespace
// tokens are significant, as they denote descendant combinators.
func CompileTokens(toks []*scanner.Token) (Chain, error) {
	c := &compiler{toks: toks}
	chain, err := c.chain()
	if err != nil {
		tracer().Debugf("selector does not compile: %v", err)
		return nil, err
	}
	return chain, nil
}

type compiler struct {
	toks []*scanner.Token
	pos  int
	last *scanner.Token
}

func (c *compiler) done() bool {
	return c.pos >= len(c.toks)
}

func (c *compiler) next() *scanner.Token {
	if c.done() {
		eof := &scanner.Token{Type: scanner.TokenEOF}
		if c.last != nil {
			eof.Line, eof.Column = c.last.Line, c.last.Column+len(c.last.Value)
		}
		return eof
	}
	c.last = c.toks[c.pos]
	c.pos++
	return c.last
}

func (c *compiler) errorf(t *scanner.Token, format string, args ...interface{}) error {
	return &Error{Line: t.Line, Column: t.Column, Msg: fmt.Sprintf(format, args...)}
}

func (c *compiler) chain() (Chain, error) {
	var chain Chain
	var cur Fragment
	pending := None
	open := false     // cur holds at least one simple selector
	explicit := false // pending combinator was written out, not implied by whitespace
	space := false
	flush := func() {
		if len(chain) > 0 {
			cur.Combinator = pending
		}
		chain = append(chain, cur)
		cur = Fragment{}
		open = false
	}
	for !c.done() {
		t := c.next()
		switch {
		case t.Type == scanner.TokenS || t.Type == scanner.TokenComment:
			space = true
		case combinator(t) != None:
			if explicit {
				return nil, c.errorf(t, "unexpected combinator '%s'", t.Value)
			}
			if !open && len(chain) == 0 {
				return nil, c.errorf(t, "selector must not start with combinator '%s'", t.Value)
			}
			if open {
				flush()
			}
			pending, explicit, space = combinator(t), true, false
		case t.Type == scanner.TokenIdent || isChar(t, "*") || isChar(t, ".") || isChar(t, ":"):
			if open && space {
				flush()
				pending = Descendant
			}
			explicit, space = false, false
			if err := c.simple(t, &cur, open); err != nil {
				return nil, err
			}
			open = true
		case t.Type == scanner.TokenHash:
			return nil, c.errorf(t, "id selectors are not supported: '%s'", t.Value)
		default:
			return nil, c.errorf(t, "unexpected '%s' in selector", t.Value)
		}
	}
	if explicit {
		return nil, c.errorf(c.next(), "dangling combinator at end of selector")
	}
	if !open {
		return nil, c.errorf(c.next(), "empty selector")
	}
	flush()
	return chain, nil
}

// simple adds a simple selector starting with token t to fragment f.
func (c *compiler) simple(t *scanner.Token, f *Fragment, open bool) error {
	switch {
	case t.Type == scanner.TokenIdent, isChar(t, "*"):
		if open {
			return c.errorf(t, "widget type '%s' must come first in a compound selector", t.Value)
		}
		f.Type = t.Value
	case isChar(t, "."):
		name := c.next()
		if name.Type != scanner.TokenIdent {
			return c.errorf(name, "expected class name after '.', have '%s'", name.Value)
		}
		f.Classes = append(f.Classes, name.Value)
	case isChar(t, ":"):
		p, err := c.pseudo()
		if err != nil {
			return err
		}
		f.Pseudos = append(f.Pseudos, p)
	}
	return nil
}

func (c *compiler) pseudo() (Pseudo, error) {
	t := c.next()
	switch t.Type {
	case scanner.TokenIdent:
		switch name := strings.ToLower(t.Value); name {
		case "only-child":
			return Pseudo{Kind: OnlyChild}, nil
		case "first-child":
			return Pseudo{Kind: NthChild, Formula: First}, nil
		case "last-child":
			return Pseudo{Kind: NthLastChild, Formula: First}, nil
		case "nth-child", "nth-last-child", "not":
			return Pseudo{}, c.errorf(t, "pseudo class '%s' requires an argument", name)
		}
		return Pseudo{Kind: State, State: t.Value}, nil
	case scanner.TokenFunction:
		name := strings.ToLower(strings.TrimSuffix(t.Value, "("))
		args, err := c.arguments(t)
		if err != nil {
			return Pseudo{}, err
		}
		switch name {
		case "nth-child", "nth-last-child":
			var b strings.Builder
			for _, a := range args {
				if a.Type != scanner.TokenS {
					b.WriteString(a.Value)
				}
			}
			f, err := ParseFormula(b.String())
			if err != nil {
				return Pseudo{}, c.errorf(t, "malformed argument of '%s': %v", name, err)
			}
			if name == "nth-child" {
				return Pseudo{Kind: NthChild, Formula: f}, nil
			}
			return Pseudo{Kind: NthLastChild, Formula: f}, nil
		case "not":
			if len(args) == 0 {
				return Pseudo{}, c.errorf(t, "pseudo class 'not' requires a selector")
			}
			inner, err := CompileTokens(args)
			if err != nil {
				return Pseudo{}, err
			}
			return Pseudo{Kind: Not, Inner: inner}, nil
		}
		return Pseudo{}, c.errorf(t, "unknown pseudo function '%s'", t.Value)
	}
	return Pseudo{}, c.errorf(t, "expected pseudo class after ':', have '%s'", t.Value)
}

// arguments collects the tokens up to the parenthesis closing fn.
func (c *compiler) arguments(fn *scanner.Token) ([]*scanner.Token, error) {
	var args []*scanner.Token
	depth := 1
	for {
		if c.done() {
			return nil, c.errorf(fn, "unterminated pseudo function '%s'", fn.Value)
		}
		t := c.next()
		switch {
		case t.Type == scanner.TokenFunction, isChar(t, "("):
			depth++
		case isChar(t, ")"):
			depth--
			if depth == 0 {
				return trimSpace(args), nil
			}
		}
		args = append(args, t)
	}
}

func combinator(t *scanner.Token) Combinator {
	if t.Type != scanner.TokenChar {
		return None
	}
	switch t.Value {
	case ">":
		return Child
	case "+":
		return NextSibling
	case "~":
		return SubsequentSibling
	}
	return None
}

func isChar(t *scanner.Token, c string) bool {
	return t.Type == scanner.TokenChar && t.Value == c
}

func trimSpace(toks []*scanner.Token) []*scanner.Token {
	for len(toks) > 0 && toks[0].Type == scanner.TokenS {
		toks = toks[1:]
	}
	for len(toks) > 0 && toks[len(toks)-1].Type == scanner.TokenS {
		toks = toks[:len(toks)-1]
	}
	return toks
}
