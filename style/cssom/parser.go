package cssom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/pwss/style"
	"github.com/npillmayer/pwss/style/selector"
)

// SyntaxError is a fatal error in the structure of a stylesheet.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d:%d: %s", e.Line, e.Column, e.Msg)
}

// Parse parses the source text of a stylesheet. Declarations with unknown
// property names or malformed values are dropped and reported as
// diagnostics of the resulting stylesheet; any other error aborts parsing
// and is reported as a *SyntaxError.
func Parse(source string) (*StyleSheet, error) {
	toks, err := lex(source)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	if err := p.sheet(); err != nil {
		tracer().Infof("stylesheet rejected: %v", err)
		return nil, err
	}
	sheet := newStyleSheet(p.rules, p.diagnostics)
	tracer().Debugf("stylesheet v%d: %d rules, %d diagnostics", sheet.Version(), sheet.Len(), len(p.diagnostics))
	return sheet, nil
}

// lex tokenizes source, dropping comments.
func lex(source string) ([]*scanner.Token, error) {
	s := scanner.New(source)
	var toks []*scanner.Token
	for {
		t := s.Next()
		switch t.Type {
		case scanner.TokenEOF:
			return append(toks, t), nil
		case scanner.TokenError:
			return nil, &SyntaxError{t.Line, t.Column, fmt.Sprintf("malformed input near '%s'", abbrev(t.Value))}
		case scanner.TokenComment:
			continue
		}
		toks = append(toks, t)
	}
}

type parser struct {
	toks        []*scanner.Token // always terminated by an EOF token
	pos         int
	rules       []Rule
	diagnostics []Diagnostic
}

func (p *parser) peek() *scanner.Token {
	return p.toks[p.pos]
}

func (p *parser) next() *scanner.Token {
	t := p.toks[p.pos]
	if t.Type != scanner.TokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) skipSpace() {
	for p.peek().Type == scanner.TokenS {
		p.next()
	}
}

func (p *parser) errorf(t *scanner.Token, format string, args ...interface{}) error {
	return &SyntaxError{Line: t.Line, Column: t.Column, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) sheet() error {
	for {
		p.skipSpace()
		t := p.peek()
		switch {
		case t.Type == scanner.TokenEOF:
			return nil
		case t.Type == scanner.TokenAtKeyword:
			return p.errorf(t, "at-rules are not supported: '%s'", t.Value)
		case t.Type == scanner.TokenCDO || t.Type == scanner.TokenCDC:
			p.next()
			continue
		}
		if err := p.rule(); err != nil {
			return err
		}
	}
}

// rule parses `<selector>, ... { <declarations> }`.
func (p *parser) rule() error {
	start := p.peek()
	var selectors [][]*scanner.Token
	var current []*scanner.Token
	depth := 0
prelude:
	for {
		t := p.next()
		switch {
		case t.Type == scanner.TokenEOF:
			return p.errorf(t, "expected '{' after selector")
		case isChar(t, "{") && depth == 0:
			selectors = append(selectors, current)
			break prelude
		case isChar(t, ",") && depth == 0:
			selectors = append(selectors, current)
			current = nil
			continue
		case isChar(t, "}"), isChar(t, ";"):
			return p.errorf(t, "unexpected '%s' in selector", t.Value)
		case t.Type == scanner.TokenFunction, isChar(t, "("):
			depth++
		case isChar(t, ")"):
			depth--
		}
		current = append(current, t)
	}
	chains := make([]selector.Chain, len(selectors))
	for i, toks := range selectors {
		chain, err := selector.CompileTokens(trimSpace(toks))
		if err != nil {
			var serr *selector.Error
			if errors.As(err, &serr) {
				if serr.Line == 0 { // empty selector has no position
					serr.Line, serr.Column = start.Line, start.Column
				}
				return &SyntaxError{Line: serr.Line, Column: serr.Column, Msg: serr.Msg}
			}
			return err
		}
		chains[i] = chain
	}
	decls, err := p.declarations()
	if err != nil {
		return err
	}
	for _, chain := range chains {
		p.rules = append(p.rules, Rule{
			Selector:     chain,
			Specificity:  chain.Specificity(),
			Declarations: decls,
			Line:         start.Line,
		})
	}
	return nil
}

// declarations parses the body of a rule, up to and including the closing
// brace.
func (p *parser) declarations() ([]style.KeyValue, error) {
	var decls []style.KeyValue
	for {
		p.skipSpace()
		t := p.next()
		switch {
		case t.Type == scanner.TokenEOF:
			return nil, p.errorf(t, "unterminated block, expected '}'")
		case isChar(t, "}"):
			return decls, nil
		case isChar(t, ";"):
			continue
		case t.Type != scanner.TokenIdent:
			return nil, p.errorf(t, "expected property name, have '%s'", abbrev(t.Value))
		}
		name := t
		p.skipSpace()
		if colon := p.next(); !isChar(colon, ":") {
			return nil, p.errorf(colon, "expected ':' after property name '%s'", name.Value)
		}
		raw, err := p.value()
		if err != nil {
			return nil, err
		}
		kv, err := style.DecodeNamed(name.Value, raw)
		if err != nil {
			p.diagnostics = append(p.diagnostics, Diagnostic{Line: name.Line, Column: name.Column, Err: err})
			tracer().Infof("%d:%d: dropping declaration: %v", name.Line, name.Column, err)
			continue
		}
		decls = append(decls, kv)
	}
}

// value collects the raw text of a declaration value. It stops before the
// terminating ';' or '}'. Parentheses have to be balanced.
func (p *parser) value() (string, error) {
	var b strings.Builder
	var open []*scanner.Token
	for {
		t := p.peek()
		switch {
		case t.Type == scanner.TokenEOF:
			return "", p.errorf(t, "unterminated block, expected '}'")
		case (isChar(t, ";") || isChar(t, "}")) && len(open) == 0:
			return strings.TrimSpace(b.String()), nil
		case isChar(t, ";") || isChar(t, "}"):
			return "", p.errorf(open[len(open)-1], "unclosed '%s' in value", open[len(open)-1].Value)
		case isChar(t, "{"):
			return "", p.errorf(t, "unexpected '{' in value")
		case t.Type == scanner.TokenFunction || isChar(t, "("):
			open = append(open, t)
		case isChar(t, ")"):
			if len(open) == 0 {
				return "", p.errorf(t, "unbalanced ')' in value")
			}
			open = open[:len(open)-1]
		}
		p.next()
		if t.Type == scanner.TokenS {
			b.WriteByte(' ')
		} else {
			b.WriteString(t.Value)
		}
	}
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

func abbrev(s string) string {
	if len(s) > 20 {
		return s[:20] + "…"
	}
	return s
}
