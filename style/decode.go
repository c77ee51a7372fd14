package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
)

// Decode decodes a raw declaration value according to the grammar of key.
// Decoding is total: it returns either a value or a *ValueParseError.
//
// Grammars:
//
//    width, height          size:       <number> | exact(<number>) | fill(<integer>) | shrink
//    background,
//    scrollbar-*            background: <url> | <color> | image(<url>, <color>) | patch(<url>, <color>) | none
//    padding, margin        rectangle:  <number>{1,4} | ( left: <number> top: <number> ... )
//    padding-*, margin-*,
//    text_size              number
//    font                   url:        "<path>" | url(<path>)
//    color                  color:      #rgb | #rgba | #rrggbb | #rrggbbaa
//    text_wrap              no-wrap | wrap | word-wrap
//    layout-direction       top-to-bottom | left-to-right | right-to-left | bottom-to-top
//    align_*                begin | center | end (left, top are begin; right, bottom are end)
func Decode(key Key, raw string) (Value, error) {
	if key == KeyNone || key >= keyCount {
		return nil, &UnknownPropertyError{Name: key.String()}
	}
	toks, err := lexValue(raw)
	if err != nil {
		return nil, &ValueParseError{Property: key.String(), Reason: err.Error()}
	}
	if toks.done() {
		return nil, &ValueParseError{Property: key.String(), Reason: "empty value"}
	}
	v, err := decoders[key](toks)
	if err == nil && !toks.done() {
		err = fmt.Errorf("unexpected '%s' after value", toks.peek().Value)
	}
	if err != nil {
		tracer().Debugf("cannot decode %s: %q: %v", key, raw, err)
		return nil, &ValueParseError{Property: key.String(), Reason: err.Error()}
	}
	return v, nil
}

// DecodeNamed is like Decode, but looks up the property key by name first.
func DecodeNamed(name string, raw string) (KeyValue, error) {
	key, err := KeyForName(name)
	if err != nil {
		return KeyValue{}, err
	}
	v, err := Decode(key, raw)
	if err != nil {
		return KeyValue{}, err
	}
	return KeyValue{Key: key, Value: v}, nil
}

type decoder func(*valueTokens) (Value, error)

var decoders [keyCount]decoder

func init() {
	decoders = [keyCount]decoder{
		KeyWidth:               decodeSize,
		KeyHeight:              decodeSize,
		KeyBackground:          decodeBackground,
		KeyScrollbarHorizontal: decodeBackground,
		KeyScrollbarVertical:   decodeBackground,
		KeyPadding:             decodeRect,
		KeyPaddingTop:          decodeNumber,
		KeyPaddingRight:        decodeNumber,
		KeyPaddingBottom:       decodeNumber,
		KeyPaddingLeft:         decodeNumber,
		KeyMargin:              decodeRect,
		KeyMarginTop:           decodeNumber,
		KeyMarginRight:         decodeNumber,
		KeyMarginBottom:        decodeNumber,
		KeyMarginLeft:          decodeNumber,
		KeyFont:                decodeResource,
		KeyColor:               decodeColor,
		KeyTextSize:            decodeNumber,
		KeyTextWrap:            decodeTextWrap,
		KeyLayoutDirection:     decodeDirection,
		KeyAlignHorizontal:     decodeAlign,
		KeyAlignVertical:       decodeAlign,
	}
}

// --- Grammars --------------------------------------------------------------

func decodeNumber(toks *valueTokens) (Value, error) {
	n, err := toks.number()
	return Number(n), err
}

func decodeSize(toks *valueTokens) (Value, error) {
	t := toks.peek()
	switch {
	case t.Type == scanner.TokenIdent && strings.EqualFold(t.Value, "shrink"):
		toks.next()
		return Shrink(), nil
	case isFunction(t, "fill"):
		toks.next()
		w, err := toks.number()
		if err != nil {
			return nil, err
		}
		if w < 0 || w != float32(int(w)) {
			return nil, fmt.Errorf("fill weight must be a non-negative integer, is %s", Number(w))
		}
		return Fill(int(w)), toks.closeParen()
	case isFunction(t, "exact"):
		toks.next()
		n, err := toks.number()
		if err != nil {
			return nil, err
		}
		return Exact(n), toks.closeParen()
	}
	n, err := toks.number()
	if err != nil {
		return nil, fmt.Errorf("expected `shrink`, `fill(<integer>)`, `exact(<number>)` or <number>")
	}
	return Exact(n), nil
}

func decodeColor(toks *valueTokens) (Value, error) {
	return toks.color()
}

func decodeResource(toks *valueTokens) (Value, error) {
	return toks.url()
}

func decodeBackground(toks *valueTokens) (Value, error) {
	t := toks.peek()
	switch {
	case t.Type == scanner.TokenHash:
		c, err := toks.color()
		return ColorBackground(c), err
	case t.Type == scanner.TokenString || t.Type == scanner.TokenURI:
		url, err := toks.url()
		return URLBackground(url), err
	case t.Type == scanner.TokenIdent && strings.EqualFold(t.Value, "none"):
		toks.next()
		return NoBackground(), nil
	case isFunction(t, "image"), isFunction(t, "patch"):
		toks.next()
		url, err := toks.url()
		if err != nil {
			return nil, err
		}
		if err = toks.char(","); err != nil {
			return nil, err
		}
		c, err := toks.color()
		if err != nil {
			return nil, err
		}
		if err = toks.closeParen(); err != nil {
			return nil, err
		}
		if isFunction(t, "patch") {
			return PatchBackground(url, c), nil
		}
		return ImageBackground(url, c), nil
	}
	return nil, fmt.Errorf("expected `none`, `image(<url>, <color>)`, `patch(<url>, <color>)`, <color> or <url>")
}

// decodeRect accepts the shorthand form "1 2 3 4" as well as the named form
// "(left: 1, top: 2)", where sides not mentioned are zero.
func decodeRect(toks *valueTokens) (Value, error) {
	if t := toks.peek(); isChar(t, "(") {
		toks.next()
		return toks.namedRect()
	}
	var fields []float32
	for !toks.done() && len(fields) < 4 {
		n, err := toks.number()
		if err != nil {
			return nil, err
		}
		fields = append(fields, n)
	}
	return RectFromShorthand(fields)
}

func decodeTextWrap(toks *valueTokens) (Value, error) {
	switch toks.keyword() {
	case "no-wrap":
		return NoWrap, nil
	case "wrap":
		return Wrap, nil
	case "word-wrap":
		return WordWrap, nil
	}
	return nil, fmt.Errorf("expected `no-wrap`, `wrap` or `word-wrap`")
}

func decodeDirection(toks *valueTokens) (Value, error) {
	switch toks.keyword() {
	case "top-to-bottom":
		return TopToBottom, nil
	case "left-to-right":
		return LeftToRight, nil
	case "right-to-left":
		return RightToLeft, nil
	case "bottom-to-top":
		return BottomToTop, nil
	}
	return nil, fmt.Errorf("expected `top-to-bottom`, `left-to-right`, `right-to-left` or `bottom-to-top`")
}

func decodeAlign(toks *valueTokens) (Value, error) {
	switch toks.keyword() {
	case "begin", "left", "top":
		return AlignBegin, nil
	case "center":
		return AlignCenter, nil
	case "end", "right", "bottom":
		return AlignEnd, nil
	}
	return nil, fmt.Errorf("expected `begin`, `center` or `end`")
}

// --- Value tokens ----------------------------------------------------------

// valueTokens is a cursor over the significant tokens of a raw value.
// Whitespace and comments are dropped.
type valueTokens struct {
	toks []*scanner.Token
	pos  int
}

var eofToken = &scanner.Token{Type: scanner.TokenEOF}

func lexValue(raw string) (*valueTokens, error) {
	s := scanner.New(raw)
	vt := &valueTokens{}
	for {
		t := s.Next()
		switch t.Type {
		case scanner.TokenEOF:
			return vt, nil
		case scanner.TokenError:
			return nil, fmt.Errorf("malformed value at column %d", t.Column)
		case scanner.TokenS, scanner.TokenComment:
			continue
		}
		vt.toks = append(vt.toks, t)
	}
}

func (vt *valueTokens) done() bool {
	return vt.pos >= len(vt.toks)
}

func (vt *valueTokens) peek() *scanner.Token {
	if vt.done() {
		return eofToken
	}
	return vt.toks[vt.pos]
}

func (vt *valueTokens) next() *scanner.Token {
	t := vt.peek()
	if !vt.done() {
		vt.pos++
	}
	return t
}

func (vt *valueTokens) char(c string) error {
	if t := vt.next(); !isChar(t, c) {
		return fmt.Errorf("expected '%s', have '%s'", c, t.Value)
	}
	return nil
}

func (vt *valueTokens) closeParen() error {
	return vt.char(")")
}

// number reads a number with an optional sign.
func (vt *valueTokens) number() (float32, error) {
	sign := float32(1)
	if t := vt.peek(); isChar(t, "-") || isChar(t, "+") {
		if t.Value == "-" {
			sign = -1
		}
		vt.next()
	}
	t := vt.next()
	if t.Type != scanner.TokenNumber {
		return 0, fmt.Errorf("expected <number>, have '%s'", t.Value)
	}
	f, err := strconv.ParseFloat(t.Value, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed number '%s'", t.Value)
	}
	return sign * float32(f), nil
}

func (vt *valueTokens) color() (Color, error) {
	t := vt.next()
	if t.Type != scanner.TokenHash {
		return Color{}, fmt.Errorf("expected <color>, have '%s'", t.Value)
	}
	return ParseColor(t.Value)
}

// url reads either a quoted string or a url(...) token.
func (vt *valueTokens) url() (Resource, error) {
	t := vt.next()
	switch t.Type {
	case scanner.TokenString:
		return Resource(unquote(t.Value)), nil
	case scanner.TokenURI:
		inner := strings.TrimSpace(t.Value[len("url(") : len(t.Value)-1])
		if len(inner) > 0 && (inner[0] == '"' || inner[0] == '\'') {
			inner = unquote(inner)
		}
		return Resource(inner), nil
	}
	return NoResource, fmt.Errorf("expected <url>, have '%s'", t.Value)
}

func (vt *valueTokens) keyword() string {
	t := vt.next()
	if t.Type != scanner.TokenIdent {
		return ""
	}
	return strings.ToLower(t.Value)
}

// namedRect reads the body of "(left: 1 top: 2)"; the opening paren has
// already been consumed. Commas between fields are optional.
func (vt *valueTokens) namedRect() (Value, error) {
	var r Rect
	for {
		t := vt.next()
		switch {
		case isChar(t, ")"):
			return r, nil
		case isChar(t, ","):
			continue
		case t.Type != scanner.TokenIdent:
			return nil, fmt.Errorf("expected `left`, `top`, `right`, `bottom` or `)`, have '%s'", t.Value)
		}
		if err := vt.char(":"); err != nil {
			return nil, err
		}
		n, err := vt.number()
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(t.Value) {
		case "top":
			r.Top = n
		case "right":
			r.Right = n
		case "bottom":
			r.Bottom = n
		case "left":
			r.Left = n
		default:
			return nil, fmt.Errorf("expected `left`, `top`, `right` or `bottom`, have '%s'", t.Value)
		}
	}
}

func isChar(t *scanner.Token, c string) bool {
	return t.Type == scanner.TokenChar && t.Value == c
}

// isFunction checks for a function token; gorilla/css includes the opening
// paren in the token value.
func isFunction(t *scanner.Token, name string) bool {
	return t.Type == scanner.TokenFunction && strings.EqualFold(t.Value, name+"(")
}

func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	s = s[1 : len(s)-1]
	if strings.ContainsRune(s, '\\') {
		s = strings.NewReplacer(`\"`, `"`, `\'`, `'`, `\\`, `\`).Replace(s)
	}
	return s
}
