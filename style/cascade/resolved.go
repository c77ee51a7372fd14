package cascade

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pwss/maybe"
	"github.com/npillmayer/pwss/style"
	"github.com/npillmayer/pwss/style/cssom"
)

// ResolvedStyle is the outcome of the cascade for a single widget. It is
// immutable once returned and may be shared freely.
type ResolvedStyle struct {
	values  [style.KeyCount]style.Value // nil = not set
	rules   []int                       // indices of matching rules, in cascade order
	version uint64
}

func (rs *ResolvedStyle) apply(r *cssom.Rule) {
	rs.rules = append(rs.rules, r.Index)
	for _, decl := range r.Declarations {
		for _, kv := range style.Longhands(decl) {
			rs.values[kv.Key] = kv.Value
		}
	}
}

// Lookup returns the value set for key. Shorthand keys compose a rectangle
// from the sides set; sides not set are zero.
func (rs *ResolvedStyle) Lookup(key style.Key) (style.Value, bool) {
	if rs == nil || int(key) >= style.KeyCount {
		return nil, false
	}
	if sides, ok := style.Sides(key); ok {
		return rs.compose(sides)
	}
	v := rs.values[key]
	return v, v != nil
}

func (rs *ResolvedStyle) compose(sides [4]style.Key) (style.Value, bool) {
	var r [4]float32
	found := false
	for i, k := range sides {
		if n, ok := rs.values[k].(style.Number); ok {
			r[i] = float32(n)
			found = true
		}
	}
	if !found {
		return nil, false
	}
	return style.Rect{Top: r[0], Right: r[1], Bottom: r[2], Left: r[3]}, true
}

// Get returns the value set for key, or Nothing.
func (rs *ResolvedStyle) Get(key style.Key) maybe.Maybe[style.Value] {
	v, ok := rs.Lookup(key)
	return maybe.Of(v, ok)
}

// GetOrDefault returns the value set for key, or its built-in default.
func (rs *ResolvedStyle) GetOrDefault(key style.Key) style.Value {
	if v, ok := rs.Lookup(key); ok {
		return v
	}
	return style.Default(key)
}

// Keys returns the keys of all properties set, in key order. Shorthands are
// never included; their sides are.
func (rs *ResolvedStyle) Keys() []style.Key {
	if rs == nil {
		return nil
	}
	var keys []style.Key
	for k, v := range rs.values {
		if v != nil {
			keys = append(keys, style.Key(k))
		}
	}
	return keys
}

// Len is the number of properties set.
func (rs *ResolvedStyle) Len() int {
	return len(rs.Keys())
}

// Rules returns the indices of the rules which contributed to the style, in
// the order they have been applied.
func (rs *ResolvedStyle) Rules() []int {
	if rs == nil {
		return nil
	}
	return append([]int(nil), rs.rules...)
}

// Version is the version of the stylesheet the style has been resolved from.
func (rs *ResolvedStyle) Version() uint64 {
	if rs == nil {
		return 0
	}
	return rs.version
}

// Equal compares the property values of two resolved styles, ignoring
// versions and contributing rules.
func (rs *ResolvedStyle) Equal(other *ResolvedStyle) bool {
	if rs == nil || other == nil {
		return rs.Len() == 0 && other.Len() == 0
	}
	return rs.values == other.values
}

// Declarations returns the properties set as key-value pairs, in key order.
func (rs *ResolvedStyle) Declarations() []style.KeyValue {
	keys := rs.Keys()
	decls := make([]style.KeyValue, len(keys))
	for i, k := range keys {
		decls[i] = style.KeyValue{Key: k, Value: rs.values[k]}
	}
	return decls
}

func (rs *ResolvedStyle) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, kv := range rs.Declarations() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(kv.String())
	}
	b.WriteString(fmt.Sprintf("} v%d", rs.Version()))
	return b.String()
}
