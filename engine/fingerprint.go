package engine

import (
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/npillmayer/pwss/style/selector"
)

// fingerprint identifies everything the matcher may inspect when selecting
// a widget: the widget's own attributes, its position, the attributes of its
// preceding siblings, and the same information for every ancestor. Two
// widgets with equal fingerprints are matched by exactly the same rules.
//
// The key is the canonical encoding, the digest its hash. The cache buckets
// by digest and compares keys, so hash collisions never produce wrong hits.
type fingerprint struct {
	digest uint64
	key    string
}

// Separators of the encoding. Type names, classes and states are
// identifiers and cannot contain control characters.
const (
	sepField = '\x1f'
	sepList  = '\x1e'
	sepNode  = '\x1d'
	sepLevel = '\x1c'
)

func fingerprintOf(node selector.QueryNode) fingerprint {
	var buf []byte
	for n := node; n != nil; n = n.Parent() {
		buf = appendAttributes(buf, n)
		buf = strconv.AppendInt(buf, int64(n.Index()), 10)
		buf = append(buf, sepField)
		buf = strconv.AppendInt(buf, int64(n.SiblingCount()), 10)
		for _, sib := range n.PrecedingSiblings() {
			buf = append(buf, sepNode)
			buf = appendAttributes(buf, sib)
		}
		buf = append(buf, sepLevel)
	}
	return fingerprint{digest: xxhash.Sum64(buf), key: string(buf)}
}

func appendAttributes(buf []byte, n selector.QueryNode) []byte {
	buf = append(buf, n.TypeName()...)
	buf = append(buf, sepField)
	buf = appendSet(buf, n.Classes())
	buf = appendSet(buf, n.ActiveStates())
	return buf
}

// appendSet encodes a set of names in sorted order.
func appendSet(buf []byte, set []string) []byte {
	if !slices.IsSorted(set) {
		set = slices.Sorted(slices.Values(set))
	}
	for _, s := range set {
		buf = append(buf, s...)
		buf = append(buf, sepList)
	}
	return append(buf, sepField)
}
