package selector

import (
	"sort"
	"strings"

	"github.com/npillmayer/propsel/branch"
	tp "github.com/xlab/treeprint"
)

// Selectors maps identifiers (space-joined segment names, e.g. "div input")
// to the alternatives sharing them, in source order.
type Selectors map[string][]Segments

// Matches reports whether the current path of b is selected by any of the
// alternatives. Alternatives are first looked up by the tags of b; chains
// containing wildcards are tried in addition, as their identifier never
// equals a path of tags.
func (s Selectors) Matches(b *branch.Branch) bool {
	if len(s) == 0 || b.Depth() == 0 {
		return false
	}
	for _, segs := range s[b.String()] {
		if segs.Matches(b) {
			return true
		}
	}
	for id, alternatives := range s {
		if !isWildcardID(id) {
			continue
		}
		for _, segs := range alternatives {
			if segs.Matches(b) {
				tracer().Debugf("selector: %s matches %s", segs, b.Path())
				return true
			}
		}
	}
	return false
}

func isWildcardID(id string) bool {
	return id == WildcardName || strings.HasPrefix(id, WildcardName+" ") ||
		strings.HasSuffix(id, " "+WildcardName) || strings.Contains(id, " "+WildcardName+" ")
}

// Identifiers returns the identifiers of s, sorted.
func (s Selectors) Identifiers() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len is the number of alternatives in s.
func (s Selectors) Len() int {
	n := 0
	for _, alternatives := range s {
		n += len(alternatives)
	}
	return n
}

// String renders s in canonical rusty syntax, alternatives grouped by
// identifier. Parsing the result yields s again.
func (s Selectors) String() string {
	var alts []string
	for _, id := range s.Identifiers() {
		for _, segs := range s[id] {
			alts = append(alts, segs.String())
		}
	}
	return strings.Join(alts, "; ")
}

// MarshalText implements encoding.TextMarshaler.
func (s Selectors) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Selectors) UnmarshalText(text []byte) error {
	sels, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = sels
	return nil
}

// Dump renders s as a tree of identifiers, alternatives and segments.
func (s Selectors) Dump() string {
	p := tp.New()
	for _, id := range s.Identifiers() {
		idBranch := p.AddBranch(id)
		for _, segs := range s[id] {
			altBranch := idBranch.AddBranch(segs.String())
			for _, seg := range segs {
				altBranch.AddNode(seg.Kind.String() + " " + seg.String())
			}
		}
	}
	return p.String()
}
