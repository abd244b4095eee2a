package selector

import (
	"fmt"
	"strings"

	"github.com/npillmayer/propsel/branch"
)

// Kind tells what a segment name refers to.
type Kind int8

// Kinds of segment names.
const (
	Element   Kind = iota // html tag, e.g. "input"
	Component             // component name, e.g. "MyButton"
	Wildcard              // any tag, spelled "*"
)

func (k Kind) String() string {
	switch k {
	case Element:
		return "element"
	case Component:
		return "component"
	case Wildcard:
		return "wildcard"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Mode tells which siblings a segment's position counts among.
type Mode int8

// Counting modes.
const (
	Child  Mode = iota // all siblings (':' or -child)
	TypeOf             // siblings with the same tag ('@' or -of-type)
)

func (m Mode) sigil() byte {
	if m == TypeOf {
		return '@'
	}
	return ':'
}

// WildcardName is the name of wildcard segments.
const WildcardName = "*"

// Segment is one level of a selector chain.
type Segment struct {
	Kind Kind
	Name string
	Mode Mode
	Nth  Nth
}

// NewSegment creates a validated segment. An empty name is a wildcard.
// A nil nth means NthAll. Segments with an NthNot predicate must be wildcards
// and always count in mode Child.
func NewSegment(name string, mode Mode, nth Nth) (Segment, error) {
	if nth == nil {
		nth = NthAll{}
	}
	if name == "" {
		name = WildcardName
	}
	kind, err := kindOf(name)
	if err != nil {
		return Segment{}, err
	}
	if _, ok := nth.(NthNot); ok {
		if kind != Wildcard {
			return Segment{}, fmt.Errorf("'%s' can not be combined with a not selector", name)
		}
		mode = Child
	}
	return Segment{Kind: kind, Name: name, Mode: mode, Nth: nth}, nil
}

// String renders the segment in canonical rusty syntax.
func (s Segment) String() string {
	if _, ok := s.Nth.(NthAll); ok || s.Nth == nil {
		return s.Name
	}
	return s.Name + string(s.Mode.sigil()) + s.Nth.String()
}

// MatchesTrace reports whether a level of a branch is selected by s.
func (s Segment) MatchesTrace(st *branch.SegmentTrace) bool {
	if st == nil {
		return false
	}
	if s.Kind == Wildcard {
		if not, ok := s.Nth.(NthNot); ok && not.excludes(st.Current) {
			return false
		}
	} else if s.Name != st.Current {
		return false
	}
	var pos, total int
	if s.Mode == TypeOf {
		pos, total = st.TypePosition()
	} else {
		pos, total = st.ChildPosition()
	}
	return s.Nth.Matches(pos, total)
}

// Segments is a selector chain, outermost segment first.
type Segments []Segment

// Identifier joins the segment names with spaces, e.g. "div * MyButton".
func (segs Segments) Identifier() string {
	names := make([]string, len(segs))
	for i, s := range segs {
		names[i] = s.Name
	}
	return strings.Join(names, " ")
}

// String renders the chain in canonical rusty syntax. Equivalent chains
// render identically.
func (segs Segments) String() string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.String()
	}
	return strings.Join(parts, " > ")
}

// Matches reports whether the current path of b is selected by the chain.
// Chains and branches of different depth never match.
func (segs Segments) Matches(b *branch.Branch) bool {
	if len(segs) == 0 || len(segs) != b.Depth() {
		return false
	}
	for i, s := range segs {
		if !s.MatchesTrace(b.Trace(i)) {
			return false
		}
	}
	return true
}

func (segs Segments) hasWildcard() bool {
	for _, s := range segs {
		if s.Kind == Wildcard {
			return true
		}
	}
	return false
}
