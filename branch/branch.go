package branch

import (
	"errors"
	"fmt"
	"strings"
)

// Unknown is the sibling total of a level opened without counting siblings.
const Unknown = -1

// ErrNoOpenLevel is returned for sibling moves or level closes on an
// empty branch.
var ErrNoOpenLevel = errors.New("branch has no open level")

// SegmentTrace is one level of a Branch.
type SegmentTrace struct {
	Current  string         // tag of the node currently visited at this level
	Ordinal  int            // 0-based position among all siblings
	Counters map[string]int // per tag: 0-based occurrence index of the last sibling seen
	total    int            // number of siblings, or Unknown
	ofType   map[string]int // number of siblings per tag, nil if unknown
}

// ChildPosition returns the position of the current node among all of its
// siblings, and the number of siblings (Unknown if not known).
func (st *SegmentTrace) ChildPosition() (pos, total int) {
	return st.Ordinal, st.total
}

// TypePosition returns the position of the current node among the siblings
// sharing its tag, and the number of those siblings (Unknown if not known).
func (st *SegmentTrace) TypePosition() (pos, total int) {
	pos, total = st.Counters[st.Current], Unknown
	if st.ofType != nil {
		if n, ok := st.ofType[st.Current]; ok {
			total = n
		}
	}
	return
}

// Branch is the chain of levels from the root to the current node.
// The zero value is an empty branch, ready to use.
//
// A Branch is not safe for concurrent use; every walk owns its branch.
type Branch struct {
	levels []SegmentTrace
}

// New creates an empty branch.
func New() *Branch {
	return &Branch{levels: make([]SegmentTrace, 0, 16)}
}

// Child opens a new innermost level, positioned at its first node `tag`.
func (b *Branch) Child(tag string) {
	b.NewChild(tag, Unknown, nil)
}

// NewChild opens a new innermost level, positioned at its first node `tag`,
// announcing the number of siblings in total and per tag. ofType may be nil.
// The branch reads ofType until the level is closed but never modifies it,
// so callers may recycle the map afterwards.
func (b *Branch) NewChild(tag string, total int, ofType map[string]int) {
	if total < 0 {
		total = Unknown
	}
	// recycle the counter map of a formerly closed level at this depth
	var counters map[string]int
	if len(b.levels) < cap(b.levels) {
		counters = b.levels[:len(b.levels)+1][len(b.levels)].Counters
	}
	if counters == nil {
		counters = make(map[string]int)
	} else {
		clear(counters)
	}
	counters[tag] = 0
	b.levels = append(b.levels, SegmentTrace{
		Current:  tag,
		Ordinal:  0,
		Counters: counters,
		total:    total,
		ofType:   ofType,
	})
	tracer().Debugf("branch: open level %d with <%s>", len(b.levels)-1, tag)
}

// Sibling moves the innermost level to its next node `tag`.
func (b *Branch) Sibling(tag string) error {
	if len(b.levels) == 0 {
		return ErrNoOpenLevel
	}
	st := &b.levels[len(b.levels)-1]
	if n, ok := st.Counters[tag]; ok {
		st.Counters[tag] = n + 1
	} else {
		st.Counters[tag] = 0
	}
	st.Current = tag
	st.Ordinal++
	return nil
}

// NextSibling is an alias for Sibling.
func (b *Branch) NextSibling(tag string) error {
	return b.Sibling(tag)
}

// Last closes the innermost level.
func (b *Branch) Last() error {
	if len(b.levels) == 0 {
		return ErrNoOpenLevel
	}
	b.levels[len(b.levels)-1].ofType = nil
	b.levels = b.levels[:len(b.levels)-1]
	return nil
}

// Finish is an alias for Last.
func (b *Branch) Finish() error {
	return b.Last()
}

// Depth is the number of open levels.
func (b *Branch) Depth() int {
	if b == nil {
		return 0
	}
	return len(b.levels)
}

// Trace returns level i, 0 being the outermost one. It returns nil for
// levels which are not open.
func (b *Branch) Trace(i int) *SegmentTrace {
	if b == nil || i < 0 || i >= len(b.levels) {
		return nil
	}
	return &b.levels[i]
}

// Tags returns the tags of the current path, outermost first.
func (b *Branch) Tags() []string {
	tags := make([]string, len(b.levels))
	for i := range b.levels {
		tags[i] = b.levels[i].Current
	}
	return tags
}

// String joins the tags of the current path with single spaces. This is the
// key selectors are indexed with.
func (b *Branch) String() string {
	if b == nil {
		return ""
	}
	return strings.Join(b.Tags(), " ")
}

// Path renders the current path with ordinals, e.g. "div[0] > input[2]".
func (b *Branch) Path() string {
	var sb strings.Builder
	for i := range b.levels {
		if i > 0 {
			sb.WriteString(" > ")
		}
		fmt.Fprintf(&sb, "%s[%d]", b.levels[i].Current, b.levels[i].Ordinal)
	}
	return sb.String()
}
