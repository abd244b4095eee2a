package selector

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Nth is a positional predicate of a segment. Positions are 0-based.
//
// Implementations are the Nth… types of this package; clients cannot add
// new ones.
type Nth interface {
	// Matches reports whether the node at position pos of total siblings is
	// selected. total < 0 means the number of siblings is unknown, in which
	// case predicates counting from the end never hold.
	Matches(pos, total int) bool
	// String renders the predicate in rusty syntax, without the leading ':'
	// or '@'.
	String() string
	nth()
}

// NthAll selects every position. It is implied by a segment without suffix.
type NthAll struct{}

// NthEven selects the 2nd, 4th, … sibling.
type NthEven struct{}

// NthOdd selects the 1st, 3rd, … sibling.
type NthOdd struct{}

// NthFirst selects the first sibling.
type NthFirst struct{}

// NthLast selects the last sibling.
type NthLast struct{}

// NthOnly selects a node without siblings.
type NthOnly struct{}

// NthIndex selects explicit positions.
type NthIndex []int

// NthFromEnd selects explicit positions, counted from the last sibling.
type NthFromEnd []int

// NthRange selects positions Start ≤ p < End.
type NthRange struct {
	Start, End int
}

// NthRangeFrom selects positions p ≥ Start.
type NthRangeFrom struct {
	Start int
}

// NthRangeTo selects positions p < End.
type NthRangeTo struct {
	End int
}

// NthEveryN selects every Frequency-th position, starting at Offset.
// A position p is selected if p = Frequency*k + Offset for some k ≥ 0.
type NthEveryN struct {
	Frequency int
	Offset    int
}

// NthEveryNFromEnd is NthEveryN counting from the last sibling.
type NthEveryNFromEnd struct {
	Frequency int
	Offset    int
}

// NthNot selects every tag except the ones listed.
// It is positional only in name; any position matches.
type NthNot []string

// Indices creates a normalized (sorted, de-duplicated) NthIndex.
func Indices(ix ...int) NthIndex {
	return NthIndex(normInts(ix))
}

// IndicesFromEnd creates a normalized NthFromEnd.
func IndicesFromEnd(ix ...int) NthFromEnd {
	return NthFromEnd(normInts(ix))
}

// Not creates a normalized NthNot.
func Not(names ...string) NthNot {
	n := append([]string(nil), names...)
	sort.Strings(n)
	j := 0
	for i := range n {
		if i == 0 || n[i] != n[j-1] {
			n[j] = n[i]
			j++
		}
	}
	return NthNot(n[:j])
}

func normInts(ix []int) []int {
	n := append([]int(nil), ix...)
	sort.Ints(n)
	j := 0
	for i := range n {
		if i == 0 || n[i] != n[j-1] {
			n[j] = n[i]
			j++
		}
	}
	return n[:j]
}

// --- Predicates ------------------------------------------------------------

func (NthAll) Matches(pos, total int) bool { return true }

func (NthEven) Matches(pos, total int) bool { return pos%2 == 1 }

func (NthOdd) Matches(pos, total int) bool { return pos%2 == 0 }

func (NthFirst) Matches(pos, total int) bool { return pos == 0 }

func (NthLast) Matches(pos, total int) bool { return total > 0 && pos == total-1 }

func (NthOnly) Matches(pos, total int) bool { return total == 1 && pos == 0 }

func (n NthIndex) Matches(pos, total int) bool { return containsInt(n, pos) }

func (n NthFromEnd) Matches(pos, total int) bool {
	return total > 0 && containsInt(n, total-1-pos)
}

func (n NthRange) Matches(pos, total int) bool { return pos >= n.Start && pos < n.End }

func (n NthRangeFrom) Matches(pos, total int) bool { return pos >= n.Start }

func (n NthRangeTo) Matches(pos, total int) bool { return pos < n.End }

func (n NthEveryN) Matches(pos, total int) bool {
	return everyN(n.Frequency, n.Offset, pos)
}

func (n NthEveryNFromEnd) Matches(pos, total int) bool {
	return total > 0 && everyN(n.Frequency, n.Offset, total-1-pos)
}

// NthNot does not restrict positions; the tag check is done by the segment.
func (n NthNot) Matches(pos, total int) bool { return true }

// excludes reports whether tag is on the list.
func (n NthNot) excludes(tag string) bool {
	i := sort.SearchStrings(n, tag)
	return i < len(n) && n[i] == tag
}

// everyN reports whether pos = freq*k + offset for some k >= 0. Remainders
// are compared instead of computing pos-offset, which may overflow.
func everyN(freq, offset, pos int) bool {
	if freq == 0 {
		return pos == offset
	}
	return pos >= offset && (pos%freq-offset%freq)%freq == 0
}

func containsInt(set []int, x int) bool {
	i := sort.SearchInts(set, x)
	return i < len(set) && set[i] == x
}

// --- Rendering -------------------------------------------------------------

func (NthAll) String() string   { return "" }
func (NthEven) String() string  { return "even" }
func (NthOdd) String() string   { return "odd" }
func (NthFirst) String() string { return "first" }
func (NthLast) String() string  { return "last" }
func (NthOnly) String() string  { return "only" }

func (n NthIndex) String() string   { return "[" + joinInts(n) + "]" }
func (n NthFromEnd) String() string { return "last[" + joinInts(n) + "]" }

func (n NthRange) String() string     { return fmt.Sprintf("[%d..%d]", n.Start, n.End) }
func (n NthRangeFrom) String() string { return fmt.Sprintf("[%d..]", n.Start) }
func (n NthRangeTo) String() string   { return fmt.Sprintf("[..%d]", n.End) }

func (n NthEveryN) String() string {
	return "[" + formula(n.Frequency, n.Offset) + "]"
}

func (n NthEveryNFromEnd) String() string {
	return "last[" + formula(n.Frequency, n.Offset) + "]"
}

func (n NthNot) String() string { return "not[" + strings.Join(n, ",") + "]" }

func formula(freq, offset int) string {
	switch {
	case offset > 0:
		return fmt.Sprintf("%dn+%d", freq, offset)
	case offset < 0:
		return fmt.Sprintf("%dn%d", freq, offset)
	}
	return fmt.Sprintf("%dn", freq)
}

func joinInts(ix []int) string {
	s := make([]string, len(ix))
	for i, x := range ix {
		s[i] = strconv.Itoa(x)
	}
	return strings.Join(s, ",")
}

func (NthAll) nth()           {}
func (NthEven) nth()          {}
func (NthOdd) nth()           {}
func (NthFirst) nth()         {}
func (NthLast) nth()          {}
func (NthOnly) nth()          {}
func (NthIndex) nth()         {}
func (NthFromEnd) nth()       {}
func (NthRange) nth()         {}
func (NthRangeFrom) nth()     {}
func (NthRangeTo) nth()       {}
func (NthEveryN) nth()        {}
func (NthEveryNFromEnd) nth() {}
func (NthNot) nth()           {}
