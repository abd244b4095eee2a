package tree

import (
	"errors"
)

// Tracker follows the position of a walk. *branch.Branch implements it.
type Tracker interface {
	NewChild(tag string, total int, ofType map[string]int)
	NextSibling(tag string) error
	Finish() error
}

// SkipChildren may be returned by a visitor to skip the children of the
// visited node. The walk continues with the next sibling.
var SkipChildren = errors.New("skip children")

// ErrNilTracker is returned by walks started without a tracker.
var ErrNilTracker = errors.New("walk needs a tracker")

// Walk visits root and all of its descendants, depth first and left to
// right. root is reported to the tracker as a level of one.
//
// tagOf extracts the tag of a node's payload. visit is called for every node
// after the tracker has been moved to it. An error returned by visit, other
// than SkipChildren, stops the walk; the tracker is left in the position of
// the failing node.
func Walk[T comparable](root *Node[T], tagOf func(T) string, tracker Tracker, visit func(*Node[T]) error) error {
	if root == nil {
		return nil
	}
	w, err := newWalker(tagOf, tracker, visit)
	if err != nil {
		return err
	}
	return w.level(0, []*Node[T]{root})
}

// WalkChildren is like Walk, but starts with the children of parent, which
// itself is not visited. This is handy for documents with a synthetic root.
func WalkChildren[T comparable](parent *Node[T], tagOf func(T) string, tracker Tracker, visit func(*Node[T]) error) error {
	if parent == nil {
		return nil
	}
	w, err := newWalker(tagOf, tracker, visit)
	if err != nil {
		return err
	}
	return w.level(0, parent.children)
}

type walker[T comparable] struct {
	tagOf   func(T) string
	tracker Tracker
	visit   func(*Node[T]) error
	arena   []map[string]int // per-depth tag counts, recycled
}

func newWalker[T comparable](tagOf func(T) string, tracker Tracker, visit func(*Node[T]) error) (*walker[T], error) {
	if tracker == nil {
		return nil, ErrNilTracker
	}
	if visit == nil {
		visit = func(*Node[T]) error { return nil }
	}
	return &walker[T]{tagOf: tagOf, tracker: tracker, visit: visit}, nil
}

func (w *walker[T]) level(depth int, siblings []*Node[T]) error {
	if len(siblings) == 0 {
		return nil
	}
	ofType := w.count(depth, siblings)
	for i, node := range siblings {
		tag := w.tagOf(node.Payload)
		if i == 0 {
			w.tracker.NewChild(tag, len(siblings), ofType)
		} else if err := w.tracker.NextSibling(tag); err != nil {
			return err
		}
		err := w.visit(node)
		if errors.Is(err, SkipChildren) {
			continue
		} else if err != nil {
			return err
		}
		if err = w.level(depth+1, node.children); err != nil {
			return err
		}
	}
	return w.tracker.Finish()
}

// count tallies the tags of a level of siblings in the arena table for
// that depth.
func (w *walker[T]) count(depth int, siblings []*Node[T]) map[string]int {
	for len(w.arena) <= depth {
		w.arena = append(w.arena, make(map[string]int))
	}
	ofType := w.arena[depth]
	clear(ofType)
	for _, node := range siblings {
		ofType[w.tagOf(node.Payload)]++
	}
	tracer().Debugf("walk: level %d has %d nodes", depth, len(siblings))
	return ofType
}
