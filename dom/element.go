package dom

import (
	"strings"

	"github.com/npillmayer/propsel/tree"
	"golang.org/x/net/html"
)

// DocumentTag is the tag of the synthetic root of a document.
const DocumentTag = "#document"

// Element is the payload of document nodes.
type Element struct {
	Tag   string           // tag name, case preserved
	Attrs []html.Attribute // attributes; keys are lower case
}

// Node is a node of a document tree.
type Node = tree.Node[*Element]

// Attr returns the value of an attribute.
func (e *Element) Attr(key string) (string, bool) {
	key = strings.ToLower(key)
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute.
func (e *Element) SetAttr(key, val string) {
	key = strings.ToLower(key)
	for i := range e.Attrs {
		if e.Attrs[i].Key == key {
			e.Attrs[i].Val = val
			return
		}
	}
	e.Attrs = append(e.Attrs, html.Attribute{Key: key, Val: val})
}

func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(e.Tag)
	for _, a := range e.Attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		if a.Val != "" {
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(a.Val))
			sb.WriteByte('"')
		}
	}
	sb.WriteByte('>')
	return sb.String()
}

// TagOf returns the tag of an element. It is the tag function of walks over
// document trees.
func TagOf(e *Element) string {
	if e == nil {
		return ""
	}
	return e.Tag
}

// NewDocument creates an empty document.
func NewDocument() *Node {
	return tree.NewNode(&Element{Tag: DocumentTag})
}

// NewElement creates a detached document node.
func NewElement(tag string, attrs ...html.Attribute) *Node {
	return tree.NewNode(&Element{Tag: tag, Attrs: attrs})
}
