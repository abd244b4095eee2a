package dom

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// void elements never have children and need no end tag.
var void = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Parse reads a markup document.
//
// Parsing is lenient: unmatched end tags are ignored, and elements left open
// are closed by the end tag of an ancestor or by the end of input.
func Parse(r io.Reader) (*Node, error) {
	z := html.NewTokenizer(r)
	doc := NewDocument()
	open := []*Node{doc}
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, err
			}
			tracer().Debugf("dom: parsed document with %d top-level elements", doc.ChildCount())
			return doc, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			name := tagName(z.Raw())
			tok := z.Token()
			if !strings.EqualFold(name, tok.Data) {
				name = tok.Data
			}
			n := NewElement(name, tok.Attr...)
			open[len(open)-1].AddChild(n)
			if tt == html.StartTagToken && !void[tok.Data] {
				open = append(open, n)
			}
		case html.EndTagToken:
			tok := z.Token()
			for i := len(open) - 1; i > 0; i-- {
				if strings.EqualFold(open[i].Payload.Tag, tok.Data) {
					open = open[:i]
					break
				}
			}
		}
	}
}

// ParseString is Parse for a string.
func ParseString(s string) (*Node, error) {
	return Parse(strings.NewReader(s))
}

// tagName extracts the tag name from a raw start tag, keeping its case.
func tagName(raw []byte) string {
	raw = bytes.TrimPrefix(raw, []byte("<"))
	end := bytes.IndexAny(raw, " \t\n\r\f/>")
	if end < 0 {
		end = len(raw)
	}
	return string(raw[:end])
}
