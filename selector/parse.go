package selector

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse parses a selector text into Selectors.
//
// Alternatives are separated by ';', blank alternatives are ignored.
// A text without any alternative is an error, as is an alternative which
// is equivalent to an earlier one.
// All errors satisfy errors.Is(err, ErrInvalidSelector).
func Parse(text string) (Selectors, error) {
	p := &parser{text: text}
	sels, err := p.parse()
	if err != nil {
		tracer().Debugf("selector: %v", err)
		return nil, err
	}
	return sels, nil
}

// MustParse is like Parse, but panics on error.
func MustParse(text string) Selectors {
	sels, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return sels
}

type parser struct {
	text string // complete input, quoted in errors
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &ParseError{Selector: p.text, Reason: fmt.Sprintf(format, args...)}
}

func (p *parser) wrap(err error) error {
	var perr *ParseError
	if errors.As(err, &perr) {
		return err
	}
	return &ParseError{Selector: p.text, Reason: err.Error()}
}

func (p *parser) parse() (Selectors, error) {
	sels := make(Selectors)
	seen := make(map[string]bool)
	for _, alt := range splitOutside(p.text, ';') {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			continue
		}
		segs, err := p.chain(alt)
		if err != nil {
			return nil, err
		}
		canonical := segs.String()
		if seen[canonical] {
			return nil, &DuplicateError{Selector: alt}
		}
		seen[canonical] = true
		id := segs.Identifier()
		sels[id] = append(sels[id], segs)
	}
	if len(sels) == 0 {
		return nil, p.errorf("selector can not be blank")
	}
	return sels, nil
}

// chain parses one alternative, i.e. segments separated by '>'.
func (p *parser) chain(alt string) (Segments, error) {
	parts := splitOutside(alt, '>')
	segs := make(Segments, 0, len(parts))
	for _, part := range parts {
		seg, err := p.segment(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

func (p *parser) segment(text string) (Segment, error) {
	c := cursor{src: text}
	name := strings.TrimSpace(c.until(":@"))
	if c.eof() {
		if name == "" {
			return Segment{}, p.errorf("'' is an invalid html tag")
		}
		seg, err := NewSegment(name, Child, NthAll{})
		if err != nil {
			return Segment{}, p.wrap(err)
		}
		return seg, nil
	}
	if name != "" {
		if _, err := kindOf(name); err != nil {
			return Segment{}, p.wrap(err)
		}
	}
	sigil := c.next()
	nth, mode, err := p.suffix(sigil, strings.TrimSpace(c.rest()))
	if err != nil {
		return Segment{}, err
	}
	seg, err := NewSegment(name, mode, nth)
	if err != nil {
		return Segment{}, p.wrap(err)
	}
	return seg, nil
}

// --- Suffixes --------------------------------------------------------------

// keyword is a suffix without arguments.
type keyword struct {
	nth  Nth
	css  bool // CSS keywords imply the mode and require ':'
	mode Mode
}

var keywords = map[string]keyword{
	"even":          {nth: NthEven{}},
	"odd":           {nth: NthOdd{}},
	"first":         {nth: NthFirst{}},
	"last":          {nth: NthLast{}},
	"only":          {nth: NthOnly{}},
	"first-child":   {nth: NthFirst{}, css: true, mode: Child},
	"last-child":    {nth: NthLast{}, css: true, mode: Child},
	"only-child":    {nth: NthOnly{}, css: true, mode: Child},
	"first-of-type": {nth: NthFirst{}, css: true, mode: TypeOf},
	"last-of-type":  {nth: NthLast{}, css: true, mode: TypeOf},
	"only-of-type":  {nth: NthOnly{}, css: true, mode: TypeOf},
}

// function is a suffix with an argument list in brackets or parens.
type function struct {
	name    string
	open    byte
	close   byte
	mode    Mode // CSS functions only
	fromEnd bool
	not     bool
}

func (f function) css() bool { return f.open == '(' }

// functions are tried in order; longer names come first.
var functions = []function{
	{name: "nth-last-of-type", open: '(', close: ')', mode: TypeOf, fromEnd: true},
	{name: "nth-last-child", open: '(', close: ')', mode: Child, fromEnd: true},
	{name: "nth-of-type", open: '(', close: ')', mode: TypeOf},
	{name: "nth-child", open: '(', close: ')', mode: Child},
	{name: "not", open: '(', close: ')', not: true},
	{name: "last", open: '[', close: ']', fromEnd: true},
	{name: "not", open: '[', close: ']', not: true},
	{name: "", open: '[', close: ']'},
}

// suffix parses everything after the sigil of a segment.
func (p *parser) suffix(sigil byte, sfx string) (Nth, Mode, error) {
	mode := Child
	if sigil == '@' {
		mode = TypeOf
	}
	if kw, ok := keywords[sfx]; ok {
		if !kw.css {
			return kw.nth, mode, nil
		}
		if sigil == ':' {
			return kw.nth, kw.mode, nil
		}
	}
	for _, fn := range functions {
		if fn.css() && sigil != ':' {
			continue
		}
		if !strings.HasPrefix(sfx, fn.name+string(fn.open)) {
			continue
		}
		if fn.css() {
			mode = fn.mode
		}
		nth, err := p.function(fn, sigil, sfx)
		return nth, mode, err
	}
	if i := strings.IndexByte(sfx, '('); sigil == ':' && i >= 0 {
		if strings.HasSuffix(sfx, ")") {
			return nil, mode, p.errorf("'%s' is not a valid css selector expression", sfx[:i])
		}
		return nil, mode, p.errorf("'%s' is not a valid css selector expression", sfx)
	}
	return nil, mode, p.errorf("'%s' is not a valid nth selector value", sfx)
}

func (p *parser) function(fn function, sigil byte, sfx string) (Nth, error) {
	c := cursor{src: sfx}
	c.skip(len(fn.name) + 1)
	content := c.until(string(fn.close))
	if c.eof() {
		return nil, p.unclosed(fn, sigil, sfx, content)
	}
	c.next()
	if !c.eof() {
		if fn.css() {
			return nil, p.errorf("'%s' is not a valid css selector expression", sfx)
		}
		return nil, p.errorf("'%s' is not a valid nth selector value", sfx)
	}
	content = strings.TrimSpace(content)
	switch {
	case fn.not:
		return p.notList(content)
	case fn.fromEnd:
		if content == "" {
			return nil, p.errorf("value can not be blank")
		}
		if strings.ContainsRune(content, 'n') && !strings.ContainsRune(content, ',') {
			f, o, err := p.everyN(content)
			if err != nil {
				return nil, err
			}
			return NthEveryNFromEnd{Frequency: f, Offset: o}, nil
		}
		ix, err := p.indices(content)
		if err != nil {
			return nil, err
		}
		return NthFromEnd(ix), nil
	}
	if fn.css() {
		switch content {
		case "even":
			return NthEven{}, nil
		case "odd":
			return NthOdd{}, nil
		}
	}
	switch {
	case content == "":
		return nil, p.errorf("value can not be blank")
	case content == "..":
		return nil, p.errorf("Unnecessary 'all' range selector, remove '%c%s'", sigil, sfx)
	case strings.ContainsRune(content, ','):
		// list
	case strings.Contains(content, ".."):
		return p.rangeOf(content)
	case strings.ContainsRune(content, 'n'):
		f, o, err := p.everyN(content)
		if err != nil {
			return nil, err
		}
		return NthEveryN{Frequency: f, Offset: o}, nil
	}
	ix, err := p.indices(content)
	if err != nil {
		return nil, err
	}
	return NthIndex(ix), nil
}

// unclosed reports a function suffix missing its closing bracket.
func (p *parser) unclosed(fn function, sigil byte, sfx, content string) error {
	content = strings.TrimSpace(content)
	hasN := strings.ContainsRune(content, 'n')
	if !fn.css() {
		var what string
		switch {
		case fn.not:
			what = "not"
		case fn.fromEnd && hasN:
			what = "nth last every n"
		case fn.fromEnd:
			what = "nth last"
		case strings.HasPrefix(content, ".."):
			what = "nth range to"
		case strings.Contains(content, ".."):
			what = "nth range"
		case hasN:
			what = "nth every n"
		default:
			what = "nth"
		}
		return p.errorf("'%s' invalid %s expression", sfx, what)
	}
	quoted := sfx[len(fn.name):]
	if fn.not {
		return p.errorf("'%s' is not a valid not expression", quoted)
	}
	if content == ".." {
		return p.errorf("Unnecessary/Invalid all '..' range selector, remove '%c%s'", sigil, sfx)
	}
	kind := "child"
	if fn.mode == TypeOf {
		kind = "of type"
	}
	var what string
	switch {
	case fn.fromEnd && hasN:
		what = "nth last every nth " + kind
	case fn.fromEnd:
		what = "nth last " + kind
	case content == "even" || content == "odd":
		what = "nth " + kind + " " + content
	case strings.HasPrefix(content, ".."):
		what = "nth " + kind + " range to"
	case strings.HasSuffix(content, ".."):
		what = "nth " + kind + " range from"
	case strings.Contains(content, ".."):
		what = "nth " + kind + " range"
	case hasN:
		what = "nth every nth " + kind
	default:
		what = "nth " + kind
	}
	return p.errorf("'%s' is not a valid %s expression", quoted, what)
}

// --- Arguments -------------------------------------------------------------

func (p *parser) indices(content string) ([]int, error) {
	items := strings.Split(content, ",")
	ix := make([]int, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			return nil, p.errorf("value can not be blank")
		}
		n, ok := parseIndex(item)
		if !ok {
			return nil, p.errorf("invalid value '%s'", item)
		}
		ix = append(ix, n)
	}
	return normInts(ix), nil
}

func (p *parser) rangeOf(content string) (Nth, error) {
	i := strings.Index(content, "..")
	from := strings.TrimSpace(content[:i])
	to := strings.TrimSpace(content[i+2:])
	var start, end int
	var ok bool
	if from != "" {
		if start, ok = parseIndex(from); !ok {
			return nil, p.errorf("'%s' is not a valid start value", from)
		}
	}
	inclusive := strings.HasPrefix(to, "=")
	if to != "" {
		end, ok = parseIndex(strings.TrimSpace(strings.TrimPrefix(to, "=")))
		if !ok || inclusive && end == math.MaxInt {
			return nil, p.errorf("'%s' is not a valid end value", to)
		}
	}
	switch {
	case to == "":
		return NthRangeFrom{Start: start}, nil
	case inclusive && start > end:
		return nil, p.errorf("range start cannot be more than inclusive end; =%d < %d", end, start)
	case start > end:
		return nil, p.errorf("range start cannot be more than end; %d < %d", end, start)
	}
	if inclusive {
		end++
	}
	if from == "" {
		return NthRangeTo{End: end}, nil
	}
	return NthRange{Start: start, End: end}, nil
}

// everyN parses a formula "Fn+O". A missing frequency is 1, a missing
// offset is 0.
func (p *parser) everyN(content string) (freq, offset int, err error) {
	i := strings.IndexByte(content, 'n')
	f := strings.TrimSpace(content[:i])
	o := strings.ReplaceAll(content[i+1:], " ", "")
	freq = 1
	if f != "" {
		var ok bool
		if freq, ok = parseIndex(f); !ok {
			return 0, 0, p.errorf("'%s' is not a valid frequency value", f)
		}
	}
	if o != "" {
		if offset, err = strconv.Atoi(o); err != nil {
			return 0, 0, p.errorf("'%s' is not a valid offset value", o)
		}
	}
	return freq, offset, nil
}

func (p *parser) notList(content string) (Nth, error) {
	items := strings.Split(content, ",")
	names := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			return nil, p.errorf("'' an empty element is invalid")
		}
		kind, err := kindOf(item)
		if err != nil {
			return nil, p.wrap(err)
		}
		if kind == Wildcard {
			return nil, p.errorf("'%s' is an invalid html tag", item)
		}
		names = append(names, item)
	}
	return Not(names...), nil
}

// parseIndex accepts unsigned decimal numbers only.
func parseIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if !isDigit(r) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// --- Scanning --------------------------------------------------------------

// splitOutside splits s at every sep which is not enclosed in brackets or
// parens.
func splitOutside(s string, sep byte) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// cursor is a read position within a segment text.
type cursor struct {
	src string
	pos int
}

func (c *cursor) eof() bool { return c.pos >= len(c.src) }

func (c *cursor) next() byte {
	b := c.src[c.pos]
	c.pos++
	return b
}

func (c *cursor) skip(n int) {
	c.pos += n
	if c.pos > len(c.src) {
		c.pos = len(c.src)
	}
}

// until consumes up to, but not including, the first byte out of stops.
func (c *cursor) until(stops string) string {
	start := c.pos
	for !c.eof() && strings.IndexByte(stops, c.src[c.pos]) < 0 {
		c.pos++
	}
	return c.src[start:c.pos]
}

func (c *cursor) rest() string {
	s := c.src[c.pos:]
	c.pos = len(c.src)
	return s
}
