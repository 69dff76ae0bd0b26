// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Tokenizer flattens a goldmark AST into an ordered event stream.
// A single Tokenizer may be reused for many documents.
type Tokenizer struct {
	md goldmark.Markdown
}

// NewTokenizer returns a Tokenizer with the GFM, footnote and definition
// list extensions enabled.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Footnote,
				extension.DefinitionList,
			),
		),
	}
}

var defaultTokenizer = NewTokenizer()

// Tokenize parses src with the default tokenizer.
func Tokenize(src []byte) []Event {
	return defaultTokenizer.Tokenize(src)
}

// Tokenize parses src and returns its events in document order.
// Block events carry spans widened to whole source lines so that
// re-emitting a span reproduces markers such as "## " or "```go".
// End events carry the span of their matching start event.
func (t *Tokenizer) Tokenize(src []byte) []Event {
	doc := t.md.Parser().Parse(text.NewReader(src))
	w := &walker{src: src}
	w.children(doc)
	return w.events
}

type walker struct {
	src    []byte
	events []Event
}

func (w *walker) emit(e Event) {
	w.events = append(w.events, e)
}

func (w *walker) children(n ast.Node) {
	for c := n.FirstChild(); c != nil; {
		if _, ok := c.(*ast.Text); ok {
			c = w.textRun(c)
			continue
		}
		w.node(c)
		c = c.NextSibling()
	}
}

func (w *walker) node(n ast.Node) {
	switch n := n.(type) {
	case *ast.Heading:
		span := w.blockSpan(n)
		level := Level(n.Level)
		w.emit(Event{Kind: HeadingStart, Level: level, Span: span})
		w.children(n)
		w.emit(Event{Kind: HeadingEnd, Level: level, Span: span})

	case *ast.FencedCodeBlock:
		span := w.blockSpan(n)
		var info string
		if n.Info != nil {
			info = string(n.Info.Segment.Value(w.src))
		}
		w.emit(Event{Kind: CodeBlockStart, Fenced: true, Info: info, Span: span})
		w.lines(n.Lines())
		w.emit(Event{Kind: CodeBlockEnd, Fenced: true, Info: info, Span: span})

	case *ast.CodeBlock:
		w.emit(Event{Kind: Other, Span: w.blockSpan(n)})
		w.lines(n.Lines())

	case *ast.String:
		w.emit(Event{Kind: Text, Text: string(n.Value)})

	default:
		var span Span
		if n.Type() == ast.TypeBlock {
			span = w.blockSpan(n)
		} else {
			span = w.contentSpan(n)
		}
		w.emit(Event{Kind: Other, Span: span})
		w.children(n)
	}
}

// lines emits one Text event per raw content line of a code block.
func (w *walker) lines(lines *text.Segments) {
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		w.emit(Event{
			Kind: Text,
			Text: string(seg.Value(w.src)),
			Span: Span{Start: seg.Start, Stop: seg.Stop},
		})
	}
}

// textRun coalesces consecutive text siblings into one Text event and
// returns the first node after the run.
func (w *walker) textRun(first ast.Node) ast.Node {
	var buf bytes.Buffer
	var span Span
	c := first
	for ; c != nil; c = c.NextSibling() {
		t, ok := c.(*ast.Text)
		if !ok {
			break
		}
		buf.Write(t.Segment.Value(w.src))
		span = span.union(Span{Start: t.Segment.Start, Stop: t.Segment.Stop})
		if t.SoftLineBreak() || t.HardLineBreak() {
			buf.WriteByte('\n')
		}
	}
	w.emit(Event{Kind: Text, Text: buf.String(), Span: span})
	return c
}

// contentSpan is the union of the raw segments under n. Fenced code
// blocks contribute their fence lines, so containers cover them too.
func (w *walker) contentSpan(n ast.Node) Span {
	var span Span
	switch n := n.(type) {
	case *ast.Text:
		return Span{Start: n.Segment.Start, Stop: n.Segment.Stop}
	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			span = span.union(Span{Start: seg.Start, Stop: seg.Stop})
		}
		return span
	case *ast.FencedCodeBlock:
		return w.fenceSpan(n)
	}

	if n.Type() == ast.TypeBlock {
		if lines := n.Lines(); lines.Len() > 0 {
			span = Span{Start: lines.At(0).Start, Stop: lines.At(lines.Len() - 1).Stop}
		}
		if h, ok := n.(*ast.HTMLBlock); ok && h.HasClosure() {
			span = span.union(Span{Start: h.ClosureLine.Start, Stop: h.ClosureLine.Stop})
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		span = span.union(w.contentSpan(c))
	}
	return span
}

// blockSpan returns the whole-line span of a block. Blocks goldmark keeps
// no segments for are located between their neighbours.
func (w *walker) blockSpan(n ast.Node) Span {
	span := w.lineSpan(n)
	if span.Empty() && unsegmented(n) {
		return w.gapSpan(n)
	}
	return span
}

// unsegmented reports whether n may be recorded without any source
// segment: thematic breaks, empty untagged fences and empty ATX headings.
func unsegmented(n ast.Node) bool {
	switch n.(type) {
	case *ast.ThematicBreak, *ast.FencedCodeBlock, *ast.Heading:
		return true
	}
	return false
}

// lineSpan widens the content span of a block to whole source lines.
func (w *walker) lineSpan(n ast.Node) Span {
	span := w.contentSpan(n)
	if span.Empty() {
		return span
	}

	setext := false
	if _, ok := n.(*ast.Heading); ok {
		setext = !w.precededByHash(span.Start)
	}

	span.Start = w.lineStart(span.Start)
	span.Stop = w.lineEnd(span.Stop)
	switch n := n.(type) {
	case *ast.Heading:
		if setext {
			span.Stop = w.lineStop(w.nextLine(span.Stop))
		}
	case *east.Table:
		// The delimiter row has no segments; a header-only table ends on it.
		if header := n.FirstChild(); header != nil {
			if hs := w.contentSpan(header); !hs.Empty() {
				delim := w.nextLine(w.lineEnd(hs.Stop))
				span.Stop = max(span.Stop, w.lineStop(delim))
			}
		}
	}
	return span
}

// fenceSpan covers the opening fence, the content and the closing fence
// when one is present. An empty fence without an info string yields an
// empty span; blockSpan recovers it from the surrounding lines.
func (w *walker) fenceSpan(n *ast.FencedCodeBlock) Span {
	lines := n.Lines()

	var span Span
	var after int
	switch {
	case n.Info != nil:
		span.Start = n.Info.Segment.Start
		span.Stop = w.lineStop(n.Info.Segment.Stop)
		after = w.nextLine(span.Stop)
	case lines.Len() > 0:
		first := w.lineStart(lines.At(0).Start)
		if first == 0 {
			return Span{}
		}
		span.Start = w.lineStart(first - 1)
		span.Stop = first
	default:
		return Span{}
	}

	if lines.Len() > 0 {
		last := lines.At(lines.Len() - 1)
		span.Stop = w.lineStop(w.lineStart(last.Start))
		after = w.nextLine(span.Stop)
	}
	if w.isFence(after) {
		span.Stop = w.lineStop(after)
	}
	return span
}

// gapSpan finds the first non-blank line between the end of the previous
// sibling and the start of the next one. A fence also takes the closing
// fence line that follows it.
func (w *walker) gapSpan(n ast.Node) Span {
	pos, to := w.prevStop(n), w.nextStart(n)
	if pos > 0 && w.src[pos-1] != '\n' {
		pos = w.nextLine(w.lineStop(pos))
	}
	for pos < to {
		end := w.lineStop(pos)
		if !blankLine(w.src[pos:end]) {
			span := Span{Start: pos, Stop: end}
			if _, ok := n.(*ast.FencedCodeBlock); ok {
				if next := w.nextLine(end); next < to && w.isFence(next) {
					span.Stop = w.lineStop(next)
				}
			}
			return span
		}
		next := w.nextLine(end)
		if next == end {
			break
		}
		pos = next
	}
	return Span{}
}

// prevStop is where the block before n ends, looking through enclosing
// containers when n is their first child.
func (w *walker) prevStop(n ast.Node) int {
	for s := n.PreviousSibling(); s != nil; s = s.PreviousSibling() {
		if span := w.blockSpan(s); !span.Empty() {
			return span.Stop
		}
	}
	if p := n.Parent(); p != nil && p.Kind() != ast.KindDocument {
		return w.prevStop(p)
	}
	return 0
}

// nextStart is the start of the line holding the block after n. It only
// uses recorded segments, so it never recurses back into gapSpan.
func (w *walker) nextStart(n ast.Node) int {
	for s := n.NextSibling(); s != nil; s = s.NextSibling() {
		if span := w.contentSpan(s); !span.Empty() {
			return w.lineStart(span.Start)
		}
	}
	if p := n.Parent(); p != nil && p.Kind() != ast.KindDocument {
		return w.nextStart(p)
	}
	return len(w.src)
}

func blankLine(line []byte) bool {
	return len(bytes.TrimLeft(line, " \t>")) == 0
}

func (w *walker) lineStart(pos int) int {
	pos = min(pos, len(w.src))
	for pos > 0 && w.src[pos-1] != '\n' {
		pos--
	}
	return pos
}

// lineEnd returns the end of the line holding the content that stops at
// pos. A pos just past a line terminator refers to the line it ends.
func (w *walker) lineEnd(pos int) int {
	pos = min(pos, len(w.src))
	if pos > 0 && w.src[pos-1] == '\n' {
		pos--
	}
	if pos > 0 && w.src[pos-1] == '\r' {
		pos--
	}
	return w.lineStop(pos)
}

// lineStop scans forward from pos to the next line terminator or the end
// of the source.
func (w *walker) lineStop(pos int) int {
	pos = min(pos, len(w.src))
	for pos < len(w.src) && w.src[pos] != '\n' && w.src[pos] != '\r' {
		pos++
	}
	return pos
}

// nextLine skips the line terminator at pos.
func (w *walker) nextLine(pos int) int {
	if pos < len(w.src) && w.src[pos] == '\r' {
		pos++
	}
	if pos < len(w.src) && w.src[pos] == '\n' {
		pos++
	}
	return pos
}

// precededByHash reports whether the heading content at pos follows an
// ATX "#" marker on the same line.
func (w *walker) precededByHash(pos int) bool {
	for i := pos - 1; i >= 0; i-- {
		switch w.src[i] {
		case ' ', '\t':
			continue
		case '#':
			return true
		default:
			return false
		}
	}
	return false
}

func (w *walker) isFence(pos int) bool {
	if pos >= len(w.src) {
		return false
	}
	i := pos
	for i < len(w.src) && (w.src[i] == ' ' || w.src[i] == '\t' || w.src[i] == '>') {
		i++
	}
	rest := w.src[i:]
	return bytes.HasPrefix(rest, []byte("```")) || bytes.HasPrefix(rest, []byte("~~~"))
}
