// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown turns Markdown source into a flat, ordered stream of
// structural events. Each event may carry the byte span of the source text
// it was produced from, which lets consumers re-emit raw excerpts.
package markdown

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the structural meaning of an Event.
type Kind int

const (
	// Other covers every construct the extractors do not model
	// (paragraphs, lists, emphasis, tables, ...).
	Other Kind = iota
	HeadingStart
	HeadingEnd
	CodeBlockStart
	CodeBlockEnd
	Text
)

func (k Kind) String() string {
	switch k {
	case HeadingStart:
		return "heading-start"
	case HeadingEnd:
		return "heading-end"
	case CodeBlockStart:
		return "code-block-start"
	case CodeBlockEnd:
		return "code-block-end"
	case Text:
		return "text"
	default:
		return "other"
	}
}

// Level is the rank of a heading. H1 is the most significant (shallowest).
type Level int

const (
	H1 Level = iota + 1
	H2
	H3
	H4
	H5
	H6
)

// Valid reports whether l is one of H1..H6.
func (l Level) Valid() bool {
	return l >= H1 && l <= H6
}

func (l Level) String() string {
	return "h" + strconv.Itoa(int(l))
}

// ParseLevel accepts "h2", "H2" or "2".
func ParseLevel(s string) (Level, error) {
	v := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "h")
	n, err := strconv.Atoi(v)
	if err != nil || !Level(n).Valid() {
		return 0, fmt.Errorf("invalid heading level %q (want h1-h6)", s)
	}
	return Level(n), nil
}

// Span is a half-open byte range [Start, Stop) in the source document.
// An empty span means the event has no usable source range.
type Span struct {
	Start int
	Stop  int
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Stop <= s.Start
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	if s.Empty() {
		return 0
	}
	return s.Stop - s.Start
}

func (s Span) union(o Span) Span {
	if s.Empty() {
		return o
	}
	if o.Empty() {
		return s
	}
	return Span{Start: min(s.Start, o.Start), Stop: max(s.Stop, o.Stop)}
}

// Event is one structural token of a document.
type Event struct {
	Kind Kind

	// Level is set on HeadingStart and HeadingEnd.
	Level Level

	// Fenced is set on CodeBlockStart and CodeBlockEnd for fenced blocks.
	// Indented code blocks are reported as Other.
	Fenced bool

	// Info is the raw info string of a fenced code block, untrimmed.
	Info string

	// Text is the body of a Text event.
	Text string

	Span Span
}

func (e Event) String() string {
	switch e.Kind {
	case HeadingStart, HeadingEnd:
		return fmt.Sprintf("%s(%s)@%d:%d", e.Kind, e.Level, e.Span.Start, e.Span.Stop)
	case CodeBlockStart:
		return fmt.Sprintf("%s(%q)@%d:%d", e.Kind, e.Info, e.Span.Start, e.Span.Stop)
	case Text:
		return fmt.Sprintf("%s(%q)@%d:%d", e.Kind, e.Text, e.Span.Start, e.Span.Stop)
	default:
		return fmt.Sprintf("%s@%d:%d", e.Kind, e.Span.Start, e.Span.Stop)
	}
}
