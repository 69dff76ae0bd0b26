// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package literate

import (
	"context"
	"io"
	"strings"

	"github.com/pdiddy/literate/internal/markdown"
	"github.com/pdiddy/literate/internal/matcher"
)

type quoteState int

const (
	searching quoteState = iota
	candidate
	printing
)

func (s quoteState) String() string {
	switch s {
	case candidate:
		return "candidate"
	case printing:
		return "printing"
	default:
		return "searching"
	}
}

// quoter is the section state machine. level and heading describe the
// current candidate or printed section.
type quoter struct {
	state   quoteState
	level   markdown.Level
	heading markdown.Span
	cursor  int
	bytes   int
}

// Quote writes the raw source of every section in r whose heading m
// matches to w, each excerpt followed by a newline, and returns the number
// of excerpt bytes written. A section runs until the next heading of the
// same or a shallower level; deeper headings are part of its body. The
// matched heading line itself is included.
func Quote(r io.Reader, w io.Writer, m matcher.HeadingMatcher, opts ...Option) (int, error) {
	o := newOptions(opts)

	src, err := io.ReadAll(r)
	if err != nil {
		return 0, Wrap(KindIO, "", err)
	}

	ctx := context.Background()
	tracing := o.log.Enabled(ctx, LevelTrace)

	var q quoter
	for _, e := range o.tokenize(src) {
		if tracing {
			o.log.Log(ctx, LevelTrace, "received event",
				"event", e, "state", q.state, "excerpt", string(src[e.Span.Start:max(e.Span.Start, e.Span.Stop)]))
		}
		prev := q.state
		if err := q.step(e, m, src, w); err != nil {
			return q.bytes, err
		}
		if prev == candidate && q.state == printing {
			o.log.Debug("quoting section", "level", q.level,
				"heading", string(src[q.heading.Start:max(q.heading.Start, q.heading.Stop)]))
		}
	}

	if err := flush(w); err != nil {
		return q.bytes, Wrap(KindIO, "", err)
	}
	return q.bytes, nil
}

func (q *quoter) step(e markdown.Event, m matcher.HeadingMatcher, src []byte, w io.Writer) error {
	switch q.state {
	case searching:
		if e.Kind == markdown.HeadingStart {
			q.open(e)
		}
		return nil

	case candidate:
		if e.Kind == markdown.Text && m.MatchHeading(q.level, strings.TrimSpace(e.Text)) {
			q.state = printing
		} else {
			q.state = searching
		}
		return nil
	}

	if e.Kind == markdown.HeadingStart && e.Level <= q.level {
		q.open(e)
		return nil
	}
	return q.emit(e, src, w)
}

func (q *quoter) open(e markdown.Event) {
	q.state = candidate
	q.level = e.Level
	q.heading = e.Span
}

// emit writes the source excerpt of e unless an earlier excerpt already
// covered its start. The cursor only moves forward.
func (q *quoter) emit(e markdown.Event, src []byte, w io.Writer) error {
	if e.Span.Empty() || e.Span.Start < q.cursor {
		return nil
	}
	excerpt := src[e.Span.Start:e.Span.Stop]
	if _, err := w.Write(excerpt); err != nil {
		return Wrap(KindIO, "", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return Wrap(KindIO, "", err)
	}
	q.cursor = e.Span.Stop
	q.bytes += len(excerpt)
	return nil
}
