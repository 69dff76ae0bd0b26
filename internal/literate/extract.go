// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package literate extracts text from Markdown documents. Extract prints
// the bodies of fenced code blocks whose language matches a CodeMatcher;
// Quote prints the raw source of sections whose heading matches a
// HeadingMatcher.
package literate

import (
	"context"
	"io"
	"strings"

	"github.com/pdiddy/literate/internal/markdown"
	"github.com/pdiddy/literate/internal/matcher"
)

// Extract writes the contents of every fenced code block in r that m
// matches to w and returns the number of bytes written. A blank language
// tag is passed to m as "". Output is written as it is found; on error,
// whatever was already written stays written.
func Extract(r io.Reader, w io.Writer, m matcher.CodeMatcher, opts ...Option) (int, error) {
	o := newOptions(opts)

	src, err := io.ReadAll(r)
	if err != nil {
		return 0, Wrap(KindIO, "", err)
	}

	ctx := context.Background()
	tracing := o.log.Enabled(ctx, LevelTrace)

	printing := false
	bytes := 0

	for _, e := range o.tokenize(src) {
		if tracing {
			o.log.Log(ctx, LevelTrace, "received event", "event", e)
		}

		switch {
		case e.Kind == markdown.CodeBlockStart && e.Fenced:
			printing = m.MatchLanguage(strings.TrimSpace(e.Info))
		case e.Kind == markdown.Text && printing:
			n, err := io.WriteString(w, e.Text)
			bytes += n
			if err != nil {
				return bytes, Wrap(KindIO, "", err)
			}
		case e.Kind == markdown.CodeBlockEnd && e.Fenced:
			printing = false
		}
	}

	if err := flush(w); err != nil {
		return bytes, Wrap(KindIO, "", err)
	}
	return bytes, nil
}

// flusher is implemented by buffered sinks such as *bufio.Writer.
type flusher interface {
	Flush() error
}

func flush(w io.Writer) error {
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
