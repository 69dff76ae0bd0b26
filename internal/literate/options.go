// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package literate

import (
	"log/slog"

	"github.com/pdiddy/literate/internal/markdown"
)

// LevelTrace is the slog level used for per-event tracing.
const LevelTrace = slog.Level(-8)

type options struct {
	log       *slog.Logger
	tokenizer *markdown.Tokenizer
}

// Option customizes a single Extract or Quote call.
type Option func(*options)

// WithLogger sets the logger that receives per-event trace records.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithTokenizer replaces the default Markdown tokenizer.
func WithTokenizer(t *markdown.Tokenizer) Option {
	return func(o *options) {
		if t != nil {
			o.tokenizer = t
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) tokenize(src []byte) []markdown.Event {
	if o.tokenizer == nil {
		return markdown.Tokenize(src)
	}
	return o.tokenizer.Tokenize(src)
}
