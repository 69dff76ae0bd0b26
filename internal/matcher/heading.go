// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package matcher

import (
	"fmt"
	"regexp"

	"github.com/pdiddy/literate/internal/markdown"
)

// HeadingMatcher decides whether the section opened by a heading should be
// quoted, given the heading level and its text ("" when it has none).
type HeadingMatcher interface {
	MatchHeading(level markdown.Level, content string) bool
}

// AlwaysHeading matches every heading when true and none when false.
type AlwaysHeading bool

func (a AlwaysHeading) MatchHeading(markdown.Level, string) bool {
	return bool(a)
}

// Level matches headings of exactly this level.
type Level markdown.Level

func (l Level) MatchHeading(level markdown.Level, _ string) bool {
	return markdown.Level(l) == level
}

// OptionalLevel matches any level when unset.
type OptionalLevel struct {
	Level markdown.Level
	Set   bool
}

// AnyLevel is the unset OptionalLevel.
var AnyLevel = OptionalLevel{}

// SomeLevel returns an OptionalLevel that requires level.
func SomeLevel(level markdown.Level) OptionalLevel {
	return OptionalLevel{Level: level, Set: true}
}

func (o OptionalLevel) MatchHeading(level markdown.Level, _ string) bool {
	return !o.Set || o.Level == level
}

func (o OptionalLevel) String() string {
	if !o.Set {
		return "h*"
	}
	return o.Level.String()
}

// Title matches headings whose text is exactly this string.
type Title string

func (t Title) MatchHeading(_ markdown.Level, content string) bool {
	return content != "" && content == string(t)
}

// OptionalTitle matches every heading when empty and behaves like Title
// otherwise.
type OptionalTitle string

func (o OptionalTitle) MatchHeading(level markdown.Level, content string) bool {
	if o == "" {
		return true
	}
	return Title(o).MatchHeading(level, content)
}

// OptionalPattern tests the heading text against a regular expression.
// A nil pattern matches everything; a heading without text never matches
// a non-nil pattern.
type OptionalPattern struct {
	*regexp.Regexp
}

func (o OptionalPattern) MatchHeading(_ markdown.Level, content string) bool {
	if o.Regexp == nil {
		return true
	}
	if content == "" {
		return false
	}
	return o.MatchString(content)
}

func (o OptionalPattern) String() string {
	if o.Regexp == nil {
		return "*"
	}
	return o.Regexp.String()
}

// Pattern combines an optional level with an optional text pattern. Both
// must hold for a heading to match.
type Pattern struct {
	Level   OptionalLevel
	Pattern OptionalPattern
}

func (p Pattern) MatchHeading(level markdown.Level, content string) bool {
	return p.Level.MatchHeading(level, content) && p.Pattern.MatchHeading(level, content)
}

// String renders e.g. "h2 ^Install" or "h* *".
func (p Pattern) String() string {
	return p.Level.String() + " " + p.Pattern.String()
}

// NewHeadingMatcher builds a Pattern from a level such as "h2" and a
// regular expression. Empty arguments leave the corresponding field unset.
func NewHeadingMatcher(level, pattern string) (Pattern, error) {
	var p Pattern
	if level != "" {
		l, err := markdown.ParseLevel(level)
		if err != nil {
			return p, err
		}
		p.Level = SomeLevel(l)
	}
	if pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return p, fmt.Errorf("invalid heading pattern %q: %w", pattern, err)
		}
		p.Pattern = OptionalPattern{re}
	}
	return p, nil
}
