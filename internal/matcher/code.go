// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package matcher holds the inclusion predicates that parameterize
// extraction: CodeMatcher decides whether a fenced code block is printed,
// HeadingMatcher decides whether the section a heading opens is quoted.
//
// Optional strings are encoded as plain strings whose empty value means
// "absent". Callers normalize blank tags and heading texts to "" before
// asking a matcher, so a present value is never empty.
package matcher

// CodeMatcher decides whether a fenced code block should be included in
// the output, given its language tag ("" when the block has none).
type CodeMatcher interface {
	MatchLanguage(language string) bool
}

// Always matches every code block when true and none when false.
type Always bool

func (a Always) MatchLanguage(string) bool {
	return bool(a)
}

// Exact matches only blocks tagged with exactly this language.
type Exact string

func (e Exact) MatchLanguage(language string) bool {
	return language != "" && language == string(e)
}

// Optional matches everything when empty. Otherwise a tagged block must
// carry exactly this language and an untagged block always matches.
type Optional string

func (o Optional) MatchLanguage(language string) bool {
	if o == "" || language == "" {
		return true
	}
	return language == string(o)
}

// Language matches blocks tagged with Language. Untagged blocks match
// only when Required is false.
type Language struct {
	Language string `json:"language" yaml:"language"`
	Required bool   `json:"required" yaml:"required"`
}

func (l Language) MatchLanguage(language string) bool {
	if language == "" {
		return !l.Required
	}
	return language == l.Language
}

// String renders "rust" for a required language and "rust?" otherwise.
func (l Language) String() string {
	if l.Required {
		return l.Language
	}
	return l.Language + "?"
}

// NewCodeMatcher resolves command-line style options into a matcher.
// Without a language the result is the constant Always(!required).
func NewCodeMatcher(language string, required bool) CodeMatcher {
	if language == "" {
		return Always(!required)
	}
	return Language{Language: language, Required: required}
}
