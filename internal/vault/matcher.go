package vault

import "strings"

// Matcher selects entries by name during lookup. Matching is case-sensitive.
type Matcher interface {
	Match(name string) bool
}

type containsMatcher string

func (m containsMatcher) Match(name string) bool {
	return strings.Contains(name, string(m))
}

type exactMatcher string

func (m exactMatcher) Match(name string) bool {
	return name == string(m)
}

// Contains matches any entry whose name contains text, unanchored.
func Contains(text string) Matcher {
	return containsMatcher(text)
}

// ExactName matches only the entry whose name equals text.
func ExactName(text string) Matcher {
	return exactMatcher(text)
}
