package domain

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/fatih/camelcase"
)

// Matcher decides whether a known token (lookup-table entry or service name)
// occurs in a subject string (dependency, folder, import).
type Matcher interface {
	Match(token, subject string) bool
}

// Matcher strategy names accepted in configuration.
const (
	MatchSubstring = "substring"
	MatchExact     = "exact"
	MatchToken     = "token"
	MatchRegex     = "regex"
)

// ValidMatchers enumerates the accepted strategy names.
var ValidMatchers = []string{MatchSubstring, MatchExact, MatchToken, MatchRegex}

// NewMatcher returns the strategy registered under name. An empty name
// selects substring matching.
func NewMatcher(name string) (Matcher, error) {
	switch name {
	case "", MatchSubstring:
		return SubstringMatcher{}, nil
	case MatchExact:
		return ExactMatcher{}, nil
	case MatchToken:
		return TokenMatcher{}, nil
	case MatchRegex:
		return &RegexMatcher{}, nil
	default:
		return nil, fmt.Errorf("unknown matcher %q (valid: %s)", name, strings.Join(ValidMatchers, ", "))
	}
}

// SubstringMatcher matches when token appears verbatim inside subject.
// Case-sensitive: "eureka" matches "org.netflix.eureka:1.9".
type SubstringMatcher struct{}

func (SubstringMatcher) Match(token, subject string) bool {
	return token != "" && strings.Contains(subject, token)
}

// ExactMatcher matches only identical strings.
type ExactMatcher struct{}

func (ExactMatcher) Match(token, subject string) bool {
	return token != "" && token == subject
}

// TokenMatcher splits both sides into lower-cased identifier words (on
// punctuation and camelCase boundaries) and matches when the token's words
// occur contiguously in the subject's words. "gateway" matches
// "spring-cloud-gateway" and "ApiGatewayClient" but not "gateways".
type TokenMatcher struct{}

func (TokenMatcher) Match(token, subject string) bool {
	want := identifierWords(token)
	if len(want) == 0 {
		return false
	}
	have := identifierWords(subject)
	for i := 0; i+len(want) <= len(have); i++ {
		matched := true
		for j, w := range want {
			if have[i+j] != w {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

func identifierWords(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var words []string
	for _, p := range parts {
		for _, w := range camelcase.Split(p) {
			words = append(words, strings.ToLower(w))
		}
	}
	return words
}

// RegexMatcher treats each token as a regular expression. Compiled patterns
// are cached; invalid patterns never match.
type RegexMatcher struct {
	cache sync.Map // token -> *regexp.Regexp (nil when invalid)
}

func (m *RegexMatcher) Match(token, subject string) bool {
	if token == "" {
		return false
	}
	if v, ok := m.cache.Load(token); ok {
		re, _ := v.(*regexp.Regexp)
		return re != nil && re.MatchString(subject)
	}
	re, _ := regexp.Compile(token)
	m.cache.Store(token, re)
	return re != nil && re.MatchString(subject)
}

// ContainsFold reports whether any of values contains needle, ignoring case.
func ContainsFold(values []string, needle string) bool {
	needle = strings.ToLower(needle)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}
