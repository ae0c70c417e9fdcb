package screening

import (
	"regexp"
	"strings"
)

// PatternKind tags the pattern variant. The variant is decided once
// when the flag set is built, never per comparison.
type PatternKind uint8

const (
	PatternLiteral PatternKind = iota
	PatternCompound
	PatternRegex
)

// Pattern matches a normalized text blob. A literal matches when its
// token occurs as a substring; a compound matches when every token
// occurs, in any order ("light" + "head" matches both "light headed"
// and "light-headed" after normalization); a regex matches when the
// expression finds a hit.
type Pattern struct {
	kind   PatternKind
	tokens []string
	re     *regexp.Regexp
}

// Literal returns a single-token substring pattern.
func Literal(token string) Pattern {
	return Pattern{kind: PatternLiteral, tokens: []string{token}}
}

// Compound returns an all-of pattern over the given tokens.
func Compound(tokens ...string) Pattern {
	return Pattern{kind: PatternCompound, tokens: tokens}
}

// Regex returns a pattern backed by a compiled regular expression.
// The expression runs against already-normalized text.
func Regex(re *regexp.Regexp) Pattern {
	return Pattern{kind: PatternRegex, re: re}
}

func (p Pattern) Kind() PatternKind { return p.kind }

// Matches reports whether normalized text satisfies the pattern.
// Pure function of its inputs.
func (p Pattern) Matches(text string) bool {
	switch p.kind {
	case PatternCompound:
		for _, tok := range p.tokens {
			if !strings.Contains(text, tok) {
				return false
			}
		}
		return true
	case PatternRegex:
		return p.re.MatchString(text)
	default:
		return strings.Contains(text, p.tokens[0])
	}
}

// Search reports whether any pattern in the list matches: OR across
// the list, AND inside a compound.
func Search(text string, patterns []Pattern) bool {
	for _, p := range patterns {
		if p.Matches(text) {
			return true
		}
	}
	return false
}

// normalized returns a copy of p with its tokens passed through the
// normalizer, so pattern and text share one canonical form. Applied
// once at flag-set construction.
func (p Pattern) normalized(n *Normalizer) Pattern {
	if p.kind == PatternRegex {
		return p
	}
	out := Pattern{kind: p.kind, tokens: make([]string, len(p.tokens))}
	for i, tok := range p.tokens {
		out.tokens[i] = n.Normalize(tok)
	}
	return out
}
