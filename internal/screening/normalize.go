package screening

import (
	"strings"
	"unicode"
)

// Normalizer prepares free-text answers for keyword matching:
// lower-case, punctuation replaced by spaces, whitespace collapsed.
// It is constructed once and passed in explicitly so evaluation has
// no ambient state.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize returns the canonical matching form of s.
// "I get light-headed!" -> "i get light headed".
func (n *Normalizer) Normalize(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}

// JoinAnswers concatenates the non-empty answers and normalizes the
// result into one matchable blob.
func (n *Normalizer) JoinAnswers(answers []string) string {
	return n.Normalize(strings.Join(answers, " "))
}
