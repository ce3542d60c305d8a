// Package speech maps recognized utterances to coarse review quality
// scores. The core never touches audio: a speech-capture collaborator
// delivers the recognized string, and this package compares it against the
// prompt with a word-overlap metric.
//
// The overlap ratio is a heuristic proxy for pronunciation accuracy with no
// stated accuracy target; it should not be treated as authoritative.
package speech

import (
	"strings"
	"unicode"

	"github.com/ejolly/lingolog/internal/domain"
)

// Similarity returns the word-overlap ratio between two utterances:
// the size of the intersection of their lowercase token sets divided by
// the size of the union. Two empty utterances score 1; one empty
// utterance scores 0.
func Similarity(recognized, prompt string) float64 {
	a := tokenSet(recognized)
	b := tokenSet(prompt)

	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// QualityFromSimilarity maps an overlap ratio onto the 0-5 quality scale
// used by the scheduler. The bands are coarse on purpose: the signal is a
// rough word-overlap, not a pronunciation score.
func QualityFromSimilarity(similarity float64) domain.Quality {
	switch {
	case similarity >= 0.9:
		return 5
	case similarity >= 0.75:
		return 4
	case similarity >= 0.5:
		return 3
	case similarity >= 0.3:
		return 2
	case similarity > 0:
		return 1
	default:
		return 0
	}
}

// tokenSet splits an utterance into its set of lowercase tokens, dropping
// leading and trailing punctuation from each token.
func tokenSet(s string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, field := range strings.Fields(strings.ToLower(s)) {
		token := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if token != "" {
			tokens[token] = struct{}{}
		}
	}
	return tokens
}
