package analyzer

import (
	"strings"
	"unicode"
)

// Normalizer reduces raw document tokens to canonical keywords. A token
// qualifies when it starts with a letter, carries nothing but trailing
// punctuation after its letters, and is not a noise word.
type Normalizer struct {
	noise map[string]struct{}
}

// NewNormalizer creates a Normalizer that rejects the given noise words.
// Noise words are matched case-insensitively.
func NewNormalizer(noiseWords []string) *Normalizer {
	noise := make(map[string]struct{}, len(noiseWords))
	for _, w := range noiseWords {
		noise[strings.ToLower(w)] = struct{}{}
	}
	return &Normalizer{noise: noise}
}

// Normalize returns the canonical (lowercased, punctuation-stripped) keyword
// for word, or false when the word is rejected. Callers must never pass an
// empty string.
func (n *Normalizer) Normalize(word string) (string, bool) {
	runes := []rune(word)
	if !unicode.IsLetter(runes[0]) {
		return "", false
	}

	cut := -1
	for i, r := range runes {
		if !unicode.IsLetter(r) {
			cut = i
			break
		}
	}

	// Everything after the first non-letter must be trailing punctuation,
	// otherwise the token is not a word at all.
	if cut != -1 {
		for _, r := range runes[cut:] {
			if !isPunct(r) {
				return "", false
			}
		}
		runes = runes[:cut]
	}

	keyword := strings.ToLower(string(runes))
	if _, isNoise := n.noise[keyword]; isNoise {
		return "", false
	}
	return keyword, true
}

func isPunct(r rune) bool {
	switch r {
	case '.', ',', '?', ':', ';', '!':
		return true
	}
	return false
}
