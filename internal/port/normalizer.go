package port

// Normalizer turns a raw document token into a canonical keyword.
type Normalizer interface {
	// Normalize returns the canonical keyword for word, or false when
	// the word does not qualify as a keyword.
	Normalize(word string) (string, bool)
}
