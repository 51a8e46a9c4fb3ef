package port

// DocumentSource supplies the inputs to an index build: the list of
// documents to index, the noise words to exclude, and each document's
// raw whitespace-delimited tokens.
type DocumentSource interface {
	DocumentIDs() ([]string, error)

	NoiseWords() ([]string, error)

	Tokens(docID string) ([]string, error)
}
