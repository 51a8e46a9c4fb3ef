package usecase

import (
	"fmt"

	"kwsearch/internal/adapter/analyzer"
	"kwsearch/internal/domain"
	"kwsearch/internal/index"
	"kwsearch/internal/port"
)

// BuildUseCase builds a master index from a document source.
type BuildUseCase struct {
	source port.DocumentSource
	idx    *index.MasterIndex
}

// NewBuildUseCase creates a new build use case with an empty index.
func NewBuildUseCase(source port.DocumentSource) *BuildUseCase {
	return &BuildUseCase{
		source: source,
		idx:    index.NewMasterIndex(),
	}
}

// BuildResult contains the results of an index build. Documents lists the
// merged documents in build order, each with its distinct-keyword count, so
// callers can persist them without re-querying the source.
type BuildResult struct {
	DocsIndexed int
	Keywords    int
	Occurrences int
	Documents   []domain.Document
}

// ProgressFunc reports build progress after each merged document.
type ProgressFunc func(processed, total int, docID string)

// Index returns the master index owned by this use case. After a failed
// Build it reflects exactly the documents merged before the failure.
func (u *BuildUseCase) Index() *index.MasterIndex {
	return u.idx
}

// Build loads every document from the source, strictly one at a time, and
// merges each document's keyword table into the master index. A document
// whose content cannot be read aborts the build without being merged at all.
func (u *BuildUseCase) Build(progress ProgressFunc) (*BuildResult, error) {
	noiseWords, err := u.source.NoiseWords()
	if err != nil {
		return nil, fmt.Errorf("failed to load noise words: %w", err)
	}
	normalizer := analyzer.NewNormalizer(noiseWords)

	docIDs, err := u.source.DocumentIDs()
	if err != nil {
		return nil, fmt.Errorf("failed to load document list: %w", err)
	}

	result := &BuildResult{}
	for i, docID := range docIDs {
		tokens, err := u.source.Tokens(docID)
		if err != nil {
			return nil, fmt.Errorf("failed to read document %s: %w", docID, err)
		}

		table := LoadDocument(docID, tokens, normalizer)
		u.idx.Merge(table)
		result.DocsIndexed++
		result.Documents = append(result.Documents, domain.Document{
			ID:       docID,
			Path:     docID,
			Keywords: len(table),
		})

		if progress != nil {
			progress(i+1, len(docIDs), docID)
		}
	}

	stats := u.idx.Stats()
	result.Keywords = stats.TotalKeywords
	result.Occurrences = stats.TotalOccurrences
	return result, nil
}

// LoadDocument scans one document's tokens into a table mapping each keyword
// to its occurrence count within that document. The table is transient: the
// caller merges it into the master index and discards it.
func LoadDocument(docID string, tokens []string, n port.Normalizer) map[string]domain.Occurrence {
	table := make(map[string]domain.Occurrence)
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		keyword, ok := n.Normalize(tok)
		if !ok {
			continue
		}
		occ, seen := table[keyword]
		if !seen {
			table[keyword] = domain.Occurrence{Document: docID, Frequency: 1}
			continue
		}
		occ.Frequency++
		table[keyword] = occ
	}
	return table
}
