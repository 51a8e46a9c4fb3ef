package index

import (
	"sort"

	"kwsearch/internal/domain"
)

// MasterIndex maps every keyword to its occurrence list, kept in descending
// order of frequency. A single MasterIndex value owns its whole table; it is
// populated once during a build and read-only afterwards.
type MasterIndex struct {
	postings map[string][]domain.Occurrence
}

// NewMasterIndex creates an empty index.
func NewMasterIndex() *MasterIndex {
	return &MasterIndex{postings: make(map[string][]domain.Occurrence)}
}

// Restore rebuilds an index from previously exported postings. Each list is
// expected to already be in descending frequency order.
func Restore(postings map[string][]domain.Occurrence) *MasterIndex {
	m := NewMasterIndex()
	for kw, occs := range postings {
		m.postings[kw] = append([]domain.Occurrence(nil), occs...)
	}
	return m
}

// Merge folds one document's keyword table into the index. Each occurrence
// is appended to its keyword's list and relocated with InsertLast, so the
// descending-frequency invariant holds after every call. A document is
// merged exactly once and contributes at most one occurrence per keyword,
// which keeps each list free of duplicate documents by construction.
func (m *MasterIndex) Merge(table map[string]domain.Occurrence) {
	for kw, occ := range table {
		occs := append(m.postings[kw], occ)
		occs, _ = InsertLast(occs)
		m.postings[kw] = occs
	}
}

// Postings returns the ranked occurrence list for a keyword.
func (m *MasterIndex) Postings(keyword string) ([]domain.Occurrence, bool) {
	occs, ok := m.postings[keyword]
	return occs, ok
}

// Keywords returns all indexed keywords in lexical order.
func (m *MasterIndex) Keywords() []string {
	kws := make([]string, 0, len(m.postings))
	for kw := range m.postings {
		kws = append(kws, kw)
	}
	sort.Strings(kws)
	return kws
}

// Len returns the number of indexed keywords.
func (m *MasterIndex) Len() int {
	return len(m.postings)
}

// Export copies the full posting table, for persistence.
func (m *MasterIndex) Export() map[string][]domain.Occurrence {
	out := make(map[string][]domain.Occurrence, len(m.postings))
	for kw, occs := range m.postings {
		out[kw] = append([]domain.Occurrence(nil), occs...)
	}
	return out
}

// Stats summarizes the index contents.
func (m *MasterIndex) Stats() domain.IndexStats {
	docs := make(map[string]struct{})
	occurrences := 0
	for _, occs := range m.postings {
		occurrences += len(occs)
		for _, occ := range occs {
			docs[occ.Document] = struct{}{}
		}
	}
	return domain.IndexStats{
		TotalDocs:        len(docs),
		TotalKeywords:    len(m.postings),
		TotalOccurrences: occurrences,
	}
}
