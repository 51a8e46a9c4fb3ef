package usecase

import (
	"strings"

	"kwsearch/internal/index"
)

// DefaultResultLimit caps the number of documents a query returns.
const DefaultResultLimit = 5

// SearchUseCase answers bounded disjunctive keyword queries over a built
// index.
type SearchUseCase struct {
	idx   *index.MasterIndex
	limit int
}

// NewSearchUseCase creates a new search use case. A non-positive limit
// falls back to DefaultResultLimit.
func NewSearchUseCase(idx *index.MasterIndex, limit int) *SearchUseCase {
	if limit <= 0 {
		limit = DefaultResultLimit
	}
	return &SearchUseCase{idx: idx, limit: limit}
}

// Top5 returns up to five documents containing kw1 or kw2, ranked by
// descending keyword frequency with ties broken in favor of kw1. The second
// return value is false when neither keyword is indexed, which is distinct
// from an empty result. Keywords are lowercased before lookup since index
// keys are lowercase by construction.
func (u *SearchUseCase) Top5(kw1, kw2 string) ([]string, bool) {
	return u.idx.TopDocuments(strings.ToLower(kw1), strings.ToLower(kw2), u.limit)
}
