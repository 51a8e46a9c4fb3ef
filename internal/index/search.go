package index

import "kwsearch/internal/domain"

// TopDocuments answers a disjunctive two-keyword query: up to limit
// documents containing kw1 or kw2, ranked by descending keyword frequency.
// Equal frequencies are broken in favor of kw1. A document appearing under
// both keywords is listed once, at the rank of its first insertion. The
// second return value is false when neither keyword is indexed; otherwise
// the result holds between zero and limit documents.
func (m *MasterIndex) TopDocuments(kw1, kw2 string, limit int) ([]string, bool) {
	one, ok1 := m.postings[kw1]
	two, ok2 := m.postings[kw2]

	switch {
	case !ok1 && !ok2:
		return nil, false
	case ok1 && !ok2:
		return leadingDocs(one, limit), true
	case !ok1 && ok2:
		return leadingDocs(two, limit), true
	}

	docs := make([]string, 0, limit)
	i, j := 0, 0
	for i < len(one) && j < len(two) && len(docs) < limit {
		switch {
		case one[i].Frequency == two[j].Frequency:
			docs = appendDoc(docs, one[i].Document, limit)
			docs = appendDoc(docs, two[j].Document, limit)
			i++
			j++
		case one[i].Frequency > two[j].Frequency:
			docs = appendDoc(docs, one[i].Document, limit)
			i++
		default:
			docs = appendDoc(docs, two[j].Document, limit)
			j++
		}
	}

	// Drain whichever list is left, under the same dedup and size rules.
	for ; i < len(one) && len(docs) < limit; i++ {
		docs = appendDoc(docs, one[i].Document, limit)
	}
	for ; j < len(two) && len(docs) < limit; j++ {
		docs = appendDoc(docs, two[j].Document, limit)
	}

	return docs, true
}

// appendDoc adds doc to the result unless it is already present or the
// result is full.
func appendDoc(docs []string, doc string, limit int) []string {
	if len(docs) >= limit {
		return docs
	}
	for _, d := range docs {
		if d == doc {
			return docs
		}
	}
	return append(docs, doc)
}

func leadingDocs(occs []domain.Occurrence, limit int) []string {
	if len(occs) > limit {
		occs = occs[:limit]
	}
	docs := make([]string, len(occs))
	for i, occ := range occs {
		docs[i] = occ.Document
	}
	return docs
}
