package index

import (
	"testing"

	"kwsearch/internal/domain"
)

func mergeDoc(idx *MasterIndex, docID string, counts map[string]int) {
	table := make(map[string]domain.Occurrence, len(counts))
	for kw, freq := range counts {
		table[kw] = domain.Occurrence{Document: docID, Frequency: freq}
	}
	idx.Merge(table)
}

func assertInvariant(t *testing.T, idx *MasterIndex) {
	t.Helper()
	for _, kw := range idx.Keywords() {
		occs, _ := idx.Postings(kw)
		for i := 1; i < len(occs); i++ {
			if occs[i].Frequency > occs[i-1].Frequency {
				t.Fatalf("keyword %q list not descending: %v", kw, occs)
			}
		}
	}
}

func TestMerge_TwoDocuments(t *testing.T) {
	idx := NewMasterIndex()

	mergeDoc(idx, "doc1", map[string]int{"bus": 2, "car": 1})
	assertInvariant(t, idx)
	mergeDoc(idx, "doc2", map[string]int{"car": 3})
	assertInvariant(t, idx)

	bus, ok := idx.Postings("bus")
	if !ok || len(bus) != 1 {
		t.Fatalf("expected one bus posting, got %v", bus)
	}
	if bus[0].Document != "doc1" || bus[0].Frequency != 2 {
		t.Errorf("expected bus -> (doc1,2), got %v", bus[0])
	}

	car, ok := idx.Postings("car")
	if !ok || len(car) != 2 {
		t.Fatalf("expected two car postings, got %v", car)
	}
	if car[0].Document != "doc2" || car[0].Frequency != 3 {
		t.Errorf("expected car[0] = (doc2,3), got %v", car[0])
	}
	if car[1].Document != "doc1" || car[1].Frequency != 1 {
		t.Errorf("expected car[1] = (doc1,1), got %v", car[1])
	}
}

func TestMerge_OneEntryPerDocument(t *testing.T) {
	idx := NewMasterIndex()

	docs := []string{"a", "b", "c", "d"}
	for i, doc := range docs {
		mergeDoc(idx, doc, map[string]int{"shared": i + 1})
		assertInvariant(t, idx)
	}

	occs, _ := idx.Postings("shared")
	if len(occs) != len(docs) {
		t.Fatalf("expected %d postings, got %d", len(docs), len(occs))
	}
	seen := make(map[string]bool)
	for _, occ := range occs {
		if seen[occ.Document] {
			t.Fatalf("duplicate document %q in postings: %v", occ.Document, occs)
		}
		seen[occ.Document] = true
	}
}

func TestMerge_ManyDocumentsStaysSorted(t *testing.T) {
	idx := NewMasterIndex()

	freqs := []int{4, 9, 1, 9, 3, 7, 2, 8, 5, 6}
	for i, f := range freqs {
		mergeDoc(idx, docName(i), map[string]int{"word": f})
		assertInvariant(t, idx)
	}

	occs, _ := idx.Postings("word")
	if len(occs) != len(freqs) {
		t.Fatalf("expected %d postings, got %d", len(freqs), len(occs))
	}
	if occs[0].Frequency != 9 || occs[len(occs)-1].Frequency != 1 {
		t.Errorf("unexpected extremes: %v", occs)
	}
}

func TestStats(t *testing.T) {
	idx := NewMasterIndex()
	mergeDoc(idx, "doc1", map[string]int{"bus": 2, "car": 1})
	mergeDoc(idx, "doc2", map[string]int{"car": 3})

	stats := idx.Stats()
	if stats.TotalDocs != 2 {
		t.Errorf("expected TotalDocs=2, got %d", stats.TotalDocs)
	}
	if stats.TotalKeywords != 2 {
		t.Errorf("expected TotalKeywords=2, got %d", stats.TotalKeywords)
	}
	if stats.TotalOccurrences != 3 {
		t.Errorf("expected TotalOccurrences=3, got %d", stats.TotalOccurrences)
	}
}

func TestExportRestore(t *testing.T) {
	idx := NewMasterIndex()
	mergeDoc(idx, "doc1", map[string]int{"bus": 2, "car": 1})
	mergeDoc(idx, "doc2", map[string]int{"car": 3})

	restored := Restore(idx.Export())
	if restored.Len() != idx.Len() {
		t.Fatalf("expected %d keywords after restore, got %d", idx.Len(), restored.Len())
	}
	car, ok := restored.Postings("car")
	if !ok || len(car) != 2 || car[0].Document != "doc2" {
		t.Errorf("postings not preserved across restore: %v", car)
	}
}
