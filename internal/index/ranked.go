package index

import "kwsearch/internal/domain"

// InsertLast relocates the final element of occs into its correct position,
// assuming the first n-1 elements are already sorted by descending frequency.
// The relative order of the sorted prefix is preserved. It returns the
// updated slice together with the sequence of midpoints probed by the binary
// search; the probe trace is nil when the list has a single element and
// there is nothing to search.
func InsertLast(occs []domain.Occurrence) ([]domain.Occurrence, []int) {
	if len(occs) <= 1 {
		return occs, nil
	}

	last := occs[len(occs)-1]
	lo, hi := 0, len(occs)-2
	mid := 0
	var probes []int

	for lo <= hi {
		mid = (lo + hi) / 2
		probes = append(probes, mid)
		if occs[mid].Frequency == last.Frequency {
			break
		}
		if occs[mid].Frequency < last.Frequency {
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}

	// The new element goes before the final probe when the probed frequency
	// does not exceed it, after otherwise.
	at := mid
	if occs[mid].Frequency > last.Frequency {
		at = mid + 1
	}

	occs = occs[:len(occs)-1]
	occs = append(occs, domain.Occurrence{})
	copy(occs[at+1:], occs[at:])
	occs[at] = last

	return occs, probes
}
