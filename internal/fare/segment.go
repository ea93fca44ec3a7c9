package fare

import "strings"

// PriceEntry maps an unordered stop pair to its ticket price.
type PriceEntry struct {
	Stop1 string `json:"stop1"`
	Stop2 string `json:"stop2"`
	Price int64  `json:"price"`
}

// TimeEntry maps an unordered stop pair to its travel duration in minutes.
type TimeEntry struct {
	Stop1    string `json:"stop1"`
	Stop2    string `json:"stop2"`
	Duration int    `json:"duration"`
}

// Segment is the combined price/duration for one stop pair.
type Segment struct {
	Price    int64 `json:"price"`
	Duration int   `json:"duration"`
}

// Index resolves unordered stop pairs to their segment data. A pair may be
// stored or queried in either orientation.
type Index struct {
	segments map[pairKey]Segment
}

type pairKey struct {
	a, b string
}

func normalizeStop(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func keyFor(from, to string) pairKey {
	a, b := normalizeStop(from), normalizeStop(to)
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// NewIndex merges price and duration entries by stop pair.
func NewIndex(prices []PriceEntry, times []TimeEntry) *Index {
	ix := &Index{segments: make(map[pairKey]Segment, len(prices))}
	for _, p := range prices {
		k := keyFor(p.Stop1, p.Stop2)
		seg := ix.segments[k]
		seg.Price = p.Price
		ix.segments[k] = seg
	}
	for _, t := range times {
		k := keyFor(t.Stop1, t.Stop2)
		seg := ix.segments[k]
		seg.Duration = t.Duration
		ix.segments[k] = seg
	}
	return ix
}

// Lookup returns the segment for (from,to) in either orientation. A missing
// pair yields the zero segment and ok=false; callers decide how lenient to be.
func (ix *Index) Lookup(from, to string) (Segment, bool) {
	if ix == nil || ix.segments == nil {
		return Segment{}, false
	}
	seg, ok := ix.segments[keyFor(from, to)]
	return seg, ok
}
