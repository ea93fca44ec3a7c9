package fare

import "testing"

func TestIndexLookupSymmetric(t *testing.T) {
	ix := NewIndex(
		[]PriceEntry{{Stop1: "Alpha", Stop2: "Beta", Price: 100}},
		[]TimeEntry{{Stop1: "Beta", Stop2: "Alpha", Duration: 30}},
	)

	ab, ok := ix.Lookup("Alpha", "Beta")
	if !ok {
		t.Fatalf("Alpha-Beta should resolve")
	}
	ba, ok := ix.Lookup("Beta", "Alpha")
	if !ok {
		t.Fatalf("Beta-Alpha should resolve")
	}
	if ab != ba {
		t.Fatalf("lookup not symmetric: %+v vs %+v", ab, ba)
	}
	if ab.Price != 100 || ab.Duration != 30 {
		t.Fatalf("entries not merged: %+v", ab)
	}
}

func TestIndexLookupIgnoresCaseAndSpace(t *testing.T) {
	ix := NewIndex([]PriceEntry{{Stop1: " Pekanbaru", Stop2: "Bangkinang ", Price: 100000}}, nil)

	seg, ok := ix.Lookup("pekanbaru", "BANGKINANG")
	if !ok || seg.Price != 100000 {
		t.Fatalf("normalized lookup failed: %+v ok=%v", seg, ok)
	}
}

func TestIndexLookupMissingIsZero(t *testing.T) {
	ix := NewIndex([]PriceEntry{{Stop1: "A", Stop2: "B", Price: 10}}, nil)

	seg, ok := ix.Lookup("B", "C")
	if ok {
		t.Fatalf("B-C should be missing")
	}
	if seg.Price != 0 || seg.Duration != 0 {
		t.Fatalf("missing pair should be zero, got %+v", seg)
	}

	var nilIx *Index
	if _, ok := nilIx.Lookup("A", "B"); ok {
		t.Fatalf("nil index should resolve nothing")
	}
}
