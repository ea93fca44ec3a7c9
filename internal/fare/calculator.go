package fare

import (
	"fmt"

	"busport/backend/internal/domain"
	"busport/backend/internal/utils"
)

// Calculator computes departure time and total price for an arbitrary
// sub-journey over an ordered route, from per-segment price and duration
// mappings. A missing segment entry contributes zero to both sums; the miss
// is logged but never fails the whole computation, so a route with patchy
// data still produces a (possibly underestimated) quote.
type Calculator struct {
	stops []string
	pos   map[string]int
	start Clock
	index *Index

	// RequestID correlates leniency logs with the originating request.
	RequestID string
}

// Quote is the computed result for one source/destination pair.
type Quote struct {
	Source        string `json:"source"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departureTime"`
	PricePerSeat  int64  `json:"pricePerSeat"`
}

// TotalFor returns the booking price for the given number of seats.
func (q Quote) TotalFor(seatCount int) int64 {
	return q.PricePerSeat * int64(seatCount)
}

// NewCalculator validates the route and start time and builds the segment
// index. Duplicate stop names are rejected because sub-journey positions
// would be ambiguous.
func NewCalculator(stops []string, startTime string, prices []PriceEntry, times []TimeEntry) (*Calculator, error) {
	if len(stops) < 2 {
		return nil, domain.ValidationError{Field: "route", Msg: "needs at least two stops"}
	}
	pos := make(map[string]int, len(stops))
	for i, s := range stops {
		key := normalizeStop(s)
		if key == "" {
			return nil, domain.ValidationError{Field: "route", Msg: fmt.Sprintf("stop %d has empty name", i)}
		}
		if _, dup := pos[key]; dup {
			return nil, domain.ValidationError{Field: "route", Msg: fmt.Sprintf("stop %q appears twice", s)}
		}
		pos[key] = i
	}
	start, err := ParseClock(startTime)
	if err != nil {
		return nil, domain.ValidationError{Field: "startTime", Msg: err.Error(), Err: err}
	}
	return &Calculator{
		stops: stops,
		pos:   pos,
		start: start,
		index: NewIndex(prices, times),
	}, nil
}

// Stops returns the route in traversal order.
func (c *Calculator) Stops() []string {
	out := make([]string, len(c.stops))
	copy(out, c.stops)
	return out
}

// StopIndex resolves a stop name (case-insensitive) to its route position.
func (c *Calculator) StopIndex(name string) (int, bool) {
	i, ok := c.pos[normalizeStop(name)]
	return i, ok
}

// Quote validates the pair and computes departure time and per-seat price.
func (c *Calculator) Quote(source, destination string) (Quote, error) {
	si, di, err := c.validatePair(source, destination)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		Source:        c.stops[si],
		Destination:   c.stops[di],
		DepartureTime: c.departureAt(si).String(),
		PricePerSeat:  c.priceBetween(si, di),
	}, nil
}

func (c *Calculator) validatePair(source, destination string) (int, int, error) {
	si, ok := c.StopIndex(source)
	if !ok {
		return 0, 0, domain.InvalidSelectionError{Source: source, Destination: destination,
			Msg: fmt.Sprintf("stop %q is not on this route", source)}
	}
	di, ok := c.StopIndex(destination)
	if !ok {
		return 0, 0, domain.InvalidSelectionError{Source: source, Destination: destination,
			Msg: fmt.Sprintf("stop %q is not on this route", destination)}
	}
	if si == di {
		return 0, 0, domain.InvalidSelectionError{Source: source, Destination: destination,
			Msg: "origin and destination cannot be the same"}
	}
	if si > di {
		return 0, 0, domain.InvalidSelectionError{Source: source, Destination: destination,
			Msg: "destination comes before origin on this route"}
	}
	return si, di, nil
}

// departureAt adds the travel time of all segments before the boarding stop
// to the trip's fixed start time, wrapping past midnight.
func (c *Calculator) departureAt(si int) Clock {
	total := 0
	for i := 0; i < si; i++ {
		seg, ok := c.index.Lookup(c.stops[i], c.stops[i+1])
		if !ok {
			c.logMissing(c.stops[i], c.stops[i+1])
			continue
		}
		total += seg.Duration
	}
	return c.start.Add(total)
}

func (c *Calculator) priceBetween(si, di int) int64 {
	var total int64
	for i := si; i < di; i++ {
		seg, ok := c.index.Lookup(c.stops[i], c.stops[i+1])
		if !ok {
			c.logMissing(c.stops[i], c.stops[i+1])
			continue
		}
		total += seg.Price
	}
	return total
}

func (c *Calculator) logMissing(from, to string) {
	utils.LogEvent(c.RequestID, "fare", "segment_missing", fmt.Sprintf("no entry for %s - %s, counted as zero", from, to))
}
