package seatmap

import (
	"context"
	"errors"
	"sort"
	"sync"

	"busport/backend/internal/domain"

	"golang.org/x/sync/errgroup"
)

// MaxSeats bounds how many seats one session may hold at once.
const MaxSeats = 4

// State of a seat-selection session.
type State int

const (
	StateClosed State = iota
	StateLoading
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateOpen:
		return "open"
	default:
		return "closed"
	}
}

// ErrSessionClosed is returned when a fetch resolves after the session was
// closed; the result is discarded and no state is committed.
var ErrSessionClosed = errors.New("seat session closed")

// LayoutFetcher loads the static seat layout for a bus.
type LayoutFetcher interface {
	SeatLayout(ctx context.Context, busID int64) (Layout, error)
}

// BookedFetcher loads the seats already reserved for a bus on a date.
type BookedFetcher interface {
	BookedSeats(ctx context.Context, busID int64, date string) (map[string]bool, error)
}

// Session is the seat-selection state machine: Closed -> Loading -> Open ->
// Closed. Opening always re-fetches both the layout and the booked set; a
// stale booked set from an earlier open is never reused.
type Session struct {
	layouts LayoutFetcher
	booked  BookedFetcher

	mu       sync.Mutex
	state    State
	gen      int
	layout   Layout
	bookedAt map[string]bool
	picked   []string
}

func NewSession(layouts LayoutFetcher, booked BookedFetcher) *Session {
	return &Session{layouts: layouts, booked: booked}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Open fetches the layout and the booked set concurrently and transitions to
// Open only once both resolve. Either failure returns the session to Closed
// with no partial state. Closing the session mid-fetch discards the results.
func (s *Session) Open(ctx context.Context, busID int64, date string) error {
	s.mu.Lock()
	if s.state != StateClosed {
		s.mu.Unlock()
		return domain.ConflictError{Resource: "seat session", Msg: "already open"}
	}
	s.state = StateLoading
	gen := s.gen
	s.mu.Unlock()

	var (
		layout Layout
		booked map[string]bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l, err := s.layouts.SeatLayout(gctx, busID)
		if err != nil {
			return err
		}
		if err := l.Validate(); err != nil {
			return err
		}
		layout = l
		return nil
	})
	g.Go(func() error {
		b, err := s.booked.BookedSeats(gctx, busID, date)
		if err != nil {
			return err
		}
		booked = normalizeBooked(b)
		return nil
	})
	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		// Closed while loading; whatever arrived is dropped.
		return ErrSessionClosed
	}
	if err != nil {
		s.reset()
		return err
	}
	s.state = StateOpen
	s.layout = layout
	s.bookedAt = booked
	s.picked = nil
	return nil
}

// Toggle flips membership of a seat in the selection. Booked seats are a
// no-op; adding beyond MaxSeats is rejected and the selection is unchanged.
func (s *Session) Toggle(label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateOpen {
		return domain.ConflictError{Resource: "seat session", Msg: "not open"}
	}
	seat := normalizeLabel(label)
	if !s.layout.HasSeat(seat) {
		return domain.ValidationError{Field: "seat", Msg: "no such seat " + label}
	}
	if s.bookedAt[seat] {
		return nil
	}
	for i, p := range s.picked {
		if p == seat {
			s.picked = append(s.picked[:i], s.picked[i+1:]...)
			return nil
		}
	}
	if len(s.picked) >= MaxSeats {
		return domain.SelectionLimitError{Limit: MaxSeats}
	}
	s.picked = append(s.picked, seat)
	return nil
}

// Selected returns the picked seats in selection order.
func (s *Session) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.picked))
	copy(out, s.picked)
	return out
}

// Booked returns the reserved seat labels, sorted; valid only while Open.
func (s *Session) Booked() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.bookedAt))
	for label := range s.bookedAt {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// Layout returns the loaded layout; valid only while Open.
func (s *Session) Layout() Layout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout
}

// Cancel discards the selection and closes the session. Safe in any state;
// cancelling mid-load makes the in-flight fetch a no-op.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// Confirm returns the selected seats and closes the session. It fails when
// nothing is selected.
func (s *Session) Confirm() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateOpen {
		return nil, domain.ConflictError{Resource: "seat session", Msg: "not open"}
	}
	if len(s.picked) == 0 {
		return nil, domain.ValidationError{Field: "seats", Msg: "no seats selected"}
	}
	out := make([]string, len(s.picked))
	copy(out, s.picked)
	s.reset()
	return out, nil
}

// reset must be called with the lock held.
func (s *Session) reset() {
	s.state = StateClosed
	s.gen++
	s.layout = Layout{}
	s.bookedAt = nil
	s.picked = nil
}

func normalizeBooked(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(in))
	for label, taken := range in {
		if !taken {
			continue
		}
		if k := normalizeLabel(label); k != EmptyCell {
			out[k] = true
		}
	}
	return out
}
