package booking

import (
	"busport/backend/internal/domain"
	"busport/backend/internal/fare"
	"busport/backend/internal/seatmap"
	"busport/backend/internal/utils"
)

// Draft is a computed, not-yet-submitted ticket purchase. It is handed to the
// payment side and never stored in this form.
type Draft struct {
	UserID       int64    `json:"userId"`
	BusID        int64    `json:"busId"`
	Source       string   `json:"source"`
	Destination  string   `json:"destination"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Seats        []string `json:"seats"`
	PricePerSeat int64    `json:"pricePerSeat"`
	Total        int64    `json:"price"`
}

// Build combines calculator output with the selected seats. The total is
// always per-seat price times seat count, derived here rather than trusted
// from the caller.
func Build(calc *fare.Calculator, userID, busID int64, source, destination, date string, seats []string) (Draft, error) {
	seats = utils.NormalizeSeats(seats)
	if len(seats) == 0 {
		return Draft{}, domain.ValidationError{Field: "seats", Msg: "no seats selected"}
	}
	if len(seats) > seatmap.MaxSeats {
		return Draft{}, domain.SelectionLimitError{Limit: seatmap.MaxSeats}
	}
	if utils.HasDuplicateSeats(seats) {
		return Draft{}, domain.ValidationError{Field: "seats", Msg: "duplicate seat labels"}
	}
	if !utils.ValidDate(date) {
		return Draft{}, domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD"}
	}
	q, err := calc.Quote(source, destination)
	if err != nil {
		return Draft{}, err
	}
	return Draft{
		UserID:       userID,
		BusID:        busID,
		Source:       q.Source,
		Destination:  q.Destination,
		Date:         date,
		Time:         q.DepartureTime,
		Seats:        seats,
		PricePerSeat: q.PricePerSeat,
		Total:        q.TotalFor(len(seats)),
	}, nil
}
