package seatmap

import (
	"fmt"
	"strings"

	"busport/backend/internal/domain"
)

// EmptyCell marks an aisle / no-seat position in a layout grid.
const EmptyCell = ""

// Layout is a rectangular grid of seat labels. Empty cells are aisles; every
// non-empty cell is a seat label, unique within the layout.
type Layout struct {
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Grid     [][]string `json:"layout"`
}

// Validate checks rectangularity and label uniqueness.
func (l Layout) Validate() error {
	if len(l.Grid) == 0 {
		return domain.ValidationError{Field: "layout", Msg: "grid is empty"}
	}
	width := len(l.Grid[0])
	seen := map[string]bool{}
	for r, row := range l.Grid {
		if len(row) != width {
			return domain.ValidationError{Field: "layout",
				Msg: fmt.Sprintf("row %d has %d cells, expected %d", r, len(row), width)}
		}
		for _, cell := range row {
			label := normalizeLabel(cell)
			if label == EmptyCell {
				continue
			}
			if seen[label] {
				return domain.ValidationError{Field: "layout",
					Msg: fmt.Sprintf("seat %q appears twice", label)}
			}
			seen[label] = true
		}
	}
	return nil
}

// Seats lists all seat labels in row-major order.
func (l Layout) Seats() []string {
	out := []string{}
	for _, row := range l.Grid {
		for _, cell := range row {
			if label := normalizeLabel(cell); label != EmptyCell {
				out = append(out, label)
			}
		}
	}
	return out
}

// HasSeat reports whether the label exists in the grid (case-insensitive).
func (l Layout) HasSeat(label string) bool {
	want := normalizeLabel(label)
	if want == EmptyCell {
		return false
	}
	for _, row := range l.Grid {
		for _, cell := range row {
			if normalizeLabel(cell) == want {
				return true
			}
		}
	}
	return false
}

func normalizeLabel(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
