package handlers

import (
	"net/http"
	"sort"
	"strings"

	"busport/backend/internal/http/middleware"
	"busport/backend/internal/repositories"
	"busport/backend/internal/services"

	"github.com/gin-gonic/gin"
)

func seatService(c *gin.Context) services.SeatService {
	return services.SeatService{
		BusRepo:    repositories.BusRepository{},
		LayoutRepo: repositories.SeatLayoutRepository{},
		SeatRepo:   repositories.BookingSeatRepository{},
		RequestID:  middleware.GetRequestID(c),
	}
}

// GET /api/buses/:id/seat-layout
func GetSeatLayout(c *gin.Context) {
	busID, ok := pathID(c, "id")
	if !ok {
		return
	}

	layout, err := seatService(c).SeatLayout(c.Request.Context(), busID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, layout)
}

// GET /api/buses/:id/booked-seats?date=YYYY-MM-DD
func GetBookedSeats(c *gin.Context) {
	busID, ok := pathID(c, "id")
	if !ok {
		return
	}
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		respondError(c, http.StatusBadRequest, "missing_date", "date query param is required", nil)
		return
	}

	booked, err := seatService(c).BookedSeats(c.Request.Context(), busID, date)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	labels := make([]string, 0, len(booked))
	for label := range booked {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	c.JSON(http.StatusOK, gin.H{"bookedSeats": labels})
}

// GET /api/buses/:id/seat-selection?date=YYYY-MM-DD
//
// Layout and booked set are fetched together; neither is served when the
// other fails, so the seat modal never renders partial state.
func GetSeatSelection(c *gin.Context) {
	busID, ok := pathID(c, "id")
	if !ok {
		return
	}
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		respondError(c, http.StatusBadRequest, "missing_date", "date query param is required", nil)
		return
	}

	snap, err := seatService(c).Snapshot(c.Request.Context(), busID, date)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
