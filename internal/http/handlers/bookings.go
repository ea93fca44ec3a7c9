package handlers

import (
	"net/http"

	"busport/backend/internal/http/middleware"
	"busport/backend/internal/repositories"
	"busport/backend/internal/services"

	"github.com/gin-gonic/gin"
)

type createBookingRequest struct {
	BusID       int64    `json:"busId"`
	Source      string   `json:"source"`
	Destination string   `json:"destination"`
	Date        string   `json:"date"`
	Seats       []string `json:"seats"`
}

func bookingService(c *gin.Context) services.BookingService {
	reqID := middleware.GetRequestID(c)
	return services.BookingService{
		BusSvc:      services.BusService{BusRepo: repositories.BusRepository{}, RequestID: reqID},
		SeatSvc:     seatService(c),
		BookingRepo: repositories.BookingRepository{},
		SeatRepo:    repositories.BookingSeatRepository{},
		RequestID:   reqID,
	}
}

// POST /api/bookings (auth)
func CreateBooking(c *gin.Context) {
	userID, ok := middleware.AuthUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		return
	}

	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.BusID <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_bus_id", "busId is required", nil)
		return
	}

	detail, err := bookingService(c).Create(c.Request.Context(), userID, req.BusID, req.Source, req.Destination, req.Date, req.Seats)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, detail)
}

// GET /api/bookings/:id (auth, owner only)
func GetBooking(c *gin.Context) {
	userID, ok := middleware.AuthUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		return
	}
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := bookingService(c).Detail(bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if detail.Booking.UserID != userID && middleware.AuthRole(c) != "admin" {
		respondError(c, http.StatusForbidden, "forbidden", "not your booking", nil)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GET /api/bookings (auth) lists the current user's bookings.
func ListMyBookings(c *gin.Context) {
	userID, ok := middleware.AuthUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		return
	}

	bookings, err := bookingService(c).ListByUser(userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GET /api/bookings/:id/e-ticket (auth, owner only, inline PDF)
func GetBookingETicket(c *gin.Context) {
	userID, ok := middleware.AuthUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		return
	}
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := bookingService(c).Detail(bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if detail.Booking.UserID != userID && middleware.AuthRole(c) != "admin" {
		respondError(c, http.StatusForbidden, "forbidden", "not your booking", nil)
		return
	}

	svc := services.TicketService{
		BookingRepo: repositories.BookingRepository{},
		SeatRepo:    repositories.BookingSeatRepository{},
		BusRepo:     repositories.BusRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateETicket(bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
