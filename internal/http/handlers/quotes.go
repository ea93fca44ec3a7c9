package handlers

import (
	"net/http"

	"busport/backend/internal/http/middleware"
	"busport/backend/internal/repositories"
	"busport/backend/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/quotes
func CreateQuote(c *gin.Context) {
	var req services.QuoteRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.BusID <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_bus_id", "busId is required", nil)
		return
	}

	reqID := middleware.GetRequestID(c)
	svc := services.QuoteService{
		BusSvc:    services.BusService{BusRepo: repositories.BusRepository{}, RequestID: reqID},
		SeatSvc:   seatService(c),
		SeatRepo:  repositories.BookingSeatRepository{},
		RequestID: reqID,
	}
	result, err := svc.Quote(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
