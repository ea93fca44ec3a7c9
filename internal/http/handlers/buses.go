package handlers

import (
	"net/http"

	"busport/backend/internal/http/middleware"
	"busport/backend/internal/repositories"
	"busport/backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/buses
func ListBuses(c *gin.Context) {
	buses, err := repositories.BusRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	type busItem struct {
		ID          int64  `json:"id"`
		CompanyName string `json:"companyName"`
		Category    string `json:"category"`
		Photo       string `json:"photo,omitempty"`
	}
	out := make([]busItem, 0, len(buses))
	for _, b := range buses {
		out = append(out, busItem{ID: b.ID, CompanyName: b.CompanyName, Category: b.Category, Photo: b.PhotoURL})
	}
	c.JSON(http.StatusOK, gin.H{"buses": out})
}

// GET /api/buses/:id
func GetBusInfo(c *gin.Context) {
	busID, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := services.BusService{
		BusRepo:   repositories.BusRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	info, err := svc.GetBusInfo(busID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
