package handlers

import (
	"net/http"
	"strings"

	"busport/backend/internal/http/middleware"
	"busport/backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/buses/:id/reviews
func ListBusReviews(c *gin.Context) {
	busID, ok := pathID(c, "id")
	if !ok {
		return
	}

	reviews, err := repositories.ReviewRepository{}.ListByBus(busID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	type reviewItem struct {
		ID        int64  `json:"id"`
		UserName  string `json:"userName"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
		CreatedAt string `json:"createdAt"`
	}
	out := make([]reviewItem, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, reviewItem{ID: r.ID, UserName: r.UserName, Rating: r.Rating, Comment: r.Comment, CreatedAt: r.CreatedAt})
	}
	c.JSON(http.StatusOK, gin.H{"reviews": out})
}

type createReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// POST /api/buses/:id/reviews (auth)
func CreateBusReview(c *gin.Context) {
	userID, ok := middleware.AuthUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		return
	}
	busID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req createReviewRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		respondError(c, http.StatusBadRequest, "validation_error", "rating must be 1-5", nil)
		return
	}

	// Reject reviews for unknown buses up front.
	if _, err := (repositories.BusRepository{}).GetByID(busID); err != nil {
		RespondDomainError(c, err)
		return
	}

	id, err := repositories.ReviewRepository{}.Create(repositories.Review{
		BusID:   busID,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: strings.TrimSpace(req.Comment),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}
