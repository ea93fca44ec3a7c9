package handlers

import (
	"net/http"
	"strings"

	"busport/backend/internal/http/middleware"
	"busport/backend/internal/repositories"
	"busport/backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/users/me (auth)
func GetMe(c *gin.Context) {
	userID, ok := middleware.AuthUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		return
	}

	user, err := repositories.UserRepository{}.GetByID(userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": authUserFrom(user)})
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// PUT /api/users/me (auth)
func UpdateMe(c *gin.Context) {
	userID, ok := middleware.AuthUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		return
	}

	var req updateProfileRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	req.Name = utils.NormalizeSpace(req.Name)
	if req.Name == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "name is required", nil)
		return
	}

	repo := repositories.UserRepository{}
	if err := repo.UpdateProfile(userID, req.Name, strings.TrimSpace(req.Phone)); err != nil {
		RespondDomainError(c, err)
		return
	}

	user, err := repo.GetByID(userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": authUserFrom(user)})
}
