package handlers

import (
	"net/http"

	"busport/backend/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func DBCheck(c *gin.Context) {
	if err := config.EnsureDB(); err != nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database unreachable", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
