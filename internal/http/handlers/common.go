package handlers

import (
	"net/http"
	"strconv"

	"busport/backend/internal/config"

	"github.com/gin-gonic/gin"
)

var env config.Env

// Configure wires runtime settings shared across handlers.
func Configure(e config.Env) {
	env = e
}

func jwtSecret() []byte {
	return []byte(env.JWTSecret)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "empty_body", "request body is required", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", err)
		return false
	}
	return true
}

// pathID parses a positive int64 path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "invalid "+name, err)
		return 0, false
	}
	return id, true
}
