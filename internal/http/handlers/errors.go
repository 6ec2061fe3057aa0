package handlers

import (
	"net/http"

	"guzo/internal/domain"
	"guzo/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string, extra gin.H) {
	payload := gin.H{
		"error":      message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	}
	for k, v := range extra {
		payload[k] = v
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. An expired
// session additionally carries the login redirect hint the web client acts
// on for protected pages.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsAuthExpired(err):
		respondError(c, http.StatusUnauthorized, "session_expired", err.Error(), gin.H{"redirect": "/login"})
	case domain.IsUnavailable(err):
		respondError(c, http.StatusBadGateway, "upstream_unavailable", err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
