package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/cities
func GetCities(c *gin.Context) {
	cities, err := cityService(c).Cities(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}
