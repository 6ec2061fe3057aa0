package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/tracking/bus/:bookingId
func GetBusLocation(c *gin.Context) {
	location, err := trackingService(c).BusLocation(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

// GET /api/tracking/active
func GetActiveLocations(c *gin.Context) {
	locations, err := trackingService(c).ActiveLocations(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

// GET /api/tracking/history/:busId
func GetBusHistory(c *gin.Context) {
	busID, ok := ParamInt64(c, "busId")
	if !ok {
		return
	}
	history, err := trackingService(c).BusHistory(c.Request.Context(), busID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
