package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/routes/:id/seats
func GetRouteSeats(c *gin.Context) {
	routeID, ok := ParamInt64(c, "id")
	if !ok {
		return
	}
	seats, err := seatService(c).RouteSeats(c.Request.Context(), routeID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, seats)
}

// GET /api/routes/:id/seats/available
func GetAvailableSeats(c *gin.Context) {
	routeID, ok := ParamInt64(c, "id")
	if !ok {
		return
	}
	seats, err := seatService(c).Available(c.Request.Context(), routeID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, seats)
}

// GET /api/routes/:id/seats/booked
func GetBookedSeats(c *gin.Context) {
	routeID, ok := ParamInt64(c, "id")
	if !ok {
		return
	}
	seats, err := seatService(c).Booked(c.Request.Context(), routeID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, seats)
}
