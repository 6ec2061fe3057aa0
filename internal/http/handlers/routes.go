package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type routeSearchRequest struct {
	SourceID      int64  `json:"source_id"`
	DestinationID int64  `json:"destination_id"`
	Date          string `json:"date"`
}

// POST /api/routes/search
func SearchRoutes(c *gin.Context) {
	var req routeSearchRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	routes, err := routeService(c).Search(c.Request.Context(), req.SourceID, req.DestinationID, req.Date)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

// GET /api/routes
func GetAllRoutes(c *gin.Context) {
	routes, err := routeService(c).All(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

// GET /api/routes/:id
func GetRouteDetails(c *gin.Context) {
	routeID, ok := ParamInt64(c, "id")
	if !ok {
		return
	}
	route, err := routeService(c).Details(c.Request.Context(), routeID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

// GET /api/routes/:id/stops
func GetRouteStopPoints(c *gin.Context) {
	routeID, ok := ParamInt64(c, "id")
	if !ok {
		return
	}
	stops, err := routeService(c).StopPoints(c.Request.Context(), routeID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stops)
}
