package api

import (
	stdhttp "net/http"
	"time"

	intconfig "guzo/internal/config"
	h "guzo/internal/http/handlers"
	"guzo/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	_ = env

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.RateLimit(20, 40),
		middleware.AuthContext(),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/logout", h.Logout)

		routes := api.Group("/routes")
		routes.GET("", h.GetAllRoutes)
		routes.POST("/search", h.SearchRoutes)
		routes.GET("/:id", h.GetRouteDetails)
		routes.GET("/:id/stops", h.GetRouteStopPoints)
		routes.GET("/:id/seats", h.GetRouteSeats)
		routes.GET("/:id/seats/available", h.GetAvailableSeats)
		routes.GET("/:id/seats/booked", h.GetBookedSeats)

		bookings := api.Group("/bookings")
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.GetBookings)
		bookings.GET("/:id", h.GetBookingDetails)
		bookings.POST("/:id/cancel", h.CancelBooking)
		bookings.GET("/:id/e-ticket", h.GetBookingETicket)
		bookings.POST("/:id/complete-payment", h.CompleteBookingPayment)

		payments := api.Group("/payments")
		payments.POST("", h.CreatePayment)
		payments.POST("/verify", h.VerifyPayment)

		users := api.Group("/users")
		users.GET("/profile", h.GetUserProfile)
		users.PUT("/profile", h.UpdateUserProfile)
		users.DELETE("/delete", h.DeleteAccount)

		api.GET("/cities", h.GetCities)

		tracking := api.Group("/tracking")
		tracking.GET("/bus/:bookingId", h.GetBusLocation)
		tracking.GET("/active", h.GetActiveLocations)
		tracking.GET("/history/:busId", h.GetBusHistory)

		feedbacks := api.Group("/feedbacks")
		feedbacks.POST("", h.CreateFeedback)
		feedbacks.GET("/statistics", h.GetFeedbackStatistics)
	}

	return r
}
