package handlers

import (
	"net/http"

	"guzo/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var req models.BookingInput
	if !BindJSONOrError(c, &req) {
		return
	}
	booking, err := bookingService(c).Create(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GET /api/bookings
func GetBookings(c *gin.Context) {
	bookings, err := bookingService(c).List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/:id
func GetBookingDetails(c *gin.Context) {
	booking, err := bookingService(c).Details(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// POST /api/bookings/:id/cancel
func CancelBooking(c *gin.Context) {
	result, err := bookingService(c).Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/bookings/:id/e-ticket
func GetBookingETicket(c *gin.Context) {
	pdf, filename, err := docsService(c).ETicket(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// POST /api/bookings/:id/complete-payment
func CompleteBookingPayment(c *gin.Context) {
	if err := paymentService(c).Complete(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment completed"})
}
