package handlers

import (
	"net/http"

	"guzo/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /api/payments
func CreatePayment(c *gin.Context) {
	var req models.PaymentInput
	if !BindJSONOrError(c, &req) {
		return
	}
	payment, err := paymentService(c).Create(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// POST /api/payments/verify
func VerifyPayment(c *gin.Context) {
	var req models.PaymentInput
	if !BindJSONOrError(c, &req) {
		return
	}
	verification, err := paymentService(c).Verify(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, verification)
}
