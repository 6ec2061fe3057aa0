package handlers

import (
	"net/http"

	"guzo/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /api/feedbacks
func CreateFeedback(c *gin.Context) {
	var req models.Feedback
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := feedbackService(c).Create(c.Request.Context(), req); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "feedback recorded"})
}

// GET /api/feedbacks/statistics
func GetFeedbackStatistics(c *gin.Context) {
	stats, err := feedbackService(c).Statistics(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
