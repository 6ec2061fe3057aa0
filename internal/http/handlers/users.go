package handlers

import (
	"net/http"

	"guzo/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/users/profile
func GetUserProfile(c *gin.Context) {
	user, err := userService(c).Profile(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT /api/users/profile
func UpdateUserProfile(c *gin.Context) {
	var req models.UserUpdate
	if !BindJSONOrError(c, &req) {
		return
	}
	user, err := userService(c).Update(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DELETE /api/users/delete
func DeleteAccount(c *gin.Context) {
	if err := userService(c).DeleteAccount(c.Request.Context()); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
