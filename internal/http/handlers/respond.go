package handlers

import (
	"net/http"

	"alhudha-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// respondError emits the error envelope the admin page expects.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// respondDomainError maps domain errors onto the legacy status codes:
// the admin page treats duplicates as 400, not 409.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusBadRequest, err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}
