package handlers

import (
	"net/http"

	"alhudha-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/travelers/batches/list
func GetBatches(c *gin.Context) {
	batches, err := repositories.BatchRepository{}.List()
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "batches": batches})
}
