package handlers

import (
	"net/http"

	"alhudha-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/travelers/stats/summary
func GetStatsSummary(c *gin.Context) {
	stats, err := repositories.StatsRepository{}.Summary()
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
