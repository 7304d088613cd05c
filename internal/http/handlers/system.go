package handlers

import (
	"net/http"

	intconfig "alhudha-backend/internal/config"
	intdb "alhudha-backend/internal/db"

	"github.com/gin-gonic/gin"
)

// GET /api returns the service banner the admin page shows on its landing screen.
func Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "Alhudha Haj Travel System",
		"version": "2.0",
		"fields":  33,
		"status":  "active",
		"endpoints": gin.H{
			"travelers": "/api/travelers",
			"upload":    "/api/upload",
			"payments":  "/api/payments",
			"stats":     "/api/travelers/stats/summary",
			"batches":   "/api/travelers/batches/list",
		},
	})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "backend running"})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		respondError(c, http.StatusInternalServerError, "Database not reachable: "+err.Error())
		return
	}
	if !intdb.HasTable(intconfig.DB, "travelers") {
		respondError(c, http.StatusInternalServerError, "Schema not initialized")
		return
	}
	var count int
	if err := intconfig.DB.QueryRow(`SELECT COUNT(*) FROM travelers`).Scan(&count); err != nil {
		respondError(c, http.StatusInternalServerError, "Database query failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Database connection OK", "travelers_in_db": count})
}
