package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/company/profile serves the static copy for the public landing page.
func GetCompanyProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"name":        "Alhudha Haj Travel",
		"tagline":     "Your Trusted Partner for Spiritual Journey to the Holy Land",
		"description": "Experience the spiritual journey of a lifetime with our premium Haj and Umrah packages. 25+ years of trusted service guiding pilgrims to Makkah and Madinah.",
		"badge":       "Est. 1998",
		"features": []gin.H{
			{"icon": "fas fa-calendar-alt", "title": "25+ Years", "description": "Experience in Haj & Umrah services"},
			{"icon": "fas fa-users", "title": "5000+", "description": "Happy Pilgrims Served"},
			{"icon": "fas fa-hotel", "title": "Premium", "description": "Hotels near Haram"},
			{"icon": "fas fa-bus", "title": "VIP Transport", "description": "Comfortable travel"},
		},
	})
}
