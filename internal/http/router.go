package api

import (
	"log"
	stdhttp "net/http"

	intconfig "alhudha-backend/internal/config"
	h "alhudha-backend/internal/http/handlers"
	"alhudha-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	_ = env

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"error":   "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	// stored scans are also directly servable
	r.Static("/uploads", intconfig.UploadDir())

	api := r.Group("/api")
	{
		api.GET("", h.Home)
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.GET("/me", middleware.RequireAuth(), h.Me)

		travelers := api.Group("/travelers")
		travelers.GET("", h.GetTravelers)
		travelers.GET("/batches/list", h.GetBatches)
		travelers.GET("/stats/summary", h.GetStatsSummary)
		travelers.GET("/:id", h.GetTravelerByID)
		travelers.POST("", h.CreateTraveler)
		travelers.PUT("/:id", h.UpdateTraveler)
		travelers.DELETE("/:id", h.DeleteTraveler)
		travelers.GET("/:id/profile-pdf", h.GetTravelerProfilePDF)

		upload := api.Group("/upload")
		upload.POST("", h.UploadFile)
		upload.GET("/:filename", h.GetUploadedFile)

		payments := api.Group("/payments")
		payments.GET("", h.GetPayments)
		payments.GET("/stats", h.GetPaymentStats)
		payments.GET("/traveler/:id", h.GetTravelerPayments)
		payments.GET("/:id", h.GetPaymentByID)
		payments.POST("", h.CreatePayment)

		company := api.Group("/company")
		company.GET("/profile", h.GetCompanyProfile)
	}

	return r
}
