package handlers

import (
	"net/http"
	"strconv"

	"alhudha-backend/internal/domain"
	"alhudha-backend/internal/domain/models"
	"alhudha-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/payments
func GetPayments(c *gin.Context) {
	payments, err := repositories.PaymentRepository{}.List()
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "payments": payments})
}

// GET /api/payments/:id
func GetPaymentByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondDomainError(c, domain.ValidationError{Field: "id", Msg: "must be a positive integer"})
		return
	}

	payment, err := repositories.PaymentRepository{}.GetByID(id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "payment": payment})
}

// GET /api/payments/traveler/:id
func GetTravelerPayments(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondDomainError(c, domain.ValidationError{Field: "id", Msg: "must be a positive integer"})
		return
	}

	payments, err := repositories.PaymentRepository{}.ListByTraveler(id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "payments": payments})
}

// POST /api/payments
func CreatePayment(c *gin.Context) {
	var input models.Payment
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	id, err := repositories.PaymentRepository{}.Create(input)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "payment_id": id})
}

// GET /api/payments/stats
func GetPaymentStats(c *gin.Context) {
	stats, err := repositories.PaymentRepository{}.Stats()
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
