package handlers

import (
	"net/http"
	"strconv"

	"alhudha-backend/internal/domain"
	"alhudha-backend/internal/domain/models"
	"alhudha-backend/internal/http/middleware"
	"alhudha-backend/internal/repositories"
	"alhudha-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func travelerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondDomainError(c, domain.ValidationError{Field: "id", Msg: "must be a positive integer"})
		return 0, false
	}
	return id, true
}

// GET /api/travelers
func GetTravelers(c *gin.Context) {
	travelers, err := repositories.TravelerRepository{}.List()
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"count":     len(travelers),
		"travelers": travelers,
	})
}

// GET /api/travelers/:id
func GetTravelerByID(c *gin.Context) {
	id, ok := travelerID(c)
	if !ok {
		return
	}
	traveler, err := repositories.TravelerRepository{}.GetByID(id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "traveler": traveler})
}

// POST /api/travelers
func CreateTraveler(c *gin.Context) {
	var input models.Traveler
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	traveler, err := repositories.TravelerRepository{}.Create(input)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Traveler created successfully",
		"traveler": traveler,
	})
}

// PUT /api/travelers/:id applies a partial update; unknown keys are rejected,
// system-managed keys are ignored.
func UpdateTraveler(c *gin.Context) {
	id, ok := travelerID(c)
	if !ok {
		return
	}

	updates := map[string]any{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	traveler, err := repositories.TravelerRepository{}.Update(id, updates)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Traveler updated successfully",
		"traveler": traveler,
	})
}

// DELETE /api/travelers/:id
func DeleteTraveler(c *gin.Context) {
	id, ok := travelerID(c)
	if !ok {
		return
	}

	deletedID, err := repositories.TravelerRepository{}.Delete(id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Traveler deleted successfully",
		"deletedId": deletedID,
	})
}

// GET /api/travelers/:id/profile-pdf returns the printable profile sheet.
func GetTravelerProfilePDF(c *gin.Context) {
	id, ok := travelerID(c)
	if !ok {
		return
	}

	svc := services.DocsService{
		TravelerRepo: repositories.TravelerRepository{},
		RequestID:    middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateProfileSheet(id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
