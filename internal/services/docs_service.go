package services

import (
	"bytes"
	"fmt"
	"strings"

	"alhudha-backend/internal/domain/models"
	"alhudha-backend/internal/repositories"
	"alhudha-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders printable traveler profile sheets for the front desk.
type DocsService struct {
	TravelerRepo repositories.TravelerRepository
	RequestID    string
	Loader       func(int64) (models.Traveler, error)
}

func (s DocsService) GenerateProfileSheet(travelerID int64) ([]byte, string, error) {
	tr, err := s.loadTraveler(travelerID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "profile_sheet", fmt.Sprintf("traveler_id=%d", travelerID))
	return buildProfileSheetPDF(tr)
}

func (s DocsService) loadTraveler(id int64) (models.Traveler, error) {
	if s.Loader != nil {
		return s.Loader(id)
	}
	return s.TravelerRepo.GetByID(id)
}

func buildProfileSheetPDF(t models.Traveler) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Traveler Profile", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ALHUDHA HAJ TRAVEL - TRAVELER PROFILE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Registration No : #%d", t.ID),
		fmt.Sprintf("Passport Name   : %s", safe(t.PassportName, "-")),
		fmt.Sprintf("Passport No     : %s", safe(t.PassportNo, "-")),
		fmt.Sprintf("Passport Status : %s", safe(t.PassportStatus, "-")),
		fmt.Sprintf("Valid           : %s to %s", safe(t.PassportIssueDate, "-"), safe(t.PassportExpiryDate, "-")),
		fmt.Sprintf("Batch           : %s", safe(t.BatchName, "Unassigned")),
		fmt.Sprintf("Gender / DOB    : %s / %s", safe(t.Gender, "-"), safe(t.DOB, "-")),
		fmt.Sprintf("Mobile          : %s", safe(t.Mobile, "-")),
		fmt.Sprintf("Email           : %s", safe(t.Email, "-")),
		fmt.Sprintf("Aadhaar / PAN   : %s / %s (linked: %s)", mask(t.Aadhaar), mask(t.PAN), safe(t.AadhaarPanLinked, "No")),
		fmt.Sprintf("Vaccine Status  : %s", safe(t.VaccineStatus, "-")),
		fmt.Sprintf("Wheelchair      : %s", safe(t.Wheelchair, "No")),
		fmt.Sprintf("Place of Birth  : %s", safe(t.PlaceOfBirth, "-")),
		fmt.Sprintf("Place of Issue  : %s", safe(t.PlaceOfIssue, "-")),
		fmt.Sprintf("Father          : %s", safe(t.FatherName, "-")),
		fmt.Sprintf("Mother          : %s", safe(t.MotherName, "-")),
		fmt.Sprintf("Spouse          : %s", safe(t.SpouseName, "-")),
		fmt.Sprintf("Registered      : %s", safe(t.CreatedAt, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if strings.TrimSpace(t.PassportAddress) != "" {
		pdf.Ln(3)
		pdf.MultiCell(0, 6, "Address: "+t.PassportAddress, "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Scans on file: "+scanChecklist(t), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("traveler_profile_%d.pdf", t.ID)
	return buf.Bytes(), filename, nil
}

func scanChecklist(t models.Traveler) string {
	items := []string{}
	mark := func(label, path string) {
		if strings.TrimSpace(path) != "" {
			items = append(items, label)
		}
	}
	mark("passport", t.PassportScan)
	mark("aadhaar", t.AadhaarScan)
	mark("pan", t.PanScan)
	mark("vaccine", t.VaccineScan)
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// mask keeps only the last 4 characters of an identity number on paper.
func mask(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "-"
	}
	if len(s) <= 4 {
		return s
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
