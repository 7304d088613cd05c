package services

import (
	"bytes"
	"testing"

	"alhudha-backend/internal/domain"
	"alhudha-backend/internal/domain/models"
)

func TestGenerateProfileSheet(t *testing.T) {
	svc := DocsService{
		Loader: func(id int64) (models.Traveler, error) {
			return models.Traveler{
				ID:           id,
				FirstName:    "Ali",
				LastName:     "Hassan",
				PassportName: "Ali Hassan",
				PassportNo:   "P100",
				Mobile:       "0800",
				Aadhaar:      "123456789012",
				PassportScan: "/uploads/passport_1.pdf",
			}, nil
		},
	}

	pdf, filename, err := svc.GenerateProfileSheet(7)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if filename != "traveler_profile_7.pdf" {
		t.Fatalf("unexpected filename: %q", filename)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", pdf[:min(8, len(pdf))])
	}
}

func TestGenerateProfileSheet_NotFound(t *testing.T) {
	svc := DocsService{
		Loader: func(int64) (models.Traveler, error) {
			return models.Traveler{}, domain.NotFoundError{Resource: "Traveler"}
		},
	}

	if _, _, err := svc.GenerateProfileSheet(404); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestMaskKeepsLastFour(t *testing.T) {
	cases := map[string]string{
		"":             "-",
		"1234":         "1234",
		"123456789012": "********9012",
	}
	for in, want := range cases {
		if got := mask(in); got != want {
			t.Fatalf("mask(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestScanChecklist(t *testing.T) {
	tr := models.Traveler{PassportScan: "a", VaccineScan: "b"}
	if got := scanChecklist(tr); got != "passport, vaccine" {
		t.Fatalf("checklist = %q", got)
	}
	if got := scanChecklist(models.Traveler{}); got != "none" {
		t.Fatalf("empty checklist = %q", got)
	}
}
