package models

// Traveler mirrors the travelers table. passport_name is generated by the
// database from first_name + last_name; id and the timestamps are
// system-managed. Everything else is caller-writable.
type Traveler struct {
	ID                 int64          `json:"id"`
	FirstName          string         `json:"first_name"`
	LastName           string         `json:"last_name"`
	PassportName       string         `json:"passport_name"`
	BatchID            *int64         `json:"batch_id"`
	BatchName          string         `json:"batch_name"`
	PassportNo         string         `json:"passport_no"`
	PassportIssueDate  string         `json:"passport_issue_date"`
	PassportExpiryDate string         `json:"passport_expiry_date"`
	PassportStatus     string         `json:"passport_status"`
	Gender             string         `json:"gender"`
	DOB                string         `json:"dob"`
	Mobile             string         `json:"mobile"`
	Email              string         `json:"email"`
	Aadhaar            string         `json:"aadhaar"`
	PAN                string         `json:"pan"`
	AadhaarPanLinked   string         `json:"aadhaar_pan_linked"`
	VaccineStatus      string         `json:"vaccine_status"`
	Wheelchair         string         `json:"wheelchair"`
	PlaceOfBirth       string         `json:"place_of_birth"`
	PlaceOfIssue       string         `json:"place_of_issue"`
	PassportAddress    string         `json:"passport_address"`
	FatherName         string         `json:"father_name"`
	MotherName         string         `json:"mother_name"`
	SpouseName         string         `json:"spouse_name"`
	PassportScan       string         `json:"passport_scan"`
	AadhaarScan        string         `json:"aadhaar_scan"`
	PanScan            string         `json:"pan_scan"`
	VaccineScan        string         `json:"vaccine_scan"`
	ExtraFields        map[string]any `json:"extra_fields"`
	CreatedAt          string         `json:"created_at"`
	UpdatedAt          string         `json:"updated_at"`
}

// TravelerWritableColumns is the ordered allow-list of caller-writable
// travelers columns. Create inserts exactly this list; every key of a partial
// update payload must resolve to one of these names before it may appear in a
// statement.
var TravelerWritableColumns = []string{
	"first_name", "last_name", "batch_id", "passport_no",
	"passport_issue_date", "passport_expiry_date", "passport_status",
	"gender", "dob", "mobile", "email", "aadhaar", "pan",
	"aadhaar_pan_linked", "vaccine_status", "wheelchair",
	"place_of_birth", "place_of_issue", "passport_address",
	"father_name", "mother_name", "spouse_name",
	"passport_scan", "aadhaar_scan", "pan_scan", "vaccine_scan",
	"extra_fields",
}

// TravelerSystemColumns are stripped from update payloads without error.
var TravelerSystemColumns = map[string]bool{
	"id":            true,
	"passport_name": true,
	"created_at":    true,
	"updated_at":    true,
}

// TravelerUniqueColumns maps unique travelers indexes to the identity
// document they protect, for duplicate-key classification.
var TravelerUniqueColumns = map[string]string{
	"passport_no": "passport number",
	"aadhaar":     "Aadhaar",
	"pan":         "PAN",
}

var travelerWritableSet = func() map[string]bool {
	m := make(map[string]bool, len(TravelerWritableColumns))
	for _, c := range TravelerWritableColumns {
		m[c] = true
	}
	return m
}()

func TravelerWritable(column string) bool {
	return travelerWritableSet[column]
}
