package repositories

import (
	"strings"
	"testing"

	"alhudha-backend/internal/domain"
	"alhudha-backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestBuildTravelerUpdate_StripsSystemManagedKeys(t *testing.T) {
	payload := map[string]any{
		"id":            int64(9),
		"passport_name": "Forged Name",
		"created_at":    "2020-01-01",
		"updated_at":    "2020-01-01",
		"mobile":        "999",
	}

	set, args, err := buildTravelerUpdate(payload)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if set != "mobile = ?, updated_at = CURRENT_TIMESTAMP" {
		t.Fatalf("unexpected set clause: %q", set)
	}
	if len(args) != 1 || args[0] != "999" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildTravelerUpdate_OnlySystemKeysIsEmpty(t *testing.T) {
	payload := map[string]any{"id": int64(1), "passport_name": "A B"}

	_, _, err := buildTravelerUpdate(payload)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "No fields to update") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestBuildTravelerUpdate_EmptyPayload(t *testing.T) {
	_, _, err := buildTravelerUpdate(map[string]any{})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBuildTravelerUpdate_UnknownKeyRejected(t *testing.T) {
	payload := map[string]any{"mobile": "1", "favorite_color": "green"}

	_, _, err := buildTravelerUpdate(payload)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "favorite_color") {
		t.Fatalf("error should name the offending key: %v", err)
	}
}

func TestBuildTravelerUpdate_SchemaOrderAndCoercions(t *testing.T) {
	payload := map[string]any{
		"dob":          "",
		"first_name":   "Carol",
		"extra_fields": map[string]any{"group_leader": "yes"},
	}

	set, args, err := buildTravelerUpdate(payload)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := "first_name = ?, dob = ?, extra_fields = ?, updated_at = CURRENT_TIMESTAMP"
	if set != want {
		t.Fatalf("set clause not in schema order: %q", set)
	}
	if args[0] != "Carol" {
		t.Fatalf("first arg = %v, want Carol", args[0])
	}
	if args[1] != nil {
		t.Fatalf("empty date should bind NULL, got %v", args[1])
	}
	if args[2] != `{"group_leader":"yes"}` {
		t.Fatalf("extra_fields not marshaled: %v", args[2])
	}
}

func TestTravelerCreate_MissingRequiredFields(t *testing.T) {
	// validation runs before any storage access, so no DB is wired
	_, err := TravelerRepository{}.Create(models.Traveler{FirstName: "A", Mobile: "1"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTravelerCreate_DuplicatePassport(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO travelers").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'P100' for key 'travelers.passport_no'"})

	_, err = TravelerRepository{DB: db}.Create(models.Traveler{
		FirstName:  "A",
		LastName:   "B",
		PassportNo: "P100",
		Mobile:     "1",
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if !strings.Contains(err.Error(), "passport number") {
		t.Fatalf("conflict should name the class: %v", err)
	}
	if strings.Contains(err.Error(), "P100") {
		t.Fatalf("conflict must not leak the colliding value: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTravelerConflictClassification(t *testing.T) {
	cases := []struct {
		msg  string
		want string
	}{
		{"Duplicate entry 'X' for key 'travelers.passport_no'", "Duplicate passport number"},
		{"Duplicate entry 'X' for key 'travelers.aadhaar'", "Duplicate Aadhaar"},
		{"Duplicate entry 'X' for key 'pan'", "Duplicate PAN"},
		{"Duplicate entry 'X' for key 'some_index'", "Duplicate passport number, Aadhaar, or PAN"},
	}
	for _, tc := range cases {
		err := travelerConflict(&mysql.MySQLError{Number: 1062, Message: tc.msg})
		if err == nil || err.Error() != tc.want {
			t.Fatalf("msg %q: got %v, want %q", tc.msg, err, tc.want)
		}
	}

	if err := travelerConflict(&mysql.MySQLError{Number: 1452, Message: "fk fails"}); err != nil {
		t.Fatalf("non-duplicate errors must pass through, got %v", err)
	}
}

var travelerTestColumns = []string{
	"id", "first_name", "last_name", "passport_name", "batch_id", "batch_name",
	"passport_no", "passport_issue_date", "passport_expiry_date", "passport_status",
	"gender", "dob", "mobile", "email", "aadhaar", "pan", "aadhaar_pan_linked",
	"vaccine_status", "wheelchair", "place_of_birth", "place_of_issue",
	"passport_address", "father_name", "mother_name", "spouse_name",
	"passport_scan", "aadhaar_scan", "pan_scan", "vaccine_scan",
	"extra_fields", "created_at", "updated_at",
}

func travelerTestRow(id int64, first, last, mobile string) *sqlmock.Rows {
	return sqlmock.NewRows(travelerTestColumns).AddRow(
		id, first, last, first+" "+last, nil, "",
		"P100", "", "", "Active",
		"", "", mobile, "", "", "", "No",
		"Not Vaccinated", "No", "", "",
		"", "", "", "",
		"", "", "", "",
		`{"group_leader":"yes"}`, "2024-05-01 10:00:00", "2024-05-01 10:00:00",
	)
}

func TestTravelerUpdate_SingleField(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE travelers SET mobile = \?, updated_at = CURRENT_TIMESTAMP WHERE id = \?`).
		WithArgs("999", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM travelers t LEFT JOIN batches b").
		WithArgs(int64(7)).
		WillReturnRows(travelerTestRow(7, "Ali", "Hassan", "999"))

	tr, err := TravelerRepository{DB: db}.Update(7, map[string]any{"mobile": "999"})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if tr.Mobile != "999" {
		t.Fatalf("mobile not applied: %q", tr.Mobile)
	}
	if tr.PassportName != "Ali Hassan" {
		t.Fatalf("generated name not round-tripped: %q", tr.PassportName)
	}
	if tr.ExtraFields["group_leader"] != "yes" {
		t.Fatalf("extra_fields not decoded: %v", tr.ExtraFields)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTravelerUpdate_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE travelers SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = TravelerRepository{DB: db}.Update(404, map[string]any{"mobile": "1"})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestTravelerDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM travelers WHERE id = ").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM travelers WHERE id = ").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := TravelerRepository{DB: db}

	id, err := repo.Delete(3)
	if err != nil || id != 3 {
		t.Fatalf("delete failed: id=%d err=%v", id, err)
	}

	if _, err := repo.Delete(3); !domain.IsNotFound(err) {
		t.Fatalf("second delete should be not-found, got %v", err)
	}
}

func TestTravelerList_ScanOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := travelerTestRow(2, "Fatima", "Khan", "0800")
	mock.ExpectQuery("FROM travelers t LEFT JOIN batches b").WillReturnRows(rows)

	travelers, err := TravelerRepository{DB: db}.List()
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(travelers) != 1 {
		t.Fatalf("expected 1 traveler, got %d", len(travelers))
	}
	got := travelers[0]
	if got.ID != 2 || got.FirstName != "Fatima" || got.PassportStatus != "Active" {
		t.Fatalf("scan misaligned: %+v", got)
	}
	if got.BatchID != nil {
		t.Fatalf("null batch_id should stay nil, got %v", *got.BatchID)
	}
}
