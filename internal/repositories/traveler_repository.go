package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	intconfig "alhudha-backend/internal/config"
	intdb "alhudha-backend/internal/db"
	"alhudha-backend/internal/domain"
	"alhudha-backend/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type TravelerRepository struct {
	DB *sql.DB
}

func (r TravelerRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Date and timestamp columns go through COALESCE so the driver hands them
// back as plain strings regardless of parseTime.
const travelerSelectColumns = `
	t.id,
	COALESCE(t.first_name, ''),
	COALESCE(t.last_name, ''),
	COALESCE(t.passport_name, ''),
	t.batch_id,
	COALESCE(b.batch_name, ''),
	COALESCE(t.passport_no, ''),
	COALESCE(t.passport_issue_date, ''),
	COALESCE(t.passport_expiry_date, ''),
	COALESCE(t.passport_status, ''),
	COALESCE(t.gender, ''),
	COALESCE(t.dob, ''),
	COALESCE(t.mobile, ''),
	COALESCE(t.email, ''),
	COALESCE(t.aadhaar, ''),
	COALESCE(t.pan, ''),
	COALESCE(t.aadhaar_pan_linked, ''),
	COALESCE(t.vaccine_status, ''),
	COALESCE(t.wheelchair, ''),
	COALESCE(t.place_of_birth, ''),
	COALESCE(t.place_of_issue, ''),
	COALESCE(t.passport_address, ''),
	COALESCE(t.father_name, ''),
	COALESCE(t.mother_name, ''),
	COALESCE(t.spouse_name, ''),
	COALESCE(t.passport_scan, ''),
	COALESCE(t.aadhaar_scan, ''),
	COALESCE(t.pan_scan, ''),
	COALESCE(t.vaccine_scan, ''),
	COALESCE(t.extra_fields, '{}'),
	COALESCE(t.created_at, ''),
	COALESCE(t.updated_at, '')`

const travelerFromClause = ` FROM travelers t LEFT JOIN batches b ON t.batch_id = b.id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTraveler(row rowScanner) (models.Traveler, error) {
	var (
		tr      models.Traveler
		batchID sql.NullInt64
		extra   []byte
	)
	if err := row.Scan(
		&tr.ID,
		&tr.FirstName,
		&tr.LastName,
		&tr.PassportName,
		&batchID,
		&tr.BatchName,
		&tr.PassportNo,
		&tr.PassportIssueDate,
		&tr.PassportExpiryDate,
		&tr.PassportStatus,
		&tr.Gender,
		&tr.DOB,
		&tr.Mobile,
		&tr.Email,
		&tr.Aadhaar,
		&tr.PAN,
		&tr.AadhaarPanLinked,
		&tr.VaccineStatus,
		&tr.Wheelchair,
		&tr.PlaceOfBirth,
		&tr.PlaceOfIssue,
		&tr.PassportAddress,
		&tr.FatherName,
		&tr.MotherName,
		&tr.SpouseName,
		&tr.PassportScan,
		&tr.AadhaarScan,
		&tr.PanScan,
		&tr.VaccineScan,
		&extra,
		&tr.CreatedAt,
		&tr.UpdatedAt,
	); err != nil {
		return models.Traveler{}, err
	}

	if batchID.Valid {
		id := batchID.Int64
		tr.BatchID = &id
	}
	tr.ExtraFields = map[string]any{}
	if len(extra) > 0 {
		_ = json.Unmarshal(extra, &tr.ExtraFields)
	}
	return tr, nil
}

// List returns every traveler joined with its batch name, newest first.
func (r TravelerRepository) List() ([]models.Traveler, error) {
	rows, err := r.db().Query(`SELECT` + travelerSelectColumns + travelerFromClause + `
		ORDER BY t.created_at DESC, t.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	travelers := []models.Traveler{}
	for rows.Next() {
		tr, err := scanTraveler(rows)
		if err != nil {
			return nil, err
		}
		travelers = append(travelers, tr)
	}
	return travelers, rows.Err()
}

func (r TravelerRepository) GetByID(id int64) (models.Traveler, error) {
	row := r.db().QueryRow(`SELECT`+travelerSelectColumns+travelerFromClause+`
		WHERE t.id = ?`, id)
	tr, err := scanTraveler(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Traveler{}, domain.NotFoundError{Resource: "Traveler", Err: err}
		}
		return models.Traveler{}, err
	}
	return tr, nil
}

// Create validates required fields, applies schema defaults, and inserts every
// writable column in one statement. Omitted optionals go in as NULL.
func (r TravelerRepository) Create(in models.Traveler) (models.Traveler, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.PassportNo = strings.TrimSpace(in.PassportNo)
	in.Mobile = strings.TrimSpace(in.Mobile)

	if in.FirstName == "" || in.LastName == "" || in.PassportNo == "" || in.Mobile == "" {
		return models.Traveler{}, domain.ValidationError{
			Msg: "First name, last name, passport number, and mobile are required",
		}
	}

	if strings.TrimSpace(in.PassportStatus) == "" {
		in.PassportStatus = "Active"
	}
	if strings.TrimSpace(in.AadhaarPanLinked) == "" {
		in.AadhaarPanLinked = "No"
	}
	if strings.TrimSpace(in.VaccineStatus) == "" {
		in.VaccineStatus = "Not Vaccinated"
	}
	if strings.TrimSpace(in.Wheelchair) == "" {
		in.Wheelchair = "No"
	}
	if in.ExtraFields == nil {
		in.ExtraFields = map[string]any{}
	}
	extra, err := json.Marshal(in.ExtraFields)
	if err != nil {
		return models.Traveler{}, domain.ValidationError{Field: "extra_fields", Msg: "must be a JSON object", Err: err}
	}

	var batchID any
	if in.BatchID != nil && *in.BatchID > 0 {
		batchID = *in.BatchID
	}

	res, err := r.db().Exec(`
		INSERT INTO travelers (`+strings.Join(models.TravelerWritableColumns, ", ")+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.FirstName,
		in.LastName,
		batchID,
		in.PassportNo,
		intdb.NullIfEmpty(strings.TrimSpace(in.PassportIssueDate)),
		intdb.NullIfEmpty(strings.TrimSpace(in.PassportExpiryDate)),
		in.PassportStatus,
		intdb.NullIfEmpty(strings.TrimSpace(in.Gender)),
		intdb.NullIfEmpty(strings.TrimSpace(in.DOB)),
		in.Mobile,
		intdb.NullIfEmpty(strings.TrimSpace(in.Email)),
		intdb.NullIfEmpty(strings.TrimSpace(in.Aadhaar)),
		intdb.NullIfEmpty(strings.TrimSpace(in.PAN)),
		in.AadhaarPanLinked,
		in.VaccineStatus,
		in.Wheelchair,
		intdb.NullIfEmpty(strings.TrimSpace(in.PlaceOfBirth)),
		intdb.NullIfEmpty(strings.TrimSpace(in.PlaceOfIssue)),
		intdb.NullIfEmpty(strings.TrimSpace(in.PassportAddress)),
		intdb.NullIfEmpty(strings.TrimSpace(in.FatherName)),
		intdb.NullIfEmpty(strings.TrimSpace(in.MotherName)),
		intdb.NullIfEmpty(strings.TrimSpace(in.SpouseName)),
		intdb.NullIfEmpty(strings.TrimSpace(in.PassportScan)),
		intdb.NullIfEmpty(strings.TrimSpace(in.AadhaarScan)),
		intdb.NullIfEmpty(strings.TrimSpace(in.PanScan)),
		intdb.NullIfEmpty(strings.TrimSpace(in.VaccineScan)),
		string(extra),
	)
	if err != nil {
		if ce := travelerConflict(err); ce != nil {
			return models.Traveler{}, ce
		}
		return models.Traveler{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Traveler{}, err
	}
	return r.GetByID(id)
}

// dateColumns get empty strings coerced to NULL so partial updates can clear
// a date without tripping strict mode.
var travelerDateColumns = map[string]bool{
	"passport_issue_date":  true,
	"passport_expiry_date": true,
	"dob":                  true,
}

// buildTravelerUpdate turns a partial payload into a SET clause. System-managed
// keys are silently dropped; any remaining key must be a writable column, so
// caller input can never reach the statement as an identifier. Assignments
// follow the schema's column order and updated_at is always appended.
func buildTravelerUpdate(payload map[string]any) (string, []any, error) {
	for col := range models.TravelerSystemColumns {
		delete(payload, col)
	}
	if len(payload) == 0 {
		return "", nil, domain.ValidationError{Msg: "No fields to update"}
	}
	for key := range payload {
		if !models.TravelerWritable(key) {
			return "", nil, domain.ValidationError{Field: key, Msg: "unknown field"}
		}
	}

	set := make([]string, 0, len(payload)+1)
	args := make([]any, 0, len(payload))
	for _, col := range models.TravelerWritableColumns {
		v, ok := payload[col]
		if !ok {
			continue
		}
		switch {
		case col == "extra_fields" && v != nil:
			b, err := json.Marshal(v)
			if err != nil {
				return "", nil, domain.ValidationError{Field: col, Msg: "must be a JSON object", Err: err}
			}
			v = string(b)
		case travelerDateColumns[col]:
			if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
				v = nil
			}
		}
		set = append(set, col+" = ?")
		args = append(args, v)
	}
	set = append(set, "updated_at = CURRENT_TIMESTAMP")

	return strings.Join(set, ", "), args, nil
}

// Update applies an arbitrary subset of writable fields to one traveler and
// returns the full updated record, generated column included.
func (r TravelerRepository) Update(id int64, payload map[string]any) (models.Traveler, error) {
	setClause, args, err := buildTravelerUpdate(payload)
	if err != nil {
		return models.Traveler{}, err
	}
	args = append(args, id)

	res, err := r.db().Exec(`UPDATE travelers SET `+setClause+` WHERE id = ?`, args...)
	if err != nil {
		if ce := travelerConflict(err); ce != nil {
			return models.Traveler{}, ce
		}
		return models.Traveler{}, err
	}

	matched, err := res.RowsAffected()
	if err != nil {
		return models.Traveler{}, err
	}
	if matched == 0 {
		return models.Traveler{}, domain.NotFoundError{Resource: "Traveler"}
	}
	return r.GetByID(id)
}

// Delete removes one traveler and reports the deleted id.
func (r TravelerRepository) Delete(id int64) (int64, error) {
	res, err := r.db().Exec(`DELETE FROM travelers WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, domain.NotFoundError{Resource: "Traveler"}
	}
	return id, nil
}

// travelerConflict classifies a MySQL duplicate-key error by the violated
// index so the caller learns the conflict class but never the value.
func travelerConflict(err error) error {
	var me *mysql.MySQLError
	if !errors.As(err, &me) || me.Number != 1062 {
		return nil
	}
	if doc, ok := models.TravelerUniqueColumns[duplicateKeyName(me.Message)]; ok {
		return domain.ConflictError{Msg: "Duplicate " + doc, Err: err}
	}
	return domain.ConflictError{Msg: "Duplicate passport number, Aadhaar, or PAN", Err: err}
}

// duplicateKeyName pulls the index name out of a 1062 message
// ("Duplicate entry '...' for key 'travelers.passport_no'").
func duplicateKeyName(msg string) string {
	idx := strings.LastIndex(msg, "for key '")
	if idx < 0 {
		return ""
	}
	key := strings.TrimSuffix(msg[idx+len("for key '"):], "'")
	if dot := strings.LastIndex(key, "."); dot >= 0 {
		key = key[dot+1:]
	}
	return key
}
