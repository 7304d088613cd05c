package db

import (
	"database/sql"
	"log"

	"golang.org/x/crypto/bcrypt"
)

type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

// HasTable probes information_schema; any error just reports false.
func HasTable(q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)

	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

// NullIfEmpty helps store optional strings without writing empty values.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

const createBatchesSQL = `
CREATE TABLE IF NOT EXISTS batches (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	batch_name VARCHAR(100) NOT NULL UNIQUE,
	departure_date DATE NULL,
	return_date DATE NULL,
	total_seats INT NOT NULL DEFAULT 150,
	booked_seats INT NOT NULL DEFAULT 0,
	status VARCHAR(50) NOT NULL DEFAULT 'Open',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// passport_name is a stored generated column: callers can never write it and
// it can never drift from first_name + last_name.
const createTravelersSQL = `
CREATE TABLE IF NOT EXISTS travelers (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	first_name VARCHAR(50) NOT NULL,
	last_name VARCHAR(50) NOT NULL,
	passport_name VARCHAR(101) GENERATED ALWAYS AS (CONCAT(first_name, ' ', last_name)) STORED,
	batch_id BIGINT NULL,
	passport_no VARCHAR(50) NOT NULL UNIQUE,
	passport_issue_date DATE NULL,
	passport_expiry_date DATE NULL,
	passport_status VARCHAR(50) NOT NULL DEFAULT 'Active',
	gender VARCHAR(20) NULL,
	dob DATE NULL,
	mobile VARCHAR(20) NOT NULL,
	email VARCHAR(100) NULL,
	aadhaar VARCHAR(20) NULL UNIQUE,
	pan VARCHAR(20) NULL UNIQUE,
	aadhaar_pan_linked VARCHAR(10) NOT NULL DEFAULT 'No',
	vaccine_status VARCHAR(50) NOT NULL DEFAULT 'Not Vaccinated',
	wheelchair VARCHAR(10) NOT NULL DEFAULT 'No',
	place_of_birth VARCHAR(100) NULL,
	place_of_issue VARCHAR(100) NULL,
	passport_address TEXT NULL,
	father_name VARCHAR(100) NULL,
	mother_name VARCHAR(100) NULL,
	spouse_name VARCHAR(100) NULL,
	passport_scan VARCHAR(255) NULL,
	aadhaar_scan VARCHAR(255) NULL,
	pan_scan VARCHAR(255) NULL,
	vaccine_scan VARCHAR(255) NULL,
	extra_fields JSON NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	CONSTRAINT fk_travelers_batch FOREIGN KEY (batch_id) REFERENCES batches(id) ON DELETE SET NULL,
	INDEX idx_travelers_batch (batch_id),
	INDEX idx_travelers_created (created_at),
	INDEX idx_travelers_status (passport_status)
)`

const createPaymentsSQL = `
CREATE TABLE IF NOT EXISTS payments (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	traveler_id BIGINT NOT NULL,
	installment VARCHAR(50) NULL,
	amount DECIMAL(12,2) NOT NULL DEFAULT 0,
	due_date DATE NULL,
	payment_date DATE NULL,
	payment_method VARCHAR(50) NULL,
	status VARCHAR(50) NOT NULL DEFAULT 'Pending',
	remarks TEXT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	CONSTRAINT fk_payments_traveler FOREIGN KEY (traveler_id) REFERENCES travelers(id) ON DELETE CASCADE
)`

const createAdminUsersSQL = `
CREATE TABLE IF NOT EXISTS admin_users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	username VARCHAR(50) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	email VARCHAR(100) NOT NULL UNIQUE,
	full_name VARCHAR(100) NULL,
	is_active TINYINT(1) NOT NULL DEFAULT 1,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	last_login TIMESTAMP NULL
)`

// Initialize creates the schema and inserts first-run seed data.
func Initialize(db *sql.DB, adminPassword string) error {
	for _, stmt := range []string{createBatchesSQL, createTravelersSQL, createPaymentsSQL, createAdminUsersSQL} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	if err := seedBatches(db); err != nil {
		return err
	}
	if err := seedAdminUser(db, adminPassword); err != nil {
		return err
	}

	log.Println("database schema ready")
	return nil
}

func seedBatches(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM batches`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err := db.Exec(`
		INSERT IGNORE INTO batches (batch_name, departure_date, return_date, total_seats, status)
		VALUES
			('Haj-2024-001', '2024-06-15', '2024-07-30', 150, 'Open'),
			('Haj-2024-002', '2024-07-01', '2024-08-15', 150, 'Open'),
			('Haj-2024-003', '2024-07-15', '2024-08-30', 150, 'Open')`)
	if err == nil {
		log.Println("sample batches created")
	}
	return err
}

func seedAdminUser(db *sql.DB, password string) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM admin_users`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO admin_users (username, password_hash, email, full_name, is_active)
		VALUES ('superadmin', ?, 'admin@alhudha.com', 'Super Administrator', 1)`, string(hash))
	if err == nil {
		log.Println("superadmin account created")
	}
	return err
}
