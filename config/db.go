package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
)

var sqlDB *sql.DB

func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

// BootDB opens a database/sql connection and runs the schema migration.
// Repositories use the pgx pool from BootPgxPool; this handle exists for
// boot-time DDL only.
func BootDB() (*sql.DB, error) {
	url := GetDatabaseURL()
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if sqlDB == nil {
		sqlDB = db
	}

	err = autoMigrate(sqlDB)
	if err != nil {
		return sqlDB, err
	}

	return sqlDB, nil
}

func BootPgxPool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

func autoMigrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS donors (
	id SERIAL PRIMARY KEY,
	firstname VARCHAR(255) NOT NULL,
	lastname VARCHAR(255) NOT NULL,
	dob DATE NOT NULL,
	gender VARCHAR(7) NOT NULL,
	email VARCHAR(255) NOT NULL UNIQUE,
	password VARCHAR(255) NOT NULL,
	blood_type VARCHAR(3) NOT NULL,
	phone_number VARCHAR(15) NOT NULL UNIQUE,
	device_token VARCHAR(255),
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	date_joined TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	deleted_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS delivery_staff (
	id SERIAL PRIMARY KEY,
	firstname VARCHAR(255) NOT NULL,
	lastname VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL UNIQUE,
	password VARCHAR(255) NOT NULL,
	gender VARCHAR(7) NOT NULL,
	license_number VARCHAR(50) NOT NULL UNIQUE,
	vehicle_type VARCHAR(50) NOT NULL,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	date_joined TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS hospitals (
	id SERIAL PRIMARY KEY,
	hospital_name VARCHAR(255) NOT NULL,
	staff_name VARCHAR(255) NOT NULL,
	staff_id VARCHAR(50) NOT NULL UNIQUE,
	email VARCHAR(255) NOT NULL UNIQUE,
	password VARCHAR(255) NOT NULL,
	contact_info VARCHAR(100) NOT NULL,
	address TEXT,
	documents VARCHAR(255),
	approval_status VARCHAR(10) NOT NULL DEFAULT 'pending',
	rejection_reason TEXT,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	date_registered TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS blood_requests (
	id SERIAL PRIMARY KEY,
	hospital_id INTEGER NOT NULL REFERENCES hospitals(id) ON DELETE CASCADE,
	blood_type VARCHAR(3) NOT NULL,
	quantity INTEGER NOT NULL,
	priority_level VARCHAR(10) NOT NULL,
	status VARCHAR(10) NOT NULL DEFAULT 'pending',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	fulfilled_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS blood_units (
	id SERIAL PRIMARY KEY,
	hospital_id INTEGER NOT NULL REFERENCES hospitals(id) ON DELETE CASCADE,
	blood_type VARCHAR(3) NOT NULL,
	quantity INTEGER NOT NULL,
	status VARCHAR(10) NOT NULL DEFAULT 'available',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	expiration_date DATE NOT NULL
	);
	`
	_, err := db.Exec(query)
	if err != nil {
		fmt.Printf("Error executing migration query: %v\n", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
