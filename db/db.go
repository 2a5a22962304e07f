package db

import (
	"context"
	"fmt"

	"anxisense_back_end_go/config"

	"github.com/jackc/pgx/v4/pgxpool"
)

func InitDatabase(cfg *config.Config) (*pgxpool.Pool, error) {

	dbCfg := cfg.Database
	poolConfig, err := pgxpool.ParseConfig(" host=" + dbCfg.Host + " port=" + dbCfg.Port + " user=" + dbCfg.User + " password=" + dbCfg.Password + " database=" + dbCfg.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}

	conn, err := pgxpool.ConnectConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	// Create tables
	sqlQueries := []string{
		`CREATE TABLE IF NOT EXISTS doctors (
			id SERIAL PRIMARY KEY,
			username VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			fullname VARCHAR(255),
			phone VARCHAR(50),
			specialization VARCHAR(255),
			clinic_name VARCHAR(255),
			profile_image TEXT,
			otp_hash VARCHAR(100),
			otp_expires_at TIMESTAMP,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS patients (
			id SERIAL PRIMARY KEY,
			patientid VARCHAR(100),
			doctorid INTEGER NOT NULL REFERENCES doctors(id),
			fullname VARCHAR(255) NOT NULL,
			age INTEGER,
			gender VARCHAR(20),
			proceduretype VARCHAR(255),
			healthissue TEXT,
			previousanxietyhistory TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS assessments (
			id SERIAL PRIMARY KEY,
			patient_id INTEGER NOT NULL REFERENCES patients(id),
			doctor_id INTEGER NOT NULL REFERENCES doctors(id),
			anxiety_score NUMERIC(5,2) NOT NULL,
			anxiety_level VARCHAR(20) NOT NULL,
			dominant_emotion VARCHAR(50),
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
	}

	for _, query := range sqlQueries {
		_, err = conn.Exec(context.Background(), query)
		if err != nil {
			return nil, fmt.Errorf("failed to create table: %v", err)
		}
	}

	return conn, nil
}
