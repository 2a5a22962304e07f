package store

import (
	"context"
	"errors"
	"time"

	"anxisense_back_end_go/models"

	"github.com/jackc/pgx/v4"
)

// RegisterDoctor creates a doctor and returns its id. A doctor with the same
// email yields ErrConflict.
func (s *Store) RegisterDoctor(ctx context.Context, email, username string) (int64, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	var existing int64
	err = conn.QueryRow(ctx, "SELECT id FROM doctors WHERE email = $1", email).Scan(&existing)
	if err == nil {
		return 0, ErrConflict
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	var id int64
	err = conn.QueryRow(ctx,
		"INSERT INTO doctors (username, email) VALUES ($1, $2) RETURNING id",
		username, email,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrConflict
		}
		return 0, err
	}
	return id, nil
}

func (s *Store) GetDoctorByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var doctor models.Doctor
	err = conn.QueryRow(ctx, `
		SELECT id, username, email, profile_image, otp_hash, otp_expires_at
		FROM doctors WHERE email = $1`,
		email,
	).Scan(
		&doctor.ID,
		&doctor.Username,
		&doctor.Email,
		&doctor.ProfileImage,
		&doctor.OTPHash,
		&doctor.OTPExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

// SetOTP stores the hashed OTP challenge and its expiry for the doctor.
func (s *Store) SetOTP(ctx context.Context, email, otpHash string, expiresAt time.Time) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx,
		"UPDATE doctors SET otp_hash = $1, otp_expires_at = $2 WHERE email = $3",
		otpHash, expiresAt, email,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearOTP drops the challenge after a successful verification.
func (s *Store) ClearOTP(ctx context.Context, email string) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx,
		"UPDATE doctors SET otp_hash = NULL, otp_expires_at = NULL WHERE email = $1",
		email,
	)
	return err
}

func (s *Store) GetDoctorProfile(ctx context.Context, doctorID int64) (*models.DoctorProfile, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var profile models.DoctorProfile
	err = conn.QueryRow(ctx, `
		SELECT id, username, email, fullname, phone, specialization, clinic_name, profile_image
		FROM doctors WHERE id = $1`,
		doctorID,
	).Scan(
		&profile.ID,
		&profile.Username,
		&profile.Email,
		&profile.FullName,
		&profile.Phone,
		&profile.Specialization,
		&profile.ClinicName,
		&profile.ProfileImage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// ProfilePatch carries the optional profile fields of an update. A nil field
// is left untouched.
type ProfilePatch struct {
	FullName       *string
	Phone          *string
	Specialization *string
	ClinicName     *string
	ProfileImage   *string
}

// Empty reports whether the patch would change nothing.
func (p ProfilePatch) Empty() bool {
	return p.FullName == nil && p.Phone == nil && p.Specialization == nil &&
		p.ClinicName == nil && p.ProfileImage == nil
}

// UpdateDoctorProfile applies the patch. The statement is fixed and fully
// parameterized; absent fields are sent as NULL and kept via COALESCE.
func (s *Store) UpdateDoctorProfile(ctx context.Context, doctorID int64, patch ProfilePatch) error {
	if patch.Empty() {
		return ErrNoFields
	}

	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx, `
		UPDATE doctors SET
			fullname = COALESCE($2, fullname),
			phone = COALESCE($3, phone),
			specialization = COALESCE($4, specialization),
			clinic_name = COALESCE($5, clinic_name),
			profile_image = COALESCE($6, profile_image)
		WHERE id = $1`,
		doctorID,
		patch.FullName,
		patch.Phone,
		patch.Specialization,
		patch.ClinicName,
		patch.ProfileImage,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DashboardStats returns the doctor's total assessment count and the number
// of distinct patients assessed today.
func (s *Store) DashboardStats(ctx context.Context, doctorID int64) (total, today int64, err error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return 0, 0, err
	}
	defer conn.Release()

	err = conn.QueryRow(ctx,
		"SELECT COUNT(*) FROM assessments WHERE doctor_id = $1",
		doctorID,
	).Scan(&total)
	if err != nil {
		return 0, 0, err
	}

	err = conn.QueryRow(ctx,
		"SELECT COUNT(DISTINCT patient_id) FROM assessments WHERE doctor_id = $1 AND created_at::date = CURRENT_DATE",
		doctorID,
	).Scan(&today)
	if err != nil {
		return 0, 0, err
	}

	return total, today, nil
}
