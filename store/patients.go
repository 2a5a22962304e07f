package store

import (
	"context"

	"anxisense_back_end_go/models"
)

// CreatePatient inserts a patient row and returns its assigned id. The
// external patient code is stored as given, with no uniqueness check.
func (s *Store) CreatePatient(ctx context.Context, p models.NewPatient) (int64, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	var id int64
	err = conn.QueryRow(ctx, `
		INSERT INTO patients
		(patientid, doctorid, fullname, age, gender, proceduretype, healthissue, previousanxietyhistory)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		p.PatientID,
		p.DoctorID,
		p.FullName,
		p.Age,
		p.Gender,
		p.ProcedureType,
		p.HealthIssue,
		p.PreviousAnxietyHistory,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrConflict
		}
		return 0, err
	}
	return id, nil
}

// ListPatients returns a doctor's patients, newest first, each augmented with
// its latest assessment. "Latest" is the assessment with the maximum id, not
// the maximum timestamp, so ties on identical timestamps resolve by insertion
// order. Score and timestamps are converted inside the query so the store's
// NUMERIC and TIMESTAMP representations never reach the caller.
func (s *Store) ListPatients(ctx context.Context, doctorID int64) ([]models.PatientRow, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `
		SELECT p.id, p.patientid, p.doctorid, p.fullname, p.age, p.gender,
		       p.proceduretype, p.healthissue, p.previousanxietyhistory,
		       TO_CHAR(p.created_at, 'YYYY-MM-DD HH24:MI:SS'),
		       a.anxiety_score::float8,
		       a.anxiety_level,
		       a.dominant_emotion,
		       TO_CHAR(a.created_at, 'YYYY-MM-DD HH24:MI:SS')
		FROM patients p
		LEFT JOIN (
			SELECT patient_id, anxiety_score, anxiety_level, dominant_emotion, created_at
			FROM assessments a1
			WHERE id = (
				SELECT MAX(id) FROM assessments a2 WHERE a2.patient_id = a1.patient_id
			)
		) a ON p.id = a.patient_id
		WHERE p.doctorid = $1
		ORDER BY p.id DESC`,
		doctorID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patients := []models.PatientRow{}
	for rows.Next() {
		var row models.PatientRow
		err := rows.Scan(
			&row.ID,
			&row.PatientID,
			&row.DoctorID,
			&row.FullName,
			&row.Age,
			&row.Gender,
			&row.ProcedureType,
			&row.HealthIssue,
			&row.PreviousAnxietyHistory,
			&row.CreatedAt,
			&row.LatestAnxietyScore,
			&row.LatestAnxietyLevel,
			&row.LatestDominantEmotion,
			&row.LastAssessmentDate,
		)
		if err != nil {
			return nil, err
		}
		patients = append(patients, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return patients, nil
}
