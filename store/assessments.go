package store

import (
	"context"

	"anxisense_back_end_go/models"
)

// CreateAssessment appends an assessment row and returns its id. Rows are
// never updated or deleted afterwards.
func (s *Store) CreateAssessment(ctx context.Context, a models.NewAssessment) (int64, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	var id int64
	err = conn.QueryRow(ctx, `
		INSERT INTO assessments
		(patient_id, doctor_id, anxiety_score, anxiety_level, dominant_emotion)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		a.PatientID,
		a.DoctorID,
		a.AnxietyScore,
		a.AnxietyLevel,
		a.DominantEmotion,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListAssessments returns up to 50 assessment rows, newest first. When
// patientID is set it is the filter; otherwise doctorID is. The caller
// guarantees at least one of them is present.
func (s *Store) ListAssessments(ctx context.Context, doctorID, patientID *int64) ([]models.AssessmentRow, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT a.id, a.patient_id, a.doctor_id, a.anxiety_score::float8,
		       a.anxiety_level, a.dominant_emotion,
		       TO_CHAR(a.created_at, 'YYYY-MM-DD HH24:MI:SS'),
		       p.fullname, p.patientid
		FROM assessments a
		JOIN patients p ON a.patient_id = p.id`

	var filter interface{}
	if patientID != nil {
		query += " WHERE a.patient_id = $1"
		filter = *patientID
	} else {
		query += " WHERE a.doctor_id = $1"
		filter = *doctorID
	}
	query += " ORDER BY a.created_at DESC LIMIT 50"

	rows, err := conn.Query(ctx, query, filter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assessments := []models.AssessmentRow{}
	for rows.Next() {
		var row models.AssessmentRow
		err := rows.Scan(
			&row.ID,
			&row.PatientID,
			&row.DoctorID,
			&row.AnxietyScore,
			&row.AnxietyLevel,
			&row.DominantEmotion,
			&row.CreatedAt,
			&row.PatientName,
			&row.PatientCode,
		)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return assessments, nil
}
