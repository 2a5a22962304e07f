package models

// NewAssessment is the JSON body for saving an assessment. patient_id,
// doctor_id, anxiety_score and anxiety_level are required.
type NewAssessment struct {
	PatientID       *int64   `json:"patient_id"`
	DoctorID        *int64   `json:"doctor_id"`
	AnxietyScore    *float64 `json:"anxiety_score"`
	AnxietyLevel    *string  `json:"anxiety_level"`
	DominantEmotion *string  `json:"dominant_emotion"`
}

// AssessmentRow is an assessment history row joined with the patient's name
// and external code.
type AssessmentRow struct {
	ID              int64   `json:"id"`
	PatientID       int64   `json:"patient_id"`
	DoctorID        int64   `json:"doctor_id"`
	AnxietyScore    float64 `json:"anxiety_score"`
	AnxietyLevel    string  `json:"anxiety_level"`
	DominantEmotion *string `json:"dominant_emotion"`
	CreatedAt       string  `json:"created_at"`
	PatientName     string  `json:"patient_name"`
	PatientCode     *string `json:"patient_code"`
}
