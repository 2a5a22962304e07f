package models

// NewPatient is the JSON body for patient registration. doctorid and fullname
// are required; everything else may be absent and is stored as NULL.
type NewPatient struct {
	PatientID              *string `json:"patientid"`
	DoctorID               *int64  `json:"doctorid"`
	FullName               string  `json:"fullname"`
	Age                    *int    `json:"age"`
	Gender                 *string `json:"gender"`
	ProcedureType          *string `json:"proceduretype"`
	HealthIssue            *string `json:"healthissue"`
	PreviousAnxietyHistory *string `json:"previousanxietyhistory"`
}

// PatientRow is a patient listing row with the latest assessment attached.
// The latest fields stay null when the patient has no assessments yet.
type PatientRow struct {
	ID                     int64    `json:"id"`
	PatientID              *string  `json:"patientid"`
	DoctorID               int64    `json:"doctorid"`
	FullName               string   `json:"fullname"`
	Age                    *int     `json:"age"`
	Gender                 *string  `json:"gender"`
	ProcedureType          *string  `json:"proceduretype"`
	HealthIssue            *string  `json:"healthissue"`
	PreviousAnxietyHistory *string  `json:"previousanxietyhistory"`
	CreatedAt              string   `json:"created_at"`
	LatestAnxietyScore     *float64 `json:"latest_anxiety_score"`
	LatestAnxietyLevel     *string  `json:"latest_anxiety_level"`
	LatestDominantEmotion  *string  `json:"latest_dominant_emotion"`
	LastAssessmentDate     *string  `json:"last_assessment_date"`
}
