package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"anxisense_back_end_go/config"
	"anxisense_back_end_go/db"
	"anxisense_back_end_go/models"
)

// The store tests run against a real PostgreSQL database pointed at by the
// TEST_DATABASE_* variables and are skipped when none is configured.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	host := os.Getenv("TEST_DATABASE_HOST")
	if host == "" {
		t.Skip("TEST_DATABASE_HOST not set; skipping store integration tests")
	}

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Host:     host,
			Port:     envOr("TEST_DATABASE_PORT", "5432"),
			User:     envOr("TEST_DATABASE_USER", "postgres"),
			Password: os.Getenv("TEST_DATABASE_PASSWORD"),
			Name:     envOr("TEST_DATABASE_NAME", "anxisense_test"),
		},
	}

	pool, err := db.InitDatabase(cfg)
	if err != nil {
		t.Fatalf("could not connect to test database: %v", err)
	}
	t.Cleanup(pool.Close)
	return New(pool)
}

func envOr(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func uniqueEmail() string {
	return fmt.Sprintf("doc%d@example.com", time.Now().UnixNano())
}

func registerTestDoctor(t *testing.T, s *Store) int64 {
	t.Helper()
	id, err := s.RegisterDoctor(context.Background(), uniqueEmail(), "testdoctor")
	if err != nil {
		t.Fatalf("RegisterDoctor() error = %v", err)
	}
	return id
}

func createTestPatient(t *testing.T, s *Store, doctorID int64, fullname string) int64 {
	t.Helper()
	id, err := s.CreatePatient(context.Background(), models.NewPatient{
		DoctorID: &doctorID,
		FullName: fullname,
	})
	if err != nil {
		t.Fatalf("CreatePatient() error = %v", err)
	}
	return id
}

func addTestAssessment(t *testing.T, s *Store, patientID, doctorID int64, score float64, level, emotion string) int64 {
	t.Helper()
	id, err := s.CreateAssessment(context.Background(), models.NewAssessment{
		PatientID:       &patientID,
		DoctorID:        &doctorID,
		AnxietyScore:    &score,
		AnxietyLevel:    &level,
		DominantEmotion: &emotion,
	})
	if err != nil {
		t.Fatalf("CreateAssessment() error = %v", err)
	}
	return id
}

func setAssessmentCreatedAt(t *testing.T, s *Store, assessmentID int64, createdAt time.Time) {
	t.Helper()
	_, err := s.pool.Exec(context.Background(),
		"UPDATE assessments SET created_at = $2 WHERE id = $1",
		assessmentID, createdAt,
	)
	if err != nil {
		t.Fatalf("could not set assessment timestamp: %v", err)
	}
}

func TestRegisterDoctorDuplicate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	email := uniqueEmail()

	if _, err := s.RegisterDoctor(ctx, email, "first"); err != nil {
		t.Fatalf("RegisterDoctor() error = %v", err)
	}
	if _, err := s.RegisterDoctor(ctx, email, "second"); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate RegisterDoctor() error = %v, want ErrConflict", err)
	}

	var count int
	err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM doctors WHERE email = $1", email).Scan(&count)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("duplicate registration created %d rows, want 1", count)
	}
}

func TestListPatientsLatestByMaxID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	doctorID := registerTestDoctor(t, s)
	patientID := createTestPatient(t, s, doctorID, "Mona Hassan")

	// The older row gets the newer timestamp: the higher id must still win.
	first := addTestAssessment(t, s, patientID, doctorID, 10, "Low", "sad")
	second := addTestAssessment(t, s, patientID, doctorID, 80, "High", "fear")
	now := time.Now().UTC().Truncate(time.Second)
	setAssessmentCreatedAt(t, s, first, now)
	setAssessmentCreatedAt(t, s, second, now.Add(-24*time.Hour))

	rows, err := s.ListPatients(ctx, doctorID)
	if err != nil {
		t.Fatalf("ListPatients() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("ListPatients() returned %d rows, want 1", len(rows))
	}

	row := rows[0]
	if row.LatestAnxietyScore == nil || *row.LatestAnxietyScore != 80 {
		t.Errorf("latest score = %v, want 80 (assessment with max id)", row.LatestAnxietyScore)
	}
	if row.LatestAnxietyLevel == nil || *row.LatestAnxietyLevel != "High" {
		t.Errorf("latest level = %v, want High", row.LatestAnxietyLevel)
	}
	if row.LatestDominantEmotion == nil || *row.LatestDominantEmotion != "fear" {
		t.Errorf("latest dominant emotion = %v, want fear", row.LatestDominantEmotion)
	}
}

func TestListPatientsNoAssessmentsNullLatest(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	doctorID := registerTestDoctor(t, s)
	createTestPatient(t, s, doctorID, "Omar Said")

	rows, err := s.ListPatients(ctx, doctorID)
	if err != nil {
		t.Fatalf("ListPatients() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("ListPatients() returned %d rows, want 1", len(rows))
	}

	row := rows[0]
	if row.LatestAnxietyScore != nil {
		t.Errorf("latest score = %v, want null for patient without assessments", *row.LatestAnxietyScore)
	}
	if row.LatestAnxietyLevel != nil {
		t.Errorf("latest level = %v, want null", *row.LatestAnxietyLevel)
	}
	if row.LatestDominantEmotion != nil {
		t.Errorf("latest dominant emotion = %v, want null", *row.LatestDominantEmotion)
	}
	if row.LastAssessmentDate != nil {
		t.Errorf("last assessment date = %v, want null", *row.LastAssessmentDate)
	}
}

func TestListAssessmentsCapAndOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	doctorID := registerTestDoctor(t, s)
	patientID := createTestPatient(t, s, doctorID, "Laila Farouk")

	base := time.Now().UTC().Truncate(time.Second).Add(-2 * time.Hour)
	for i := 0; i < 55; i++ {
		id := addTestAssessment(t, s, patientID, doctorID, 20, "Low", "neutral")
		setAssessmentCreatedAt(t, s, id, base.Add(time.Duration(i)*time.Second))
	}

	rows, err := s.ListAssessments(ctx, &doctorID, nil)
	if err != nil {
		t.Fatalf("ListAssessments() error = %v", err)
	}
	if len(rows) != 50 {
		t.Fatalf("ListAssessments() returned %d rows, want 50", len(rows))
	}

	// 'YYYY-MM-DD HH24:MI:SS' sorts lexically, so string comparison works.
	if want := base.Add(54 * time.Second).Format("2006-01-02 15:04:05"); rows[0].CreatedAt != want {
		t.Errorf("first row created_at = %s, want newest %s", rows[0].CreatedAt, want)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].CreatedAt <= rows[i].CreatedAt {
			t.Fatalf("rows not strictly descending at %d: %s <= %s", i, rows[i-1].CreatedAt, rows[i].CreatedAt)
		}
	}
}

func TestListAssessmentsPatientPrecedence(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	doctorID := registerTestDoctor(t, s)
	mine := createTestPatient(t, s, doctorID, "Patient One")
	other := createTestPatient(t, s, doctorID, "Patient Two")
	addTestAssessment(t, s, mine, doctorID, 40, "Moderate", "fear")
	addTestAssessment(t, s, other, doctorID, 10, "Low", "happy")

	rows, err := s.ListAssessments(ctx, &doctorID, &mine)
	if err != nil {
		t.Fatalf("ListAssessments() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("ListAssessments() returned %d rows, want 1 (patient filter wins)", len(rows))
	}
	if rows[0].PatientID != mine {
		t.Errorf("row patient_id = %d, want %d", rows[0].PatientID, mine)
	}
}
