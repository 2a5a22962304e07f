package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"anxisense_back_end_go/config"
	"anxisense_back_end_go/db"
	"anxisense_back_end_go/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Runs against the database named by TEST_DATABASE_*, like the store tests.
func newDoctorTestDeps(t *testing.T) (*store.Store, *config.Config) {
	t.Helper()
	host := os.Getenv("TEST_DATABASE_HOST")
	if host == "" {
		t.Skip("TEST_DATABASE_HOST not set; skipping doctor flow integration tests")
	}

	cfg := &config.Config{
		JWTSecret: "test-secret",
		OTPTTL:    10 * time.Minute,
		Database: config.DatabaseConfig{
			Host:     host,
			Port:     testEnvOr("TEST_DATABASE_PORT", "5432"),
			User:     testEnvOr("TEST_DATABASE_USER", "postgres"),
			Password: os.Getenv("TEST_DATABASE_PASSWORD"),
			Name:     testEnvOr("TEST_DATABASE_NAME", "anxisense_test"),
		},
	}

	pool, err := db.InitDatabase(cfg)
	if err != nil {
		t.Fatalf("could not connect to test database: %v", err)
	}
	t.Cleanup(pool.Close)
	return store.New(pool), cfg
}

func testEnvOr(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func TestVerifyOTPIssuesTokenAndClearsChallenge(t *testing.T) {
	st, cfg := newDoctorTestDeps(t)
	ctx := context.Background()

	email := fmt.Sprintf("verify%d@example.com", time.Now().UnixNano())
	if _, err := st.RegisterDoctor(ctx, email, "verifier"); err != nil {
		t.Fatalf("RegisterDoctor() error = %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.SetOTP(ctx, email, string(hash), time.Now().Add(cfg.OTPTTL)); err != nil {
		t.Fatalf("SetOTP() error = %v", err)
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/doctor/verify-otp", func(c *gin.Context) {
		VerifyOTP(c, st, cfg)
	})

	body := fmt.Sprintf(`{"email":%q,"otp":"123456"}`, email)
	req := httptest.NewRequest(http.MethodPost, "/api/doctor/verify-otp", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Token == "" {
		t.Errorf("verification should return a session token, body %s", w.Body.String())
	}

	// The challenge is consumed only after the token was issued.
	doctor, err := st.GetDoctorByEmail(ctx, email)
	if err != nil {
		t.Fatalf("GetDoctorByEmail() error = %v", err)
	}
	if doctor.OTPHash != nil || doctor.OTPExpiresAt != nil {
		t.Error("OTP challenge should be cleared after successful verification")
	}

	// A replay of the same code is rejected.
	req = httptest.NewRequest(http.MethodPost, "/api/doctor/verify-otp", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("replayed OTP status = %d, want 401", w.Code)
	}
}
