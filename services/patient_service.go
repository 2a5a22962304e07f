package services

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"anxisense_back_end_go/models"
	"anxisense_back_end_go/responses"
	"anxisense_back_end_go/store"

	"github.com/gin-gonic/gin"
)

// CreatePatient registers a patient under a doctor.
func CreatePatient(c *gin.Context, st *store.Store) {
	var patient models.NewPatient
	if err := c.ShouldBindJSON(&patient); err != nil {
		responses.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if patient.DoctorID == nil {
		responses.Fail(c, http.StatusBadRequest, "doctorid is required")
		return
	}
	if strings.TrimSpace(patient.FullName) == "" {
		responses.Fail(c, http.StatusBadRequest, "fullname is required")
		return
	}

	id, err := st.CreatePatient(c.Request.Context(), patient)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			responses.FailWithError(c, http.StatusConflict, "Database integrity error", err)
			return
		}
		log.Printf("Error creating patient: %v", err)
		responses.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Patient added successfully",
		"data": gin.H{
			"id":                     id,
			"patientid":              patient.PatientID,
			"doctorid":               patient.DoctorID,
			"fullname":               patient.FullName,
			"age":                    patient.Age,
			"gender":                 patient.Gender,
			"proceduretype":          patient.ProcedureType,
			"healthissue":            patient.HealthIssue,
			"previousanxietyhistory": patient.PreviousAnxietyHistory,
		},
	})
}

// GetPatients lists a doctor's patients with their latest assessment attached.
func GetPatients(c *gin.Context, st *store.Store) {
	doctorParam := c.Query("doctorid")
	if doctorParam == "" {
		responses.Fail(c, http.StatusBadRequest, "doctorid is required")
		return
	}

	doctorID, err := strconv.ParseInt(doctorParam, 10, 64)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, "Invalid doctorid format")
		return
	}

	patients, err := st.ListPatients(c.Request.Context(), doctorID)
	if err != nil {
		log.Printf("Error listing patients for doctor %d: %v", doctorID, err)
		responses.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": patients})
}
