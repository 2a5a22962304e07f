package services

import (
	"log"
	"net/http"
	"strconv"

	"anxisense_back_end_go/models"
	"anxisense_back_end_go/responses"
	"anxisense_back_end_go/store"

	"github.com/gin-gonic/gin"
)

// SaveAssessment appends an assessment for a patient.
func SaveAssessment(c *gin.Context, st *store.Store) {
	var assessment models.NewAssessment
	if err := c.ShouldBindJSON(&assessment); err != nil {
		responses.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if assessment.PatientID == nil || assessment.DoctorID == nil ||
		assessment.AnxietyScore == nil || assessment.AnxietyLevel == nil {
		responses.Fail(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	id, err := st.CreateAssessment(c.Request.Context(), assessment)
	if err != nil {
		log.Printf("Error saving assessment: %v", err)
		responses.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Assessment saved successfully",
		"id":      id,
	})
}

// GetAssessments returns assessment history filtered by patient or doctor,
// newest first, capped at 50 rows. patientid takes precedence over doctorid.
func GetAssessments(c *gin.Context, st *store.Store) {
	doctorParam := c.Query("doctorid")
	patientParam := c.Query("patientid")

	if doctorParam == "" && patientParam == "" {
		responses.Fail(c, http.StatusBadRequest, "Either doctorid or patientid is required")
		return
	}

	var doctorID, patientID *int64
	if patientParam != "" {
		id, err := strconv.ParseInt(patientParam, 10, 64)
		if err != nil {
			responses.Fail(c, http.StatusBadRequest, "Invalid patientid format")
			return
		}
		patientID = &id
	} else {
		id, err := strconv.ParseInt(doctorParam, 10, 64)
		if err != nil {
			responses.Fail(c, http.StatusBadRequest, "Invalid doctorid format")
			return
		}
		doctorID = &id
	}

	assessments, err := st.ListAssessments(c.Request.Context(), doctorID, patientID)
	if err != nil {
		log.Printf("Error listing assessments: %v", err)
		responses.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": assessments})
}
