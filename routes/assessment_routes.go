package routes

import (
	"anxisense_back_end_go/services"
	"anxisense_back_end_go/store"

	"github.com/gin-gonic/gin"
)

func SetupAssessmentRoutes(r *gin.Engine, st *store.Store) {
	r.POST("/api/assessments", func(c *gin.Context) {
		services.SaveAssessment(c, st)
	})

	r.GET("/api/assessments", func(c *gin.Context) {
		services.GetAssessments(c, st)
	})
}
