package routes

import (
	"anxisense_back_end_go/services"
	"anxisense_back_end_go/store"

	"github.com/gin-gonic/gin"
)

func SetupPatientRoutes(r *gin.Engine, st *store.Store) {
	r.POST("/api/patients", func(c *gin.Context) {
		services.CreatePatient(c, st)
	})

	r.GET("/api/patients", func(c *gin.Context) {
		services.GetPatients(c, st)
	})
}
