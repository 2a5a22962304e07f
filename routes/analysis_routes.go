package routes

import (
	"anxisense_back_end_go/classifier"
	"anxisense_back_end_go/services"

	"github.com/gin-gonic/gin"
)

func SetupAnalysisRoutes(r *gin.Engine, clf *classifier.Client, uploadDir string) {
	r.POST("/api/analyze", func(c *gin.Context) {
		services.AnalyzeFace(c, clf, uploadDir)
	})
}
