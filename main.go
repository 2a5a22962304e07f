package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"anxisense_back_end_go/classifier"
	"anxisense_back_end_go/config"
	"anxisense_back_end_go/db"
	"anxisense_back_end_go/routes"
	"anxisense_back_end_go/services"
	"anxisense_back_end_go/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	// Initialize database
	conn, err := db.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer conn.Close()

	st := store.New(conn)
	clf := classifier.New(cfg.Classifier.URL, cfg.Classifier.Timeout)
	mailer := services.NewMailer(cfg)

	r := gin.Default()

	corsConfig := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsConfig))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "AnxiSense Backend Running"})
	})

	// Initialize routes
	routes.SetupAnalysisRoutes(r, clf, cfg.UploadDir)
	routes.SetupPatientRoutes(r, st)
	routes.SetupAssessmentRoutes(r, st)
	routes.SetupDoctorRoutes(r, st, mailer, cfg)

	// Start server
	r.Run(":" + cfg.Port)
}
