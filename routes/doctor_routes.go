package routes

import (
	"anxisense_back_end_go/config"
	"anxisense_back_end_go/services"
	"anxisense_back_end_go/store"

	"github.com/gin-gonic/gin"
)

func SetupDoctorRoutes(r *gin.Engine, st *store.Store, mailer *services.Mailer, cfg *config.Config) {
	r.POST("/api/doctor/register", func(c *gin.Context) {
		services.RegisterDoctor(c, st)
	})

	r.POST("/api/doctor/send-otp", func(c *gin.Context) {
		services.SendOTP(c, st, mailer, cfg)
	})

	r.POST("/api/doctor/verify-otp", func(c *gin.Context) {
		services.VerifyOTP(c, st, cfg)
	})

	r.GET("/api/doctor/profile", func(c *gin.Context) {
		services.GetDoctorProfile(c, st)
	})

	r.PUT("/api/doctor/profile", func(c *gin.Context) {
		services.UpdateDoctorProfile(c, st)
	})

	r.GET("/api/doctor/dashboard-stats", func(c *gin.Context) {
		services.GetDashboardStats(c, st)
	})
}
