package routes

import (
	"github.com/jamiepatterson123/leenaai-sub001/controllers"
	"github.com/jamiepatterson123/leenaai-sub001/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.GET("/targets", controllers.GetTargets)
		user.POST("/targets/recalculate", controllers.RecalculateTargets)
		user.GET("/notifications/whatsapp", controllers.GetWhatsAppPreference)
		user.PUT("/notifications/whatsapp", controllers.UpdateWhatsAppPreference)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
		user.GET("/notifications/alerts", controllers.ListAlerts)
	}

	// Food analysis (photo / text / voice)
	food := r.Group("/food")
	food.Use(middlewares.AuthMiddleware())
	{
		food.POST("/analyze", controllers.AnalyzeFoodImage)
		food.POST("/analyze-text", controllers.AnalyzeFoodText)
		food.POST("/analyze-voice", controllers.AnalyzeFoodVoice)
	}

	// Diary
	diary := r.Group("/diary")
	diary.Use(middlewares.AuthMiddleware())
	{
		diary.POST("/food", controllers.LogFood)
		diary.POST("/food/manual", controllers.LogManualFood)
		diary.GET("/food", controllers.ListFood)
		diary.PUT("/food/:id", controllers.UpdateFood)
		diary.DELETE("/food/:id", controllers.DeleteFood)
		diary.POST("/weight", controllers.LogWeight)
		diary.GET("/weight", controllers.ListWeight)
	}

	// Reports
	reports := r.Group("/reports")
	reports.Use(middlewares.AuthMiddleware())
	{
		reports.GET("/daily", controllers.GetDailyReport)
		reports.GET("/history", controllers.GetReportHistory)
	}

	// Push device registration
	devices := r.Group("/devices")
	devices.Use(middlewares.AuthMiddleware())
	{
		devices.POST("", controllers.RegisterDevice)
	}

	// Coach
	coach := r.Group("/coach")
	coach.Use(middlewares.AuthMiddleware())
	{
		coach.GET("/suggestions", controllers.GetCoachSuggestions)
	}

	// Realtime updates
	r.GET("/ws", middlewares.AuthMiddleware(), controllers.RealtimeSocket)

	return r
}
