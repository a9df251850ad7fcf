// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sportconnect-api/config"
	"sportconnect-api/controllers"
	"sportconnect-api/middleware"
	"sportconnect-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	userController := controllers.NewUserController(db)
	sportController := controllers.NewSportController()
	eventController := controllers.NewEventController(db)
	messageController := controllers.NewMessageController(db)
	friendController := controllers.NewFriendController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	api := r.Group("/api")

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/me", middleware.AuthMiddleware(cfg.JWTSecret), authController.Me)
	}

	// Sports catalog (public)
	api.GET("/sports", sportController.GetSports)

	// Event listing and detail are public, everything mutating is protected
	api.GET("/events", eventController.GetEvents)
	api.GET("/events/:id", eventController.GetEvent)

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		users := protected.Group("/users")
		{
			users.PUT("/profile", userController.UpdateProfile)
			users.GET("/stats", userController.GetStats)
		}

		events := protected.Group("/events")
		{
			events.POST("", eventController.CreateEvent)
			events.POST("/:id/join", eventController.JoinEvent)
			events.POST("/:id/leave", eventController.LeaveEvent)
			events.GET("/:id/messages", messageController.GetMessages)
			events.POST("/:id/messages", messageController.CreateMessage)
		}

		friends := protected.Group("/friends")
		{
			friends.GET("", friendController.GetFriends)
			friends.GET("/suggestions", friendController.GetSuggestions)
			friends.POST("/:id", friendController.AddFriend)
			friends.DELETE("/:id", friendController.RemoveFriend)
		}
	}
}
