package main

import (
	"fmt"
	"log"
	"net/http"

	"chatline/backend/internal/auth"
	"chatline/backend/internal/config"
	"chatline/backend/internal/database"
	"chatline/backend/internal/handler"
	"chatline/backend/internal/repository"
	"chatline/backend/internal/service"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "chatline/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Chatline API
// @version         1.0
// @description     Direct messaging with friend requests and blocking.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	userRepo := repository.NewUserRepository(database.DB)
	relRepo := repository.NewRelationshipRepository(database.DB)
	msgRepo := repository.NewMessageRepository(database.DB)

	relationshipService := service.NewRelationshipService(relRepo, userRepo)
	messageService := service.NewMessageService(msgRepo, userRepo, relationshipService)
	userService := service.NewUserService(userRepo)

	userHandler := handler.NewUserHandler(userService)
	relationHandler := handler.NewRelationHandler(relationshipService)
	messageHandler := handler.NewMessageHandler(messageService)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API routes
	api := router.Group("/api")
	{
		// Auth routes
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", userHandler.RegisterUser)
			authRoutes.POST("/login", userHandler.LoginUser)
		}

		// User routes (protected)
		userRoutes := api.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/me", userHandler.GetMe)
			userRoutes.PUT("/me", userHandler.UpdateMe)
			userRoutes.GET("/:id", userHandler.GetUserByID)

			// Friendship routes
			userRoutes.GET("/friends", relationHandler.GetFriends)
			userRoutes.GET("/friends/requests", relationHandler.GetRequests)
			userRoutes.POST("/friends/requests/add/:id", relationHandler.SendRequest)
			userRoutes.PUT("/friends/requests/accept/:id", relationHandler.AcceptRequest)
			userRoutes.PUT("/friends/requests/refuse/:id", relationHandler.RefuseRequest)
			userRoutes.PUT("/friends/block/:id", relationHandler.BlockUser)
			userRoutes.DELETE("/friends/:id", relationHandler.RemoveRelation)
		}

		// Message routes (protected)
		messageRoutes := api.Group("/messages")
		messageRoutes.Use(auth.AuthMiddleware())
		{
			messageRoutes.POST("", messageHandler.SendMessage)
			messageRoutes.GET("/:partnerId", messageHandler.GetConversation)
			messageRoutes.PUT("/:id", messageHandler.EditMessage)
			messageRoutes.DELETE("/:id", messageHandler.DeleteMessage)
		}
	}

	fmt.Printf("Server is running on %s\n", config.AppConfig.ServerAddr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ServerAddr))
}
