package main

import (
	"log"
	"net/http"
	"os"

	"tiny-cms/config"
	"tiny-cms/handlers"
	"tiny-cms/middleware"
	"tiny-cms/repositories"
	"tiny-cms/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	auditRepo := repositories.NewAuditRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(db)
	themeService := services.NewThemeService(db)
	auditService := services.NewAuditService(auditRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService)
	publicHandler := handlers.NewPublicHandler(articleService, themeService)
	themeHandler := handlers.NewThemeHandler(themeService)
	auditHandler := handlers.NewAuditHandler(auditService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Articles
			articles := protected.Group("/articles")
			{
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("", articleHandler.GetArticles)
				articles.GET("/:slug", articleHandler.GetArticle)
				articles.PATCH("/:slug", articleHandler.UpdateArticle)
				articles.DELETE("/:slug", articleHandler.DeleteArticle)
				articles.POST("/:slug/approve", articleHandler.ApproveArticle)
				articles.POST("/:slug/publish", articleHandler.PublishArticle)
			}

			// Theme (writes only; reads are public)
			protected.PATCH("/theme", themeHandler.UpdateTheme)

			// Audit log
			protected.GET("/audit", auditHandler.GetAuditLogs)
		}

		// Public read-only routes (published content + theme)
		v1.GET("/theme", publicHandler.GetTheme)
		public := v1.Group("/public")
		{
			public.GET("/articles", publicHandler.GetPublishedArticles)
			public.GET("/articles/:slug", publicHandler.GetPublishedArticle)
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
