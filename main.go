package main

import (
	"log"
	"net/http"
	"os"

	"premium-blog-api/billing"
	"premium-blog-api/cache"
	"premium-blog-api/config"
	"premium-blog-api/handlers"
	"premium-blog-api/metrics"
	"premium-blog-api/middleware"
	"premium-blog-api/repositories"
	"premium-blog-api/security"
	"premium-blog-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize infrastructure
	db := config.InitDB()
	redisClient := config.InitRedis()
	snapshotCache := cache.New(redisClient)
	billingCfg := config.LoadBillingConfig()
	billingClient := billing.NewClient(billingCfg.APIURL, billingCfg.APIKey)
	collector := metrics.NewCollector()

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	uploadBaseURL := os.Getenv("UPLOAD_BASE_URL")
	if uploadBaseURL == "" {
		uploadBaseURL = "/uploads"
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	subRepo := repositories.NewSubscriptionRepository(db)

	// Initialize services
	tokenStore := services.NewTokenStore(snapshotCache)
	authService := services.NewAuthService(userRepo, tokenStore)
	accountService := services.NewAccountService(userRepo, subRepo, billingClient, snapshotCache)
	postService := services.NewPostService(postRepo, security.NewContentSanitizer(), collector)
	billingService := services.NewBillingService(subRepo, billingClient, billingCfg, snapshotCache)
	assetService := services.NewAssetService(uploadDir, uploadBaseURL)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	accountHandler := handlers.NewAccountHandler(accountService)
	postHandler := handlers.NewPostHandler(postService, accountService)
	assetHandler := handlers.NewAssetHandler(assetService)
	billingHandler := handlers.NewBillingHandler(billingService, accountService, billingCfg)

	// Setup router
	router := gin.Default()
	router.Use(collector.Middleware())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
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

	// Prometheus scrape endpoint
	router.GET("/metrics", collector.Handler())

	// Uploaded assets
	router.Static("/uploads", uploadDir)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Billing provider callbacks (secret-authenticated)
		v1.POST("/webhooks/billing", billingHandler.Webhook)

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware(tokenStore))
		{
			protected.POST("/auth/logout", authHandler.Logout)

			// Profile
			protected.GET("/profile", accountHandler.GetProfile)
			protected.POST("/profile/refresh", accountHandler.Refresh)
			protected.POST("/profile/premium", accountHandler.ElevateToPremium)

			// Posts
			posts := protected.Group("/posts")
			{
				posts.POST("", postHandler.CreatePost)
				posts.GET("/mine", postHandler.GetMyPosts)
				posts.PUT("/:id", postHandler.UpdatePost)
				posts.DELETE("/:id", postHandler.DeletePost)
			}

			// Assets
			protected.POST("/assets", assetHandler.Upload)

			// Billing
			protected.POST("/billing/checkout", billingHandler.Checkout)
		}

		// Public post routes (premium content gated per viewer)
		public := v1.Group("/public")
		public.Use(middleware.OptionalAuthMiddleware(tokenStore))
		{
			public.GET("/posts", postHandler.GetPublicPosts)
			public.GET("/posts/search", postHandler.SearchPosts)
			public.GET("/posts/:id", postHandler.GetPublicPost)
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
