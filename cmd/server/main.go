package main

import (
	"log"
	"strconv"
	"time"

	"fitquest/config"
	"fitquest/db"
	"fitquest/internal/cache"
	"fitquest/middlewares"
	"fitquest/routes"
	"fitquest/services"
	"fitquest/utils"
	"fitquest/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration from the specified YAML file
	cfg, err := config.LoadConfig("./config/config.prod.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to MongoDB using the URI from the configuration
	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	// Redis is optional; the engine degrades to Mongo-only guards.
	if cfg.Redis.Addr != "" {
		if err := cache.InitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
			log.Printf("Redis unavailable, continuing without cache: %v", err)
		} else {
			log.Println("Connected to Redis")
		}
	}

	// Seed starter data
	utils.SeedChallenges()
	utils.PopulateTestUsers()

	// Periodic sweeps: the scheduler owns streak-break detection,
	// challenge resolution and milestone notifications.
	scheduler, err := services.NewScheduler()
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	scheduler.Register("streak-break",
		time.Duration(cfg.Sweeps.StreakBreakSeconds)*time.Second, services.RunStreakBreakSweep)
	scheduler.Register("challenge-resolution",
		time.Duration(cfg.Sweeps.ChallengeResolutionSeconds)*time.Second, services.RunChallengeResolutionSweep)
	scheduler.Register("notification-milestones",
		time.Duration(cfg.Sweeps.NotificationSeconds)*time.Second, services.RunNotificationMilestoneSweep)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()

	// Set up the Gin router and configure routes
	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// Set trusted proxies (adjust as needed)
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	// Protected routes (JWT auth)
	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware(cfg.JWT.Secret))
	{
		auth.POST("/checkin", routes.CheckInRouteHandler)
		auth.GET("/badges/status", routes.GetBadgeStatusRouteHandler)

		auth.GET("/user/fetchprofile", routes.GetProfileRouteHandler)
		auth.PUT("/user/updateprofile", routes.UpdateProfileRouteHandler)
		auth.POST("/user/buddy", routes.SetBuddyRouteHandler)

		auth.GET("/leaderboard/duo", routes.GetDuoLeaderboardRouteHandler)

		routes.SetupChallengeRoutes(auth)
		routes.SetupNotificationRoutes(auth)

		// WebSocket gamification event feed
		auth.GET("/ws", websocket.EventsHandler)
	}

	// Admin routes require the admin claim
	admin := router.Group("/")
	admin.Use(middlewares.AdminMiddleware(cfg.JWT.Secret))
	{
		routes.SetupAdminRoutes(admin)
	}

	return router
}
