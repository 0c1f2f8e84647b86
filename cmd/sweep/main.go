package main

import (
	"flag"
	"log"
	"time"

	"fitquest/config"
	"fitquest/db"
	"fitquest/internal/cache"
	"fitquest/services"
)

// Runs every registered sweep once and exits. Useful for cron-style
// deployments and for poking at a live database during development.
func main() {
	configPath := flag.String("config", "./config/config.prod.yml", "path to config file")
	at := flag.String("at", "", "clock override for the sweeps, RFC3339 (default: now)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if cfg.Redis.Addr != "" {
		if err := cache.InitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
			log.Printf("Redis unavailable, continuing without cache: %v", err)
		}
	}

	now := time.Now().UTC()
	if *at != "" {
		parsed, err := time.Parse(time.RFC3339, *at)
		if err != nil {
			log.Fatalf("Invalid -at value: %v", err)
		}
		now = parsed.UTC()
	}

	scheduler, err := services.NewScheduler()
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	scheduler.Register("streak-break", time.Minute, services.RunStreakBreakSweep)
	scheduler.Register("challenge-resolution", time.Minute, services.RunChallengeResolutionSweep)
	scheduler.Register("notification-milestones", time.Minute, services.RunNotificationMilestoneSweep)

	scheduler.RunAllOnce(now)
}
