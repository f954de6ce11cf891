package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/gittydia/IMS-BAO/internal/audit"
	"github.com/gittydia/IMS-BAO/internal/auth"
	"github.com/gittydia/IMS-BAO/internal/config"
	"github.com/gittydia/IMS-BAO/internal/db"
	"github.com/gittydia/IMS-BAO/internal/fulfillment"
	api "github.com/gittydia/IMS-BAO/internal/http"
	"github.com/gittydia/IMS-BAO/internal/http/handlers"
	rl "github.com/gittydia/IMS-BAO/internal/http/rate_limiter"
	"github.com/gittydia/IMS-BAO/internal/repo"
	"github.com/gittydia/IMS-BAO/internal/session"
)

// @title IMS-BAO API
// @version 1.0
// @description Campus store inventory and order fulfillment backend.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	auth.SetSecret(cfg.JWTSecret)

	go rl.StartVisitorCleanupLoop()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	defer rdb.Close()

	sessions := session.NewRedisStore(rdb, cfg.SessionTTL)
	handlers.SetSessionStore(sessions)
	api.SetSessionStore(sessions)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatal("❌ Could not migrate database:", err)
	}

	activityRepo := repo.NewPostgresActivityRepository(database)
	trail := audit.NewRecorder(activityRepo)
	coordinator := fulfillment.NewCoordinator(repo.NewPostgresFulfillmentStore(database), trail)

	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetOrderRepo(repo.NewPostgresOrderRepository(database))
	handlers.SetStudentRepo(repo.NewPostgresStudentRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetTransactionRepo(repo.NewPostgresTransactionRepository(database))
	handlers.SetMetricsRepo(repo.NewPostgresMetricsRepository(database))
	handlers.SetCoordinator(coordinator)
	handlers.SetAuditRecorder(trail)

	r := api.NewRouter()
	log.Printf("✅ Server running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
