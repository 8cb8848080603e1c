package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/mahmutsamiyagmur/flightsystem/internal/adapters/cache"
	"github.com/mahmutsamiyagmur/flightsystem/internal/adapters/repositories"
	"github.com/mahmutsamiyagmur/flightsystem/internal/api"
	"github.com/mahmutsamiyagmur/flightsystem/internal/config"
	"github.com/mahmutsamiyagmur/flightsystem/internal/platform/db"
	"github.com/mahmutsamiyagmur/flightsystem/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis) behind ports and starts the HTTP server.
func main() {
	config.Load()

	databaseURL := config.MustGet("DATABASE_URL")
	redisAddr := config.Get("REDIS_ADDR", "localhost:6379")
	redisDB := config.GetInt("REDIS_DB", 0)
	cacheTTL := config.GetDuration("ROUTE_CACHE_TTL", 0) // 0 = no expiry; invalidation is explicit
	port := config.Get("PORT", "8080")

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	ctx := context.Background()
	if err := repositories.InitSchema(ctx, database); err != nil {
		log.Fatal(err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: config.Get("REDIS_PASSWORD", ""),
		DB:       redisDB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("verify redis connection to %s: %v", redisAddr, err)
	}

	locationRepo := repositories.NewPostgresLocationRepository(database)
	transportationRepo := repositories.NewPostgresTransportationRepository(database)
	routeCache := cache.NewRedisRouteCache(redisClient, cacheTTL)

	composer := services.NewRouteComposer(locationRepo, transportationRepo)
	finder := services.NewCachedRouteFinder(composer, routeCache)
	locationSvc := services.NewLocationService(locationRepo, routeCache)
	transportationSvc := services.NewTransportationService(transportationRepo, locationRepo, routeCache)

	router := api.NewRouter(finder, locationSvc, transportationSvc)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
