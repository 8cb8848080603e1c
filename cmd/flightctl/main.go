package main

import (
	"context"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/mahmutsamiyagmur/flightsystem/internal/adapters/cache"
	"github.com/mahmutsamiyagmur/flightsystem/internal/adapters/repositories"
	"github.com/mahmutsamiyagmur/flightsystem/internal/config"
	"github.com/mahmutsamiyagmur/flightsystem/internal/platform/db"
)

var (
	locationsPath       string
	transportationsPath string
)

var rootCmd = &cobra.Command{
	Use:   "flightctl",
	Short: "Admin tasks for the flight route service",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open(config.MustGet("DATABASE_URL"))
		if err != nil {
			return err
		}
		defer database.Close()

		log.Println("Initializing database schema...")
		if err := repositories.InitSchema(cmd.Context(), database); err != nil {
			return err
		}
		log.Println("Schema ready.")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load locations and transportations from CSV seed files",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open(config.MustGet("DATABASE_URL"))
		if err != nil {
			return err
		}
		defer database.Close()

		if err := repositories.InitSchema(cmd.Context(), database); err != nil {
			return err
		}

		log.Printf("Seeding from %s and %s...", locationsPath, transportationsPath)
		if err := repositories.SeedFromCSV(cmd.Context(), database, locationsPath, transportationsPath); err != nil {
			return err
		}
		log.Println("Seeding complete.")

		// Seeded data changes routing inputs, so cached routes must go.
		return flushRoutes(cmd.Context())
	},
}

var flushCacheCmd = &cobra.Command{
	Use:   "flush-cache",
	Short: "Drop every cached route entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return flushRoutes(cmd.Context())
	},
}

func flushRoutes(ctx context.Context) error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Get("REDIS_ADDR", "localhost:6379"),
		Password: config.Get("REDIS_PASSWORD", ""),
		DB:       config.GetInt("REDIS_DB", 0),
	})
	defer client.Close()

	routeCache := cache.NewRedisRouteCache(client, 0)
	if err := routeCache.InvalidateAll(ctx); err != nil {
		return err
	}
	log.Println("Route cache flushed.")
	return nil
}

func init() {
	seedCmd.Flags().StringVar(&locationsPath, "locations", "data/seeds/locations.csv", "locations seed CSV")
	seedCmd.Flags().StringVar(&transportationsPath, "transportations", "data/seeds/transportations.csv", "transportations seed CSV")

	rootCmd.AddCommand(initCmd, seedCmd, flushCacheCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
