package main

import (
	"strings"

	"optica_backend/internal/database"
	"optica_backend/internal/repositories"
	"optica_backend/internal/router"
	"optica_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env is optional, real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, relying on environment variables")
	}

	utils.InitLogger()
	utils.InitJWTSecret(utils.Getenv("JWT_SECRET", ""))

	store, err := buildStore()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize storage")
	}

	engine := gin.New()
	engine.Use(utils.GinLogger())
	engine.Use(gin.Recovery())
	engine.Use(cors.New(corsConfig()))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	router.Setup(engine, store)

	port := utils.Getenv("PORT", "8080")
	log.Info().Str("port", port).Msg("Starting server")
	if err := engine.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

// buildStore selects the storage backend. STORAGE_DRIVER=postgres uses
// the database, anything else falls back to the in-memory store.
func buildStore() (*repositories.Store, error) {
	driver := utils.Getenv("STORAGE_DRIVER", "memory")
	if driver != "postgres" {
		log.Info().Str("driver", driver).Msg("Using in-memory storage")
		return repositories.NewMemoryStore(), nil
	}

	db, err := database.InitDB(database.Config{
		Host:       utils.Getenv("DB_HOST", "localhost"),
		Port:       utils.Getenv("DB_PORT", "5432"),
		User:       utils.Getenv("DB_USER", "postgres"),
		Password:   utils.Getenv("DB_PASSWORD", "postgres"),
		DBName:     utils.Getenv("DB_NAME", "optica"),
		SSLMode:    utils.Getenv("DB_SSLMODE", "disable"),
		SchemaPath: utils.Getenv("DB_SCHEMA_PATH", ""),
	})
	if err != nil {
		return nil, err
	}

	log.Info().Msg("Using PostgreSQL storage")
	return repositories.NewPostgresStore(db), nil
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")

	origins := utils.Getenv("CORS_ALLOWED_ORIGINS", "*")
	if origins == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(origins, ",")
	}
	return cfg
}
