package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/wferreiracoriolano/barbearia-api/internal/config"
	dbpkg "github.com/wferreiracoriolano/barbearia-api/internal/db"
	"github.com/wferreiracoriolano/barbearia-api/internal/middleware"
	"github.com/wferreiracoriolano/barbearia-api/internal/routes"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if err := dbpkg.Seed(db, cfg); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
