package main

import (
	"fmt"
	"log"

	"github.com/MarcoT95/static/configs"
	"github.com/MarcoT95/static/middlewares"
	"github.com/MarcoT95/static/repository"
	"github.com/MarcoT95/static/routes"
	"github.com/MarcoT95/static/services"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	if err := configs.SetupLogging(cfg); err != nil {
		log.Fatalf("setup logging failed: %v", err)
	}

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedCatalog(); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}

	// mirror the log directory into the DB and drop expired files
	logSvc := services.NewLogFileService(repository.NewLogFileRepository(db))
	removed, err := configs.SweepOldLogs(cfg)
	if err != nil {
		configs.ErrorLog().Println("log sweep failed:", err)
	}
	if err := logSvc.Prune(removed); err != nil {
		configs.ErrorLog().Println("log index prune failed:", err)
	}
	if err := logSvc.SyncDir(cfg.LogsDir); err != nil {
		configs.ErrorLog().Println("log index sync failed:", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
