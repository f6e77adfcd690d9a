package main

import (
	"fmt"
	"log"
	"time"

	"skillswap-be/internal/config"
	"skillswap-be/internal/database"
	"skillswap-be/internal/http/router"
	"skillswap-be/internal/models"
	"skillswap-be/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.ConnectSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal("failed connect db:", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		log.Fatal("failed migrate:", err)
	}

	st := store.New(db, store.Options{
		MeetingBaseURL: cfg.MeetingBaseURL,
		RingTimeout:    time.Duration(cfg.RingTimeoutSec) * time.Second,
	})

	// The app still works without the starter rooms, so seeding failures
	// only get logged.
	if err := st.SeedDefaultGroups(); err != nil {
		log.Println("failed seed groups:", err)
	}

	r := router.New(st, cfg)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Println("listening on", addr)
	log.Fatal(r.Run(addr))
}
