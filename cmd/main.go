package main

import (
	"os"

	"github.com/Dacosmicgiant/calorie-tracker/config"
	"github.com/Dacosmicgiant/calorie-tracker/logger"
	"github.com/Dacosmicgiant/calorie-tracker/routes"
)

func main() {
	log, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db := config.InitDB(log)
	r := routes.SetupRouter(db, log)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	log.Info("starting server", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("server exited", "err", err)
	}
}
