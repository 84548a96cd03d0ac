package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tabeebak/clinic-scheduler/internal/config"
	"github.com/tabeebak/clinic-scheduler/internal/db"
	"github.com/tabeebak/clinic-scheduler/internal/jobs"
	"github.com/tabeebak/clinic-scheduler/internal/middleware"
	"github.com/tabeebak/clinic-scheduler/internal/notify"
	"github.com/tabeebak/clinic-scheduler/internal/otp"
	"github.com/tabeebak/clinic-scheduler/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()
	database := db.NewDB(cfg)

	rdb := otp.NewClient(cfg)
	otpStore := otp.NewStore(rdb)
	mailer := notify.NewSMTPSender(cfg)

	cron := jobs.StartReconciler(database)
	defer cron.Stop()

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.Register(r, database, cfg, otpStore, mailer)

	log.Printf("listening on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
