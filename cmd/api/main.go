package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/TurnosCloud/turnos-api/internal/config"
	dbpkg "github.com/TurnosCloud/turnos-api/internal/db"
	"github.com/TurnosCloud/turnos-api/internal/logging"
	"github.com/TurnosCloud/turnos-api/internal/middleware"
	"github.com/TurnosCloud/turnos-api/internal/notification"
	"github.com/TurnosCloud/turnos-api/internal/routes"
	"github.com/TurnosCloud/turnos-api/internal/timeutil"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New()
	defer log.Sync()

	db := dbpkg.NewDB(cfg)
	clock := timeutil.NewClock(cfg.UTCOffsetHours)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log, clock)

	notifier := notification.NewTwilioNotifier(
		cfg.TwilioAccountSID,
		cfg.TwilioAuthToken,
		cfg.TwilioFromNumber,
		clock,
	)
	reminders := notification.NewReminderScheduler(
		db,
		notification.NewDispatcher(notifier, log),
		clock,
		log,
	)
	reminders.Start()

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
