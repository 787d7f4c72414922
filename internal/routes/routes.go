package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/TurnosCloud/turnos-api/internal/audit"
	"github.com/TurnosCloud/turnos-api/internal/config"
	domain "github.com/TurnosCloud/turnos-api/internal/domain/turno"
	"github.com/TurnosCloud/turnos-api/internal/handlers"
	infraRepo "github.com/TurnosCloud/turnos-api/internal/infra/repository"
	"github.com/TurnosCloud/turnos-api/internal/middleware"
	"github.com/TurnosCloud/turnos-api/internal/models"
	"github.com/TurnosCloud/turnos-api/internal/notification"
	"github.com/TurnosCloud/turnos-api/internal/pos"
	"github.com/TurnosCloud/turnos-api/internal/timeutil"
	ucTurno "github.com/TurnosCloud/turnos-api/internal/usecase/turno"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	clock *timeutil.Clock,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repos := infraRepo.NewRepositories(db)
	uow := infraRepo.NewUnitOfWork(db)

	validator := domain.NewValidator(clock)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	notifier := notification.NewTwilioNotifier(
		cfg.TwilioAccountSID,
		cfg.TwilioAuthToken,
		cfg.TwilioFromNumber,
		clock,
	)
	notifDispatcher := notification.NewDispatcher(notifier, log)

	posRecorder := pos.NewRecorder(log)

	// ======================================================
	// USE CASES — TURNOS
	// ======================================================
	createTurnoUC := ucTurno.NewCreateTurno(uow, validator, auditDispatcher, notifDispatcher)
	rescheduleTurnoUC := ucTurno.NewRescheduleTurno(uow, validator, auditDispatcher)
	setTurnoStateUC := ucTurno.NewSetTurnoState(uow, auditDispatcher, posRecorder)
	listTurnosUC := ucTurno.NewListTurnos(repos)
	blockedSlotsUC := ucTurno.NewComputeBlockedSlots(repos, clock)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	barbershopHandler := handlers.NewBarbershopHandler(db)

	clientHandler := handlers.NewClientHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db)
	absenceHandler := handlers.NewAbsenceHandler(db, auditDispatcher)

	turnoHandler := handlers.NewTurnoHandler(
		createTurnoUC,
		rescheduleTurnoUC,
		setTurnoStateUC,
		listTurnosUC,
		blockedSlotsUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/barbershop", barbershopHandler.Get)
			secured.PATCH("/me/barbershop", barbershopHandler.Update)

			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/schedule", scheduleHandler.Get)
			secured.PUT("/me/schedule", scheduleHandler.Update)

			// ------------------------------
			// TURNOS
			// ------------------------------
			secured.POST("/me/turnos", turnoHandler.Create)
			secured.GET("/me/turnos", turnoHandler.List)
			secured.PATCH("/me/turnos/:id", turnoHandler.Reschedule)
			secured.PATCH("/me/turnos/:id/state", turnoHandler.SetState)

			secured.GET("/me/blocked-slots", turnoHandler.BlockedSlots)

			// ------------------------------
			// ADMIN ONLY
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(models.RoleOwner, models.RoleAdmin))
			{
				admin.POST("/me/absences", absenceHandler.Create)
				admin.GET("/me/absences", absenceHandler.List)

				admin.GET("/me/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
