package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tabeebak/clinic-scheduler/internal/audit"
	"github.com/tabeebak/clinic-scheduler/internal/config"
	"github.com/tabeebak/clinic-scheduler/internal/handlers"
	"github.com/tabeebak/clinic-scheduler/internal/infra/repository"
	"github.com/tabeebak/clinic-scheduler/internal/middleware"
	"github.com/tabeebak/clinic-scheduler/internal/notify"
	"github.com/tabeebak/clinic-scheduler/internal/otp"
	"github.com/tabeebak/clinic-scheduler/internal/refdata"
	"github.com/tabeebak/clinic-scheduler/internal/schedule"
	"github.com/tabeebak/clinic-scheduler/internal/stats"
	"github.com/tabeebak/clinic-scheduler/internal/storage"
	usecase "github.com/tabeebak/clinic-scheduler/internal/usecase/appointment"
)

// Register wires every handler under /api. The dependency graph is built
// here once; nothing else in the process constructs services.
func Register(
	r *gin.Engine,
	database *gorm.DB,
	cfg *config.Config,
	otpStore *otp.Store,
	mailer notify.Sender,
) {
	lists := refdata.Load()
	photos := storage.NewPhotoStore(cfg)
	dispatcher := audit.NewDispatcher(audit.New(database))

	repo := repository.NewBookingGormRepository(database)
	bookUC := usecase.NewBookAppointment(repo, dispatcher)
	transitionUC := usecase.NewTransitionAppointment(repo, dispatcher)

	scheduleSvc := schedule.NewService(database)
	statsSvc := stats.NewService(database)

	authH := handlers.NewAuthHandler(database, cfg, lists, otpStore, mailer, dispatcher)
	doctorH := handlers.NewDoctorHandler(database, lists, photos)
	patientH := handlers.NewPatientHandler(database, photos)
	slotH := handlers.NewSlotHandler(scheduleSvc)
	appointmentH := handlers.NewAppointmentHandler(bookUC, transitionUC, repo)
	reviewH := handlers.NewReviewHandler(database, dispatcher)
	statsH := handlers.NewStatsHandler(statsSvc)
	refdataH := handlers.NewRefdataHandler(lists)

	authLimiter := middleware.NewRateLimiter(cfg.AuthRateRPS, cfg.AuthRateBurst)

	api := r.Group("/api")

	// -------- Auth --------
	auth := api.Group("/auth", authLimiter.Middleware())
	auth.POST("/doctors/register", authH.RegisterDoctor)
	auth.POST("/doctors/login", authH.LoginDoctor)
	auth.POST("/patients/register", authH.RegisterPatient)
	auth.POST("/patients/login", authH.LoginPatient)
	auth.POST("/request-otp", authH.RequestOTP)
	auth.POST("/reset-password", authH.ResetPassword)
	api.GET("/auth/me", middleware.AuthMiddleware(cfg), authH.Me)

	// -------- Reference data --------
	api.GET("/specialties", refdataH.Specialties)
	api.GET("/governorates", refdataH.Governorates)

	// -------- Public doctor directory --------
	api.GET("/doctors", doctorH.List)
	api.GET("/doctors/:id", doctorH.Get)
	api.GET("/doctors/:id/slots", slotH.ListForDoctor)
	api.GET("/doctors/:id/reviews", reviewH.List)

	// -------- Doctor profile + schedule --------
	doctorOnly := middleware.AuthMiddleware(cfg, middleware.RoleDoctor)
	api.PUT("/doctors/me", doctorOnly, doctorH.UpdateMe)

	slots := api.Group("/slots", doctorOnly)
	slots.GET("", slotH.ListMine)
	slots.POST("", slotH.Add)
	slots.PUT("/:slotId", slotH.Update)
	slots.PATCH("/:slotId/toggle", slotH.Toggle)
	slots.DELETE("/:slotId", slotH.Delete)

	// -------- Patient profile --------
	patientOnly := middleware.AuthMiddleware(cfg, middleware.RolePatient)
	api.PUT("/patients/me", patientOnly, patientH.UpdateMe)

	// -------- Appointments --------
	anyRole := middleware.AuthMiddleware(cfg, middleware.RoleDoctor, middleware.RolePatient)
	api.POST("/appointments", patientOnly, appointmentH.Create)
	api.GET("/appointments", anyRole, appointmentH.ListMine)
	api.PATCH("/appointments/:id/status", anyRole, appointmentH.UpdateStatus)

	// -------- Archive --------
	api.GET("/archive", doctorOnly, appointmentH.ListArchive)
	api.GET("/archive/:id", anyRole, appointmentH.ArchiveDetails)
	api.GET("/patients", doctorOnly, appointmentH.Patients)

	// -------- Reviews --------
	api.POST("/doctors/:id/reviews", patientOnly, reviewH.Add)
	api.DELETE("/doctors/:id/reviews", patientOnly, reviewH.Delete)

	// -------- Statistics --------
	statsGroup := api.Group("/stats", doctorOnly)
	statsGroup.GET("/dashboard", statsH.Dashboard)
	statsGroup.GET("/appointments", statsH.Appointments)
	statsGroup.GET("/patients", statsH.Patients)
	statsGroup.GET("/revenue", statsH.Revenue)
	statsGroup.GET("/ratings", statsH.Ratings)
	statsGroup.GET("/slots", statsH.Slots)
}
