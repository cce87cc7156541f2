package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Mishael-2584/odel-portal-api/internal/audit"
	"github.com/Mishael-2584/odel-portal-api/internal/config"
	"github.com/Mishael-2584/odel-portal-api/internal/handlers"
	infraRepo "github.com/Mishael-2584/odel-portal-api/internal/infra/repository"
	"github.com/Mishael-2584/odel-portal-api/internal/logincode"
	"github.com/Mishael-2584/odel-portal-api/internal/mailer"
	"github.com/Mishael-2584/odel-portal-api/internal/meetings"
	"github.com/Mishael-2584/odel-portal-api/internal/middleware"
	"github.com/Mishael-2584/odel-portal-api/internal/notify"
	ucCounseling "github.com/Mishael-2584/odel-portal-api/internal/usecase/counseling"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	counselingRepo := infraRepo.NewCounselingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var mailSender notify.Sender
	if m := mailer.New(cfg); m != nil {
		mailSender = m
	}
	notifyDispatcher := notify.NewDispatcher(mailSender)

	var meetingProvider meetings.Provider
	if zc := meetings.NewZoomClient(cfg.ZoomAccountID, cfg.ZoomClientID, cfg.ZoomClientSecret); zc != nil {
		meetingProvider = zc
	}

	codeStore := logincode.NewStore(rdb)

	// ======================================================
	// USE CASES - COUNSELING
	// ======================================================
	availabilityUC := ucCounseling.NewGetAvailability(counselingRepo)
	bookUC := ucCounseling.NewBookAppointment(counselingRepo, auditDispatcher)
	listUC := ucCounseling.NewListAppointments(counselingRepo)

	confirmUC := ucCounseling.NewConfirmAppointment(
		counselingRepo,
		meetingProvider,
		notifyDispatcher,
		auditDispatcher,
		cfg.SideEffectTimeout,
	)

	cancelUC := ucCounseling.NewCancelAppointment(
		counselingRepo,
		notifyDispatcher,
		auditDispatcher,
	)

	rescheduleUC := ucCounseling.NewRescheduleAppointment(
		counselingRepo,
		notifyDispatcher,
		auditDispatcher,
	)

	deleteUC := ucCounseling.NewDeleteAppointment(
		counselingRepo,
		notifyDispatcher,
		auditDispatcher,
		cfg.NotifyOnAdminDelete,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, codeStore, notifyDispatcher)
	counselorHandler := handlers.NewCounselorHandler(db, auditDispatcher)
	contentHandler := handlers.NewContentHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	counselingHandler := handlers.NewCounselingHandler(
		availabilityUC,
		bookUC,
		listUC,
		confirmUC,
		cancelUC,
		rescheduleUC,
		deleteUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		public := api.Group("/public")
		{
			public.GET("/counselors", counselorHandler.List)
			public.GET("/counselors/:id/availability", counselingHandler.Availability)
			public.POST("/appointments", counselingHandler.Book)

			public.GET("/news", contentHandler.ListNews)
			public.GET("/events", contentHandler.ListEvents)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/admin/login", authHandler.AdminLogin)
		api.POST("/auth/student/request-code", authHandler.RequestCode)
		api.POST("/auth/student/verify-code", authHandler.VerifyCode)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.AdminOnly())
		{
			// appointments
			admin.GET("/appointments", counselingHandler.List)
			admin.PATCH("/appointments/:id/confirm", counselingHandler.Confirm)
			admin.PATCH("/appointments/:id/cancel", counselingHandler.Cancel)
			admin.PATCH("/appointments/:id/reschedule", counselingHandler.Reschedule)
			admin.DELETE("/appointments/:id", counselingHandler.Delete)

			// counselors
			admin.POST("/counselors", counselorHandler.Create)
			admin.PATCH("/counselors/:id", counselorHandler.Update)
			admin.PUT("/counselors/:id/working-hours", counselorHandler.SetWorkingHours)

			// content
			admin.POST("/news", contentHandler.CreateNews)
			admin.PATCH("/news/:id", contentHandler.UpdateNews)
			admin.DELETE("/news/:id", contentHandler.DeleteNews)
			admin.POST("/events", contentHandler.CreateEvent)
			admin.PATCH("/events/:id", contentHandler.UpdateEvent)
			admin.DELETE("/events/:id", contentHandler.DeleteEvent)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
