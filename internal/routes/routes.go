package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lebarbier/salon-api/internal/audit"
	"github.com/lebarbier/salon-api/internal/cache"
	"github.com/lebarbier/salon-api/internal/config"
	"github.com/lebarbier/salon-api/internal/handlers"
	infraRepo "github.com/lebarbier/salon-api/internal/infra/repository"
	"github.com/lebarbier/salon-api/internal/middleware"
	"github.com/lebarbier/salon-api/internal/storage"
	ucBooking "github.com/lebarbier/salon-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	zlog *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	slotCache := cache.NewSlotGridCache(rdb, zlog)
	mediaStorage := storage.NewS3Storage(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, zlog)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	getDaySlotsUC := ucBooking.NewGetDaySlots(bookingRepo, slotCache)

	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		slotCache,
		auditDispatcher,
	)

	cancelAppointmentUC := ucBooking.NewCancelAppointment(
		bookingRepo,
		slotCache,
		auditDispatcher,
	)

	setStatusUC := ucBooking.NewSetAppointmentStatus(
		bookingRepo,
		slotCache,
		auditDispatcher,
	)

	deleteAppointmentUC := ucBooking.NewDeleteAppointment(
		bookingRepo,
		slotCache,
		auditDispatcher,
	)

	listByDateUC := ucBooking.NewListAppointmentsByDate(bookingRepo)
	listByMonthUC := ucBooking.NewListAppointmentsByMonth(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	availabilityHandler := handlers.NewAvailabilityHandler(db, getDaySlotsUC)
	bookingHandler := handlers.NewBookingHandler(createAppointmentUC, cancelAppointmentUC)
	adminAppointmentHandler := handlers.NewAdminAppointmentHandler(
		db,
		listByDateUC,
		listByMonthUC,
		setStatusUC,
		deleteAppointmentUC,
	)

	barberHandler := handlers.NewBarberHandler(db, mediaStorage)
	serviceHandler := handlers.NewServiceHandler(db)
	businessHoursHandler := handlers.NewBusinessHoursHandler(db)
	settingsHandler := handlers.NewSettingsHandler(db)
	publicationHandler := handlers.NewPublicationHandler(db, mediaStorage)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PUBLIQUE
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbers", barberHandler.ListPublic)
			publicAPI.GET("/services", serviceHandler.ListPublic)
			publicAPI.GET("/availability", availabilityHandler.Get)
			publicAPI.GET("/publications", publicationHandler.List)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVÉE (client connecté)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/appointments", meHandler.MyAppointments)

			secured.POST("/appointments", bookingHandler.Create)
			secured.PATCH("/appointments/:id/cancel", bookingHandler.Cancel)

			secured.POST("/publications/:id/like", publicationHandler.Like)
			secured.DELETE("/publications/:id/like", publicationHandler.Unlike)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(middleware.RoleAdmin))
			{
				admin.GET("/barbers", barberHandler.List)
				admin.POST("/barbers", barberHandler.Create)
				admin.PATCH("/barbers/:id", barberHandler.Update)
				admin.POST("/barbers/:id/photo", barberHandler.UploadPhoto)

				admin.GET("/services", serviceHandler.List)
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)

				admin.GET("/business-hours", businessHoursHandler.Get)
				admin.PUT("/business-hours", businessHoursHandler.Update)

				admin.GET("/settings", settingsHandler.Get)
				admin.PATCH("/settings", settingsHandler.Update)

				admin.POST("/publications", publicationHandler.Create)
				admin.PATCH("/publications/:id", publicationHandler.Update)
				admin.DELETE("/publications/:id", publicationHandler.Delete)

				admin.GET("/appointments", adminAppointmentHandler.ListByDate)
				admin.GET("/appointments/month", adminAppointmentHandler.ListByMonth)
				admin.PATCH("/appointments/:id/status", adminAppointmentHandler.SetStatus)
				admin.DELETE("/appointments/:id", adminAppointmentHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
