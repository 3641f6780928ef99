package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendai-app/booking-api/internal/audit"
	"github.com/agendai-app/booking-api/internal/config"
	"github.com/agendai-app/booking-api/internal/handlers"
	infraRepo "github.com/agendai-app/booking-api/internal/infra/repository"
	"github.com/agendai-app/booking-api/internal/middleware"
	"github.com/agendai-app/booking-api/internal/notify"
	"github.com/agendai-app/booking-api/internal/storage"
	"github.com/agendai-app/booking-api/internal/timezone"
	ucAbsence "github.com/agendai-app/booking-api/internal/usecase/absence"
	ucAppointment "github.com/agendai-app/booking-api/internal/usecase/appointment"
	ucGuest "github.com/agendai-app/booking-api/internal/usecase/guest"
)

// Deps carries the process-wide infrastructure main wires up once.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Notifier *notify.Dispatcher
	Store    *storage.Store
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)

	auditLogger := audit.New(d.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	clock := timezone.SystemClock()

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, clock)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		clock,
		auditDispatcher,
		d.Notifier,
	)

	cancelByClientUC := ucAppointment.NewCancelByClient(
		appointmentRepo, clock, auditDispatcher, d.Notifier,
	)
	cancelByBarberUC := ucAppointment.NewCancelByBarber(
		appointmentRepo, clock, auditDispatcher, d.Notifier,
	)
	cancelByGuestUC := ucAppointment.NewCancelByGuest(
		appointmentRepo, clock, auditDispatcher, d.Notifier,
	)

	noShowUC := ucAppointment.NewMarkNoShow(
		appointmentRepo, clock, auditDispatcher, d.Notifier,
	)
	completeUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo, clock, auditDispatcher, d.Notifier,
	)

	listUC := ucAppointment.NewListAppointments(appointmentRepo)
	guestLookupUC := ucAppointment.NewGuestLookup(appointmentRepo)

	createAbsenceUC := ucAbsence.NewCreateAbsence(appointmentRepo, auditDispatcher)
	anonymizeUC := ucGuest.NewAnonymize(appointmentRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Config)
	meHandler := handlers.NewMeHandler(d.DB, d.Store)

	publicHandler := handlers.NewPublicHandler(
		d.DB,
		availabilityUC,
		createAppointmentUC,
		guestLookupUC,
		cancelByGuestUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelByBarberUC,
		noShowUC,
		completeUC,
		listUC,
	)

	clientHandler := handlers.NewClientHandler(d.DB, createAppointmentUC, cancelByClientUC)
	workingHoursHandler := handlers.NewWorkingHoursHandler(d.DB)
	shopHoursHandler := handlers.NewShopHoursHandler(d.DB, auditDispatcher)
	absenceHandler := handlers.NewAbsenceHandler(appointmentRepo, createAbsenceUC)
	serviceHandler := handlers.NewServiceHandler(d.DB, auditDispatcher)
	adminHandler := handlers.NewAdminHandler(d.DB, auditDispatcher, anonymizeUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/barbers/:id/services", publicHandler.ListBarberServices)
			publicAPI.GET("/availability", publicHandler.GetAvailability)
			publicAPI.POST("/appointments", publicHandler.CreateGuestAppointment)

			publicAPI.GET("/reservations/:token", publicHandler.GetReservations)
			publicAPI.POST("/reservations/:token/appointments/:id/cancel", publicHandler.CancelReservation)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/me/avatar", meHandler.UploadAvatar)

			// client self-service
			client := secured.Group("/appointments")
			{
				client.POST("", clientHandler.Create)
				client.GET("", clientHandler.ListMine)
				client.POST("/:id/cancel", clientHandler.Cancel)
			}

			// barber agenda
			barber := secured.Group("/barber")
			barber.Use(middleware.RequireBarber())
			{
				barber.POST("/appointments", appointmentHandler.Create)
				barber.GET("/appointments", appointmentHandler.ListByDate)
				barber.GET("/appointments/month", appointmentHandler.ListByMonth)
				barber.GET("/reports/monthly", appointmentHandler.MonthlyReport)
				barber.POST("/appointments/:id/cancel", appointmentHandler.Cancel)
				barber.POST("/appointments/:id/no-show", appointmentHandler.MarkNoShow)
				barber.POST("/appointments/:id/complete", appointmentHandler.Complete)

				barber.GET("/working-hours", workingHoursHandler.Get)
				barber.PUT("/working-hours", workingHoursHandler.Update)

				barber.GET("/absences", absenceHandler.List)
				barber.POST("/absences", absenceHandler.Create)
				barber.DELETE("/absences/:id", absenceHandler.Delete)
			}

			// back office
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/shop-hours", shopHoursHandler.Get)
				admin.PUT("/shop-hours", shopHoursHandler.Update)
				admin.GET("/closures", shopHoursHandler.ListClosures)
				admin.POST("/closures", shopHoursHandler.CreateClosure)
				admin.DELETE("/closures/:id", shopHoursHandler.DeleteClosure)

				admin.GET("/services", serviceHandler.List)
				admin.POST("/services", serviceHandler.Create)
				admin.PUT("/services/:id", serviceHandler.Update)
				admin.PUT("/barbers/:id/services", serviceHandler.SetBarberServices)

				admin.POST("/barbers", adminHandler.CreateBarber)
				admin.PATCH("/barbers/:id/active", adminHandler.SetBarberActive)
				admin.POST("/guests/:id/anonymize", adminHandler.AnonymizeGuest)
				admin.GET("/audit-logs", adminHandler.ListAuditLogs)
			}
		}
	}
}
