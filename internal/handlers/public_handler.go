package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/agendai-app/booking-api/internal/domain/appointment"
	"github.com/agendai-app/booking-api/internal/httperr"
	"github.com/agendai-app/booking-api/internal/httpresp"
	"github.com/agendai-app/booking-api/internal/models"
	"github.com/agendai-app/booking-api/internal/timezone"
	ucappointment "github.com/agendai-app/booking-api/internal/usecase/appointment"
)

// PublicHandler serves the unauthenticated booking flow: browse barbers and
// services, check the slot grid, reserve as a guest and manage the
// reservation through the access token.
type PublicHandler struct {
	db           *gorm.DB
	availability *ucappointment.GetAvailability
	create       *ucappointment.CreateAppointment
	lookup       *ucappointment.GuestLookup
	cancel       *ucappointment.CancelByGuest
}

func NewPublicHandler(
	db *gorm.DB,
	availability *ucappointment.GetAvailability,
	create *ucappointment.CreateAppointment,
	lookup *ucappointment.GuestLookup,
	cancel *ucappointment.CancelByGuest,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		availability: availability,
		create:       create,
		lookup:       lookup,
		cancel:       cancel,
	}
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	var barbers []models.User
	if err := h.db.
		Where("role = ? AND active = ?", models.RoleBarber, true).
		Order("name ASC").
		Find(&barbers).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_barbers"})
		return
	}

	out := make([]gin.H, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, gin.H{
			"id":         b.ID,
			"name":       b.Name,
			"avatar_url": b.AvatarURL,
		})
	}
	httpresp.List(c, out)
}

// ListBarberServices returns the services one barber offers.
func (h *PublicHandler) ListBarberServices(c *gin.Context) {
	barberID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_barber_id"})
		return
	}

	var services []models.Service
	if err := h.db.
		Joins("JOIN barber_services bs ON bs.service_id = services.id").
		Where("bs.barber_id = ? AND services.active = ?", barberID, true).
		Order("services.name ASC").
		Find(&services).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}
	httpresp.List(c, services)
}

func (h *PublicHandler) GetAvailability(c *gin.Context) {
	barberID, ok1 := queryUint(c, "barber_id")
	serviceID, ok2 := queryUint(c, "service_id")
	date, ok3 := queryDate(c, "date")
	if !ok1 || !ok2 || !ok3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  timezone.FormatDate(date),
		"slots": slots,
	})
}

type GuestBookingRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
}

func (h *PublicHandler) CreateGuestAppointment(c *gin.Context) {
	var req GuestBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	out, err := h.create.Execute(c.Request.Context(), ucappointment.CreateAppointmentInput{
		BarberID:   req.BarberID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		GuestName:  req.Name,
		GuestPhone: req.Phone,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"appointment":  out.Appointment,
		"access_token": out.GuestAccessToken,
	})
}

// GetReservations resolves everything a guest booked from the access token
// in the reservation link.
func (h *PublicHandler) GetReservations(c *gin.Context) {
	token := c.Param("token")

	guest, appointments, err := h.lookup.Execute(c.Request.Context(), token)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"guest": gin.H{
			"name":  guest.FullName,
			"phone": guest.Phone,
		},
		"appointments": appointments,
	})
}

func (h *PublicHandler) CancelReservation(c *gin.Context) {
	token := c.Param("token")
	appointmentID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_appointment_id"})
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), token, appointmentID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, ap)
}
