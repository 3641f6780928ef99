package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendai-app/booking-api/internal/httperr"
	"github.com/agendai-app/booking-api/internal/httpresp"
	"github.com/agendai-app/booking-api/internal/models"
	ucappointment "github.com/agendai-app/booking-api/internal/usecase/appointment"
)

// ClientHandler is the logged-in client's self-service surface.
type ClientHandler struct {
	db     *gorm.DB
	create *ucappointment.CreateAppointment
	cancel *ucappointment.CancelByClient
}

func NewClientHandler(
	db *gorm.DB,
	create *ucappointment.CreateAppointment,
	cancel *ucappointment.CancelByClient,
) *ClientHandler {
	return &ClientHandler{db: db, create: create, cancel: cancel}
}

type ClientBookingRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
}

func (h *ClientHandler) Create(c *gin.Context) {
	clientID := currentUserID(c)

	var req ClientBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	out, err := h.create.Execute(c.Request.Context(), ucappointment.CreateAppointmentInput{
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		StartTime: req.StartTime,
		ClientID:  &clientID,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.Created(c, out.Appointment)
}

func (h *ClientHandler) ListMine(c *gin.Context) {
	clientID := currentUserID(c)

	var appointments []models.Appointment
	if err := h.db.
		Preload("Barber").
		Preload("Service").
		Where("client_id = ?", clientID).
		Order("date DESC, start_time DESC").
		Find(&appointments).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_appointments"})
		return
	}
	httpresp.List(c, appointments)
}

func (h *ClientHandler) Cancel(c *gin.Context) {
	clientID := currentUserID(c)

	appointmentID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_appointment_id"})
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), clientID, appointmentID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, ap)
}
