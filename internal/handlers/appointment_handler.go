package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agendai-app/booking-api/internal/httperr"
	"github.com/agendai-app/booking-api/internal/httpresp"
	ucappointment "github.com/agendai-app/booking-api/internal/usecase/appointment"
)

// AppointmentHandler covers the barber's agenda: booking on behalf of a
// walk-in, listing the day or month, and the state transitions only the
// barber drives.
type AppointmentHandler struct {
	create   *ucappointment.CreateAppointment
	cancel   *ucappointment.CancelByBarber
	noShow   *ucappointment.MarkNoShow
	complete *ucappointment.CompleteAppointment
	list     *ucappointment.ListAppointments
}

func NewAppointmentHandler(
	create *ucappointment.CreateAppointment,
	cancel *ucappointment.CancelByBarber,
	noShow *ucappointment.MarkNoShow,
	complete *ucappointment.CompleteAppointment,
	list *ucappointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:   create,
		cancel:   cancel,
		noShow:   noShow,
		complete: complete,
		list:     list,
	}
}

type BarberBookingRequest struct {
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
}

// Create books a slot on the barber's own agenda for a walk-in or phone
// client. The client is stored as a guest record, same as the public flow.
func (h *AppointmentHandler) Create(c *gin.Context) {
	barberID := currentUserID(c)

	var req BarberBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	out, err := h.create.Execute(c.Request.Context(), ucappointment.CreateAppointmentInput{
		BarberID:   barberID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		GuestName:  req.ClientName,
		GuestPhone: req.ClientPhone,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.Created(c, out.Appointment)
}

// ListByDate returns the agenda for one day (?date=YYYY-MM-DD).
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	barberID := currentUserID(c)

	date, ok := queryDate(c, "date")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}

	out, err := h.list.ByDate(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.List(c, out)
}

// ListByMonth returns the agenda for one month (?year=&month=).
func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	barberID := currentUserID(c)

	year, ok1 := queryInt(c, "year")
	month, ok2 := queryInt(c, "month")
	if !ok1 || !ok2 || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_period"})
		return
	}

	out, err := h.list.ByMonth(c.Request.Context(), barberID, year, month)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.List(c, out)
}

// MonthlyReport aggregates the month for the reports screen.
func (h *AppointmentHandler) MonthlyReport(c *gin.Context) {
	barberID := currentUserID(c)

	year, ok1 := queryInt(c, "year")
	month, ok2 := queryInt(c, "month")
	if !ok1 || !ok2 || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_period"})
		return
	}

	out, err := h.list.MonthlySummary(c.Request.Context(), barberID, year, month)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, out)
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	barberID := currentUserID(c)

	appointmentID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_appointment_id"})
		return
	}

	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteError(c, httperr.ErrBusiness(httperr.CodeCancellationReasonMissing))
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), barberID, appointmentID, req.Reason)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) MarkNoShow(c *gin.Context) {
	barberID := currentUserID(c)

	appointmentID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_appointment_id"})
		return
	}

	ap, err := h.noShow.Execute(c.Request.Context(), barberID, appointmentID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	barberID := currentUserID(c)

	appointmentID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_appointment_id"})
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), barberID, appointmentID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, ap)
}
