package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendai-app/booking-api/internal/httperr"
	"github.com/agendai-app/booking-api/internal/httpresp"
	"github.com/agendai-app/booking-api/internal/infra/repository"
	"github.com/agendai-app/booking-api/internal/timezone"
	ucabsence "github.com/agendai-app/booking-api/internal/usecase/absence"
)

type AbsenceHandler struct {
	repo   *repository.AppointmentGormRepository
	create *ucabsence.CreateAbsence
}

func NewAbsenceHandler(
	repo *repository.AppointmentGormRepository,
	create *ucabsence.CreateAbsence,
) *AbsenceHandler {
	return &AbsenceHandler{repo: repo, create: create}
}

type AbsenceRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason"`
}

func (h *AbsenceHandler) List(c *gin.Context) {
	barberID := currentUserID(c)

	from, _ := timezone.ParseDate(timezone.Today())
	absences, err := h.repo.ListAbsencesForBarber(c.Request.Context(), barberID, from)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.List(c, absences)
}

func (h *AbsenceHandler) Create(c *gin.Context) {
	barberID := currentUserID(c)

	var req AbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	absence, err := h.create.Execute(c.Request.Context(), ucabsence.CreateAbsenceInput{
		BarberID:  barberID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.Created(c, absence)
}

func (h *AbsenceHandler) Delete(c *gin.Context) {
	barberID := currentUserID(c)

	absenceID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_absence_id"})
		return
	}

	if err := h.repo.DeleteAbsence(c.Request.Context(), barberID, absenceID); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "absence_not_found"})
			return
		}
		httperr.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
