package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/agendai-app/booking-api/internal/audit"
	"github.com/agendai-app/booking-api/internal/httperr"
	"github.com/agendai-app/booking-api/internal/httpresp"
	"github.com/agendai-app/booking-api/internal/models"
	ucguest "github.com/agendai-app/booking-api/internal/usecase/guest"
	"github.com/agendai-app/booking-api/internal/validators"
)

// AdminHandler holds the back-office operations: provisioning barbers,
// inspecting the audit trail and honoring guest data-erasure requests.
type AdminHandler struct {
	db        *gorm.DB
	audit     *audit.Dispatcher
	anonymize *ucguest.Anonymize
}

func NewAdminHandler(
	db *gorm.DB,
	auditDisp *audit.Dispatcher,
	anonymize *ucguest.Anonymize,
) *AdminHandler {
	return &AdminHandler{db: db, audit: auditDisp, anonymize: anonymize}
}

type CreateBarberRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

func (h *AdminHandler) CreateBarber(c *gin.Context) {
	actorID := currentUserID(c)

	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_email_domain"})
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	barber := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         models.RoleBarber,
		Active:       true,
	}
	if err := h.db.Create(&barber).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_barber"})
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "barber_created",
		Entity:   "user",
		EntityID: &barber.ID,
	})

	httpresp.Created(c, userPayload(&barber))
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetBarberActive hides or restores a barber on the public booking pages.
// Existing appointments are untouched.
func (h *AdminHandler) SetBarberActive(c *gin.Context) {
	actorID := currentUserID(c)

	barberID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_barber_id"})
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	res := h.db.Model(&models.User{}).
		Where("id = ? AND role = ?", barberID, models.RoleBarber).
		Update("active", *req.Active)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_barber"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "barber_not_found"})
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "barber_active_changed",
		Entity:   "user",
		EntityID: &barberID,
		Metadata: map[string]any{"active": *req.Active},
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// AnonymizeGuest scrubs a guest's personal data on request.
func (h *AdminHandler) AnonymizeGuest(c *gin.Context) {
	actorID := currentUserID(c)

	guestID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_guest_id"})
		return
	}

	g, err := h.anonymize.Execute(c.Request.Context(), actorID, guestID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, g)
}

// ListAuditLogs pages through the audit trail, newest first.
func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok || limit <= 0 || limit > 200 {
		limit = 50
	}
	offset, ok := queryInt(c, "offset")
	if !ok || offset < 0 {
		offset = 0
	}

	var logs []models.AuditLog
	if err := h.db.
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_audit_logs"})
		return
	}
	httpresp.List(c, logs)
}
