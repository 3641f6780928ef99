package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendai-app/booking-api/internal/audit"
	"github.com/agendai-app/booking-api/internal/httpresp"
	"github.com/agendai-app/booking-api/internal/models"
)

// ServiceHandler is the admin catalog: services and which barber offers
// which. Durations are minutes; changing one never rewrites stored
// appointment end times.
type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, auditDisp *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: auditDisp}
}

type ServiceRequest struct {
	Slug        string  `json:"slug" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" binding:"required,min=5"`
	Price       float64 `json:"price" binding:"min=0"`
	Active      *bool   `json:"active"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("name ASC").Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	actorID := currentUserID(c)

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	var count int64
	h.db.Model(&models.Service{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug_already_exists"})
		return
	}

	svc := models.Service{
		Slug:        slug,
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      true,
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Create(&svc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service"})
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	actorID := currentUserID(c)

	serviceID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_service_id"})
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, serviceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	svc.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	svc.Name = req.Name
	svc.Description = req.Description
	svc.DurationMin = req.DurationMin
	svc.Price = req.Price
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service"})
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	httpresp.OK(c, svc)
}

// --------- Barber associations ---------

type BarberServicesRequest struct {
	ServiceIDs []uint `json:"service_ids" binding:"required"`
}

// SetBarberServices replaces the set of services a barber offers.
func (h *ServiceHandler) SetBarberServices(c *gin.Context) {
	actorID := currentUserID(c)

	barberID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_barber_id"})
		return
	}

	var barber models.User
	if err := h.db.Where("id = ? AND role = ?", barberID, models.RoleBarber).
		First(&barber).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "barber_not_found"})
		return
	}

	var req BarberServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barber_id = ?", barberID).
			Delete(&models.BarberService{}).Error; err != nil {
			return err
		}
		for _, serviceID := range req.ServiceIDs {
			if err := tx.Create(&models.BarberService{
				BarberID:  barberID,
				ServiceID: serviceID,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_set_barber_services"})
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "barber_services_updated",
		Entity:   "user",
		EntityID: &barberID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
