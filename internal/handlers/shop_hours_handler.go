package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendai-app/booking-api/internal/audit"
	"github.com/agendai-app/booking-api/internal/httpresp"
	"github.com/agendai-app/booking-api/internal/models"
	"github.com/agendai-app/booking-api/internal/timezone"
)

// ShopHoursHandler manages the shop-wide weekly grid and ad-hoc closures.
// Admin only; barber availability is always clipped to what is set here.
type ShopHoursHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewShopHoursHandler(db *gorm.DB, auditDisp *audit.Dispatcher) *ShopHoursHandler {
	return &ShopHoursHandler{db: db, audit: auditDisp}
}

type ShopDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	IsOpen     bool   `json:"is_open"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
}

type ShopHoursUpdateRequest struct {
	Days []ShopDayConfig `json:"days" binding:"required"`
}

func (h *ShopHoursHandler) Get(c *gin.Context) {
	var hours []models.ShopHours
	if err := h.db.Order("weekday ASC").Find(&hours).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_shop_hours"})
		return
	}
	c.JSON(http.StatusOK, hours)
}

func (h *ShopHoursHandler) Update(c *gin.Context) {
	actorID := currentUserID(c)

	var req ShopHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	for _, d := range req.Days {
		if !d.IsOpen {
			continue
		}
		if d.StartTime == "" || !validTimeWindow(d.StartTime, d.EndTime) ||
			!validTimeWindow(d.BreakStart, d.BreakEnd) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time_format"})
			return
		}
	}

	if err := h.db.Where("1 = 1").Delete(&models.ShopHours{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_clear_shop_hours"})
		return
	}

	var toCreate []models.ShopHours
	for _, d := range req.Days {
		toCreate = append(toCreate, models.ShopHours{
			Weekday:    d.Weekday,
			IsOpen:     d.IsOpen,
			StartTime:  d.StartTime,
			EndTime:    d.EndTime,
			BreakStart: d.BreakStart,
			BreakEnd:   d.BreakEnd,
		})
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_shop_hours"})
			return
		}
	}

	h.audit.Dispatch(audit.Event{
		ActorID: &actorID,
		Action:  "shop_hours_updated",
		Entity:  "shop_hours",
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------- Closures ---------

type ClosureRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason"`
}

func (h *ShopHoursHandler) ListClosures(c *gin.Context) {
	var closures []models.ShopClosure
	if err := h.db.Order("date ASC").Find(&closures).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_closures"})
		return
	}
	httpresp.List(c, closures)
}

func (h *ShopHoursHandler) CreateClosure(c *gin.Context) {
	actorID := currentUserID(c)

	var req ClosureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}
	if (req.StartTime == "") != (req.EndTime == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "incomplete_time_window"})
		return
	}
	if !validTimeWindow(req.StartTime, req.EndTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time_format"})
		return
	}

	closure := models.ShopClosure{
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	}
	if err := h.db.Create(&closure).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_closure"})
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "closure_created",
		Entity:   "shop_closure",
		EntityID: &closure.ID,
	})

	httpresp.Created(c, closure)
}

func (h *ShopHoursHandler) DeleteClosure(c *gin.Context) {
	actorID := currentUserID(c)

	closureID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_closure_id"})
		return
	}

	if err := h.db.Delete(&models.ShopClosure{}, closureID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_closure"})
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "closure_deleted",
		Entity:   "shop_closure",
		EntityID: &closureID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
