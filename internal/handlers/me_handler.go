package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendai-app/booking-api/internal/images"
	"github.com/agendai-app/booking-api/internal/models"
	"github.com/agendai-app/booking-api/internal/storage"
)

const maxAvatarBytes = 5 << 20

type MeHandler struct {
	db    *gorm.DB
	store *storage.Store
}

func NewMeHandler(db *gorm.DB, store *storage.Store) *MeHandler {
	return &MeHandler{db: db, store: store}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := currentUserID(c)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userPayload(&user)})
}

// UploadAvatar takes a multipart "avatar" file, converts it to webp and
// stores it in the bucket. The stored URL replaces any previous one.
func (h *MeHandler) UploadAvatar(c *gin.Context) {
	userID := currentUserID(c)

	if !h.store.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage_not_configured"})
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_avatar_file"})
		return
	}
	if file.Size > maxAvatarBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar_too_large"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_read_avatar"})
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxAvatarBytes+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_read_avatar"})
		return
	}

	processed, err := images.ProcessAvatar(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported_image"})
		return
	}

	url, err := h.store.UploadAvatar(c.Request.Context(), userID, processed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_upload_avatar"})
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("avatar_url", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_avatar_url"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
