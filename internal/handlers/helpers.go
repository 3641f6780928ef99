package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agendai-app/booking-api/internal/middleware"
	"github.com/agendai-app/booking-api/internal/schedule"
	"github.com/agendai-app/booking-api/internal/timezone"
)

func currentUserID(c *gin.Context) uint {
	v, _ := c.Get(middleware.ContextUserID)
	id, _ := v.(uint)
	return id
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

func queryUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

func queryInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0, false
	}
	return v, true
}

// validTimeWindow accepts a start/end pair of canonical "HH:mm" strings, or
// both empty when the caller treats an empty pair as "whole day".
func validTimeWindow(start, end string) bool {
	if start == "" && end == "" {
		return true
	}
	if _, err := schedule.ParseHHMM(start); err != nil {
		return false
	}
	if _, err := schedule.ParseHHMM(end); err != nil {
		return false
	}
	return true
}

// queryDate parses a required YYYY-MM-DD query parameter into the stored
// date form.
func queryDate(c *gin.Context, name string) (time.Time, bool) {
	d, err := timezone.ParseDate(c.Query(name))
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
