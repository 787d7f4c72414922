package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TurnosCloud/turnos-api/internal/middleware"
	"github.com/TurnosCloud/turnos-api/internal/models"
)

type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type ScheduleBreakConfig struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type ScheduleDayConfig struct {
	Weekday   int                   `json:"weekday" binding:"min=0,max=6"`
	StartTime string                `json:"start_time" binding:"required"`
	EndTime   string                `json:"end_time" binding:"required"`
	Breaks    []ScheduleBreakConfig `json:"breaks"`
}

// Days omitted from the request become days off: the whole weekly schedule
// is replaced in one shot.
type ScheduleUpdateRequest struct {
	Days []ScheduleDayConfig `json:"days" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

// scheduleBarberID resolves whose schedule is being managed: barbers their
// own, owners/admins anyone's via ?barber_id.
func scheduleBarberID(c *gin.Context) uint {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role, _ := c.MustGet(middleware.ContextUserRole).(string)

	if role == models.RoleOwner || role == models.RoleAdmin {
		if v := c.Query("barber_id"); v != "" {
			if id, err := strconv.ParseUint(v, 10, 64); err == nil {
				return uint(id)
			}
		}
	}
	return userID
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	barberID := scheduleBarberID(c)

	var days []models.ScheduleDay
	if err := h.db.
		Preload("Breaks").
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&days).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_schedule"})
		return
	}

	c.JSON(http.StatusOK, days)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	barberID := scheduleBarberID(c)

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {

		// Delete-all-then-recreate; break rows cascade with their day.
		if err := tx.
			Where("barber_id = ?", barberID).
			Select("Breaks").
			Delete(&models.ScheduleDay{}).Error; err != nil {
			return err
		}

		for _, d := range req.Days {
			day := models.ScheduleDay{
				BarberID:  barberID,
				Weekday:   d.Weekday,
				StartTime: d.StartTime,
				EndTime:   d.EndTime,
			}
			for _, br := range d.Breaks {
				day.Breaks = append(day.Breaks, models.ScheduleBreak{
					StartTime: br.StartTime,
					EndTime:   br.EndTime,
				})
			}

			if err := tx.Create(&day).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
