package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TurnosCloud/turnos-api/internal/audit"
	"github.com/TurnosCloud/turnos-api/internal/middleware"
	"github.com/TurnosCloud/turnos-api/internal/models"
)

type AbsenceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAbsenceHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *AbsenceHandler {
	return &AbsenceHandler{db: db, audit: auditDispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAbsenceRequest struct {
	BarberID uint      `json:"barber_id" binding:"required"`
	StartAt  time.Time `json:"start_at" binding:"required"`
	EndAt    time.Time `json:"end_at" binding:"required"`
	Reason   string    `json:"reason"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AbsenceHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !req.EndAt.After(req.StartAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_range"})
		return
	}

	// The barber must belong to the caller's barbershop.
	var barber models.User
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", req.BarberID, barbershopID).
		First(&barber).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "barber_not_found"})
		return
	}

	absence := models.Absence{
		BarberID: req.BarberID,
		StartAt:  req.StartAt.UTC(),
		EndAt:    req.EndAt.UTC(),
		Reason:   req.Reason,
	}

	if err := h.db.Create(&absence).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_absence"})
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "absence_created",
		Entity:       "absence",
		EntityID:     &absence.ID,
	})

	c.JSON(http.StatusCreated, absence)
}

func (h *AbsenceHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	q := h.db.
		Joins("JOIN users ON users.id = absences.barber_id").
		Where("users.barbershop_id = ?", barbershopID)

	if v := c.Query("barber_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			q = q.Where("absences.barber_id = ?", uint(id))
		}
	}

	if from, err := time.Parse(time.RFC3339, c.Query("from")); err == nil {
		q = q.Where("absences.end_at >= ?", from)
	}
	if to, err := time.Parse(time.RFC3339, c.Query("to")); err == nil {
		q = q.Where("absences.start_at <= ?", to)
	}

	var absences []models.Absence
	if err := q.
		Order("absences.start_at ASC").
		Find(&absences).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_absences"})
		return
	}

	c.JSON(http.StatusOK, absences)
}
