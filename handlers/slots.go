package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"cpicareers/models"
	"cpicareers/services/slots"
	"cpicareers/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SlotUnavailableMessage is shown verbatim by applicant clients.
const SlotUnavailableMessage = "Slot no longer available"

type SlotHandler struct {
	Service slots.SlotService
}

func NewSlotHandler(s slots.SlotService) *SlotHandler {
	return &SlotHandler{Service: s}
}

// GetMonthHandler serves GET /api/interview-slots?month=&year=.
func (h *SlotHandler) GetMonthHandler(c *gin.Context) {
	month, errM := strconv.Atoi(c.Query("month"))
	year, errY := strconv.Atoi(c.Query("year"))
	if errM != nil || errY != nil {
		utils.JSONError(c, http.StatusBadRequest, "month and year query parameters are required", "")
		return
	}

	result, err := h.Service.GetMonth(c.Request.Context(), year, month)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// BookHandler serves POST /api/interview-slots/book.
func (h *SlotHandler) BookHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid booking request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
		return
	}

	slot, err := h.Service.Book(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Interview slot booked",
		"slot":    slot.View(),
		"date":    slot.Date,
	})
}

// CreateSlotsHandler serves POST /api/admin/interview-slots.
func (h *SlotHandler) CreateSlotsHandler(c *gin.Context) {
	var req models.CreateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	ids, err := h.Service.CreateSlots(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ids": ids})
}

// UpdateStatusHandler serves PATCH /api/admin/interview-slots/:id.
func (h *SlotHandler) UpdateStatusHandler(c *gin.Context) {
	var req models.UpdateSlotStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	if err := h.Service.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slot status updated"})
}

// DeleteSlotHandler serves DELETE /api/admin/interview-slots/:id.
func (h *SlotHandler) DeleteSlotHandler(c *gin.Context) {
	if err := h.Service.DeleteSlot(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slot deleted"})
}

func (h *SlotHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, slots.ErrSlotUnavailable):
		utils.JSONError(c, http.StatusConflict, SlotUnavailableMessage, "")
	case errors.Is(err, slots.ErrSlotBooked):
		utils.JSONError(c, http.StatusConflict, "Booked slots cannot be deleted", "")
	case errors.Is(err, slots.ErrDuplicateSlot):
		utils.JSONError(c, http.StatusConflict, "Slot already exists", err.Error())
	case errors.Is(err, slots.ErrSlotNotFound):
		utils.JSONError(c, http.StatusNotFound, "Interview slot not found", "")
	case errors.Is(err, slots.ErrInvalidMonth),
		errors.Is(err, slots.ErrInvalidSlot),
		errors.Is(err, slots.ErrInvalidStatus):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	default:
		getLogger(c).Error("Interview slot operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process interview slot request", "")
	}
}
