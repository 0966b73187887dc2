package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"cpicareers/models"
	"cpicareers/services/applications"
	"cpicareers/services/intake"
	"cpicareers/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxIntakeBody caps the whole multipart body: all attachment limits plus
// room for the scalar fields.
const maxIntakeBody = models.MaxCVBytes + models.MaxPictureBytes + models.MaxCertificationsBytes + 1<<20

type ApplicationHandler struct {
	Intake       intake.IntakeService
	Applications applications.ApplicationService
}

func NewApplicationHandler(in intake.IntakeService, apps applications.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Intake: in, Applications: apps}
}

// SubmitHandler serves POST /api/applications.
func (h *ApplicationHandler) SubmitHandler(c *gin.Context) {
	logger := getLogger(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxIntakeBody)

	var form models.ApplicationForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn("Invalid application payload", zap.Error(err))
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.JSONError(c, http.StatusRequestEntityTooLarge, "Application is too large", "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Invalid application payload", err.Error())
		return
	}

	app, err := h.Intake.Submit(c.Request.Context(), &form)
	if err != nil {
		var formErr *intake.FormError
		switch {
		case errors.As(err, &formErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application", "fields": formErr.Fields})
		case errors.Is(err, intake.ErrUploadFailed):
			logger.Error("Attachment upload failed", zap.Error(err))
			utils.JSONError(c, http.StatusBadGateway, "Failed to store attachments", "")
		default:
			logger.Error("Application intake failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to submit application", "")
		}
		return
	}

	c.JSON(http.StatusCreated, models.IntakeResponse{ID: app.ID, Status: app.Status})
}

// ListHandler serves GET /api/admin/applications?status=&limit=.
func (h *ApplicationHandler) ListHandler(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)
	apps, err := h.Applications.List(c.Request.Context(), models.ApplicationStatus(c.Query("status")), limit)
	if err != nil {
		if errors.Is(err, applications.ErrInvalidStatus) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		getLogger(c).Error("Failed to list applications", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch applications", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps, "count": len(apps)})
}

// ReconcileHandler serves POST /api/admin/applications/:id/reconcile and
// settles one application immediately.
func (h *ApplicationHandler) ReconcileHandler(c *gin.Context) {
	status, err := h.Applications.Reconcile(c.Request.Context(), c.Param("id"))
	if err != nil {
		getLogger(c).Error("Failed to reconcile application", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reconcile application", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": status})
}
