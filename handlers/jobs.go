package handlers

import (
	"net/http"

	"cpicareers/models"
	"cpicareers/services/jobs"
	"cpicareers/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type JobHandler struct {
	Service jobs.JobService
}

func NewJobHandler(s jobs.JobService) *JobHandler {
	return &JobHandler{Service: s}
}

// ListHandler serves GET /api/job-postings.
func (h *JobHandler) ListHandler(c *gin.Context) {
	postings, err := h.Service.ListActive(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to fetch job postings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch job postings", "")
		return
	}
	c.JSON(http.StatusOK, postings)
}

// CreateHandler serves POST /api/admin/job-postings.
func (h *JobHandler) CreateHandler(c *gin.Context) {
	var posting models.JobPosting
	if err := c.ShouldBindJSON(&posting); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid job posting", err.Error())
		return
	}
	created, err := h.Service.Create(c.Request.Context(), posting)
	if err != nil {
		getLogger(c).Error("Failed to create job posting", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create job posting", "")
		return
	}
	c.JSON(http.StatusCreated, created)
}
