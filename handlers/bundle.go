// File: cpicareers/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Interview slot endpoints
	GetMonthSlotsHandler gin.HandlerFunc
	BookSlotHandler      gin.HandlerFunc

	// Application endpoints
	SubmitApplicationHandler gin.HandlerFunc

	// Job posting endpoints
	ListJobPostingsHandler gin.HandlerFunc

	// Admin endpoints
	CreateSlotsHandler          gin.HandlerFunc
	UpdateSlotStatusHandler     gin.HandlerFunc
	DeleteSlotHandler           gin.HandlerFunc
	ListApplicationsHandler     gin.HandlerFunc
	ReconcileApplicationHandler gin.HandlerFunc
	CreateJobPostingHandler     gin.HandlerFunc

	HealthHandler gin.HandlerFunc
	AdminSecret   string
}

// NewHandlerBundle collects the handlers' endpoints.
func NewHandlerBundle(sh *SlotHandler, ah *ApplicationHandler, jh *JobHandler, adminSecret string) *HandlerBundle {
	return &HandlerBundle{
		GetMonthSlotsHandler:        sh.GetMonthHandler,
		BookSlotHandler:             sh.BookHandler,
		SubmitApplicationHandler:    ah.SubmitHandler,
		ListJobPostingsHandler:      jh.ListHandler,
		CreateSlotsHandler:          sh.CreateSlotsHandler,
		UpdateSlotStatusHandler:     sh.UpdateStatusHandler,
		DeleteSlotHandler:           sh.DeleteSlotHandler,
		ListApplicationsHandler:     ah.ListHandler,
		ReconcileApplicationHandler: ah.ReconcileHandler,
		CreateJobPostingHandler:     jh.CreateHandler,
		HealthHandler:               HealthHandler,
		AdminSecret:                 adminSecret,
	}
}
