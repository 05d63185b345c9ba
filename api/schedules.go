package api

import (
	"net/http"

	"github.com/PONGPONGz/GearMate/internal/models"
	"github.com/PONGPONGz/GearMate/internal/service"
)

type SchedulesHandler struct {
	scheduler *service.Scheduler
	payloads  *PayloadValidator
}

func NewSchedulesHandler(s *service.Scheduler, pv *PayloadValidator) *SchedulesHandler {
	return &SchedulesHandler{scheduler: s, payloads: pv}
}

type scheduleRequest struct {
	GearID        int64         `json:"gear_id"`
	ScheduledDate models.Date   `json:"scheduled_date"`
	ScheduledTime *models.Clock `json:"scheduled_time"`
}

type scheduleResponse struct {
	models.MaintenanceSchedule
	Reminder *models.MaintenanceReminder `json:"reminder"`
}

func (h *SchedulesHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := h.payloads.decodeBody(w, r, "schedule", &req); err != nil {
		writeError(w, err)
		return
	}
	s, rem, err := h.scheduler.CreateSchedule(r.Context(), req.GearID, req.ScheduledDate, req.ScheduledTime)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, scheduleResponse{MaintenanceSchedule: *s, Reminder: rem}, http.StatusCreated)
}

func (h *SchedulesHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	out, err := h.scheduler.ListSchedules(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusOK)
}
