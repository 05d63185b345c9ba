package api

import (
	"net/http"

	"github.com/PONGPONGz/GearMate/internal/models"
	"github.com/PONGPONGz/GearMate/internal/service"
)

// RegistryHandler serves the plain create and list endpoints.
type RegistryHandler struct {
	registry *service.Registry
	payloads *PayloadValidator
}

func NewRegistryHandler(reg *service.Registry, pv *PayloadValidator) *RegistryHandler {
	return &RegistryHandler{registry: reg, payloads: pv}
}

type damageReportRequest struct {
	models.DamageReport
	ReporterName *string `json:"reporter_name"`
}

func (h *RegistryHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var d models.Department
	if err := h.payloads.decodeBody(w, r, "department", &d); err != nil {
		writeError(w, err)
		return
	}
	out, err := h.registry.CreateDepartment(r.Context(), &d)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusCreated)
}

func (h *RegistryHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	out, err := h.registry.ListDepartments(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusOK)
}

func (h *RegistryHandler) CreateStation(w http.ResponseWriter, r *http.Request) {
	var s models.Station
	if err := h.payloads.decodeBody(w, r, "station", &s); err != nil {
		writeError(w, err)
		return
	}
	out, err := h.registry.CreateStation(r.Context(), &s)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusCreated)
}

func (h *RegistryHandler) ListStations(w http.ResponseWriter, r *http.Request) {
	out, err := h.registry.ListStations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusOK)
}

func (h *RegistryHandler) CreateFirefighter(w http.ResponseWriter, r *http.Request) {
	var f models.Firefighter
	if err := h.payloads.decodeBody(w, r, "firefighter", &f); err != nil {
		writeError(w, err)
		return
	}
	out, err := h.registry.CreateFirefighter(r.Context(), &f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusCreated)
}

func (h *RegistryHandler) ListFirefighters(w http.ResponseWriter, r *http.Request) {
	out, err := h.registry.ListFirefighters(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusOK)
}

func (h *RegistryHandler) CreateInspection(w http.ResponseWriter, r *http.Request) {
	var i models.Inspection
	if err := h.payloads.decodeBody(w, r, "inspection", &i); err != nil {
		writeError(w, err)
		return
	}
	out, err := h.registry.CreateInspection(r.Context(), &i)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusCreated)
}

func (h *RegistryHandler) ListInspections(w http.ResponseWriter, r *http.Request) {
	out, err := h.registry.ListInspections(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusOK)
}

func (h *RegistryHandler) CreateDamageReport(w http.ResponseWriter, r *http.Request) {
	var req damageReportRequest
	if err := h.payloads.decodeBody(w, r, "damage_report", &req); err != nil {
		writeError(w, err)
		return
	}
	out, err := h.registry.CreateDamageReport(r.Context(), &req.DamageReport, req.ReporterName)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusCreated)
}

func (h *RegistryHandler) ListDamageReports(w http.ResponseWriter, r *http.Request) {
	out, err := h.registry.ListDamageReports(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusOK)
}

func (h *RegistryHandler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	var m models.MaintenanceReminder
	if err := h.payloads.decodeBody(w, r, "reminder", &m); err != nil {
		writeError(w, err)
		return
	}
	out, err := h.registry.CreateReminder(r.Context(), &m)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusCreated)
}

func (h *RegistryHandler) ListReminders(w http.ResponseWriter, r *http.Request) {
	out, err := h.registry.ListReminders(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusOK)
}
