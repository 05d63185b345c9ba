package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/PONGPONGz/GearMate/internal/models"
	"github.com/PONGPONGz/GearMate/internal/service"
)

type GearsHandler struct {
	registry *service.Registry
	catalog  *service.GearCatalog
	payloads *PayloadValidator
}

func NewGearsHandler(reg *service.Registry, cat *service.GearCatalog, pv *PayloadValidator) *GearsHandler {
	return &GearsHandler{registry: reg, catalog: cat, payloads: pv}
}

func (h *GearsHandler) CreateGear(w http.ResponseWriter, r *http.Request) {
	var g models.Gear
	if err := h.payloads.decodeBody(w, r, "gear", &g); err != nil {
		writeError(w, err)
		return
	}
	out, err := h.registry.CreateGear(r.Context(), &g)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusCreated)
}

// ListGears serves GET /gears?sort=Name|Type|Maintenance Date.
func (h *GearsHandler) ListGears(w http.ResponseWriter, r *http.Request) {
	key, err := service.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, err)
		return
	}
	out, err := h.catalog.ListGears(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusOK)
}

func (h *GearsHandler) GetGear(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, service.ValidationError("invalid gear id %q", mux.Vars(r)["id"]))
		return
	}
	g, err := h.catalog.GetGear(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if g == nil {
		writeJSON(w, errorResponse{Error: "gear not found", Kind: service.KindReference}, http.StatusNotFound)
		return
	}
	writeJSON(w, g, http.StatusOK)
}
