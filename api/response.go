package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/PONGPONGz/GearMate/internal/models"
	"github.com/PONGPONGz/GearMate/internal/service"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string        `json:"error"`
	Kind   service.Kind  `json:"kind"`
	Entity models.Entity `json:"entity,omitempty"`
	ID     *int64        `json:"id,omitempty"`
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

// statusFor maps a service error kind to its HTTP status.
func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindValidation:
		return http.StatusUnprocessableEntity
	case service.KindReference:
		return http.StatusBadRequest
	case service.KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	var se *service.Error
	if !errors.As(err, &se) {
		logger.Error("unclassified error", slog.Any("err", err))
		writeJSON(w, errorResponse{Error: "internal error", Kind: service.KindStorage}, http.StatusInternalServerError)
		return
	}

	resp := errorResponse{Error: se.Error(), Kind: se.Kind}
	if se.Kind == service.KindStorage {
		// storage details stay in the logs
		resp.Error = "internal error"
	}
	if se.Kind == service.KindReference && se.Entity != "" {
		id := se.ID
		resp.Entity = se.Entity
		resp.ID = &id
	}

	writeJSON(w, resp, statusFor(se.Kind))
}

// readBody reads a bounded request body.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, service.ValidationError("read request body: %v", err)
	}
	return b, nil
}
