package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/mahmutsamiyagmur/flightsystem/internal/api/dto"
	"github.com/mahmutsamiyagmur/flightsystem/internal/domain"
	"github.com/mahmutsamiyagmur/flightsystem/internal/services"
)

// LocationHandler exposes location management endpoints.
type LocationHandler struct {
	Service *services.LocationService
}

// Collection handles GET (list) and POST (create) on /locations.
func (h *LocationHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// ByID handles GET/PUT/DELETE on /locations/{id} and GET on
// /locations/code/{code}.
func (h *LocationHandler) ByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/locations/")

	if code, ok := strings.CutPrefix(rest, "code/"); ok {
		h.getByCode(w, r, code)
		return
	}

	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "location id must be an integer")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		w.Header().Set("Allow", "GET, PUT, DELETE")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *LocationHandler) list(w http.ResponseWriter, r *http.Request) {
	locations, err := h.Service.List(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.ListLocationsResponse{Locations: make([]dto.LocationResponse, 0, len(locations))}
	for _, loc := range locations {
		res.Locations = append(res.Locations, dto.FromLocation(loc))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *LocationHandler) get(w http.ResponseWriter, r *http.Request, id int64) {
	loc, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.FromLocation(loc))
}

func (h *LocationHandler) getByCode(w http.ResponseWriter, r *http.Request, code string) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	loc, err := h.Service.GetByCode(r.Context(), code)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.FromLocation(loc))
}

func (h *LocationHandler) create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeLocation(w, r)
	if !ok {
		return
	}

	created, err := h.Service.Create(r.Context(), domain.Location{
		Name:         req.Name,
		Country:      req.Country,
		City:         req.City,
		LocationCode: req.LocationCode,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.FromLocation(created))
}

func (h *LocationHandler) update(w http.ResponseWriter, r *http.Request, id int64) {
	req, ok := decodeLocation(w, r)
	if !ok {
		return
	}

	updated, err := h.Service.Update(r.Context(), domain.Location{
		ID:           id,
		Name:         req.Name,
		Country:      req.Country,
		City:         req.City,
		LocationCode: req.LocationCode,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromLocation(updated))
}

func (h *LocationHandler) delete(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeLocation(w http.ResponseWriter, r *http.Request) (dto.LocationRequest, bool) {
	var req dto.LocationRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return req, false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return req, false
	}

	if err := validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, "validation failed: "+err.Error())
		return req, false
	}

	return req, true
}
