package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mahmutsamiyagmur/flightsystem/internal/api/dto"
	"github.com/mahmutsamiyagmur/flightsystem/internal/domain"
	"github.com/mahmutsamiyagmur/flightsystem/internal/services"
)

// TransportationHandler exposes transportation management endpoints.
type TransportationHandler struct {
	Service *services.TransportationService
}

// Collection handles GET (list, optionally filtered by originCode +
// destinationCode) and POST (create) on /transportations.
func (h *TransportationHandler) Collection(w http.ResponseWriter, r *http.Request) {
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

// ByID handles GET/PUT/DELETE on /transportations/{id}.
func (h *TransportationHandler) ByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/transportations/")
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "transportation id must be an integer")
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

// Available handles GET /transportations/available?originCode=&date=,
// listing departures from a location on the weekday of the given date.
func (h *TransportationHandler) Available(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	originCode := strings.TrimSpace(r.URL.Query().Get("originCode"))
	rawDate := strings.TrimSpace(r.URL.Query().Get("date"))
	if originCode == "" || rawDate == "" {
		writeError(w, r, http.StatusBadRequest, "originCode and date are required")
		return
	}

	date, err := time.Parse("2006-01-02", rawDate)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "date must be an ISO date (YYYY-MM-DD)")
		return
	}

	transportations, err := h.Service.ListAvailableFrom(r.Context(), originCode, date)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toListResponse(transportations))
}

func (h *TransportationHandler) list(w http.ResponseWriter, r *http.Request) {
	originCode := strings.TrimSpace(r.URL.Query().Get("originCode"))
	destinationCode := strings.TrimSpace(r.URL.Query().Get("destinationCode"))

	var (
		transportations []domain.Transportation
		err             error
	)
	switch {
	case originCode != "" && destinationCode != "":
		transportations, err = h.Service.ListByEndpoints(r.Context(), originCode, destinationCode)
	case originCode == "" && destinationCode == "":
		transportations, err = h.Service.List(r.Context())
	default:
		writeError(w, r, http.StatusBadRequest, "originCode and destinationCode must be given together")
		return
	}
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toListResponse(transportations))
}

func (h *TransportationHandler) get(w http.ResponseWriter, r *http.Request, id int64) {
	t, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.FromTransportation(t))
}

func (h *TransportationHandler) create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTransportation(w, r)
	if !ok {
		return
	}

	created, err := h.Service.Create(r.Context(), domain.Transportation{
		OriginLocationID:      req.OriginLocationID,
		DestinationLocationID: req.DestinationLocationID,
		Type:                  domain.TransportationType(req.TransportationType),
		OperatingDays:         req.OperatingDays,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.FromTransportation(created))
}

func (h *TransportationHandler) update(w http.ResponseWriter, r *http.Request, id int64) {
	req, ok := decodeTransportation(w, r)
	if !ok {
		return
	}

	updated, err := h.Service.Update(r.Context(), domain.Transportation{
		ID:                    id,
		OriginLocationID:      req.OriginLocationID,
		DestinationLocationID: req.DestinationLocationID,
		Type:                  domain.TransportationType(req.TransportationType),
		OperatingDays:         req.OperatingDays,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromTransportation(updated))
}

func (h *TransportationHandler) delete(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toListResponse(transportations []domain.Transportation) dto.ListTransportationsResponse {
	res := dto.ListTransportationsResponse{
		Transportations: make([]dto.TransportationResponse, 0, len(transportations)),
	}
	for _, t := range transportations {
		res.Transportations = append(res.Transportations, dto.FromTransportation(t))
	}
	return res
}

func decodeTransportation(w http.ResponseWriter, r *http.Request) (dto.TransportationRequest, bool) {
	var req dto.TransportationRequest

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
