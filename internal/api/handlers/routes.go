package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/mahmutsamiyagmur/flightsystem/internal/api/dto"
	"github.com/mahmutsamiyagmur/flightsystem/internal/domain"
	"github.com/mahmutsamiyagmur/flightsystem/internal/services"
)

// RouteHandler serves route searches.
type RouteHandler struct {
	Finder services.RouteFinder
}

// Search answers GET /routes/search?originCode=&destinationCode=&travelDate=
// with nested arrays of segment descriptors, one inner array per itinerary.
func (h *RouteHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	originCode := strings.TrimSpace(r.URL.Query().Get("originCode"))
	destinationCode := strings.TrimSpace(r.URL.Query().Get("destinationCode"))
	rawDate := strings.TrimSpace(r.URL.Query().Get("travelDate"))

	if originCode == "" || destinationCode == "" || rawDate == "" {
		writeError(w, r, http.StatusBadRequest, "originCode, destinationCode and travelDate are required")
		return
	}

	travelDate, err := time.Parse("2006-01-02", rawDate)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "travelDate must be an ISO date (YYYY-MM-DD)")
		return
	}

	q := domain.RouteQuery{
		OriginCode:      originCode,
		DestinationCode: destinationCode,
		TravelDate:      travelDate,
	}

	routes, err := h.Finder.FindRoutes(r.Context(), q)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromItineraries(routes))
}
