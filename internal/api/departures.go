package api

import (
	"net/http"

	"skyboard/flightdeck/internal/constants"
	"skyboard/flightdeck/internal/services"
)

// LiveDeparturesHandler handles GET /live_departures?airport=GRU
func (h *Handlers) LiveDeparturesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		airport := r.URL.Query().Get("airport")
		if airport == "" {
			airport = constants.DefaultAirport
		}

		departures, err := h.deps.Services.Departures.LiveDepartures(r.Context(), airport)
		if err != nil {
			respondWithError(w, http.StatusOK, err.Error())
			return
		}
		respondWithData(w, departures)
	}
}

// SearchFlightsHandler handles GET /search_flights?origin=GRU&dest=POA&date=2025-01-31
func (h *Handlers) SearchFlightsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		origin, dest := q.Get("origin"), q.Get("dest")
		if origin == "" || dest == "" {
			respondWithError(w, http.StatusOK, constants.MsgMissingOriginDest)
			return
		}

		flights, err := h.deps.Services.Departures.SearchRoute(r.Context(), services.RouteSearchRequest{
			Origin: origin,
			Dest:   dest,
			Date:   q.Get("date"),
		})
		if err != nil {
			respondWithError(w, http.StatusOK, err.Error())
			return
		}
		respondWithData(w, flights)
	}
}
