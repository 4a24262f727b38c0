package api

import (
	"net/http"
	"time"

	"skyboard/flightdeck/internal/common"
	"skyboard/flightdeck/internal/constants"
	"skyboard/flightdeck/internal/logging"
	"skyboard/flightdeck/internal/models/dtos"
)

// AirportsHandler handles GET /airports
//
// @Summary Search airports
// @Description Case-insensitive substring search over IATA code, name and city. At most 10 results.
// @Tags Airports
// @Param q query string true "Search text, at least 2 characters"
// @Success 200 {object} dtos.APIResponse
// @Failure 500 {object} dtos.APIResponse
// @Router /airports [get]
func (h *Handlers) AirportsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		airports, err := h.deps.Services.Airports.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			logging.Error("Airport search failed", "error", err)
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithData(w, airports)
	}
}

// ImportAirportsHandler handles POST /admin/airports/import.
// A JSON array in the body replaces the table; an empty body re-imports the dataset file.
func (h *Handlers) ImportAirportsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		loader := h.deps.Services.AirportLoader
		if loader == nil {
			respondWithError(w, http.StatusServiceUnavailable, constants.MsgAirportsDBDisabled)
			return
		}

		var (
			count int
			err   error
		)
		if r.ContentLength > 0 {
			count, err = loader.LoadFromJSON(r.Context(), r.Body)
		} else {
			count, err = loader.LoadFromFile(r.Context())
		}
		if err != nil {
			logging.Error("Airport import failed", "error", err)
			respondWithError(w, http.StatusBadRequest, "Failed to import airports: "+err.Error())
			return
		}

		stats, err := loader.GetStats(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to get stats: "+err.Error())
			return
		}

		logging.Info("Airports imported", "count", count, "duration", common.GetResponseTime(initTime))
		respondJSON(w, http.StatusOK, dtos.APIResponse{
			Success: true,
			Message: constants.MsgAirportsImported,
			Data: map[string]interface{}{
				"imported": count,
				"stats":    stats,
			},
		})
	}
}
