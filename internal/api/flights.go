package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"skyboard/flightdeck/internal/auth"
	"skyboard/flightdeck/internal/constants"
	"skyboard/flightdeck/internal/logging"
	"skyboard/flightdeck/internal/models/dtos"
	"skyboard/flightdeck/internal/providers"
	"skyboard/flightdeck/internal/services"
)

// FlightsHandler godoc
// @Summary      Live flights
// @Description  Lists live flights inside the bounds, or worldwide. Falls back to mock flights when the provider fails.
// @Tags         Flights
// @Produce      json
// @Param        min_lat  query  number  false  "South edge"
// @Param        max_lat  query  number  false  "North edge"
// @Param        min_lon  query  number  false  "West edge"
// @Param        max_lon  query  number  false  "East edge"
// @Param        limit    query  int     false  "Maximum flights"  default(1500)
// @Success      200      {object}  dtos.APIResponse
// @Router       /flights [get]
func (h *Handlers) FlightsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		req := services.ListFlightsRequest{
			Bounds: parseBounds(q.Get("min_lat"), q.Get("max_lat"), q.Get("min_lon"), q.Get("max_lon")),
		}
		// absent or non-numeric falls back to the default; 0 and below are kept
		if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
			req.Limit = &limit
		}

		listing := h.deps.Services.Flights.ListFlights(r.Context(), req)
		if listing.Mock {
			respondJSON(w, http.StatusOK, dtos.APIResponse{
				Success: true,
				Data:    listing.Flights,
				Message: listing.Message,
			})
			return
		}

		count := len(listing.Flights)
		respondJSON(w, http.StatusOK, dtos.APIResponse{
			Success: true,
			Data:    listing.Flights,
			Count:   &count,
		})
	}
}

// parseBounds returns nil unless all four edges are valid numbers
func parseBounds(minLat, maxLat, minLon, maxLon string) *providers.Bounds {
	values := make([]float64, 0, 4)
	for _, raw := range []string{minLat, maxLat, minLon, maxLon} {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil
		}
		values = append(values, v)
	}
	b := providers.NewBounds(values[0], values[1], values[2], values[3])
	return &b
}

// FlightDetailsHandler godoc
// @Summary      Flight details
// @Description  Details and aircraft photo of one flight. airline_icao and aircraft enable the photo fallbacks.
// @Tags         Flights
// @Produce      json
// @Param        id            query  string  true   "Flight id"
// @Param        airline_icao  query  string  false  "Airline ICAO code"
// @Param        aircraft      query  string  false  "Aircraft type code"
// @Success      200           {object}  dtos.APIResponse
// @Router       /flight_details [get]
func (h *Handlers) FlightDetailsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		flightID := chi.URLParam(r, "id")
		if flightID == "" {
			flightID = q.Get("id")
		}
		if flightID == "" {
			respondWithError(w, http.StatusOK, constants.MsgMissingFlightID)
			return
		}

		data, trace, err := h.deps.Services.Flights.FlightDetails(r.Context(), services.FlightDetailsRequest{
			FlightID:     flightID,
			AirlineICAO:  q.Get("airline_icao"),
			AircraftCode: q.Get("aircraft"),
		})
		if err != nil {
			respondWithError(w, http.StatusOK, err.Error())
			return
		}

		logging.WithRequest(auth.GetRequestID(r.Context()), r.URL.Path).Debugw("Flight details served",
			"flight_id", flightID,
			"image_source", trace.Source,
		)
		respondWithData(w, data)
	}
}
