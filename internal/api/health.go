package api

import (
	"context"
	"net/http"
	"os"
	"time"

	"skyboard/flightdeck/internal/models/dtos"
)

// HealthCheckHandler handles GET /healthCheck
//
// @Summary Health check
// @Description Reports provider availability, cache backend and airport source.
// @Tags Misc
// @Success 200 {object} dtos.HealthReport
// @Router /healthCheck [get]
func (h *Handlers) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		services := make(map[string]dtos.ComponentStatus)

		providerStatus := dtos.ComponentStatus{Status: "ok", Details: h.deps.Services.Provider.GetProviderType()}
		if err := h.deps.Services.Provider.Availability(); err != nil {
			providerStatus = dtos.ComponentStatus{Status: "down", Details: err.Error()}
		}
		services["provider"] = providerStatus

		cache := h.deps.Services.Cache
		cacheStatus := dtos.ComponentStatus{Status: "ok", Details: cache.Backend()}
		if err := cache.Ping(); err != nil {
			cacheStatus = dtos.ComponentStatus{Status: "down", Details: cache.Backend() + ": " + err.Error()}
		}
		services["cache"] = cacheStatus

		services["airports"] = h.airportSourceStatus(ctx)

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "degraded"
				break
			}
		}

		resp := dtos.HealthReport{
			Services: services,
			Status:   overallStatus,
			UpSince:  h.deps.StartedAt,
			Uptime:   time.Since(h.deps.StartedAt).Round(time.Second).String(),
		}
		respondJSONRaw(w, http.StatusOK, resp)
	}
}

func (h *Handlers) airportSourceStatus(ctx context.Context) dtos.ComponentStatus {
	if repo := h.deps.Repo.Airports; repo != nil {
		if err := repo.Ping(ctx); err != nil {
			return dtos.ComponentStatus{Status: "down", Details: err.Error()}
		}
		return dtos.ComponentStatus{Status: "ok", Details: "database " + h.deps.Config.AirportsDBDriver}
	}

	if _, err := os.Stat(h.deps.Config.AirportsFile); err != nil {
		return dtos.ComponentStatus{Status: "down", Details: err.Error()}
	}
	return dtos.ComponentStatus{Status: "ok", Details: "file " + h.deps.Config.AirportsFile}
}
