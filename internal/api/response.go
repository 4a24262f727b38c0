package api

import (
	"encoding/json"
	"net/http"

	"skyboard/flightdeck/internal/models/dtos"
)

func respondJSON(w http.ResponseWriter, statusCode int, resp dtos.APIResponse) {
	respondJSONRaw(w, statusCode, resp)
}

// respondJSONRaw writes body without the success envelope
func respondJSONRaw(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func respondWithData(w http.ResponseWriter, data any) {
	respondJSON(w, http.StatusOK, dtos.APIResponse{Success: true, Data: data})
}

// respondWithError reports a handled failure. Clients read success, so
// handled failures keep HTTP 200 unless the caller says otherwise.
func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, dtos.APIResponse{Success: false, Error: message})
}
