package controller

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"beautygpt-api/models"
)

// writeJSON encodes body as the JSON response with the given status
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("❌ Error encoding response")
	}
}

// writeError reports a failure as {"detail": "..."}
func writeError(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeJSON(w, r, status, models.ErrorResponse{Detail: detail})
}
