package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/hongminglow/yapekuna/internal/models/dto"
)

// JSON writes payload as the whole response body.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("respond: encode payload failed")
	}
}

// Error writes the {"error": tag} body clients use to tell apart failures
// that share a status code.
func Error(w http.ResponseWriter, status int, tag string) {
	JSON(w, status, dto.ErrorBody{Error: tag})
}
