package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/AlenaMolokova/cardcheck/internal/models"
	"github.com/AlenaMolokova/cardcheck/internal/utils"
	log "github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 12

func decodeCardRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req models.CardRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		log.Warnf("Failed to decode card request: %v", err)
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return "", false
	}
	if strings.TrimSpace(req.Number) == "" {
		log.Warn("Empty card number")
		utils.WriteJSONError(w, http.StatusBadRequest, "Card number is required")
		return "", false
	}
	return req.Number, true
}
