package handlers

import (
	"net/http"

	"github.com/AlenaMolokova/cardcheck/internal/utils"
)

type ValidateHandler struct {
	cards CardValidator
}

func NewValidateHandler(cards CardValidator) *ValidateHandler {
	return &ValidateHandler{cards: cards}
}

// ServeHTTP always answers 200 once the body is readable; domain failures travel inside the report.
func (h *ValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	number, ok := decodeCardRequest(w, r)
	if !ok {
		return
	}

	report := h.cards.ValidateCard(number)
	utils.WriteJSON(w, http.StatusOK, report)
}
