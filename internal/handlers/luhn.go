package handlers

import (
	"net/http"

	"github.com/AlenaMolokova/cardcheck/internal/models"
	"github.com/AlenaMolokova/cardcheck/internal/utils"
)

type LuhnHandler struct {
	checker LuhnChecker
}

func NewLuhnHandler(checker LuhnChecker) *LuhnHandler {
	return &LuhnHandler{checker: checker}
}

func (h *LuhnHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	number, ok := decodeCardRequest(w, r)
	if !ok {
		return
	}

	utils.WriteJSON(w, http.StatusOK, models.LuhnResponse{NumberValid: h.checker.CheckLuhn(number)})
}
