package handlers

import (
	"net/http"

	"github.com/AlenaMolokova/cardcheck/internal/models"
	"github.com/AlenaMolokova/cardcheck/internal/utils"
)

type BrandsHandler struct {
	brands BrandLister
}

func NewBrandsHandler(brands BrandLister) *BrandsHandler {
	return &BrandsHandler{brands: brands}
}

func (h *BrandsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, models.BrandsResponse{Brands: h.brands.SupportedBrands()})
}
