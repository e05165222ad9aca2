package handlers

import "github.com/AlenaMolokova/cardcheck/internal/models"

type CardValidator interface {
	ValidateCard(rawInput string) models.CardReport
}

type LuhnChecker interface {
	CheckLuhn(rawInput string) bool
}

type BrandLister interface {
	SupportedBrands() []string
}
