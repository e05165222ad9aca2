package usecase

import (
	"github.com/AlenaMolokova/cardcheck/internal/models"
	"github.com/AlenaMolokova/cardcheck/internal/utils"
	log "github.com/sirupsen/logrus"
)

type CardValidator interface {
	Classify(rawInput string) models.Verdict
	Brands() []string
}

type CardUseCase interface {
	ValidateCard(rawInput string) models.CardReport
	CheckLuhn(rawInput string) bool
	SupportedBrands() []string
}

type cardUseCase struct {
	validator CardValidator
}

func NewCardUseCase(validator CardValidator) CardUseCase {
	return &cardUseCase{validator: validator}
}

func (u *cardUseCase) ValidateCard(rawInput string) models.CardReport {
	verdict := u.validator.Classify(rawInput)
	report := models.CardReport{Verdict: verdict}

	if verdict.HasBrand() {
		report.Masked = utils.MaskCardNumber(rawInput)
		if verdict.ChecksumValid {
			report.Formatted = utils.FormatCardNumber(rawInput)
		}
	}

	// raw input is never logged, only the masked form
	log.WithFields(log.Fields{
		"brand":         verdict.Brand,
		"checksumValid": verdict.ChecksumValid,
		"masked":        report.Masked,
	}).Debugf("card validated: %s", verdictText(verdict))

	return report
}

func (u *cardUseCase) CheckLuhn(rawInput string) bool {
	return utils.LuhnCheck(utils.Normalize(rawInput))
}

func (u *cardUseCase) SupportedBrands() []string {
	return u.validator.Brands()
}

func verdictText(v models.Verdict) string {
	if v.ErrorMessage == "" {
		return "ok"
	}
	return v.ErrorMessage
}
