package usecase

import (
	"testing"

	"github.com/AlenaMolokova/cardcheck/internal/constants"
	"github.com/AlenaMolokova/cardcheck/internal/models"
	"github.com/AlenaMolokova/cardcheck/internal/testutils"
	"github.com/AlenaMolokova/cardcheck/internal/validation"
	"github.com/stretchr/testify/assert"
)

func TestValidateCard(t *testing.T) {
	uc := NewCardUseCase(validation.NewBrandClassifier())

	tests := []struct {
		name     string
		input    string
		expected models.CardReport
	}{
		{
			name:  "валидная карта",
			input: "4532 0151 1283 0366",
			expected: models.CardReport{
				Verdict:   models.Verdict{Brand: constants.BrandVisa, ChecksumValid: true},
				Formatted: "4532 0151 1283 0366",
				Masked:    "4532 ******** 0366",
			},
		},
		{
			name:  "неверная контрольная сумма",
			input: "4532015112830367",
			expected: models.CardReport{
				Verdict: models.Verdict{Brand: constants.BrandVisa, ErrorMessage: constants.MsgChecksumFailure},
				Masked:  "4532 ******** 0367",
			},
		},
		{
			name:  "неизвестный бренд",
			input: "1234567890123",
			expected: models.CardReport{
				Verdict: models.Verdict{ErrorMessage: constants.MsgUnknownBrand},
			},
		},
		{
			name:  "неверный формат",
			input: "abcd",
			expected: models.CardReport{
				Verdict: models.Verdict{ErrorMessage: constants.MsgInvalidFormat},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, uc.ValidateCard(tt.input))
		})
	}
}

func TestValidateCardUsesValidator(t *testing.T) {
	mockValidator := new(testutils.MockCardValidator)
	mockValidator.On("Classify", "36000000000008").Return(models.Verdict{Brand: "Custom", ChecksumValid: true})

	uc := NewCardUseCase(mockValidator)
	report := uc.ValidateCard("36000000000008")

	assert.Equal(t, "Custom", report.Brand)
	assert.Equal(t, "3600 0000 0000 08", report.Formatted)
	assert.Equal(t, "3600 ****** 0008", report.Masked)
	mockValidator.AssertExpectations(t)
}

func TestCheckLuhn(t *testing.T) {
	uc := NewCardUseCase(validation.NewBrandClassifier())

	assert.True(t, uc.CheckLuhn("4532 0151 1283 0366"))
	assert.False(t, uc.CheckLuhn("4532015112830367"))
	assert.False(t, uc.CheckLuhn("abcd"))
	assert.False(t, uc.CheckLuhn(""))
}

func TestSupportedBrands(t *testing.T) {
	mockValidator := new(testutils.MockCardValidator)
	mockValidator.On("Brands").Return([]string{constants.BrandVisa, constants.BrandAura})

	uc := NewCardUseCase(mockValidator)

	assert.Equal(t, []string{constants.BrandVisa, constants.BrandAura}, uc.SupportedBrands())
	mockValidator.AssertExpectations(t)
}
