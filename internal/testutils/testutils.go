package testutils

import (
	"github.com/AlenaMolokova/cardcheck/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockCardValidator struct {
	mock.Mock
}

func (m *MockCardValidator) Classify(rawInput string) models.Verdict {
	args := m.Called(rawInput)
	return args.Get(0).(models.Verdict)
}

func (m *MockCardValidator) Brands() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

type MockCardUseCase struct {
	mock.Mock
}

func (m *MockCardUseCase) ValidateCard(rawInput string) models.CardReport {
	args := m.Called(rawInput)
	return args.Get(0).(models.CardReport)
}

func (m *MockCardUseCase) CheckLuhn(rawInput string) bool {
	args := m.Called(rawInput)
	return args.Bool(0)
}

func (m *MockCardUseCase) SupportedBrands() []string {
	args := m.Called()
	return args.Get(0).([]string)
}
