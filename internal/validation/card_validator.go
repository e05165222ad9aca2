package validation

import (
	"regexp"

	"github.com/AlenaMolokova/cardcheck/internal/constants"
	"github.com/AlenaMolokova/cardcheck/internal/models"
	"github.com/AlenaMolokova/cardcheck/internal/utils"
)

type CardValidator interface {
	Classify(rawInput string) models.Verdict
	Brands() []string
}

var _ CardValidator = (*BrandClassifier)(nil)

// BrandClassifier is immutable after construction and safe for concurrent use.
type BrandClassifier struct {
	digitRegex *regexp.Regexp
	rules      []BrandRule
}

func NewBrandClassifier() *BrandClassifier {
	return NewBrandClassifierWithRules(defaultRules)
}

func NewBrandClassifierWithRules(rules []BrandRule) *BrandClassifier {
	return &BrandClassifier{
		digitRegex: regexp.MustCompile(`^[0-9]+$`),
		rules:      copyRules(rules),
	}
}

func (c *BrandClassifier) Classify(rawInput string) models.Verdict {
	number := utils.Normalize(rawInput)
	if number == "" || !c.digitRegex.MatchString(number) {
		return models.Verdict{ErrorMessage: constants.MsgInvalidFormat}
	}

	for _, rule := range c.rules {
		if !rule.Match(number) {
			continue
		}
		valid := utils.LuhnCheck(number)
		verdict := models.Verdict{Brand: rule.Name, ChecksumValid: valid}
		if !valid {
			verdict.ErrorMessage = constants.MsgChecksumFailure
		}
		return verdict
	}

	return models.Verdict{ErrorMessage: constants.MsgUnknownBrand}
}

// Brands lists distinct brand names in table order.
func (c *BrandClassifier) Brands() []string {
	seen := make(map[string]bool, len(c.rules))
	names := make([]string, 0, len(c.rules))
	for _, r := range c.rules {
		if seen[r.Name] {
			continue
		}
		seen[r.Name] = true
		names = append(names, r.Name)
	}
	return names
}
