package validation

import "github.com/AlenaMolokova/cardcheck/internal/constants"

// PrefixRange is an inclusive range over the leading len(Lo) digits of a number.
// Lo and Hi must have the same width; a single prefix has Lo == Hi.
type PrefixRange struct {
	Lo string
	Hi string
}

// Match compares equal-width digit strings, which orders them the same way as their numeric values.
func (p PrefixRange) Match(number string) bool {
	width := len(p.Lo)
	if len(number) < width {
		return false
	}
	lead := number[:width]
	return lead >= p.Lo && lead <= p.Hi
}

type LengthRange struct {
	Min int
	Max int
}

func (l LengthRange) Match(n int) bool {
	return n >= l.Min && n <= l.Max
}

type BrandRule struct {
	Name     string
	Prefixes []PrefixRange
	Lengths  []LengthRange
}

func (r BrandRule) Match(number string) bool {
	return r.matchLength(len(number)) && r.matchPrefix(number)
}

func (r BrandRule) matchPrefix(number string) bool {
	for _, p := range r.Prefixes {
		if p.Match(number) {
			return true
		}
	}
	return false
}

func (r BrandRule) matchLength(n int) bool {
	for _, l := range r.Lengths {
		if l.Match(n) {
			return true
		}
	}
	return false
}

func prefix(p string) PrefixRange {
	return PrefixRange{Lo: p, Hi: p}
}

func exactly(n int) LengthRange {
	return LengthRange{Min: n, Max: n}
}

// defaultRules is evaluated top to bottom and the first match wins.
// Voyager shares prefix 36 and length 14 with Diners Club, so it can never match;
// it stays in place until product decides which brand owns that range.
var defaultRules = []BrandRule{
	{
		Name:     constants.BrandVisa,
		Prefixes: []PrefixRange{prefix("4")},
		Lengths:  []LengthRange{exactly(13), exactly(16)},
	},
	{
		Name:     constants.BrandMasterCard,
		Prefixes: []PrefixRange{{Lo: "51", Hi: "55"}, {Lo: "2221", Hi: "2720"}},
		Lengths:  []LengthRange{exactly(16)},
	},
	{
		Name:     constants.BrandAmericanExpress,
		Prefixes: []PrefixRange{prefix("34"), prefix("37")},
		Lengths:  []LengthRange{exactly(15)},
	},
	{
		Name: constants.BrandDiscover,
		Prefixes: []PrefixRange{
			prefix("6011"),
			prefix("65"),
			{Lo: "644", Hi: "649"},
			{Lo: "622126", Hi: "622925"},
		},
		Lengths: []LengthRange{exactly(16)},
	},
	{
		Name:     constants.BrandDinersClub,
		Prefixes: []PrefixRange{prefix("36"), prefix("38"), prefix("39")},
		Lengths:  []LengthRange{exactly(14)},
	},
	{
		Name:     constants.BrandJCB,
		Prefixes: []PrefixRange{{Lo: "3528", Hi: "3589"}},
		Lengths:  []LengthRange{{Min: 16, Max: 19}},
	},
	{
		Name:     constants.BrandVoyager,
		Prefixes: []PrefixRange{prefix("36")},
		Lengths:  []LengthRange{exactly(14)},
	},
	{
		Name:     constants.BrandEnRoute,
		Prefixes: []PrefixRange{prefix("2014"), prefix("2149")},
		Lengths:  []LengthRange{exactly(15)},
	},
	{
		Name:     constants.BrandHiperCard,
		Prefixes: []PrefixRange{prefix("6062")},
		Lengths:  []LengthRange{{Min: 16, Max: 19}},
	},
	{
		Name:     constants.BrandAura,
		Prefixes: []PrefixRange{prefix("5078")},
		Lengths:  []LengthRange{exactly(19)},
	},
}

// Rules returns a copy of the default rule table in evaluation order.
func Rules() []BrandRule {
	return copyRules(defaultRules)
}

func copyRules(rules []BrandRule) []BrandRule {
	out := make([]BrandRule, len(rules))
	for i, r := range rules {
		out[i] = BrandRule{
			Name:     r.Name,
			Prefixes: append([]PrefixRange(nil), r.Prefixes...),
			Lengths:  append([]LengthRange(nil), r.Lengths...),
		}
	}
	return out
}
