package models

import (
	"errors"

	"github.com/AlenaMolokova/cardcheck/internal/constants"
)

var (
	ErrInvalidFormat  = errors.New(constants.MsgInvalidFormat)
	ErrUnknownBrand   = errors.New(constants.MsgUnknownBrand)
	ErrChecksumFailed = errors.New(constants.MsgChecksumFailure)
)

// Verdict is the outcome of classifying one card number.
// An empty Brand or ErrorMessage means "none".
type Verdict struct {
	Brand         string `json:"brand,omitempty"`
	ChecksumValid bool   `json:"checksum_valid"`
	ErrorMessage  string `json:"error,omitempty"`
}

func (v Verdict) HasBrand() bool {
	return v.Brand != ""
}

func (v Verdict) Valid() bool {
	return v.HasBrand() && v.ChecksumValid
}

// Err maps the verdict message onto one of the package sentinels.
func (v Verdict) Err() error {
	switch v.ErrorMessage {
	case "":
		return nil
	case constants.MsgInvalidFormat:
		return ErrInvalidFormat
	case constants.MsgUnknownBrand:
		return ErrUnknownBrand
	case constants.MsgChecksumFailure:
		return ErrChecksumFailed
	}
	return errors.New(v.ErrorMessage)
}

// CardReport is a Verdict plus the display forms of the number.
// Formatted is set only for fully valid numbers, Masked whenever a brand was recognized.
type CardReport struct {
	Verdict
	Formatted string `json:"formatted,omitempty"`
	Masked    string `json:"masked,omitempty"`
}
