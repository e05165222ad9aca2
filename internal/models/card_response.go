package models

type CardRequest struct {
	Number string `json:"number"`
}

type LuhnResponse struct {
	NumberValid bool `json:"number_valid"`
}

type BrandsResponse struct {
	Brands []string `json:"brands"`
}
