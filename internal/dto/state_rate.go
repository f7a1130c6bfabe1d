package dto

import (
	"github.com/lukemcknight/reserve/internal/core/domain"
)

// StateRateResponse defines the data returned for one state rate entry.
type StateRateResponse struct {
	Code string  `json:"code"`
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

// StateRatesResponse wraps the full state selector list.
type StateRatesResponse struct {
	States []StateRateResponse `json:"states"`
}

// ToStateRateResponse converts a domain.StateRate to StateRateResponse DTO.
func ToStateRateResponse(sr *domain.StateRate) StateRateResponse {
	return StateRateResponse{
		Code: sr.Code,
		Name: sr.Name,
		Rate: sr.Rate.InexactFloat64(),
	}
}

// ToStateRatesResponse converts a slice of domain.StateRate to the list DTO.
func ToStateRatesResponse(rates []domain.StateRate) StateRatesResponse {
	res := StateRatesResponse{States: make([]StateRateResponse, len(rates))}
	for i, sr := range rates {
		res.States[i] = ToStateRateResponse(&sr)
	}
	return res
}

// ReplaceStateRateEntry is one row of a replacement rate table.
type ReplaceStateRateEntry struct {
	Code string  `json:"code" binding:"required,statecode"`
	Name string  `json:"name" binding:"required"`
	Rate float64 `json:"rate" binding:"gte=0,lte=1"`
}

// ReplaceStateRatesRequest defines a full-table reload. The table is swapped
// atomically; partial updates are not supported.
type ReplaceStateRatesRequest struct {
	States []ReplaceStateRateEntry `json:"states" binding:"required,min=1,dive"`
}
