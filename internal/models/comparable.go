package models

import "time"

// ComparableSale is a historical sale record used to corroborate an estimate.
// Rows come from the comparable_sales table or from scraped listing portals;
// the ranking core never creates or persists them.
type ComparableSale struct {
	ID             string    `json:"id"`
	Address        string    `json:"address"`
	PropertyType   string    `json:"propertyType"`
	TotalArea      float64   `json:"totalArea"`
	PriceUSD       float64   `json:"priceUsd"`
	PricePerSqmUSD float64   `json:"pricePerSqmUsd"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	SaleDate       time.Time `json:"saleDate"`
	Country        string    `json:"country"`
	Stratum        *Stratum  `json:"stratum,omitempty"`
	Source         string    `json:"source,omitempty"`
}

// RankedComparable augments a ComparableSale with the similarity scores
// computed for one search request. Never persisted.
type RankedComparable struct {
	ComparableSale
	DistanceKm             float64 `json:"distanceKm"`
	MonthsOld              int     `json:"monthsOld"`
	AreaSimilarityScore    float64 `json:"areaSimilarityScore"`
	OverallSimilarityScore float64 `json:"overallSimilarityScore"`
}
