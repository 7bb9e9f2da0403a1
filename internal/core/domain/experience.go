package domain

import (
	"github.com/shopspring/decimal"
)

type Slot struct {
	ID             string `json:"_id"`
	Date           string `json:"date"`
	AvailableSpots int    `json:"availableSpots"`
}

func (s *Slot) IsBookable() bool {
	return s.AvailableSpots > 0
}

type Experience struct {
	ID          string          `json:"_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Slots       []Slot          `json:"slots"`
}
