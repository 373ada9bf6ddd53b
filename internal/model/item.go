package model

import "time"

// ShoppingItem is one shopping-list entry. Prices are whole forints;
// conversion to other currencies happens at display time only.
type ShoppingItem struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	EstimatedPriceHUF int64     `json:"estimated_price_huf"`
	Category          string    `json:"category"`
	IsBought          bool      `json:"is_bought"`
	CreatedAt         time.Time `json:"created_at"`
}

// Categories is the fixed set offered by the add-item form. The store
// accepts any text; membership is enforced at the handler boundary.
var Categories = []string{"Food", "Electronic", "Book"}

// ValidCategory reports whether s is one of the known categories.
func ValidCategory(s string) bool {
	for _, c := range Categories {
		if s == c {
			return true
		}
	}
	return false
}
