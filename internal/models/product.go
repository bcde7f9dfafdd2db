package models

import "time"

type Product struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Quantity    string    `json:"quantity"`
	Unit        string    `json:"unit"`
	TradeOption string    `json:"tradeOption"`
	ImageURL    string    `json:"imageUrl"`
	SellerID    int       `json:"sellerId"`
	SellerName  string    `json:"sellerName"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
}

type TradeOption string

const (
	TradeOptionSell   TradeOption = "sell"
	TradeOptionBarter TradeOption = "barter"
	TradeOptionBoth   TradeOption = "both"
)

func ValidTradeOption(option string) bool {
	switch TradeOption(option) {
	case TradeOptionSell, TradeOptionBarter, TradeOptionBoth:
		return true
	}
	return false
}

type CreateProductRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Quantity    string `json:"quantity"`
	Unit        string `json:"unit"`
	TradeOption string `json:"tradeOption"`
	ImageURL    string `json:"imageUrl"`
}

// UpdateProductRequest carries a partial update. Description is a pointer
// because an explicit empty string clears the field, while omitting it
// leaves the stored value alone. All other text fields ignore empty values.
type UpdateProductRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Price       string  `json:"price"`
	Quantity    string  `json:"quantity"`
	Unit        string  `json:"unit"`
	TradeOption string  `json:"tradeOption"`
	ImageURL    string  `json:"imageUrl"`
}

// Apply merges the provided fields onto p.
func (req *UpdateProductRequest) Apply(p *Product) {
	if req.Title != "" {
		p.Title = req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != "" {
		p.Price = req.Price
	}
	if req.Quantity != "" {
		p.Quantity = req.Quantity
	}
	if req.Unit != "" {
		p.Unit = req.Unit
	}
	if req.TradeOption != "" {
		p.TradeOption = req.TradeOption
	}
	if req.ImageURL != "" {
		p.ImageURL = req.ImageURL
	}
}
