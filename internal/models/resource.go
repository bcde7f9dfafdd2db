package models

import "time"

type Resource struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	ImageURL     string    `json:"imageUrl"`
	Price        string    `json:"price"`
	PriceType    string    `json:"priceType"`
	Availability string    `json:"availability"`
	Condition    string    `json:"condition"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	OwnerID      int       `json:"ownerId"`
	OwnerName    string    `json:"ownerName"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"createdAt"`
}

type PriceType string

const (
	PriceTypePerDay   PriceType = "per-day"
	PriceTypePerWeek  PriceType = "per-week"
	PriceTypePerMonth PriceType = "per-month"
	PriceTypeFixed    PriceType = "fixed"
)

func ValidPriceType(priceType string) bool {
	switch PriceType(priceType) {
	case PriceTypePerDay, PriceTypePerWeek, PriceTypePerMonth, PriceTypeFixed:
		return true
	}
	return false
}

type Condition string

const (
	ConditionNew       Condition = "New"
	ConditionExcellent Condition = "Excellent"
	ConditionGood      Condition = "Good"
	ConditionFair      Condition = "Fair"
	ConditionPoor      Condition = "Poor"
)

func ValidCondition(condition string) bool {
	switch Condition(condition) {
	case ConditionNew, ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

type CreateResourceRequest struct {
	Title        string `json:"title"`
	ImageURL     string `json:"imageUrl"`
	Price        string `json:"price"`
	PriceType    string `json:"priceType"`
	Availability string `json:"availability"`
	Condition    string `json:"condition"`
	Location     string `json:"location"`
	Description  string `json:"description"`
}

// UpdateResourceRequest carries a partial update. Description is a pointer
// so clients can clear it with an explicit empty string; other text fields
// ignore empty values.
type UpdateResourceRequest struct {
	Title        string  `json:"title"`
	ImageURL     string  `json:"imageUrl"`
	Price        string  `json:"price"`
	PriceType    string  `json:"priceType"`
	Availability string  `json:"availability"`
	Condition    string  `json:"condition"`
	Location     string  `json:"location"`
	Description  *string `json:"description"`
}

// Apply merges the provided fields onto res.
func (req *UpdateResourceRequest) Apply(res *Resource) {
	if req.Title != "" {
		res.Title = req.Title
	}
	if req.ImageURL != "" {
		res.ImageURL = req.ImageURL
	}
	if req.Price != "" {
		res.Price = req.Price
	}
	if req.PriceType != "" {
		res.PriceType = req.PriceType
	}
	if req.Availability != "" {
		res.Availability = req.Availability
	}
	if req.Condition != "" {
		res.Condition = req.Condition
	}
	if req.Location != "" {
		res.Location = req.Location
	}
	if req.Description != nil {
		res.Description = *req.Description
	}
}
