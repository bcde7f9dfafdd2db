package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateResourceRequestApply(t *testing.T) {
	base := func() *Resource {
		return &Resource{
			Title:        "Tractor",
			ImageURL:     "http://example.com/tractor.jpg",
			Price:        "$50",
			PriceType:    "per-day",
			Availability: "weekdays",
			Condition:    "Good",
			Location:     "X",
			Description:  "Well maintained",
		}
	}

	t.Run("partial update", func(t *testing.T) {
		res := base()
		(&UpdateResourceRequest{Price: "$60", Condition: "Excellent"}).Apply(res)
		assert.Equal(t, "$60", res.Price)
		assert.Equal(t, "Excellent", res.Condition)
		assert.Equal(t, "Tractor", res.Title)
		assert.Equal(t, "weekdays", res.Availability)
	})

	t.Run("explicit empty description clears it", func(t *testing.T) {
		res := base()
		(&UpdateResourceRequest{Description: strPtr("")}).Apply(res)
		assert.Equal(t, "", res.Description)
	})

	t.Run("omitted description is kept", func(t *testing.T) {
		res := base()
		(&UpdateResourceRequest{Title: "Plough"}).Apply(res)
		assert.Equal(t, "Well maintained", res.Description)
	})
}

func TestValidPriceType(t *testing.T) {
	for _, pt := range []string{"per-day", "per-week", "per-month", "fixed"} {
		assert.True(t, ValidPriceType(pt), pt)
	}
	for _, pt := range []string{"", "per-year", "daily", "Fixed"} {
		assert.False(t, ValidPriceType(pt), pt)
	}
}

func TestValidCondition(t *testing.T) {
	for _, c := range []string{"New", "Excellent", "Good", "Fair", "Poor"} {
		assert.True(t, ValidCondition(c), c)
	}
	for _, c := range []string{"", "good", "Broken", "Used"} {
		assert.False(t, ValidCondition(c), c)
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("farmer"))
	assert.True(t, ValidRole("retailer"))
	assert.False(t, ValidRole("admin"))
	assert.False(t, ValidRole(""))
}
