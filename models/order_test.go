package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCheckoutTotals(t *testing.T) {
	lines := []CartLine{
		{ProductID: "PROD001", Price: 106, Quantity: 2},
		{ProductID: "PROD002", Price: 249, Quantity: 1},
	}

	totals := ComputeCheckoutTotals(lines, "")

	assert.InDelta(t, 461.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 461.0*0.18, totals.Tax, 1e-9)
	assert.Equal(t, FlatDiscount, totals.Discount)
	assert.Equal(t, FlatShippingCost, totals.ShippingCost)
	assert.InDelta(t, 461.0+461.0*0.18-6.00+14.00, totals.Total, 1e-9)
}

func TestComputeCheckoutTotalsIncludedTax(t *testing.T) {
	lines := []CartLine{{ProductID: "PROD001", Price: 106, Quantity: 1}}

	totals := ComputeCheckoutTotals(lines, TaxIncludedLabel)

	assert.Zero(t, totals.Tax)
	assert.InDelta(t, 106.0-6.00+14.00, totals.Total, 1e-9)
}

func TestComputeCheckoutTotalsEmptyCart(t *testing.T) {
	totals := ComputeCheckoutTotals(nil, "")

	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.Tax)
	assert.InDelta(t, FlatShippingCost-FlatDiscount, totals.Total, 1e-9)
}

func TestUserUpdateApply(t *testing.T) {
	user := User{Name: "Priya", Email: "priya@example.com", Mobile: "9999999999"}

	name := "Priya Sharma"
	update := UserUpdate{Name: &name}
	update.Apply(&user)

	assert.Equal(t, "Priya Sharma", user.Name)
	assert.Equal(t, "priya@example.com", user.Email)
	assert.Equal(t, "9999999999", user.Mobile)
}

func TestNewCartLineSnapshotsProduct(t *testing.T) {
	product := Product{
		ID:          "PROD001",
		Title:       "Ashwagandha Capsules",
		Price:       106,
		Image:       "/images/ashwagandha.jpg",
		Description: "Stress relief support",
	}

	line := NewCartLine(product, 3)

	assert.Equal(t, "PROD001", line.ProductID)
	assert.Equal(t, "Ashwagandha Capsules", line.Title)
	assert.Equal(t, 106.0, line.Price)
	assert.Equal(t, "/images/ashwagandha.jpg", line.Image)
	assert.Equal(t, 3, line.Quantity)
}
