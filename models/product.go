package models

import "time"

type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	SKU         string   `json:"sku,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	Reviews     int      `json:"reviews,omitempty"`
	KeyBenefits []string `json:"key_benefits,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	Variants []ProductVariant `json:"variants,omitempty"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

type ProductVariant struct {
	Quantity     string  `json:"quantity"`
	Price        float64 `json:"price"`
	SellingPrice float64 `json:"selling_price"`
	Discount     int     `json:"discount"`
	ProductTax   string  `json:"product_tax"`
}

// Product categories as used by the catalog and the category filter endpoint.
const (
	CategoryHealthcare   = "healthcare"
	CategoryPersonalCare = "personalcare"
	CategoryHairCare     = "haircare"
	CategoryOralCare     = "oralcare"
	CategorySkinCare     = "skincare"
	CategoryMedicines    = "ayurvedicmedicines"
	CategoryBeverages    = "beverages"
	CategorySeasonal     = "seasonal"
	CategoryCombos       = "specialcombos"
)
