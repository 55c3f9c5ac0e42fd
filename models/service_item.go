package models

// ServiceItem represents a sellable service in the catalog
type ServiceItem struct {
	ID           string  `json:"id"`
	Category     string  `json:"category"`
	Subcategory  string  `json:"subcategory"`
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	Price        float64 `json:"price"`                  // One-time price
	MonthlyPrice float64 `json:"monthlyPrice,omitempty"` // Recurring subscription price, 0 when not offered
	Deliverables string  `json:"deliverables"`
	Description  string  `json:"description,omitempty"`
	Active       bool    `json:"active"`
}

// UpdateServiceRequest carries editable fields for an admin edit.
// Pointer fields distinguish "not provided" from zero values.
type UpdateServiceRequest struct {
	Category     *string  `json:"category,omitempty"`
	Subcategory  *string  `json:"subcategory,omitempty"`
	Name         *string  `json:"name,omitempty"`
	Unit         *string  `json:"unit,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	MonthlyPrice *float64 `json:"monthlyPrice,omitempty"`
	Deliverables *string  `json:"deliverables,omitempty"`
	Description  *string  `json:"description,omitempty"`
}
