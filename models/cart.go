package models

// LineItem is a catalog snapshot plus a quantity, the unit of cart content.
// Prices are copied from the ServiceItem at selection time so an admin
// override on a line never touches the catalog source.
type LineItem struct {
	ServiceItem
	Quantity int `json:"quantity"`
}

// CartSnapshot is the full cart state as rendered to the client
type CartSnapshot struct {
	Pending   []LineItem  `json:"pending"`
	Confirmed []LineItem  `json:"confirmed"`
	Summary   CartSummary `json:"summary"`
}

// CartSummary reports totals over the confirmed cart. One-time and monthly
// figures are always reported separately; LineDisplayTotal on each line is a
// display-only convenience, never a financial total.
type CartSummary struct {
	OneTimeSubtotal float64           `json:"oneTimeSubtotal"`
	TaxAmount       float64           `json:"taxAmount"`
	OneTimeTotal    float64           `json:"oneTimeTotal"`
	MonthlySubtotal float64           `json:"monthlySubtotal"`
	Lines           []CartSummaryLine `json:"lines"`
}

// CartSummaryLine is one confirmed line with formatted display figures
type CartSummaryLine struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Quantity         int    `json:"quantity"`
	OneTimeDisplay   string `json:"oneTimeDisplay,omitempty"`
	MonthlyDisplay   string `json:"monthlyDisplay,omitempty"`
	LineDisplayTotal string `json:"lineDisplayTotal"`
}

// ToggleRequest identifies the catalog item being toggled in or out of the
// pending selection
type ToggleRequest struct {
	ID string `json:"id"`
}

// QuantityDeltaRequest adjusts a line quantity by a signed delta
type QuantityDeltaRequest struct {
	ID    string `json:"id"`
	Delta int    `json:"delta"`
}

// QuantitySetRequest sets a pending line quantity to an absolute target
type QuantitySetRequest struct {
	ID       string `json:"id"`
	Quantity string `json:"quantity"` // Raw typed value; non-numeric or <1 is rejected with no state change
}

// PriceOverrideRequest overrides the one-time unit price on a confirmed line
type PriceOverrideRequest struct {
	ID    string  `json:"id"`
	Price float64 `json:"price"`
}
