package models

// RecommendationRequest carries the free-text client description fed to the
// advisory call
type RecommendationRequest struct {
	Description string `json:"description"`
}

// RecommendationResponse lists the recommended catalog item ids. Empty on
// any advisory failure; the caller treats that as "no recommendations", not
// as an error.
type RecommendationResponse struct {
	IDs []string `json:"ids"`
}

// SummaryRequest asks for an executive summary for the current confirmed cart
type SummaryRequest struct {
	CompanyName string `json:"companyName"`
}

// SummaryResponse carries the drafted summary paragraph, or the generic
// fallback sentence when the advisory call failed
type SummaryResponse struct {
	Summary string `json:"summary"`
}
