package models

// ProposalConfig is the process-wide template text used by the document
// generator, edited on the admin templates tab
type ProposalConfig struct {
	HeaderTitle        string   `json:"headerTitle"`
	ContactEmail       string   `json:"contactEmail"`
	TermsAndConditions []string `json:"termsAndConditions"`
}

// ProposalRequest is the body of the generation call
type ProposalRequest struct {
	ClientInfo       ClientInfo `json:"clientInfo"`
	ExecutiveSummary string     `json:"executiveSummary,omitempty"`
}
