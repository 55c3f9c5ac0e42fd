package models

import "time"

// Customer is one row of the lead log, keyed by email. A proposal download
// for a known email refreshes the contact fields and increments
// ProposalCount instead of inserting a second record.
type Customer struct {
	ID               string    `json:"id"`
	CompanyName      string    `json:"companyName"`
	ContactPerson    string    `json:"contactPerson"`
	Email            string    `json:"email"`
	Mobile           string    `json:"mobile"`
	BusinessCategory string    `json:"businessCategory"`
	ProposalCount    int       `json:"proposalCount"`
	JoinedAt         time.Time `json:"joinedAt"`
}

// CustomerListItem is a Customer with the relative first-seen string used by
// the admin listing
type CustomerListItem struct {
	Customer
	FirstSeen string `json:"firstSeen"`
}
