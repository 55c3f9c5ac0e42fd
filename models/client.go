package models

// ClientInfo holds the details entered on the proposal preview screen.
// CompanyName, ContactPerson and Email are required for document generation.
type ClientInfo struct {
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Date          string `json:"date"`
}

// HasRequiredFields reports whether the fields the document generator
// depends on are all present
func (c ClientInfo) HasRequiredFields() bool {
	return c.CompanyName != "" && c.ContactPerson != "" && c.Email != ""
}
