package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"forwardworkx-proposals/models"
	"forwardworkx-proposals/repository"
	"forwardworkx-proposals/utils"
)

// CustomerController handles HTTP requests for the lead log
type CustomerController struct {
	repository repository.CustomerRepositoryInterface
}

// NewCustomerController creates a new CustomerController
func NewCustomerController(repo repository.CustomerRepositoryInterface) *CustomerController {
	return &CustomerController{
		repository: repo,
	}
}

// ListCustomers handles GET /admin/customers
// Returns the lead log newest first, with a relative first-seen string for
// the admin listing.
func (c *CustomerController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Printf("❌ ListCustomers: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	customers, err := c.repository.List(r.Context())
	if err != nil {
		log.Printf("❌ ListCustomers: Error fetching customers: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch customers: %v", err), http.StatusInternalServerError)
		return
	}

	items := make([]models.CustomerListItem, 0, len(customers))
	for _, customer := range customers {
		items = append(items, models.CustomerListItem{
			Customer:  customer,
			FirstSeen: humanize.Time(customer.JoinedAt),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(items); err != nil {
		log.Printf("❌ ListCustomers: Error encoding response: %v", err)
	}
}

// ExportCustomers handles GET /admin/customers/export
func (c *CustomerController) ExportCustomers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Printf("❌ ExportCustomers: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	customers, err := c.repository.List(r.Context())
	if err != nil {
		log.Printf("❌ ExportCustomers: Error fetching customers: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch customers: %v", err), http.StatusInternalServerError)
		return
	}

	headers := []string{"id", "companyName", "contactPerson", "mobile", "email", "businessCategory", "proposalCount", "joinedDate"}
	rows := make([][]string, 0, len(customers))
	for _, customer := range customers {
		rows = append(rows, []string{
			customer.ID,
			customer.CompanyName,
			customer.ContactPerson,
			customer.Mobile,
			customer.Email,
			customer.BusinessCategory,
			strconv.Itoa(customer.ProposalCount),
			customer.JoinedAt.Format("2006-01-02"),
		})
	}

	filename := fmt.Sprintf("ForwardWorkx_Clients_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(utils.WriteCSV(headers, rows))); err != nil {
		log.Printf("❌ ExportCustomers: Error writing CSV response: %v", err)
	}
}
