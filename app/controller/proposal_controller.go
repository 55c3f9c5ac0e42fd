package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"forwardworkx-proposals/models"
	"forwardworkx-proposals/repository"
	"forwardworkx-proposals/service"
)

// ProposalController handles HTTP requests for proposal document generation
type ProposalController struct {
	proposalService *service.ProposalService
	cartService     *service.CartService
	customers       repository.CustomerRepositoryInterface
}

// NewProposalController creates a new ProposalController
func NewProposalController(proposalService *service.ProposalService, cartService *service.CartService, customers repository.CustomerRepositoryInterface) *ProposalController {
	return &ProposalController{
		proposalService: proposalService,
		cartService:     cartService,
		customers:       customers,
	}
}

// Generate handles POST /proposal
// Builds the proposal PDF from the confirmed cart. The gate is strict: an
// empty cart or missing client fields produce no document and no side
// effects. On success the download is logged to the lead log and the cart
// is cleared for the next proposal.
func (c *ProposalController) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Printf("❌ Generate: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.ProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Generate: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	lines := c.cartService.Confirmed()
	if !c.proposalService.CanGenerate(lines, req.ClientInfo) {
		log.Printf("⚠️  Generate: Gate not met - items=%d, company=%q, contact=%q, email=%q",
			len(lines), req.ClientInfo.CompanyName, req.ClientInfo.ContactPerson, req.ClientInfo.Email)
		http.Error(w, "Proposal requires a non-empty cart and company, contact and email details", http.StatusUnprocessableEntity)
		return
	}

	pdfData, filename, err := c.proposalService.Generate(lines, req.ClientInfo, req.ExecutiveSummary)
	if err != nil {
		log.Printf("❌ Generate: Error generating proposal: %v", err)
		http.Error(w, fmt.Sprintf("Failed to generate proposal: %v", err), http.StatusInternalServerError)
		return
	}

	// Lead log and cart reset happen only after the document exists. An
	// upsert failure is logged but never blocks the download.
	customer, err := c.customers.Upsert(r.Context(), req.ClientInfo)
	if err != nil {
		log.Printf("⚠️  Generate: Failed to record customer %s: %v", req.ClientInfo.Email, err)
	} else {
		log.Printf("✅ Generate: Recorded proposal #%d for %s", customer.ProposalCount, customer.Email)
	}
	c.cartService.Clear(r.Context())

	log.Printf("✅ Generate: Proposal generated for %s (%d bytes, %d items)", req.ClientInfo.CompanyName, len(pdfData), len(lines))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdfData); err != nil {
		log.Printf("❌ Generate: Error writing PDF response: %v", err)
	}
}
