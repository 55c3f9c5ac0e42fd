package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"forwardworkx-proposals/models"
	"forwardworkx-proposals/repository"
)

// TemplateController handles HTTP requests for the proposal template text
type TemplateController struct {
	repository repository.ConfigRepositoryInterface
}

// NewTemplateController creates a new TemplateController
func NewTemplateController(repo repository.ConfigRepositoryInterface) *TemplateController {
	return &TemplateController{
		repository: repo,
	}
}

// HandleTemplate routes GET and PUT /admin/template
func (c *TemplateController) HandleTemplate(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.getTemplate(w, r)
	case http.MethodPut:
		c.updateTemplate(w, r)
	default:
		log.Printf("❌ HandleTemplate: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (c *TemplateController) getTemplate(w http.ResponseWriter, _ *http.Request) {
	cfg := c.repository.Get()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(cfg); err != nil {
		log.Printf("❌ GetTemplate: Error encoding response: %v", err)
	}
}

// updateTemplate replaces the template wholesale. Blank terms lines are
// dropped by the repository; header and email fall back to the previous
// values when submitted empty.
func (c *TemplateController) updateTemplate(w http.ResponseWriter, r *http.Request) {
	var cfg models.ProposalConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		log.Printf("❌ UpdateTemplate: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	previous := c.repository.Get()
	if strings.TrimSpace(cfg.HeaderTitle) == "" {
		cfg.HeaderTitle = previous.HeaderTitle
	}
	if strings.TrimSpace(cfg.ContactEmail) == "" {
		cfg.ContactEmail = previous.ContactEmail
	}

	saved := c.repository.Save(cfg)
	log.Printf("✅ UpdateTemplate: Saved template header=%q terms=%d", saved.HeaderTitle, len(saved.TermsAndConditions))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(saved); err != nil {
		log.Printf("❌ UpdateTemplate: Error encoding response: %v", err)
	}
}
