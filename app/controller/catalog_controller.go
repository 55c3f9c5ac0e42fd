package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"forwardworkx-proposals/models"
	"forwardworkx-proposals/repository"
	"forwardworkx-proposals/service"
	"forwardworkx-proposals/utils"
)

// CatalogController handles HTTP requests for the service catalog and the
// admin catalog management surface
type CatalogController struct {
	repository      repository.ServiceRepositoryInterface
	brochureService *service.BrochureService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(repo repository.ServiceRepositoryInterface, brochureService *service.BrochureService) *CatalogController {
	return &CatalogController{
		repository:      repo,
		brochureService: brochureService,
	}
}

// validBrochureFormats is a map of valid format values
var validBrochureFormats = map[string]bool{
	"html": true,
	"pdf":  true,
}

// ListServices handles GET /catalog?category=&subcategory=&q=&active=true
func (c *CatalogController) ListServices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Printf("❌ ListServices: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter := repository.ServiceFilter{
		Category:    strings.TrimSpace(r.URL.Query().Get("category")),
		Subcategory: strings.TrimSpace(r.URL.Query().Get("subcategory")),
		Query:       strings.TrimSpace(r.URL.Query().Get("q")),
	}
	if active := strings.TrimSpace(r.URL.Query().Get("active")); active != "" {
		activeOnly, err := strconv.ParseBool(active)
		if err != nil {
			log.Printf("❌ ListServices: Invalid active parameter: %s", active)
			http.Error(w, "active must be true or false", http.StatusBadRequest)
			return
		}
		filter.ActiveOnly = activeOnly
	}

	items := c.repository.List(filter)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(items); err != nil {
		log.Printf("❌ ListServices: Error encoding response: %v", err)
	}
}

// CreateService handles POST /admin/services
// Creates a blank editable service row; the admin fills it in with a
// follow-up update.
func (c *CatalogController) CreateService(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Printf("❌ CreateService: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	item := c.repository.Create()
	log.Printf("✅ CreateService: Created blank service id=%s", item.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(item); err != nil {
		log.Printf("❌ CreateService: Error encoding response: %v", err)
	}
}

// UpdateService handles PUT /admin/services/{id}
func (c *CatalogController) UpdateService(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/admin/services/")
	if id == "" || strings.Contains(id, "/") {
		log.Printf("❌ UpdateService: Invalid service id in path: %s", r.URL.Path)
		http.Error(w, "Invalid service id", http.StatusBadRequest)
		return
	}

	var req models.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateService: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.Price != nil && *req.Price < 0 {
		log.Printf("❌ UpdateService: price cannot be negative: %f", *req.Price)
		http.Error(w, "price cannot be negative", http.StatusBadRequest)
		return
	}
	if req.MonthlyPrice != nil && *req.MonthlyPrice < 0 {
		log.Printf("❌ UpdateService: monthlyPrice cannot be negative: %f", *req.MonthlyPrice)
		http.Error(w, "monthlyPrice cannot be negative", http.StatusBadRequest)
		return
	}

	item, found := c.repository.Update(id, &req)
	if !found {
		log.Printf("❌ UpdateService: Service not found: %s", id)
		http.Error(w, fmt.Sprintf("Service %s not found", id), http.StatusNotFound)
		return
	}

	log.Printf("✅ UpdateService: Updated service id=%s name=%s", item.ID, item.Name)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(item); err != nil {
		log.Printf("❌ UpdateService: Error encoding response: %v", err)
	}
}

// ToggleService handles POST /admin/services/{id}/toggle
// Flips the active flag. Disabled items stay in the catalog listing but are
// excluded from the brochure and the advisory prompt.
func (c *CatalogController) ToggleService(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Printf("❌ ToggleService: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/admin/services/")
	id := strings.TrimSuffix(path, "/toggle")
	if id == "" || strings.Contains(id, "/") {
		log.Printf("❌ ToggleService: Invalid service id in path: %s", r.URL.Path)
		http.Error(w, "Invalid service id", http.StatusBadRequest)
		return
	}

	item, found := c.repository.ToggleActive(id)
	if !found {
		log.Printf("❌ ToggleService: Service not found: %s", id)
		http.Error(w, fmt.Sprintf("Service %s not found", id), http.StatusNotFound)
		return
	}

	log.Printf("✅ ToggleService: Service id=%s active=%t", item.ID, item.Active)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(item); err != nil {
		log.Printf("❌ ToggleService: Error encoding response: %v", err)
	}
}

// ExportServices handles GET /admin/services/export
// Returns the full catalog as CSV. The id column is dropped and the active
// flag is exported as a readable status column.
func (c *CatalogController) ExportServices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Printf("❌ ExportServices: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	items := c.repository.List(repository.ServiceFilter{})

	headers := []string{"category", "subcategory", "name", "unit", "price", "monthlyPrice", "deliverables", "description", "status"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		status := "Disabled"
		if item.Active {
			status = "Active"
		}
		rows = append(rows, []string{
			item.Category,
			item.Subcategory,
			item.Name,
			item.Unit,
			strconv.FormatFloat(item.Price, 'f', -1, 64),
			strconv.FormatFloat(item.MonthlyPrice, 'f', -1, 64),
			item.Deliverables,
			item.Description,
			status,
		})
	}

	filename := fmt.Sprintf("ForwardWorkx_Catalog_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(utils.WriteCSV(headers, rows))); err != nil {
		log.Printf("❌ ExportServices: Error writing CSV response: %v", err)
	}
}

// Brochure handles GET /admin/catalog/brochure?format=html|pdf
func (c *CatalogController) Brochure(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Printf("❌ Brochure: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		format = "html"
	}
	if !validBrochureFormats[format] {
		log.Printf("❌ Brochure: Invalid format: %s", format)
		http.Error(w, "Invalid format. Valid formats: html, pdf", http.StatusBadRequest)
		return
	}

	switch format {
	case "html":
		htmlContent, err := c.brochureService.RenderHTML()
		if err != nil {
			log.Printf("❌ Brochure: Error rendering HTML: %v", err)
			http.Error(w, fmt.Sprintf("Failed to render brochure: %v", err), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(htmlContent)); err != nil {
			log.Printf("❌ Brochure: Error writing HTML response: %v", err)
		}

	case "pdf":
		pdfData, err := c.brochureService.GeneratePDF(r.Context())
		if err != nil {
			log.Printf("❌ Brochure: Error generating PDF: %v", err)
			http.Error(w, fmt.Sprintf("Failed to generate PDF: %v", err), http.StatusInternalServerError)
			return
		}

		filename := fmt.Sprintf("ForwardWorkx_Catalog_%s.pdf", time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(pdfData); err != nil {
			log.Printf("❌ Brochure: Error writing PDF response: %v", err)
		}
	}
}

// RenderBrochure handles GET /admin/catalog/render
// Returns the brochure HTML (used by chromedp for PDF generation)
func (c *CatalogController) RenderBrochure(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Printf("❌ RenderBrochure: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	htmlContent, err := c.brochureService.RenderHTML()
	if err != nil {
		log.Printf("❌ RenderBrochure: Error rendering HTML: %v", err)
		http.Error(w, fmt.Sprintf("Failed to render brochure: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(htmlContent)); err != nil {
		log.Printf("❌ RenderBrochure: Error writing HTML response: %v", err)
	}
}
