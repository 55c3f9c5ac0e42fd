package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"forwardworkx-proposals/models"
	"forwardworkx-proposals/repository"
	"forwardworkx-proposals/service"
)

// AssistantController handles HTTP requests for the AI advisory features.
// Advisory failures never surface as errors; the recommendation endpoint
// answers an empty list and the summary endpoint answers a fallback
// sentence.
type AssistantController struct {
	assistantService *service.AssistantService
	cartService      *service.CartService
	services         repository.ServiceRepositoryInterface
}

// NewAssistantController creates a new AssistantController
func NewAssistantController(assistantService *service.AssistantService, cartService *service.CartService, services repository.ServiceRepositoryInterface) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
		cartService:      cartService,
		services:         services,
	}
}

// Recommend handles POST /assistant/recommendations
// Maps a free-text client description to catalog item ids drawn from the
// active catalog only.
func (c *AssistantController) Recommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Printf("❌ Recommend: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Recommend: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		log.Printf("❌ Recommend: description cannot be empty")
		http.Error(w, "description cannot be empty", http.StatusBadRequest)
		return
	}

	ids := c.assistantService.Recommend(r.Context(), req.Description, c.services.ListActive())

	response := models.RecommendationResponse{IDs: ids}
	if response.IDs == nil {
		response.IDs = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ Recommend: Error encoding response: %v", err)
	}
}

// Summarize handles POST /assistant/summary
// Drafts an executive summary for the current confirmed cart.
func (c *AssistantController) Summarize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Printf("❌ Summarize: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Summarize: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	summary := c.assistantService.Summarize(r.Context(), req.CompanyName, c.cartService.Confirmed())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(models.SummaryResponse{Summary: summary}); err != nil {
		log.Printf("❌ Summarize: Error encoding response: %v", err)
	}
}
