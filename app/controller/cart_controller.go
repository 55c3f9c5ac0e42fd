package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"forwardworkx-proposals/models"
	"forwardworkx-proposals/service"
)

// CartController handles HTTP requests for the two-stage proposal cart
type CartController struct {
	cartService *service.CartService
}

// NewCartController creates a new CartController
func NewCartController(cartService *service.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

// writeSnapshot returns the current cart state. Every mutation answers with
// the full snapshot so the client never has to guess what changed.
func (c *CartController) writeSnapshot(w http.ResponseWriter, handler string) {
	snapshot := c.cartService.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		log.Printf("❌ %s: Error encoding response: %v", handler, err)
	}
}

// GetCart handles GET /cart
func (c *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Printf("❌ GetCart: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	c.writeSnapshot(w, "GetCart")
}

// TogglePending handles POST /cart/pending/toggle
// Adds the item to the pending selection at quantity 1, or drops it with its
// draft edits if it is already pending.
func (c *CartController) TogglePending(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Printf("❌ TogglePending: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ TogglePending: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.ID) == "" {
		log.Printf("❌ TogglePending: id cannot be empty")
		http.Error(w, "id cannot be empty", http.StatusBadRequest)
		return
	}

	c.cartService.Toggle(req.ID)
	c.writeSnapshot(w, "TogglePending")
}

// AdjustPendingQuantity handles POST /cart/pending/quantity
// Applies a signed delta to a pending line; the quantity never drops below 1.
func (c *CartController) AdjustPendingQuantity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Printf("❌ AdjustPendingQuantity: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.QuantityDeltaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ AdjustPendingQuantity: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.ID) == "" {
		log.Printf("❌ AdjustPendingQuantity: id cannot be empty")
		http.Error(w, "id cannot be empty", http.StatusBadRequest)
		return
	}

	c.cartService.AdjustPendingQuantity(req.ID, req.Delta)
	c.writeSnapshot(w, "AdjustPendingQuantity")
}

// SetPendingQuantity handles POST /cart/pending/quantity/set
// Sets a pending line to an absolute typed quantity. Non-numeric or
// below-one input leaves the cart untouched and still answers 200 with the
// unchanged snapshot.
func (c *CartController) SetPendingQuantity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Printf("❌ SetPendingQuantity: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.QuantitySetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ SetPendingQuantity: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.ID) == "" {
		log.Printf("❌ SetPendingQuantity: id cannot be empty")
		http.Error(w, "id cannot be empty", http.StatusBadRequest)
		return
	}

	c.cartService.SetPendingQuantity(req.ID, req.Quantity)
	c.writeSnapshot(w, "SetPendingQuantity")
}

// CancelPending handles DELETE /cart/pending
func (c *CartController) CancelPending(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		log.Printf("❌ CancelPending: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	c.cartService.CancelPending()
	c.writeSnapshot(w, "CancelPending")
}

// Commit handles POST /cart/commit
// Merges the pending selection into the confirmed cart and clears pending.
func (c *CartController) Commit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Printf("❌ Commit: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	c.cartService.Commit(r.Context())
	c.writeSnapshot(w, "Commit")
}

// AdjustConfirmedQuantity handles POST /cart/items/quantity
// Applies a signed delta to a confirmed line; at quantity 0 the line is
// removed from the cart.
func (c *CartController) AdjustConfirmedQuantity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Printf("❌ AdjustConfirmedQuantity: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.QuantityDeltaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ AdjustConfirmedQuantity: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.ID) == "" {
		log.Printf("❌ AdjustConfirmedQuantity: id cannot be empty")
		http.Error(w, "id cannot be empty", http.StatusBadRequest)
		return
	}

	c.cartService.AdjustConfirmedQuantity(r.Context(), req.ID, req.Delta)
	c.writeSnapshot(w, "AdjustConfirmedQuantity")
}

// OverridePrice handles POST /cart/items/price
// Overrides the one-time unit price on one confirmed line; the catalog
// source item keeps its original price.
func (c *CartController) OverridePrice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Printf("❌ OverridePrice: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.PriceOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ OverridePrice: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.ID) == "" {
		log.Printf("❌ OverridePrice: id cannot be empty")
		http.Error(w, "id cannot be empty", http.StatusBadRequest)
		return
	}
	if req.Price < 0 {
		log.Printf("❌ OverridePrice: price cannot be negative: %f", req.Price)
		http.Error(w, "price cannot be negative", http.StatusBadRequest)
		return
	}

	c.cartService.OverridePrice(r.Context(), req.ID, req.Price)
	c.writeSnapshot(w, "OverridePrice")
}

// RemoveConfirmed handles DELETE /cart/items/{id}
func (c *CartController) RemoveConfirmed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		log.Printf("❌ RemoveConfirmed: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/cart/items/")
	if id == "" || strings.Contains(id, "/") {
		log.Printf("❌ RemoveConfirmed: Invalid item id in path: %s", r.URL.Path)
		http.Error(w, "Invalid item id", http.StatusBadRequest)
		return
	}

	c.cartService.RemoveConfirmed(r.Context(), id)
	c.writeSnapshot(w, "RemoveConfirmed")
}
