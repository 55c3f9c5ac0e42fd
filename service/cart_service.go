package service

import (
	"context"
	"log"
	"sync"

	"forwardworkx-proposals/cart"
	"forwardworkx-proposals/models"
	"forwardworkx-proposals/pricing"
	"forwardworkx-proposals/repository"
)

// CartService owns the session cart. Every mutation goes through its named
// operations; it serializes access and mirrors each confirmed-cart change
// into the durable slot. A persistence failure is logged and the in-memory
// state stays authoritative and the session keeps working.
type CartService struct {
	mu       sync.Mutex
	cart     *cart.Cart
	services repository.ServiceRepositoryInterface
	slot     repository.CartRepositoryInterface
}

// NewCartService creates a new CartService
func NewCartService(services repository.ServiceRepositoryInterface, slot repository.CartRepositoryInterface) *CartService {
	return &CartService{
		cart:     cart.New(),
		services: services,
		slot:     slot,
	}
}

// Restore rehydrates the confirmed cart from the durable slot. Called once
// at startup; an empty or absent slot simply leaves the cart empty.
func (s *CartService) Restore(ctx context.Context) error {
	lines, err := s.slot.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cart.Restore(lines)
	s.mu.Unlock()

	if len(lines) > 0 {
		log.Printf("📦 Cart restored with %d confirmed lines", len(lines))
	}
	return nil
}

// Toggle flips the pending state of a catalog item. Unknown or inactive ids
// are a no-op.
func (s *CartService) Toggle(id string) {
	item, ok := s.services.GetByID(id)
	if !ok || !item.Active {
		log.Printf("⚠️ Toggle: ignoring unknown or inactive service %q", id)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Toggle(item)
}

// AdjustPendingQuantity applies a delta to a pending line, floored at 1
func (s *CartService) AdjustPendingQuantity(id string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.AdjustPendingQuantity(id, delta)
}

// SetPendingQuantity applies a typed absolute quantity; invalid input is
// rejected with no state change
func (s *CartService) SetPendingQuantity(id string, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetPendingQuantity(id, raw)
}

// CancelPending discards the pending selection
func (s *CartService) CancelPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.CancelPending()
}

// Commit merges pending into confirmed and persists the result
func (s *CartService) Commit(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Commit()
	s.persistLocked(ctx)
}

// AdjustConfirmedQuantity applies a delta to a confirmed line, removing it
// at zero, and persists the result
func (s *CartService) AdjustConfirmedQuantity(ctx context.Context, id string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.AdjustConfirmedQuantity(id, delta)
	s.persistLocked(ctx)
}

// OverridePrice overrides the one-time unit price on a confirmed line
func (s *CartService) OverridePrice(ctx context.Context, id string, price float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.OverridePrice(id, price)
	s.persistLocked(ctx)
}

// RemoveConfirmed removes a confirmed line
func (s *CartService) RemoveConfirmed(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveConfirmed(id)
	s.persistLocked(ctx)
}

// Clear empties the cart and the durable slot. Called after a successful
// proposal download.
func (s *CartService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	if err := s.slot.Clear(ctx); err != nil {
		log.Printf("⚠️ Cart slot clear failed: %v", err)
	}
}

// Confirmed returns the confirmed lines in order
func (s *CartService) Confirmed() []models.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Confirmed()
}

// Snapshot returns the full cart state plus the computed summary
func (s *CartService) Snapshot() models.CartSnapshot {
	s.mu.Lock()
	pending := s.cart.Pending()
	confirmed := s.cart.Confirmed()
	s.mu.Unlock()

	return models.CartSnapshot{
		Pending:   pending,
		Confirmed: confirmed,
		Summary:   buildSummary(confirmed),
	}
}

func (s *CartService) persistLocked(ctx context.Context) {
	if err := s.slot.Save(ctx, s.cart.Confirmed()); err != nil {
		log.Printf("⚠️ Cart slot save failed: %v", err)
	}
}

// buildSummary derives the totals and per-line display figures for a
// confirmed cart. The combined per-line figure folds one-time and monthly
// together for the sidebar only; the totals keep them separate.
func buildSummary(confirmed []models.LineItem) models.CartSummary {
	totals := pricing.Summarize(confirmed)
	summary := models.CartSummary{
		OneTimeSubtotal: totals.OneTimeSubtotal,
		TaxAmount:       totals.TaxAmount,
		OneTimeTotal:    totals.OneTimeTotal,
		MonthlySubtotal: totals.MonthlySubtotal,
		Lines:           make([]models.CartSummaryLine, 0, len(confirmed)),
	}

	for _, line := range confirmed {
		sl := models.CartSummaryLine{
			ID:               line.ID,
			Name:             line.Name,
			Quantity:         line.Quantity,
			LineDisplayTotal: "₹" + pricing.FormatINR(pricing.CombinedLineTotal(line)),
		}
		if line.Price > 0 {
			sl.OneTimeDisplay = "₹" + pricing.FormatINR(line.Price*float64(line.Quantity))
		}
		if line.MonthlyPrice > 0 {
			sl.MonthlyDisplay = "₹" + pricing.FormatINR(line.MonthlyPrice*float64(line.Quantity))
		}
		summary.Lines = append(summary.Lines, sl)
	}
	return summary
}
