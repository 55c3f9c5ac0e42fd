package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"forwardworkx-proposals/models"
)

// cartSlotKey is the fixed key the confirmed cart is serialized under
const cartSlotKey = "fw_cart"

// CartRepository persists the confirmed cart as a JSON-encoded array of
// line items under a fixed key. Written on every confirmed-cart change,
// read once at startup; an absent row means an empty cart, not an error.
type CartRepository struct {
	db *sqlx.DB
}

// NewCartRepository creates a new CartRepository
func NewCartRepository(db *sqlx.DB) *CartRepository {
	return &CartRepository{db: db}
}

// Ensure CartRepository implements CartRepositoryInterface
var _ CartRepositoryInterface = (*CartRepository)(nil)

// Load rehydrates the persisted confirmed cart
func (r *CartRepository) Load(ctx context.Context) ([]models.LineItem, error) {
	var payload string
	err := r.db.GetContext(ctx, &payload, `SELECT payload FROM cart_slots WHERE key = ?`, cartSlotKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart slot: %w", err)
	}

	var lines []models.LineItem
	if err := json.Unmarshal([]byte(payload), &lines); err != nil {
		// A corrupt slot is treated like an absent one; the cart starts
		// empty rather than wedging startup.
		log.Printf("⚠️ Cart slot payload unreadable, starting empty: %v", err)
		return nil, nil
	}
	return lines, nil
}

// Save serializes the confirmed cart into the slot
func (r *CartRepository) Save(ctx context.Context, lines []models.LineItem) error {
	if lines == nil {
		lines = []models.LineItem{}
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO cart_slots (key, payload) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload`,
		cartSlotKey, string(payload))
	if err != nil {
		return fmt.Errorf("failed to save cart slot: %w", err)
	}
	return nil
}

// Clear removes the slot entirely, the equivalent of deleting the saved key
func (r *CartRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cart_slots WHERE key = ?`, cartSlotKey); err != nil {
		return fmt.Errorf("failed to clear cart slot: %w", err)
	}
	return nil
}
