package cart

import (
	"strconv"
	"strings"

	"forwardworkx-proposals/models"
)

// Cart holds the two-stage selection state: a pending set the user is
// toggling on the catalog screen and the confirmed set that will appear on
// the generated proposal. Both are ordered collections keyed by item id; a
// given id appears at most once per collection and repeated adds merge
// quantities. Cart is not safe for concurrent use; the owning service
// serializes access.
type Cart struct {
	pending      map[string]*models.LineItem
	pendingOrder []string

	confirmed      map[string]*models.LineItem
	confirmedOrder []string
}

// New returns an empty cart
func New() *Cart {
	return &Cart{
		pending:   make(map[string]*models.LineItem),
		confirmed: make(map[string]*models.LineItem),
	}
}

// Toggle inserts the item into the pending selection with quantity 1, or
// removes it entirely when already present. Quantity edits made while the
// item was pending are discarded by the removal.
func (c *Cart) Toggle(item models.ServiceItem) {
	if _, ok := c.pending[item.ID]; ok {
		delete(c.pending, item.ID)
		c.pendingOrder = removeID(c.pendingOrder, item.ID)
		return
	}
	c.pending[item.ID] = &models.LineItem{ServiceItem: item, Quantity: 1}
	c.pendingOrder = append(c.pendingOrder, item.ID)
}

// AdjustPendingQuantity applies a signed delta to a pending line. The floor
// is 1: a delta that would drop the quantity below 1 leaves it at 1 and
// never removes the line. Unknown ids are a no-op.
func (c *Cart) AdjustPendingQuantity(id string, delta int) {
	line, ok := c.pending[id]
	if !ok {
		return
	}
	line.Quantity = max(1, line.Quantity+delta)
}

// SetPendingQuantity interprets a typed value as an absolute target,
// converting it to a delta against the current quantity before applying the
// same floor-1 rule. Non-numeric input or a target below 1 is rejected with
// no state change.
func (c *Cart) SetPendingQuantity(id string, raw string) {
	target, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || target < 1 {
		return
	}
	line, ok := c.pending[id]
	if !ok {
		return
	}
	c.AdjustPendingQuantity(id, target-line.Quantity)
}

// CancelPending clears the pending selection without touching the confirmed
// cart
func (c *Cart) CancelPending() {
	c.pending = make(map[string]*models.LineItem)
	c.pendingOrder = nil
}

// Commit merges every pending line into the confirmed cart: quantities are
// summed for ids already confirmed, new lines are appended in pending
// order. Pending is cleared atomically with the merge; this is the only
// path that mutates confirmed from pending.
func (c *Cart) Commit() {
	for _, id := range c.pendingOrder {
		p := c.pending[id]
		if existing, ok := c.confirmed[id]; ok {
			existing.Quantity += p.Quantity
			continue
		}
		line := *p
		c.confirmed[id] = &line
		c.confirmedOrder = append(c.confirmedOrder, id)
	}
	c.pending = make(map[string]*models.LineItem)
	c.pendingOrder = nil
}

// AdjustConfirmedQuantity applies a signed delta to a confirmed line. The
// floor is 0, and a result of exactly 0 removes the line. Unknown ids are a
// no-op.
func (c *Cart) AdjustConfirmedQuantity(id string, delta int) {
	line, ok := c.confirmed[id]
	if !ok {
		return
	}
	line.Quantity = max(0, line.Quantity+delta)
	if line.Quantity == 0 {
		delete(c.confirmed, id)
		c.confirmedOrder = removeID(c.confirmedOrder, id)
	}
}

// OverridePrice replaces the one-time unit price on a confirmed line. The
// line carries a catalog snapshot, so the catalog source price is untouched.
func (c *Cart) OverridePrice(id string, price float64) {
	if line, ok := c.confirmed[id]; ok {
		line.Price = price
	}
}

// RemoveConfirmed removes a confirmed line unconditionally
func (c *Cart) RemoveConfirmed(id string) {
	if _, ok := c.confirmed[id]; !ok {
		return
	}
	delete(c.confirmed, id)
	c.confirmedOrder = removeID(c.confirmedOrder, id)
}

// Clear empties both collections. Used after a successful proposal download.
func (c *Cart) Clear() {
	c.CancelPending()
	c.confirmed = make(map[string]*models.LineItem)
	c.confirmedOrder = nil
}

// Pending returns the pending lines in insertion order
func (c *Cart) Pending() []models.LineItem {
	return c.snapshot(c.pending, c.pendingOrder)
}

// Confirmed returns the confirmed lines in insertion order
func (c *Cart) Confirmed() []models.LineItem {
	return c.snapshot(c.confirmed, c.confirmedOrder)
}

// PendingQuantity returns the pending quantity for an id, 0 when absent
func (c *Cart) PendingQuantity(id string) int {
	if line, ok := c.pending[id]; ok {
		return line.Quantity
	}
	return 0
}

// ConfirmedQuantity returns the confirmed quantity for an id, 0 when absent
func (c *Cart) ConfirmedQuantity(id string) int {
	if line, ok := c.confirmed[id]; ok {
		return line.Quantity
	}
	return 0
}

// Restore replaces the confirmed cart with previously persisted lines,
// dropping entries without a positive quantity. Used once at startup to
// rehydrate the durable slot.
func (c *Cart) Restore(lines []models.LineItem) {
	c.confirmed = make(map[string]*models.LineItem)
	c.confirmedOrder = nil
	for _, l := range lines {
		if l.Quantity < 1 {
			continue
		}
		if existing, ok := c.confirmed[l.ID]; ok {
			existing.Quantity += l.Quantity
			continue
		}
		line := l
		c.confirmed[l.ID] = &line
		c.confirmedOrder = append(c.confirmedOrder, l.ID)
	}
}

func (c *Cart) snapshot(m map[string]*models.LineItem, order []string) []models.LineItem {
	out := make([]models.LineItem, 0, len(order))
	for _, id := range order {
		out = append(out, *m[id])
	}
	return out
}

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
