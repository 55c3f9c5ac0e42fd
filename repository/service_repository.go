package repository

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"forwardworkx-proposals/models"
)

// ServiceFilter narrows a catalog listing. Zero values mean "no filter".
type ServiceFilter struct {
	Category    string
	Subcategory string
	Query       string // Matches name, subcategory or deliverables, case-insensitive
	ActiveOnly  bool
}

// ServiceRepository is the in-memory catalog store. It starts from the seed
// list and is mutated only by admin edits; items are soft-deleted via the
// active flag, never removed.
type ServiceRepository struct {
	mu    sync.RWMutex
	items []models.ServiceItem
	index map[string]int
}

// NewServiceRepository creates a ServiceRepository holding the given seed items
func NewServiceRepository(seed []models.ServiceItem) *ServiceRepository {
	r := &ServiceRepository{
		items: append([]models.ServiceItem(nil), seed...),
		index: make(map[string]int, len(seed)),
	}
	for i, item := range r.items {
		r.index[item.ID] = i
	}
	log.Printf("📦 Catalog store seeded with %d services", len(r.items))
	return r
}

// Ensure ServiceRepository implements ServiceRepositoryInterface
var _ ServiceRepositoryInterface = (*ServiceRepository)(nil)

// List returns the catalog entries matching the filter, in catalog order
func (r *ServiceRepository) List(filter ServiceFilter) []models.ServiceItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]models.ServiceItem, 0, len(r.items))
	for _, item := range r.items {
		if filter.ActiveOnly && !item.Active {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.Subcategory != "" && item.Subcategory != filter.Subcategory {
			continue
		}
		if q != "" && !matchesQuery(item, q) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// ListActive returns every active item, the slice fed to the AI advisory
// and the brochure
func (r *ServiceRepository) ListActive() []models.ServiceItem {
	return r.List(ServiceFilter{ActiveOnly: true})
}

// GetByID returns a catalog item by id
func (r *ServiceRepository) GetByID(id string) (models.ServiceItem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return models.ServiceItem{}, false
	}
	return r.items[i], true
}

// Create appends a blank editable service, active by default, and returns it
func (r *ServiceRepository) Create() models.ServiceItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	item := models.ServiceItem{
		ID:           fmt.Sprintf("new-%d", time.Now().UnixMilli()),
		Category:     "New Category",
		Subcategory:  "New Subcategory",
		Name:         "New Service",
		Unit:         "Unit",
		Deliverables: "Description here",
		Active:       true,
	}
	r.index[item.ID] = len(r.items)
	r.items = append(r.items, item)
	log.Printf("✅ Catalog: created service %s", item.ID)
	return item
}

// Update applies the provided fields to an existing service
func (r *ServiceRepository) Update(id string, req *models.UpdateServiceRequest) (models.ServiceItem, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return models.ServiceItem{}, false
	}
	item := &r.items[i]
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Subcategory != nil {
		item.Subcategory = *req.Subcategory
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.MonthlyPrice != nil {
		item.MonthlyPrice = *req.MonthlyPrice
	}
	if req.Deliverables != nil {
		item.Deliverables = *req.Deliverables
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	log.Printf("✅ Catalog: updated service %s", id)
	return *item, true
}

// ToggleActive flips the soft-delete flag on a service
func (r *ServiceRepository) ToggleActive(id string) (models.ServiceItem, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return models.ServiceItem{}, false
	}
	r.items[i].Active = !r.items[i].Active
	log.Printf("✅ Catalog: service %s active=%v", id, r.items[i].Active)
	return r.items[i], true
}

func matchesQuery(item models.ServiceItem, q string) bool {
	return strings.Contains(strings.ToLower(item.Name), q) ||
		strings.Contains(strings.ToLower(item.Subcategory), q) ||
		strings.Contains(strings.ToLower(item.Deliverables), q)
}
