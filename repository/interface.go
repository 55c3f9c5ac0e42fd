package repository

import (
	"context"

	"forwardworkx-proposals/models"
)

// ServiceRepositoryInterface defines the contract for catalog store operations
type ServiceRepositoryInterface interface {
	List(filter ServiceFilter) []models.ServiceItem
	ListActive() []models.ServiceItem
	GetByID(id string) (models.ServiceItem, bool)
	Create() models.ServiceItem
	Update(id string, req *models.UpdateServiceRequest) (models.ServiceItem, bool)
	ToggleActive(id string) (models.ServiceItem, bool)
}

// ConfigRepositoryInterface defines the contract for the proposal template store
type ConfigRepositoryInterface interface {
	Get() models.ProposalConfig
	Save(cfg models.ProposalConfig) models.ProposalConfig
}

// CartRepositoryInterface defines the contract for the durable cart slot
type CartRepositoryInterface interface {
	Load(ctx context.Context) ([]models.LineItem, error)
	Save(ctx context.Context, lines []models.LineItem) error
	Clear(ctx context.Context) error
}

// CustomerRepositoryInterface defines the contract for the lead log
type CustomerRepositoryInterface interface {
	Upsert(ctx context.Context, client models.ClientInfo) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
}
