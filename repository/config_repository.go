package repository

import (
	"log"
	"strings"
	"sync"

	"forwardworkx-proposals/models"
)

// ConfigRepository holds the process-wide proposal template text. Edited on
// the admin templates tab, read by the document generator.
type ConfigRepository struct {
	mu  sync.RWMutex
	cfg models.ProposalConfig
}

// NewConfigRepository creates a ConfigRepository with the given defaults
func NewConfigRepository(defaults models.ProposalConfig) *ConfigRepository {
	return &ConfigRepository{cfg: defaults}
}

// Ensure ConfigRepository implements ConfigRepositoryInterface
var _ ConfigRepositoryInterface = (*ConfigRepository)(nil)

// Get returns the current template configuration
func (r *ConfigRepository) Get() models.ProposalConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg := r.cfg
	cfg.TermsAndConditions = append([]string(nil), r.cfg.TermsAndConditions...)
	return cfg
}

// Save replaces the template configuration, dropping blank terms lines
func (r *ConfigRepository) Save(cfg models.ProposalConfig) models.ProposalConfig {
	terms := make([]string, 0, len(cfg.TermsAndConditions))
	for _, line := range cfg.TermsAndConditions {
		if strings.TrimSpace(line) != "" {
			terms = append(terms, line)
		}
	}
	cfg.TermsAndConditions = terms

	r.mu.Lock()
	r.cfg = cfg
	r.mu.Unlock()

	log.Printf("✅ Template settings saved (%d terms lines)", len(terms))
	return r.Get()
}
