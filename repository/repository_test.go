package repository

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"forwardworkx-proposals/models"
)

const testSchema = `
CREATE TABLE cart_slots (
	key     TEXT PRIMARY KEY,
	payload TEXT NOT NULL
);
CREATE TABLE customers (
	id                TEXT PRIMARY KEY,
	company_name      TEXT NOT NULL,
	contact_person    TEXT NOT NULL,
	email             TEXT NOT NULL UNIQUE,
	mobile            TEXT NOT NULL DEFAULT '',
	business_category TEXT NOT NULL DEFAULT 'N/A',
	proposal_count    INTEGER NOT NULL DEFAULT 1,
	joined_at         TIMESTAMP NOT NULL
);
`

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("apply test schema: %v", err)
	}
	return db
}

func testClient() models.ClientInfo {
	return models.ClientInfo{
		CompanyName:   "Acme Widgets",
		ContactPerson: "Jane Doe",
		Email:         "jane@acme.test",
		Phone:         "9999999999",
	}
}

func TestCustomerUpsertInsertsOnce(t *testing.T) {
	repo := NewCustomerRepository(openTestDB(t))
	ctx := context.Background()

	first, err := repo.Upsert(ctx, testClient())
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if first.ProposalCount != 1 {
		t.Errorf("first ProposalCount = %d, want 1", first.ProposalCount)
	}
	if first.BusinessCategory != "N/A" {
		t.Errorf("BusinessCategory = %q, want N/A", first.BusinessCategory)
	}

	// Same email, changed details: one record, counter at 2.
	updated := testClient()
	updated.CompanyName = "Acme Widgets Pvt Ltd"
	updated.Phone = "8888888888"
	second, err := repo.Upsert(ctx, updated)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("second upsert created a new record (%s != %s)", second.ID, first.ID)
	}
	if second.ProposalCount != 2 {
		t.Errorf("ProposalCount = %d, want 2", second.ProposalCount)
	}
	if second.CompanyName != "Acme Widgets Pvt Ltd" || second.Mobile != "8888888888" {
		t.Errorf("contact fields not refreshed: %+v", second)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("lead log has %d records, want 1", len(all))
	}
}

func TestCustomerUpsertDistinctEmails(t *testing.T) {
	repo := NewCustomerRepository(openTestDB(t))
	ctx := context.Background()

	if _, err := repo.Upsert(ctx, testClient()); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	other := testClient()
	other.Email = "other@acme.test"
	if _, err := repo.Upsert(ctx, other); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("lead log has %d records, want 2", len(all))
	}
}

func TestCartSlotRoundTrip(t *testing.T) {
	repo := NewCartRepository(openTestDB(t))
	ctx := context.Background()

	// Absent slot means empty cart, not an error.
	lines, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load empty slot: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("absent slot yielded %d lines", len(lines))
	}

	saved := []models.LineItem{
		{ServiceItem: models.ServiceItem{ID: "a", Name: "SEO Audit", Price: 1000}, Quantity: 2},
		{ServiceItem: models.ServiceItem{ID: "b", Name: "SMM", MonthlyPrice: 500}, Quantity: 1},
	}
	if err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	// A second save overwrites, it does not duplicate the slot.
	saved[0].Quantity = 3
	if err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("resave: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[0].Quantity != 3 || got[1].ID != "b" {
		t.Errorf("loaded lines = %+v", got)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("slot not cleared, %d lines remain", len(got))
	}
}

func seedItems() []models.ServiceItem {
	return []models.ServiceItem{
		{ID: "sm-1", Category: "Marketing", Subcategory: "Organic - Social Media Marketing", Name: "Instagram Management", Deliverables: "12 posts, 8 stories", Price: 0, MonthlyPrice: 15000, Active: true},
		{ID: "wd-1", Category: "Technology", Subcategory: "Static Website Services", Name: "Landing Page", Deliverables: "Single page design & build", Price: 25000, Active: true},
		{ID: "wd-2", Category: "Technology", Subcategory: "Static Website Services", Name: "Legacy Microsite", Deliverables: "Retired offer", Price: 10000, Active: false},
	}
}

func TestServiceRepositoryFilters(t *testing.T) {
	repo := NewServiceRepository(seedItems())

	if got := len(repo.List(ServiceFilter{})); got != 3 {
		t.Errorf("unfiltered list = %d items, want 3", got)
	}
	if got := len(repo.ListActive()); got != 2 {
		t.Errorf("active list = %d items, want 2", got)
	}
	if got := len(repo.List(ServiceFilter{Category: "Technology", ActiveOnly: true})); got != 1 {
		t.Errorf("category filter = %d items, want 1", got)
	}

	byQuery := repo.List(ServiceFilter{Query: "instagram"})
	if len(byQuery) != 1 || byQuery[0].ID != "sm-1" {
		t.Errorf("query filter = %+v", byQuery)
	}
	// Deliverables text is searched too.
	if got := len(repo.List(ServiceFilter{Query: "stories"})); got != 1 {
		t.Errorf("deliverables query = %d items, want 1", got)
	}
}

func TestServiceRepositoryEditAndToggle(t *testing.T) {
	repo := NewServiceRepository(seedItems())

	name := "Landing Page Pro"
	price := 30000.0
	updated, ok := repo.Update("wd-1", &models.UpdateServiceRequest{Name: &name, Price: &price})
	if !ok {
		t.Fatal("update of known id failed")
	}
	if updated.Name != name || updated.Price != price {
		t.Errorf("update not applied: %+v", updated)
	}
	// Untouched fields survive a partial update.
	if updated.Deliverables != "Single page design & build" {
		t.Errorf("deliverables clobbered: %q", updated.Deliverables)
	}

	if _, ok := repo.Update("missing", &models.UpdateServiceRequest{Name: &name}); ok {
		t.Error("update of unknown id reported success")
	}

	toggled, ok := repo.ToggleActive("wd-1")
	if !ok || toggled.Active {
		t.Errorf("toggle did not disable: ok=%v active=%v", ok, toggled.Active)
	}
	// Soft delete: the item is still listed, just inactive.
	if got := len(repo.List(ServiceFilter{})); got != 3 {
		t.Errorf("item hard-deleted, list = %d", got)
	}

	created := repo.Create()
	if created.ID == "" || !created.Active {
		t.Errorf("created service malformed: %+v", created)
	}
	if _, ok := repo.GetByID(created.ID); !ok {
		t.Error("created service not retrievable")
	}
}

func TestConfigRepositoryDropsBlankTerms(t *testing.T) {
	repo := NewConfigRepository(models.ProposalConfig{HeaderTitle: "PROJECT PROPOSAL"})

	saved := repo.Save(models.ProposalConfig{
		HeaderTitle:        "COMMERCIAL PROPOSAL",
		ContactEmail:       "sales@forwardworkx.com",
		TermsAndConditions: []string{"1. 50% advance.", "   ", "", "2. Validity 30 days."},
	})

	if len(saved.TermsAndConditions) != 2 {
		t.Errorf("terms = %v, blank lines not dropped", saved.TermsAndConditions)
	}
	if got := repo.Get().HeaderTitle; got != "COMMERCIAL PROPOSAL" {
		t.Errorf("HeaderTitle = %q", got)
	}

	// Get hands out a copy; mutating it must not affect the store.
	cfg := repo.Get()
	cfg.TermsAndConditions[0] = "tampered"
	if repo.Get().TermsAndConditions[0] != "1. 50% advance." {
		t.Error("Get exposed internal terms slice")
	}
}
