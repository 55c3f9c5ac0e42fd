package service

import (
	"context"
	"errors"
	"testing"

	"forwardworkx-proposals/models"
	"forwardworkx-proposals/repository"
)

// fakeSlot is an in-memory stand-in for the durable cart slot
type fakeSlot struct {
	lines    []models.LineItem
	saves    int
	clears   int
	saveErr  error
	loadErr  error
	clearErr error
}

func (f *fakeSlot) Load(_ context.Context) ([]models.LineItem, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.lines, nil
}

func (f *fakeSlot) Save(_ context.Context, lines []models.LineItem) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.lines = lines
	return nil
}

func (f *fakeSlot) Clear(_ context.Context) error {
	f.clears++
	if f.clearErr != nil {
		return f.clearErr
	}
	f.lines = nil
	return nil
}

func testCatalog() repository.ServiceRepositoryInterface {
	return repository.NewServiceRepository([]models.ServiceItem{
		{ID: "web-01", Category: "Technology", Subcategory: "Web", Name: "Business Website", Unit: "project", Price: 2500, Active: true},
		{ID: "smm-01", Category: "Marketing", Subcategory: "Social", Name: "Social Media Retainer", Unit: "month", MonthlyPrice: 200, Active: true},
		{ID: "old-01", Category: "Marketing", Subcategory: "Print", Name: "Retired Flyer Pack", Unit: "pack", Price: 100, Active: false},
	})
}

func TestCartServiceToggleIgnoresUnknownAndInactive(t *testing.T) {
	svc := NewCartService(testCatalog(), &fakeSlot{})

	svc.Toggle("no-such-id")
	svc.Toggle("old-01")

	snap := svc.Snapshot()
	if len(snap.Pending) != 0 {
		t.Fatalf("expected empty pending selection, got %d lines", len(snap.Pending))
	}

	svc.Toggle("web-01")
	snap = svc.Snapshot()
	if len(snap.Pending) != 1 || snap.Pending[0].ID != "web-01" || snap.Pending[0].Quantity != 1 {
		t.Fatalf("unexpected pending selection: %+v", snap.Pending)
	}
}

func TestCartServiceCommitPersistsConfirmedLines(t *testing.T) {
	slot := &fakeSlot{}
	svc := NewCartService(testCatalog(), slot)
	ctx := context.Background()

	svc.Toggle("web-01")
	svc.SetPendingQuantity("web-01", "3")
	svc.Commit(ctx)

	if slot.saves != 1 {
		t.Fatalf("expected 1 slot save after commit, got %d", slot.saves)
	}
	if len(slot.lines) != 1 || slot.lines[0].ID != "web-01" || slot.lines[0].Quantity != 3 {
		t.Fatalf("unexpected persisted lines: %+v", slot.lines)
	}

	// Dropping the line to zero persists the emptied cart
	svc.AdjustConfirmedQuantity(ctx, "web-01", -3)
	if len(slot.lines) != 0 {
		t.Fatalf("expected empty slot after removal, got %+v", slot.lines)
	}
}

func TestCartServiceClearEmptiesCartAndSlot(t *testing.T) {
	slot := &fakeSlot{}
	svc := NewCartService(testCatalog(), slot)
	ctx := context.Background()

	svc.Toggle("web-01")
	svc.Commit(ctx)
	svc.Toggle("smm-01")

	svc.Clear(ctx)

	if slot.clears != 1 {
		t.Fatalf("expected 1 slot clear, got %d", slot.clears)
	}
	snap := svc.Snapshot()
	if len(snap.Pending) != 0 || len(snap.Confirmed) != 0 {
		t.Fatalf("expected empty cart after clear, got pending=%d confirmed=%d", len(snap.Pending), len(snap.Confirmed))
	}
}

func TestCartServiceRestore(t *testing.T) {
	slot := &fakeSlot{lines: []models.LineItem{
		{ServiceItem: models.ServiceItem{ID: "web-01", Name: "Business Website", Price: 2500}, Quantity: 2},
	}}
	svc := NewCartService(testCatalog(), slot)

	if err := svc.Restore(context.Background()); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	confirmed := svc.Confirmed()
	if len(confirmed) != 1 || confirmed[0].ID != "web-01" || confirmed[0].Quantity != 2 {
		t.Fatalf("unexpected restored cart: %+v", confirmed)
	}
}

func TestCartServiceRestoreSurfacesLoadError(t *testing.T) {
	slot := &fakeSlot{loadErr: errors.New("disk gone")}
	svc := NewCartService(testCatalog(), slot)

	if err := svc.Restore(context.Background()); err == nil {
		t.Fatal("expected Restore to surface the load error")
	}
}

func TestCartServiceSaveFailureKeepsMemoryAuthoritative(t *testing.T) {
	slot := &fakeSlot{saveErr: errors.New("disk full")}
	svc := NewCartService(testCatalog(), slot)
	ctx := context.Background()

	svc.Toggle("web-01")
	svc.Commit(ctx)

	confirmed := svc.Confirmed()
	if len(confirmed) != 1 || confirmed[0].ID != "web-01" {
		t.Fatalf("in-memory cart should survive a persistence failure, got %+v", confirmed)
	}
}

func TestBuildSummaryFigures(t *testing.T) {
	confirmed := []models.LineItem{
		{ServiceItem: models.ServiceItem{ID: "web-01", Name: "Business Website", Price: 2500}, Quantity: 1},
		{ServiceItem: models.ServiceItem{ID: "smm-01", Name: "Social Media Retainer", MonthlyPrice: 200}, Quantity: 1},
	}

	summary := buildSummary(confirmed)

	if summary.OneTimeSubtotal != 2500 {
		t.Errorf("OneTimeSubtotal = %f, want 2500", summary.OneTimeSubtotal)
	}
	if summary.TaxAmount != 450 {
		t.Errorf("TaxAmount = %f, want 450", summary.TaxAmount)
	}
	if summary.OneTimeTotal != 2950 {
		t.Errorf("OneTimeTotal = %f, want 2950", summary.OneTimeTotal)
	}
	if summary.MonthlySubtotal != 200 {
		t.Errorf("MonthlySubtotal = %f, want 200", summary.MonthlySubtotal)
	}

	if len(summary.Lines) != 2 {
		t.Fatalf("expected 2 summary lines, got %d", len(summary.Lines))
	}
	web := summary.Lines[0]
	if web.OneTimeDisplay != "₹2,500" || web.MonthlyDisplay != "" || web.LineDisplayTotal != "₹2,500" {
		t.Errorf("unexpected one-time line display: %+v", web)
	}
	smm := summary.Lines[1]
	if smm.OneTimeDisplay != "" || smm.MonthlyDisplay != "₹200" || smm.LineDisplayTotal != "₹200" {
		t.Errorf("unexpected monthly line display: %+v", smm)
	}
}
