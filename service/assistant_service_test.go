package service

import (
	"context"
	"testing"

	"forwardworkx-proposals/models"
)

// Without an API key the assistant must degrade to fallbacks, never errors.

func TestRecommendFallbackWithoutClient(t *testing.T) {
	svc := NewAssistantService(context.Background(), "")
	defer svc.Close()

	ids := svc.Recommend(context.Background(), "a bakery that wants an online shop", []models.ServiceItem{
		{ID: "web-01", Name: "Business Website", Active: true},
	})
	if ids == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(ids) != 0 {
		t.Fatalf("expected no recommendations in fallback mode, got %v", ids)
	}
}

func TestSummarizeFallbackWithoutClient(t *testing.T) {
	svc := NewAssistantService(context.Background(), "")
	defer svc.Close()

	summary := svc.Summarize(context.Background(), "Acme Corp", []models.LineItem{
		{ServiceItem: models.ServiceItem{ID: "web-01", Name: "Business Website"}, Quantity: 1},
	})
	if summary != summaryNoClientFallback {
		t.Fatalf("summary = %q, want the no-client fallback", summary)
	}
}
