package service

import (
	"bytes"
	"errors"
	"testing"

	"forwardworkx-proposals/catalog"
	"forwardworkx-proposals/models"
	"forwardworkx-proposals/repository"
)

func testProposalService() *ProposalService {
	return NewProposalService(repository.NewConfigRepository(catalog.DefaultProposalConfig()))
}

func proposalLines() []models.LineItem {
	return []models.LineItem{
		{ServiceItem: models.ServiceItem{ID: "web-01", Name: "Business Website", Description: "5 page responsive build", Price: 2500}, Quantity: 1},
		{ServiceItem: models.ServiceItem{ID: "smm-01", Name: "Social Media Retainer", MonthlyPrice: 200}, Quantity: 1},
	}
}

func validClient() models.ClientInfo {
	return models.ClientInfo{
		CompanyName:   "Acme Corp",
		ContactPerson: "Priya Sharma",
		Email:         "priya@acme.example",
		Phone:         "+91 9000000000",
		Date:          "28/08/2026",
	}
}

func TestCanGenerateGate(t *testing.T) {
	svc := testProposalService()

	tests := []struct {
		name   string
		lines  []models.LineItem
		client models.ClientInfo
		want   bool
	}{
		{"ready", proposalLines(), validClient(), true},
		{"empty cart", nil, validClient(), false},
		{"missing company", proposalLines(), models.ClientInfo{ContactPerson: "Priya Sharma", Email: "priya@acme.example"}, false},
		{"missing contact", proposalLines(), models.ClientInfo{CompanyName: "Acme Corp", Email: "priya@acme.example"}, false},
		{"missing email", proposalLines(), models.ClientInfo{CompanyName: "Acme Corp", ContactPerson: "Priya Sharma"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.CanGenerate(tt.lines, tt.client); got != tt.want {
				t.Errorf("CanGenerate() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestGenerateRefusesWhenGateFails(t *testing.T) {
	svc := testProposalService()

	data, filename, err := svc.Generate(nil, validClient(), "")
	if !errors.Is(err, ErrProposalNotReady) {
		t.Fatalf("expected ErrProposalNotReady, got %v", err)
	}
	if data != nil || filename != "" {
		t.Fatalf("gate failure must produce no partial output, got %d bytes / %q", len(data), filename)
	}
}

func TestGenerateProducesPDF(t *testing.T) {
	svc := testProposalService()

	data, filename, err := svc.Generate(proposalLines(), validClient(), "A short executive summary paragraph.")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF, first bytes: %q", data[:min(len(data), 8)])
	}
	if filename != "ForwardWorkx_Proposal_Acme_Corp.pdf" {
		t.Errorf("filename = %q", filename)
	}
}

func TestGenerateHandlesManyLines(t *testing.T) {
	svc := testProposalService()

	// Enough rows to force the items table across a page break
	var lines []models.LineItem
	for i := 0; i < 60; i++ {
		lines = append(lines, proposalLines()[0])
	}

	data, _, err := svc.Generate(lines, validClient(), "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty PDF")
	}
}

func TestMoneyCell(t *testing.T) {
	if got := moneyCell(0); got != "-" {
		t.Errorf("moneyCell(0) = %q, want -", got)
	}
	if got := moneyCell(2500); got != "INR 2,500" {
		t.Errorf("moneyCell(2500) = %q", got)
	}
}
