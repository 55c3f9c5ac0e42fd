package pricing

import (
	"testing"

	"forwardworkx-proposals/models"
)

func TestSummarize(t *testing.T) {
	lines := []models.LineItem{
		{ServiceItem: models.ServiceItem{ID: "a", Price: 1000}, Quantity: 2},
		{ServiceItem: models.ServiceItem{ID: "b", Price: 500, MonthlyPrice: 200}, Quantity: 1},
	}

	s := Summarize(lines)

	if s.OneTimeSubtotal != 2500 {
		t.Errorf("OneTimeSubtotal = %v, want 2500", s.OneTimeSubtotal)
	}
	if s.TaxAmount != 450 {
		t.Errorf("TaxAmount = %v, want 450", s.TaxAmount)
	}
	if s.OneTimeTotal != 2950 {
		t.Errorf("OneTimeTotal = %v, want 2950", s.OneTimeTotal)
	}
	if s.MonthlySubtotal != 200 {
		t.Errorf("MonthlySubtotal = %v, want 200", s.MonthlySubtotal)
	}
}

func TestSummarizeEmptyCart(t *testing.T) {
	s := Summarize(nil)
	if s.OneTimeSubtotal != 0 || s.TaxAmount != 0 || s.OneTimeTotal != 0 || s.MonthlySubtotal != 0 {
		t.Errorf("empty cart produced non-zero summary: %+v", s)
	}
}

func TestCombinedLineTotalIsDisplayOnly(t *testing.T) {
	line := models.LineItem{
		ServiceItem: models.ServiceItem{ID: "a", Price: 1000, MonthlyPrice: 300},
		Quantity:    2,
	}

	if got := CombinedLineTotal(line); got != 2600 {
		t.Errorf("CombinedLineTotal = %v, want 2600", got)
	}

	// The financial totals must keep the two price kinds separate.
	s := Summarize([]models.LineItem{line})
	if s.OneTimeSubtotal != 2000 {
		t.Errorf("OneTimeSubtotal = %v, want 2000 (monthly must not leak in)", s.OneTimeSubtotal)
	}
	if s.MonthlySubtotal != 600 {
		t.Errorf("MonthlySubtotal = %v, want 600", s.MonthlySubtotal)
	}
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "0"},
		{999, "999"},
		{2500, "2,500"},
		{1234567, "1,234,567"},
		{450.5, "450.50"},
	}

	for _, tt := range tests {
		if got := FormatINR(tt.amount); got != tt.want {
			t.Errorf("FormatINR(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
