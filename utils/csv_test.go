package utils

import (
	"strings"
	"testing"
)

func TestWriteCSVQuotesAndEscapes(t *testing.T) {
	out := WriteCSV(
		[]string{"companyName", "contactPerson"},
		[][]string{
			{`Acme "Widgets" Ltd`, "Jane Doe"},
			{"Plain Co, with comma", ""},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "companyName,contactPerson" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != `"Acme ""Widgets"" Ltd","Jane Doe"` {
		t.Errorf("escaped row = %q", lines[1])
	}
	if lines[2] != `"Plain Co, with comma",""` {
		t.Errorf("comma row = %q", lines[2])
	}
}

func TestWriteCSVNoRows(t *testing.T) {
	out := WriteCSV([]string{"a", "b"}, nil)
	if out != "a,b\n" {
		t.Errorf("got %q, want header only", out)
	}
}

func TestProposalFileName(t *testing.T) {
	tests := []struct {
		company string
		want    string
	}{
		{"Acme Widgets", "ForwardWorkx_Proposal_Acme_Widgets.pdf"},
		{"R&D / Labs (2024)", "ForwardWorkx_Proposal_R_D___Labs__2024_.pdf"},
		{"plain", "ForwardWorkx_Proposal_plain.pdf"},
	}

	for _, tt := range tests {
		if got := ProposalFileName(tt.company); got != tt.want {
			t.Errorf("ProposalFileName(%q) = %q, want %q", tt.company, got, tt.want)
		}
	}

	// Deterministic across calls.
	if ProposalFileName("Same Co") != ProposalFileName("Same Co") {
		t.Error("filename not deterministic")
	}
}
