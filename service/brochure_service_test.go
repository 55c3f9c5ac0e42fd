package service

import (
	"strings"
	"testing"
)

func TestBrochureRenderHTMLGroupsActiveItems(t *testing.T) {
	svc := NewBrochureService(testCatalog(), "http://localhost:8080")

	html, err := svc.RenderHTML()
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}

	for _, want := range []string{"Technology", "Web", "Business Website", "₹2,500", "Marketing", "Social Media Retainer", "₹200/mo"} {
		if !strings.Contains(html, want) {
			t.Errorf("brochure HTML missing %q", want)
		}
	}

	// Disabled items never make it into the brochure
	if strings.Contains(html, "Retired Flyer Pack") {
		t.Error("brochure HTML includes a disabled item")
	}
}
