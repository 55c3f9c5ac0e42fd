package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"forwardworkx-proposals/models"
)

const (
	assistantModel   = "gemini-2.5-flash"
	assistantTimeout = 20 * time.Second

	// Fallback sentences, matching the two failure modes: no client
	// configured at all versus a call that failed mid-flight.
	summaryNoClientFallback = "We are pleased to submit this proposal for your review."
	summaryErrorFallback    = "Attached is the proposal for your selected services."
)

// AssistantService wraps the generative-language API. Both calls are purely
// advisory: every failure path collapses to a usable fallback and nothing
// here is ever surfaced as a user-facing error. Responses from superseded
// requests are discarded via per-call generation counters, so a stale
// in-flight result can never clobber a newer one.
type AssistantService struct {
	client *genai.Client

	recGen     atomic.Uint64
	summaryGen atomic.Uint64
}

// NewAssistantService creates an AssistantService. A missing API key is not
// an error; the service simply answers with fallbacks.
func NewAssistantService(ctx context.Context, apiKey string) *AssistantService {
	s := &AssistantService{}
	if apiKey == "" {
		log.Printf("⚠️ GEMINI_API_KEY not set, AI assistant runs in fallback mode")
		return s
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		log.Printf("⚠️ AI assistant unavailable: %v", err)
		return s
	}
	s.client = client
	log.Printf("✓ AI assistant ready (%s)", assistantModel)
	return s
}

// Close releases the underlying API client
func (s *AssistantService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// Recommend maps a free-text client description to recommended catalog item
// ids. Only active items are offered to the model. Any failure, whether a missing
// client, a network error or an unparsable reply, yields an empty list.
func (s *AssistantService) Recommend(ctx context.Context, description string, items []models.ServiceItem) []string {
	gen := s.recGen.Add(1)

	ids := s.recommend(ctx, description, items)

	if gen != s.recGen.Load() {
		log.Printf("⚠️ Recommend: discarding stale response (generation %d)", gen)
		return []string{}
	}
	return ids
}

func (s *AssistantService) recommend(ctx context.Context, description string, items []models.ServiceItem) []string {
	if s.client == nil || strings.TrimSpace(description) == "" {
		return []string{}
	}

	var catalog strings.Builder
	for _, item := range items {
		if !item.Active {
			continue
		}
		fmt.Fprintf(&catalog, "%s: %s (%s) - %.0f INR\n", item.ID, item.Name, item.Subcategory, item.Price)
	}

	prompt := fmt.Sprintf(`You are a sales expert for a creative agency.
Based on the client description below, recommend the 5 most relevant service IDs from our catalog.

Client Description: %s

Service Catalog:
%s
Return ONLY a JSON array of string IDs. Example: ["wc-1", "sm-3"]`, description, catalog.String())

	ctx, cancel := context.WithTimeout(ctx, assistantTimeout)
	defer cancel()

	model := s.client.GenerativeModel(assistantModel)
	model.GenerationConfig.ResponseMIMEType = "application/json"
	model.GenerationConfig.ResponseSchema = &genai.Schema{
		Type:  genai.TypeArray,
		Items: &genai.Schema{Type: genai.TypeString},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("⚠️ Recommend: advisory call failed: %v", err)
		return []string{}
	}

	var ids []string
	if err := json.Unmarshal([]byte(responseText(resp)), &ids); err != nil {
		log.Printf("⚠️ Recommend: unparsable advisory response: %v", err)
		return []string{}
	}
	log.Printf("✅ Recommend: %d services suggested", len(ids))
	return ids
}

// Summarize drafts the short executive summary paragraph for the proposal.
// On failure it falls back to a fixed generic sentence.
func (s *AssistantService) Summarize(ctx context.Context, companyName string, lines []models.LineItem) string {
	gen := s.summaryGen.Add(1)

	summary := s.summarize(ctx, companyName, lines)

	if gen != s.summaryGen.Load() {
		log.Printf("⚠️ Summarize: discarding stale response (generation %d)", gen)
		return summaryErrorFallback
	}
	return summary
}

func (s *AssistantService) summarize(ctx context.Context, companyName string, lines []models.LineItem) string {
	if s.client == nil {
		return summaryNoClientFallback
	}

	names := make([]string, 0, len(lines))
	for _, line := range lines {
		names = append(names, line.Name)
	}

	prompt := fmt.Sprintf(`Write a professional, 2-sentence executive summary for a proposal to %s.
The proposal includes: %s.
Tone: Professional, enthusiastic, value-driven.`, companyName, strings.Join(names, ", "))

	ctx, cancel := context.WithTimeout(ctx, assistantTimeout)
	defer cancel()

	model := s.client.GenerativeModel(assistantModel)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("⚠️ Summarize: advisory call failed: %v", err)
		return summaryErrorFallback
	}

	text := strings.TrimSpace(responseText(resp))
	if text == "" {
		return summaryErrorFallback
	}
	log.Printf("✅ Summarize: drafted summary for %s", companyName)
	return text
}

// responseText flattens the text parts of the first candidate
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}
