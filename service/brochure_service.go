package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"forwardworkx-proposals/pricing"
	"forwardworkx-proposals/repository"
)

// BrochureService renders the printable catalog: active services grouped by
// category and subcategory, as standalone HTML or printed to PDF through
// headless Chrome.
type BrochureService struct {
	services repository.ServiceRepositoryInterface
	baseURL  string // Base URL for the render endpoint, e.g. "http://localhost:8080"
}

// NewBrochureService creates a new BrochureService
func NewBrochureService(services repository.ServiceRepositoryInterface, baseURL string) *BrochureService {
	return &BrochureService{services: services, baseURL: baseURL}
}

// detectChromePath detects the path to Chrome/Chromium executable.
// Checks CHROME_PATH env var first, then common installation paths.
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

type brochureGroup struct {
	Subcategory string
	Items       []brochureItem
}

type brochureItem struct {
	Name         string
	Unit         string
	Deliverables string
	OneTime      string
	Monthly      string
}

type brochureSection struct {
	Category string
	Groups   []brochureGroup
}

type brochureData struct {
	GeneratedAt string
	Sections    []brochureSection
}

// RenderHTML renders the brochure HTML for all active services
func (s *BrochureService) RenderHTML() (string, error) {
	items := s.services.ListActive()

	var sections []brochureSection
	sectionIdx := make(map[string]int)
	groupIdx := make(map[string]int)

	for _, item := range items {
		si, ok := sectionIdx[item.Category]
		if !ok {
			si = len(sections)
			sectionIdx[item.Category] = si
			sections = append(sections, brochureSection{Category: item.Category})
		}
		gKey := item.Category + "\x00" + item.Subcategory
		gi, ok := groupIdx[gKey]
		if !ok {
			gi = len(sections[si].Groups)
			groupIdx[gKey] = gi
			sections[si].Groups = append(sections[si].Groups, brochureGroup{Subcategory: item.Subcategory})
		}

		bi := brochureItem{
			Name:         item.Name,
			Unit:         item.Unit,
			Deliverables: item.Deliverables,
		}
		if item.Price > 0 {
			bi.OneTime = "₹" + pricing.FormatINR(item.Price)
		}
		if item.MonthlyPrice > 0 {
			bi.Monthly = "₹" + pricing.FormatINR(item.MonthlyPrice) + "/mo"
		}
		sections[si].Groups[gi].Items = append(sections[si].Groups[gi].Items, bi)
	}

	data := brochureData{
		GeneratedAt: time.Now().Format("02 Jan 2006"),
		Sections:    sections,
	}

	var buf bytes.Buffer
	if err := brochureTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render brochure template: %w", err)
	}
	return buf.String(), nil
}

// GeneratePDF prints the brochure render endpoint to PDF using chromedp
func (s *BrochureService) GeneratePDF(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	chromePath := detectChromePath()
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("enable-print-preview", true),
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/admin/catalog/render", s.baseURL)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123), // A4 at 96 DPI
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// Page breaks come from the CSS page-break rules in the template
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).   // 210mm in inches
				WithPaperHeight(11.69). // 297mm in inches
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate brochure PDF: %w", err)
	}
	return pdfBuf, nil
}

var brochureTemplate = template.Must(template.New("brochure").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>ForwardWorkx Service Catalog</title>
<style>
  body { font-family: 'Helvetica Neue', Arial, sans-serif; color: #334155; margin: 0; padding: 24px; }
  h1 { color: #0f172a; font-size: 28px; margin: 0 0 4px; letter-spacing: -0.5px; }
  .meta { color: #64748b; font-size: 12px; margin-bottom: 24px; }
  .section { page-break-before: auto; margin-bottom: 28px; }
  .section h2 { color: #0f172a; font-size: 18px; text-transform: uppercase; border-bottom: 2px solid #0f172a; padding-bottom: 4px; }
  .group h3 { color: #4338ca; font-size: 13px; text-transform: uppercase; letter-spacing: 0.5px; margin: 16px 0 6px; }
  table { width: 100%; border-collapse: collapse; font-size: 12px; page-break-inside: avoid; }
  th { text-align: left; background: #0f172a; color: #fff; padding: 6px 8px; font-weight: 600; }
  td { padding: 6px 8px; border-bottom: 1px solid #e2e8f0; vertical-align: top; }
  td.price { text-align: right; white-space: nowrap; font-weight: 600; color: #0f172a; }
  td.monthly { text-align: right; white-space: nowrap; font-weight: 600; color: #4f46e5; }
</style>
</head>
<body>
  <h1>FORWARDWORKX</h1>
  <div class="meta">Service Catalog · Generated {{.GeneratedAt}}</div>
  {{range .Sections}}
  <div class="section">
    <h2>{{.Category}}</h2>
    {{range .Groups}}
    <div class="group">
      <h3>{{.Subcategory}}</h3>
      <table>
        <tr><th style="width:30%">Service</th><th style="width:15%">Unit</th><th>Deliverables</th><th style="width:12%">One-time</th><th style="width:12%">Monthly</th></tr>
        {{range .Items}}
        <tr>
          <td>{{.Name}}</td>
          <td>{{.Unit}}</td>
          <td>{{.Deliverables}}</td>
          <td class="price">{{if .OneTime}}{{.OneTime}}{{else}}&ndash;{{end}}</td>
          <td class="monthly">{{if .Monthly}}{{.Monthly}}{{else}}&ndash;{{end}}</td>
        </tr>
        {{end}}
      </table>
    </div>
    {{end}}
  </div>
  {{end}}
</body>
</html>`))
