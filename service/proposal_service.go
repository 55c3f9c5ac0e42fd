package service

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"forwardworkx-proposals/models"
	"forwardworkx-proposals/pricing"
	"forwardworkx-proposals/repository"
	"forwardworkx-proposals/utils"
)

// ErrProposalNotReady is returned when the validity gate fails: an empty
// cart or a missing required client field. No partial document is ever
// produced.
var ErrProposalNotReady = errors.New("proposal prerequisites not met")

// Page geometry in millimeters (A4 portrait)
const (
	pageWidth    = 210.0
	pageMargin   = 20.0
	contentWidth = pageWidth - 2*pageMargin
	pageBreakY   = 270.0 // Below this the table flows to the next page
)

// Table column widths; description takes the remainder of the content width
const (
	colQty     = 10.0
	colOneTime = 30.0
	colMonthly = 30.0
	colTotal   = 35.0
	colDesc    = contentWidth - colQty - colOneTime - colMonthly - colTotal
)

type rgb struct{ r, g, b int }

var (
	darkNavy  = rgb{15, 23, 42}   // Slate 900
	textGray  = rgb{51, 65, 85}   // Slate 700
	lightGray = rgb{100, 116, 139} // Slate 500
	accent    = rgb{59, 130, 246} // Blue 500
	accentSky = rgb{147, 197, 253}
)

// ProposalService renders the downloadable proposal document. The layout is
// a sequential vertical cursor: each block advances the cursor by its own
// measured height, and the two-column blocks merge their cursors back to
// the maximum before the next shared block.
type ProposalService struct {
	config repository.ConfigRepositoryInterface
}

// NewProposalService creates a new ProposalService
func NewProposalService(config repository.ConfigRepositoryInterface) *ProposalService {
	return &ProposalService{config: config}
}

// CanGenerate reports whether the validity gate passes for the given cart
// and client
func (s *ProposalService) CanGenerate(lines []models.LineItem, client models.ClientInfo) bool {
	return len(lines) > 0 && client.HasRequiredFields()
}

// Generate produces the proposal PDF and its download filename. The gate is
// checked first; when it fails no document is produced at all.
func (s *ProposalService) Generate(lines []models.LineItem, client models.ClientInfo, executiveSummary string) ([]byte, string, error) {
	if !s.CanGenerate(lines, client) {
		return nil, "", ErrProposalNotReady
	}

	cfg := s.config.Get()
	log.Printf("📦 Generating proposal for %s (%d lines)", client.CompanyName, len(lines))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	y := s.drawHeader(pdf, cfg)
	y = s.drawSenderAddress(pdf, cfg, y)
	y = s.drawClientBlock(pdf, client, y)
	y = s.drawExecutiveSummary(pdf, executiveSummary, y)
	y = s.drawItemsTable(pdf, lines, y+5)
	s.drawTotalsAndTerms(pdf, lines, cfg, y+15)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render proposal: %w", err)
	}

	filename := utils.ProposalFileName(client.CompanyName)
	log.Printf("✅ Proposal rendered: %s (%d bytes)", filename, buf.Len())
	return buf.Bytes(), filename, nil
}

// drawHeader renders the document title and the brand mark on one row
func (s *ProposalService) drawHeader(pdf *gofpdf.Fpdf, cfg models.ProposalConfig) float64 {
	const headerY = 20.0

	title := cfg.HeaderTitle
	if title == "" {
		title = "PROJECT PROPOSAL"
	}
	setFont(pdf, "B", 24, darkNavy)
	pdf.Text(pageMargin, headerY, strings.ToUpper(title))

	// Brand mark: three overlapping chevrons, right-aligned
	logoX := pageWidth - pageMargin - 70
	logoY := headerY - 5
	drawChevron(pdf, logoX+0, logoY, darkNavy)
	drawChevron(pdf, logoX+7.5, logoY, accent)
	drawChevron(pdf, logoX+15, logoY, accentSky)

	setFont(pdf, "B", 18, darkNavy)
	pdf.Text(logoX+28.5, logoY+12, "FORWARDWORKX")

	return headerY + 10
}

// drawChevron draws one brand chevron at half scale
func drawChevron(pdf *gofpdf.Fpdf, x, y float64, c rgb) {
	const s = 0.5
	pdf.SetFillColor(c.r, c.g, c.b)
	pts := []gofpdf.PointType{
		{X: x, Y: y + 2.5*s},
		{X: x + 15*s, Y: y + 17.5*s},
		{X: x, Y: y + 32.5*s},
		{X: x + 12*s, Y: y + 32.5*s},
		{X: x + 27*s, Y: y + 17.5*s},
		{X: x + 12*s, Y: y + 2.5*s},
	}
	pdf.Polygon(pts, "F")
}

// drawSenderAddress renders the fixed agency address plus the configurable
// contact email, one fixed line height per line
func (s *ProposalService) drawSenderAddress(pdf *gofpdf.Fpdf, cfg models.ProposalConfig, y float64) float64 {
	email := cfg.ContactEmail
	if email == "" {
		email = "marketing@forwardworkx.com"
	}
	senderLines := []string{
		"1st & 2nd Floor, DRMK Towers,",
		"19th Cross Rd, 24th Main Rd, 5th Phase,",
		"J.P.Nagar, Bengaluru, Karnataka 560078",
		"Email: " + email,
		"Phone: +91 8147272953",
	}

	setFont(pdf, "", 9, textGray)
	for _, line := range senderLines {
		pdf.Text(pageMargin, y, line)
		y += 5
	}
	return y + 10
}

// drawClientBlock renders the two-column prepared-for/date block. Both
// columns start at the same Y; the next block starts at the maximum of the
// two cursors plus a gap.
func (s *ProposalService) drawClientBlock(pdf *gofpdf.Fpdf, client models.ClientInfo, y float64) float64 {
	top := y

	setFont(pdf, "B", 10, darkNavy)
	pdf.Text(pageMargin, y, "PREPARED FOR:")
	y += 6

	// Only non-empty fields make it onto the document.
	fields := []struct{ label, value string }{
		{"Client", client.CompanyName},
		{"Contact", client.ContactPerson},
		{"Email", client.Email},
		{"Phone", client.Phone},
	}
	setFont(pdf, "", 10, textGray)
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		pdf.Text(pageMargin, y, f.label+": "+f.value)
		y += 5
	}

	rightX := pageWidth - pageMargin - 40
	rightY := top
	setFont(pdf, "B", 10, textGray)
	pdf.Text(rightX, rightY, "DATE:")
	rightY += 6
	setFont(pdf, "", 10, textGray)
	pdf.Text(rightX, rightY, client.Date)

	return max(y, rightY+10) + 10
}

// drawExecutiveSummary renders the optional AI-drafted paragraph, wrapped
// to the content width. Absent summary, the cursor passes through untouched.
func (s *ProposalService) drawExecutiveSummary(pdf *gofpdf.Fpdf, summary string, y float64) float64 {
	if summary == "" {
		return y
	}

	setFont(pdf, "B", 10, darkNavy)
	pdf.Text(pageMargin, y, "EXECUTIVE SUMMARY")
	y += 6

	setFont(pdf, "", 10, textGray)
	wrapped := pdf.SplitText(summary, contentWidth)
	for _, line := range wrapped {
		pdf.Text(pageMargin, y, line)
		y += 5
	}
	return y + 5
}

// drawItemsTable renders one row per line item and returns the table's
// final Y. The table may span pages; the column header repeats on each.
func (s *ProposalService) drawItemsTable(pdf *gofpdf.Fpdf, lines []models.LineItem, y float64) float64 {
	y = s.drawTableHeader(pdf, y)

	for _, line := range lines {
		desc := pdf.SplitText(line.Name, colDesc-4)
		if line.Description != "" {
			desc = append(desc, pdf.SplitText(line.Description, colDesc-4)...)
		}
		rowHeight := float64(len(desc))*4 + 3

		if y+rowHeight > pageBreakY {
			pdf.AddPage()
			y = s.drawTableHeader(pdf, pageMargin)
		}

		pdf.SetDrawColor(230, 230, 230)
		pdf.SetLineWidth(0.1)

		x := pageMargin
		pdf.Rect(x, y, colDesc, rowHeight, "D")
		setFont(pdf, "", 8.5, textGray)
		textY := y + 4.5
		for _, dl := range desc {
			pdf.Text(x+2, textY, dl)
			textY += 4
		}
		x += colDesc

		mid := y + rowHeight/2 + 1.5
		pdf.Rect(x, y, colQty, rowHeight, "D")
		centerText(pdf, fmt.Sprintf("%d", line.Quantity), x, colQty, mid)
		x += colQty

		pdf.Rect(x, y, colOneTime, rowHeight, "D")
		rightText(pdf, moneyCell(line.Price), x, colOneTime, mid)
		x += colOneTime

		pdf.Rect(x, y, colMonthly, rowHeight, "D")
		rightText(pdf, moneyCell(line.MonthlyPrice), x, colMonthly, mid)
		x += colMonthly

		pdf.Rect(x, y, colTotal, rowHeight, "D")
		rightText(pdf, "INR "+pricing.FormatINR(pricing.LineTotal(line)), x, colTotal, mid)

		y += rowHeight
	}
	return y
}

// drawTableHeader renders the filled column header row and returns the Y
// below it
func (s *ProposalService) drawTableHeader(pdf *gofpdf.Fpdf, y float64) float64 {
	const headerHeight = 7.0

	pdf.SetFillColor(darkNavy.r, darkNavy.g, darkNavy.b)
	pdf.Rect(pageMargin, y, contentWidth, headerHeight, "F")

	setFont(pdf, "B", 9, rgb{255, 255, 255})
	textY := y + 4.8
	x := pageMargin
	pdf.Text(x+2, textY, "Service Description")
	x += colDesc
	centerText(pdf, "Qty", x, colQty, textY)
	x += colQty
	rightText(pdf, "One-time", x, colOneTime, textY)
	x += colOneTime
	rightText(pdf, "Monthly", x, colMonthly, textY)
	x += colMonthly
	rightText(pdf, "Total (One-time)", x, colTotal, textY)

	return y + headerHeight
}

// drawTotalsAndTerms renders the right-aligned totals and the left-aligned
// terms block. Both start at the same Y and advance independent cursors.
func (s *ProposalService) drawTotalsAndTerms(pdf *gofpdf.Fpdf, lines []models.LineItem, cfg models.ProposalConfig, y float64) {
	if y > pageBreakY-30 {
		pdf.AddPage()
		y = pageMargin + 10
	}

	totals := pricing.Summarize(lines)
	totalsX := pageWidth/2 + 15
	totalsY := y

	drawTotalRow := func(label, value string, bold, accented bool) {
		style := ""
		size := 9.0
		color := textGray
		if bold {
			style = "B"
			size = 10
			color = darkNavy
		}
		if accented {
			color = accent
		}
		setFont(pdf, style, size, color)
		pdf.Text(totalsX, totalsY, label)
		rightText(pdf, value, totalsX, pageWidth-pageMargin-totalsX, totalsY)
		totalsY += 7
	}

	drawTotalRow("Subtotal (One-time Setup)", "INR "+pricing.FormatINR(totals.OneTimeSubtotal), false, false)
	drawTotalRow("GST (18%)", "INR "+pricing.FormatINR(totals.TaxAmount), false, false)
	drawTotalRow("Total One-time Investment", "INR "+pricing.FormatINR(totals.OneTimeTotal), true, false)
	totalsY += 3
	if totals.MonthlySubtotal > 0 {
		drawTotalRow("Recurring Monthly Subscription", "INR "+pricing.FormatINR(totals.MonthlySubtotal), true, true)
	}

	termsY := y
	setFont(pdf, "B", 9, darkNavy)
	pdf.Text(pageMargin, termsY, "TERMS & CONDITIONS")
	termsY += 5

	setFont(pdf, "", 7.5, lightGray)
	termsWidth := pageWidth/2 - pageMargin - 5
	for _, term := range cfg.TermsAndConditions {
		for _, line := range pdf.SplitText(term, termsWidth) {
			pdf.Text(pageMargin, termsY, line)
			termsY += 3.5
		}
	}
}

// moneyCell renders a price column value, with a dash standing in for a
// zero or absent price
func moneyCell(amount float64) string {
	if amount <= 0 {
		return "-"
	}
	return "INR " + pricing.FormatINR(amount)
}

func setFont(pdf *gofpdf.Fpdf, style string, size float64, c rgb) {
	pdf.SetFont("Helvetica", style, size)
	pdf.SetTextColor(c.r, c.g, c.b)
}

func centerText(pdf *gofpdf.Fpdf, txt string, x, w, y float64) {
	pdf.Text(x+(w-pdf.GetStringWidth(txt))/2, y, txt)
}

func rightText(pdf *gofpdf.Fpdf, txt string, x, w, y float64) {
	pdf.Text(x+w-pdf.GetStringWidth(txt)-2, y, txt)
}
