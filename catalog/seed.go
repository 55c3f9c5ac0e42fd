// Package catalog holds the static seed data the service starts from.
// Admin edits mutate the in-memory store only; the seed itself is the
// single source shipped with the binary.
package catalog

import "forwardworkx-proposals/models"

// DefaultProposalConfig is the template text used until an admin edits it
func DefaultProposalConfig() models.ProposalConfig {
	return models.ProposalConfig{
		HeaderTitle:  "PROJECT PROPOSAL",
		ContactEmail: "marketing@forwardworkx.com",
		TermsAndConditions: []string{
			"1. 50% advance payment required to initiate the project; balance on delivery.",
			"2. All one-time prices exclude GST; GST at 18% is added on the final invoice.",
			"3. Monthly subscriptions are billed in advance and renew automatically unless cancelled with 15 days notice.",
			"4. This proposal is valid for 30 days from the date of issue.",
			"5. Two rounds of revisions are included per deliverable; further revisions are billed at actuals.",
			"6. Third-party costs (ad spend, hosting, stock assets, plugin licenses) are billed separately.",
		},
	}
}

// SeedServices returns the initial catalog
func SeedServices() []models.ServiceItem {
	return []models.ServiceItem{
		// Marketing / Organic
		{ID: "om-smm-1", Category: "Marketing", Subcategory: "Organic Marketing - Social Media Marketing", Name: "Social Media Management", Unit: "Per Month", MonthlyPrice: 25000, Deliverables: "12 posts, 8 stories, 4 reels, community management", Active: true},
		{ID: "om-smm-2", Category: "Marketing", Subcategory: "Organic Marketing - Social Media Marketing", Name: "Channel Setup & Revamp", Unit: "One-time", Price: 12000, Deliverables: "Profile optimization across 3 platforms, bio copy, highlight covers", Active: true},
		{ID: "om-sem-1", Category: "Marketing", Subcategory: "Organic Marketing - Search Media", Name: "SEO Retainer", Unit: "Per Month", MonthlyPrice: 30000, Deliverables: "Keyword tracking, on-page fixes, 4 optimized articles", Active: true},
		{ID: "om-sem-2", Category: "Marketing", Subcategory: "Organic Marketing - Search Media", Name: "Technical SEO Audit", Unit: "One-time", Price: 18000, Deliverables: "Crawl report, Core Web Vitals review, prioritized fix sheet", Active: true},
		{ID: "om-bbm-1", Category: "Marketing", Subcategory: "Organic Marketing - Brand/Business Media", Name: "Google Business Profile Management", Unit: "Per Month", MonthlyPrice: 8000, Deliverables: "Weekly posts, review responses, listing hygiene", Active: true},
		// Marketing / Performance
		{ID: "pm-1", Category: "Marketing", Subcategory: "Performance Marketing", Name: "Paid Ads Management (Meta + Google)", Unit: "Per Month", MonthlyPrice: 35000, Deliverables: "Campaign strategy, setup, optimization, weekly reporting; ad spend extra", Active: true},
		{ID: "pm-2", Category: "Marketing", Subcategory: "Performance Marketing", Name: "Conversion Tracking Setup", Unit: "One-time", Price: 15000, Deliverables: "GA4, pixel and server-side events, funnel dashboards", Active: true},
		// Marketing / Enablement
		{ID: "em-1", Category: "Marketing", Subcategory: "Enablement Marketing", Name: "CRM Integration & Automation", Unit: "One-time", Price: 40000, Deliverables: "Lead routing, drip sequences, WhatsApp API hookup", Active: true},
		// Content & Creative
		{ID: "cc-web-1", Category: "Content & Creative", Subcategory: "Website Creatives", Name: "Website Banner Pack", Unit: "Pack of 5", Price: 9000, Deliverables: "5 hero banners, source files included", Active: true},
		{ID: "cc-mkt-1", Category: "Content & Creative", Subcategory: "Marketplace Creatives", Name: "Amazon EBC / A+ Content", Unit: "Per Listing", Price: 14000, Deliverables: "7-module enhanced brand content design", Active: true},
		{ID: "cc-sm-1", Category: "Content & Creative", Subcategory: "Social Media Creatives", Name: "Static Post Pack", Unit: "Pack of 12", Price: 12000, Deliverables: "12 branded statics with copy", Active: true},
		{ID: "cc-br-1", Category: "Content & Creative", Subcategory: "Branding", Name: "Brand Identity Kit", Unit: "One-time", Price: 45000, Deliverables: "Logo suite, palette, typography, usage guide", Active: true},
		{ID: "cc-pc-1", Category: "Content & Creative", Subcategory: "Performance Creatives", Name: "Ad Creative Sprint", Unit: "Pack of 10", Price: 20000, Deliverables: "10 high-CTR ad variants, statics + motion", Active: true},
		{ID: "cc-sv-1", Category: "Content & Creative", Subcategory: "Short Video Formats", Name: "Reels Production", Unit: "Pack of 4", Price: 16000, Deliverables: "4 edited reels with captions and licensed audio", Active: true},
		{ID: "cc-ai-1", Category: "Content & Creative", Subcategory: "AI Production", Name: "AI Lifestyle Image Set", Unit: "Pack of 20", Price: 10000, Deliverables: "20 product-in-context renders", Active: true},
		// Ecommerce
		{ID: "ec-ri-1", Category: "Ecommerce", Subcategory: "Rietail", Name: "Omnichannel Retail Setup", Unit: "One-time", Price: 60000, Deliverables: "POS-to-online catalog sync, inventory bridge", Active: true},
		{ID: "ec-et-1", Category: "Ecommerce", Subcategory: "Etailon", Name: "Marketplace Account Management", Unit: "Per Month", MonthlyPrice: 22000, Deliverables: "Listings, pricing hygiene, claims, promotions calendar", Active: true},
		{ID: "ec-ra-1", Category: "Ecommerce", Subcategory: "Riaddon", Name: "Returns Automation Add-on", Unit: "One-time", Price: 18000, Deliverables: "RMA workflow with courier API integration", Active: true},
		// Technology
		{ID: "tc-ts-1", Category: "Technology", Subcategory: "Tech Services", Name: "Solution Architecture Consult", Unit: "Per Engagement", Price: 25000, Deliverables: "Stack review, scaling plan, written recommendations", Active: true},
		{ID: "tc-ws-1", Category: "Technology", Subcategory: "Static Website Services", Name: "Business Website (5 pages)", Unit: "One-time", Price: 50000, Deliverables: "Design, build, CMS, basic SEO", Description: "Includes responsive design, contact forms and one year of minor content edits.", Active: true},
		{ID: "tc-ws-2", Category: "Technology", Subcategory: "Static Website Services", Name: "Landing Page", Unit: "One-time", Price: 20000, Deliverables: "Single conversion-focused page", Active: true},
		{ID: "tc-sh-1", Category: "Technology", Subcategory: "Shopify Services", Name: "Shopify Store Build", Unit: "One-time", Price: 55000, Deliverables: "Theme customization, 50 SKUs, payments & shipping setup", Active: true},
		{ID: "tc-hd-1", Category: "Technology", Subcategory: "Hosting & Deployment", Name: "Managed Hosting & Support", Unit: "Per Year", Price: 24000, Deliverables: "Cloud hosting, SSL, backups, uptime monitoring", Active: true},
		// Enablement
		{ID: "en-op-1", Category: "Enablement", Subcategory: "Operations", Name: "Sales Pipeline Setup", Unit: "One-time", Price: 30000, Deliverables: "CRM stages, deal hygiene rules, rep dashboards", Active: true},
		{ID: "en-su-1", Category: "Enablement", Subcategory: "Success", Name: "Support Desk Setup", Unit: "One-time", Price: 20000, Deliverables: "Ticketing, macros, CSAT loop", Active: true},
		{ID: "en-gr-1", Category: "Enablement", Subcategory: "Growth", Name: "Growth Tooling Retainer", Unit: "Per Month", MonthlyPrice: 18000, Deliverables: "Experiment backlog, funnel instrumentation, monthly readout", Active: true},
	}
}
