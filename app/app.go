package app

import (
	"context"
	"fmt"
	"log"
	"os"

	"forwardworkx-proposals/app/controller"
	"forwardworkx-proposals/app/router"
	"forwardworkx-proposals/catalog"
	"forwardworkx-proposals/db"
	"forwardworkx-proposals/repository"
	"forwardworkx-proposals/service"
)

// assistantService is kept for shutdown
var assistantService *service.AssistantService

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	ctx := context.Background()

	// Initialize repositories
	serviceRepo := repository.NewServiceRepository(catalog.SeedServices())
	configRepo := repository.NewConfigRepository(catalog.DefaultProposalConfig())
	cartRepo := repository.NewCartRepository(db.DB)
	customerRepo := repository.NewCustomerRepository(db.DB)

	// Initialize services
	cartService := service.NewCartService(serviceRepo, cartRepo)
	if err := cartService.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore cart: %w", err)
	}

	// Missing GEMINI_API_KEY is not fatal; the assistant answers fallbacks
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Printf("⚠️  GEMINI_API_KEY is not set, assistant will answer fallbacks only")
	}
	assistantService = service.NewAssistantService(ctx, apiKey)

	brochureService := service.NewBrochureService(serviceRepo, baseURL())
	proposalService := service.NewProposalService(configRepo)

	// Create controllers
	controllers := &router.Controllers{
		Cart:      controller.NewCartController(cartService),
		Catalog:   controller.NewCatalogController(serviceRepo, brochureService),
		Customer:  controller.NewCustomerController(customerRepo),
		Template:  controller.NewTemplateController(configRepo),
		Assistant: controller.NewAssistantController(assistantService, cartService, serviceRepo),
		Proposal:  controller.NewProposalController(proposalService, cartService, customerRepo),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}

// Shutdown releases application resources
func Shutdown() {
	if assistantService != nil {
		assistantService.Close()
	}
}

// baseURL is where chromedp reaches the brochure render endpoint
func baseURL() string {
	if base := os.Getenv("BASE_URL"); base != "" {
		return base
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return "http://localhost:" + port
}
