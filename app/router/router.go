package router

import (
	"net/http"
	"strings"

	"forwardworkx-proposals/app/controller"
)

type Controllers struct {
	Cart      *controller.CartController
	Catalog   *controller.CatalogController
	Customer  *controller.CustomerController
	Template  *controller.TemplateController
	Assistant *controller.AssistantController
	Proposal  *controller.ProposalController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Catalog listing (category/subcategory/text filters via query params)
	http.HandleFunc("/catalog", controllers.Catalog.ListServices)

	// Admin catalog management
	http.HandleFunc("/admin/services", controllers.Catalog.CreateService)

	// Catalog CSV export (must be matched before the generic /:id route)
	http.HandleFunc("/admin/services/export", controllers.Catalog.ExportServices)

	// Service by id - PUT (update) and POST .../toggle (flip active)
	http.HandleFunc("/admin/services/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/toggle") {
			controllers.Catalog.ToggleService(w, r)
			return
		}
		if r.Method == http.MethodPut {
			controllers.Catalog.UpdateService(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// Printable catalog brochure
	http.HandleFunc("/admin/catalog/brochure", controllers.Catalog.Brochure)

	// Brochure HTML render endpoint (used by chromedp for PDF generation)
	http.HandleFunc("/admin/catalog/render", controllers.Catalog.RenderBrochure)

	// Lead log
	http.HandleFunc("/admin/customers", controllers.Customer.ListCustomers)
	http.HandleFunc("/admin/customers/export", controllers.Customer.ExportCustomers)

	// Proposal template text - handles both GET (get) and PUT (update)
	http.HandleFunc("/admin/template", controllers.Template.HandleTemplate)

	// Cart snapshot
	http.HandleFunc("/cart", controllers.Cart.GetCart)

	// Pending selection routes
	http.HandleFunc("/cart/pending", controllers.Cart.CancelPending)
	http.HandleFunc("/cart/pending/toggle", controllers.Cart.TogglePending)
	http.HandleFunc("/cart/pending/quantity", controllers.Cart.AdjustPendingQuantity)
	http.HandleFunc("/cart/pending/quantity/set", controllers.Cart.SetPendingQuantity)

	// Commit pending selection into the confirmed cart
	http.HandleFunc("/cart/commit", controllers.Cart.Commit)

	// Confirmed cart routes
	http.HandleFunc("/cart/items/quantity", controllers.Cart.AdjustConfirmedQuantity)
	http.HandleFunc("/cart/items/price", controllers.Cart.OverridePrice)

	// Remove confirmed line: DELETE /cart/items/:id
	http.HandleFunc("/cart/items/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			controllers.Cart.RemoveConfirmed(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// AI advisory routes
	http.HandleFunc("/assistant/recommendations", controllers.Assistant.Recommend)
	http.HandleFunc("/assistant/summary", controllers.Assistant.Summarize)

	// Proposal document generation
	http.HandleFunc("/proposal", controllers.Proposal.Generate)
}
