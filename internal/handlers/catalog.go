package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MohammedKaif278/A1KababCorner/internal/domain"
	"github.com/MohammedKaif278/A1KababCorner/internal/platform/httpx"
	"github.com/MohammedKaif278/A1KababCorner/internal/seo"
	"github.com/MohammedKaif278/A1KababCorner/internal/services"
	"github.com/MohammedKaif278/A1KababCorner/internal/site"
	"github.com/MohammedKaif278/A1KababCorner/internal/views"
)

// CatalogHandlers exposes the public product listing and detail endpoints.
type CatalogHandlers struct {
	catalog  services.CatalogService
	views    *views.Builder
	settings site.Settings
}

// NewCatalogHandlers constructs catalog handlers.
func NewCatalogHandlers(catalog services.CatalogService, builder *views.Builder, settings site.Settings) *CatalogHandlers {
	return &CatalogHandlers{catalog: catalog, views: builder, settings: settings}
}

// Routes wires the /products endpoints onto the provided router.
func (h *CatalogHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.listProducts)
	r.Get("/{productID}", h.getProduct)
}

func (h *CatalogHandlers) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.catalog == nil {
		httpx.WriteError(ctx, w, httpx.NewError("catalog_unavailable", "catalog service is unavailable", http.StatusServiceUnavailable))
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	var (
		products []domain.Product
		err      error
	)
	switch {
	case query != "":
		products, err = h.catalog.Search(ctx, query)
	default:
		products, err = h.catalog.FilterByCategory(ctx, category)
	}
	if err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("catalog_error", "failed to list products", http.StatusInternalServerError))
		return
	}

	httpx.WriteJSON(w, http.StatusOK, h.views.Catalog(products))
}

type productDetailResponse struct {
	Product views.DetailView `json:"product"`
	Meta    seo.Meta         `json:"meta"`
	JSONLD  string           `json:"jsonld"`
}

func (h *CatalogHandlers) getProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.catalog == nil {
		httpx.WriteError(ctx, w, httpx.NewError("catalog_unavailable", "catalog service is unavailable", http.StatusServiceUnavailable))
		return
	}

	productID := chi.URLParam(r, "productID")
	product, err := h.catalog.Product(ctx, productID)
	if err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("product_not_found", "product not found", http.StatusNotFound))
		return
	}

	httpx.WriteJSON(w, http.StatusOK, productDetailResponse{
		Product: h.views.Detail(product),
		Meta:    seo.ProductMeta(product, h.settings),
		JSONLD:  seo.JSON(seo.Product(product, h.settings)),
	})
}
