package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-grocery/database"
	"go-grocery/models"
	"go-grocery/utils"
)

// CatalogStore is the slice of the document store the catalog controller
// needs.
type CatalogStore interface {
	Categories(ctx context.Context) ([]models.Category, error)
	CategoryByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	Products(ctx context.Context, filter database.ProductFilter) ([]models.Product, error)
	ProductByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	SearchProducts(ctx context.Context, term string) ([]models.Product, error)
	Bundles(ctx context.Context, filter database.BundleFilter) ([]models.Bundle, error)
	BundleByID(ctx context.Context, id primitive.ObjectID) (*models.Bundle, error)
	ResolveBundle(ctx context.Context, bundle *models.Bundle) error
}

// CatalogController handles category, product and bundle reads.
type CatalogController struct {
	Store CatalogStore
	Log   zerolog.Logger
}

// NewCatalogController creates a new CatalogController.
func NewCatalogController(store CatalogStore, log zerolog.Logger) *CatalogController {
	return &CatalogController{Store: store, Log: log}
}

// boolParam parses an optional boolean query parameter, keeping absence
// distinct from an explicit false.
func boolParam(r *http.Request, name string) *bool {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	b := v == "true"
	return &b
}

// GetCategories lists all categories sorted by sortOrder.
func (cc *CatalogController) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	categories, err := cc.Store.Categories(ctx)
	if err != nil {
		cc.Log.Error().Err(err).Msg("failed to fetch categories")
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    categories,
		"count":   len(categories),
	})
}

// GetCategoryByID returns a single category.
func (cc *CatalogController) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	category, err := cc.Store.CategoryByID(ctx, id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, category)
}

// GetProducts lists products narrowed by the optional query filters.
// Boolean filters are applied whenever the parameter is present, so
// isActive=false filters for inactive products rather than being ignored.
func (cc *CatalogController) GetProducts(w http.ResponseWriter, r *http.Request) {
	filter := database.ProductFilter{
		CategoryID: r.URL.Query().Get("categoryId"),
		IsNew:      boolParam(r, "isNew"),
		IsPopular:  boolParam(r, "isPopular"),
		IsActive:   boolParam(r, "isActive"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	products, err := cc.Store.Products(ctx, filter)
	if err != nil {
		cc.Log.Error().Err(err).Msg("failed to fetch products")
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    products,
		"count":   len(products),
		"filters": filter.Echo(),
	})
}

// GetProductByID returns a single product.
func (cc *CatalogController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	product, err := cc.Store.ProductByID(ctx, id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, product)
}

// SearchProducts runs the two-tier product search.
func (cc *CatalogController) SearchProducts(w http.ResponseWriter, r *http.Request) {
	term := mux.Vars(r)["term"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	products, err := cc.Store.SearchProducts(ctx, term)
	if err != nil {
		cc.Log.Error().Err(err).Str("term", term).Msg("failed to search products")
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"data":       products,
		"count":      len(products),
		"searchTerm": term,
	})
}

// GetBundles lists bundles narrowed by the optional query filters.
func (cc *CatalogController) GetBundles(w http.ResponseWriter, r *http.Request) {
	filter := database.BundleFilter{
		CategoryID: r.URL.Query().Get("categoryId"),
		IsPopular:  boolParam(r, "isPopular"),
		IsActive:   boolParam(r, "isActive"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	bundles, err := cc.Store.Bundles(ctx, filter)
	if err != nil {
		cc.Log.Error().Err(err).Msg("failed to fetch bundles")
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    bundles,
		"count":   len(bundles),
		"filters": filter.Echo(),
	})
}

// GetBundleByID returns a single active bundle with its items expanded
// into product snapshots and all identifiers flattened to strings.
func (cc *CatalogController) GetBundleByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid bundle ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bundle, err := cc.Store.BundleByID(ctx, id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	if err := cc.Store.ResolveBundle(ctx, bundle); err != nil {
		cc.Log.Error().Err(err).Str("bundle_id", id.Hex()).Msg("failed to resolve bundle")
		writeStoreError(w, err)
		return
	}

	bundle.Items = utils.NormalizeItems(bundle.Items)
	writeData(w, bundle)
}
