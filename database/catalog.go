package database

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-grocery/models"
)

// ProductFilter narrows a product listing. Boolean fields are pointers so
// an explicit false stays distinct from "not filtered".
type ProductFilter struct {
	CategoryID string
	IsNew      *bool
	IsPopular  *bool
	IsActive   *bool
}

func (f ProductFilter) query() bson.M {
	q := bson.M{}
	if f.CategoryID != "" {
		q["categoryId"] = f.CategoryID
	}
	if f.IsNew != nil {
		q["isNew"] = *f.IsNew
	}
	if f.IsPopular != nil {
		q["isPopular"] = *f.IsPopular
	}
	if f.IsActive != nil {
		q["isActive"] = *f.IsActive
	}
	return q
}

// Echo reports the explicitly-set filter fields so listings can echo the
// filters they applied.
func (f ProductFilter) Echo() bson.M { return f.query() }

// BundleFilter narrows a bundle listing with the same presence semantics
// as ProductFilter.
type BundleFilter struct {
	CategoryID string
	IsPopular  *bool
	IsActive   *bool
}

func (f BundleFilter) query() bson.M {
	q := bson.M{}
	if f.CategoryID != "" {
		q["categoryId"] = f.CategoryID
	}
	if f.IsPopular != nil {
		q["isPopular"] = *f.IsPopular
	}
	if f.IsActive != nil {
		q["isActive"] = *f.IsActive
	}
	return q
}

// Echo reports the explicitly-set filter fields so listings can echo the
// filters they applied.
func (f BundleFilter) Echo() bson.M { return f.query() }

// Categories lists all categories sorted by sortOrder ascending.
func (s *Store) Categories(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.categories().Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}}))
	if err != nil {
		return nil, wrapErr("failed to list categories", err)
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, wrapErr("failed to decode categories", err)
	}
	return categories, nil
}

// CategoryByID returns a single category or ErrNotFound.
func (s *Store) CategoryByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var category models.Category
	err := s.categories().FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, wrapErr("failed to find category", err)
	}
	return &category, nil
}

// Products lists products matching every explicitly-set filter field.
func (s *Store) Products(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	cursor, err := s.products().Find(ctx, filter.query())
	if err != nil {
		return nil, wrapErr("failed to list products", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, wrapErr("failed to decode products", err)
	}
	return products, nil
}

// ProductByID returns a single product or ErrNotFound.
func (s *Store) ProductByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := s.products().FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, wrapErr("failed to find product", err)
	}
	return &product, nil
}

// SearchProducts runs the two-tier product search: an indexed full-text
// match ordered by relevance wins outright when it returns rows; an empty
// or failed text search falls back to a case-insensitive substring match
// on the name field in natural order. The tiers are never combined.
func (s *Store) SearchProducts(ctx context.Context, term string) ([]models.Product, error) {
	return searchWithFallback(ctx,
		func(ctx context.Context) ([]models.Product, error) {
			return s.textSearch(ctx, term)
		},
		func(ctx context.Context) ([]models.Product, error) {
			return s.regexSearch(ctx, term)
		},
		s.log,
	)
}

// searchFunc is one tier of the search strategy.
type searchFunc func(ctx context.Context) ([]models.Product, error)

// searchWithFallback applies the documented precedence rule: a non-empty
// primary result short-circuits; a primary error or empty result selects
// the fallback. The fallback guarantees availability when the text index
// is missing or the query syntax is rejected.
func searchWithFallback(ctx context.Context, primary, fallback searchFunc, log zerolog.Logger) ([]models.Product, error) {
	results, err := primary(ctx)
	if err == nil && len(results) > 0 {
		return results, nil
	}
	if err != nil {
		log.Warn().Err(err).Msg("text search failed, falling back to regex search")
	}
	return fallback(ctx)
}

func (s *Store) textSearch(ctx context.Context, term string) ([]models.Product, error) {
	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.M{"score": bson.M{"$meta": "textScore"}})

	cursor, err := s.products().Find(ctx, bson.M{"$text": bson.M{"$search": term}}, opts)
	if err != nil {
		return nil, wrapErr("text search failed", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, wrapErr("failed to decode text search results", err)
	}
	return products, nil
}

func (s *Store) regexSearch(ctx context.Context, term string) ([]models.Product, error) {
	filter := bson.M{"name": bson.M{"$regex": primitive.Regex{Pattern: term, Options: "i"}}}

	cursor, err := s.products().Find(ctx, filter)
	if err != nil {
		return nil, wrapErr("regex search failed", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, wrapErr("failed to decode regex search results", err)
	}
	return products, nil
}

// Bundles lists bundles matching every explicitly-set filter field.
func (s *Store) Bundles(ctx context.Context, filter BundleFilter) ([]models.Bundle, error) {
	cursor, err := s.bundles().Find(ctx, filter.query())
	if err != nil {
		return nil, wrapErr("failed to list bundles", err)
	}
	defer cursor.Close(ctx)

	bundles := []models.Bundle{}
	if err := cursor.All(ctx, &bundles); err != nil {
		return nil, wrapErr("failed to decode bundles", err)
	}
	return bundles, nil
}

// BundleByID returns a single active bundle or ErrNotFound.
func (s *Store) BundleByID(ctx context.Context, id primitive.ObjectID) (*models.Bundle, error) {
	var bundle models.Bundle
	err := s.bundles().FindOne(ctx, bson.M{"_id": id, "isActive": true}).Decode(&bundle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, wrapErr("failed to find bundle", err)
	}
	return &bundle, nil
}
