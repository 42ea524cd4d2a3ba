package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-grocery/models"
)

// ResolveBundle expands the bundle's items with productDetails snapshots.
// All referenced products are fetched in one batched call filtered to
// active products; an item whose product is missing or inactive gets
// productDetails = nil. Partial resolution is the expected outcome, never
// an error.
func (s *Store) ResolveBundle(ctx context.Context, bundle *models.Bundle) error {
	if len(bundle.Items) == 0 {
		return nil
	}

	products, err := s.activeProductsByID(ctx, collectProductIDs(bundle.Items))
	if err != nil {
		return err
	}
	attachProductDetails(bundle.Items, products)
	return nil
}

// ResolveOrderItems expands order line items into self-contained
// snapshots: productDetails for direct product references (batched), and
// bundleDetails for embedded bundle references, with the bundle's own
// items resolved one level deep the same dangling-tolerant way.
func (s *Store) ResolveOrderItems(ctx context.Context, items []bson.M) error {
	if len(items) == 0 {
		return nil
	}

	products, err := s.activeProductsByID(ctx, collectProductIDs(items))
	if err != nil {
		return err
	}
	attachProductDetails(items, products)

	for _, item := range items {
		bundleID, ok := asObjectID(item["bundleId"])
		if !ok {
			continue
		}

		bundle, err := s.BundleByID(ctx, bundleID)
		if err == ErrNotFound {
			item["bundleDetails"] = nil
			continue
		}
		if err != nil {
			return err
		}
		if err := s.ResolveBundle(ctx, bundle); err != nil {
			return err
		}
		item["bundleDetails"] = bundle
	}
	return nil
}

// activeProductsByID batch-fetches the given products, restricted to
// isActive = true.
func (s *Store) activeProductsByID(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := s.products().Find(ctx, bson.M{
		"_id":      bson.M{"$in": ids},
		"isActive": true,
	})
	if err != nil {
		return nil, wrapErr("failed to batch fetch products", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, wrapErr("failed to decode products", err)
	}
	return products, nil
}

// collectProductIDs gathers the product references from a line-item list.
// References read back from the store are ObjectIDs; references arriving
// in request payloads are hex strings. Both forms are accepted, anything
// else is skipped (and will resolve to nil details).
func collectProductIDs(items []bson.M) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(items))
	for _, item := range items {
		if id, ok := asObjectID(item["productId"]); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// attachProductDetails sets productDetails on every item carrying a
// product reference: the matched product, or nil when the reference
// dangles.
func attachProductDetails(items []bson.M, products []models.Product) {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID.Hex()] = p
	}

	for _, item := range items {
		id, ok := asObjectID(item["productId"])
		if !ok {
			continue
		}
		if product, found := byID[id.Hex()]; found {
			item["productDetails"] = product
		} else {
			item["productDetails"] = nil
		}
	}
}

func asObjectID(v interface{}) (primitive.ObjectID, bool) {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t, true
	case string:
		id, err := primitive.ObjectIDFromHex(t)
		if err != nil {
			return primitive.NilObjectID, false
		}
		return id, true
	default:
		return primitive.NilObjectID, false
	}
}
