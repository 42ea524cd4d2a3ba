package database

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-grocery/models"
)

// OrderFilter narrows an order listing.
type OrderFilter struct {
	Status *int
}

func (f OrderFilter) query() bson.M {
	q := bson.M{}
	if f.Status != nil {
		q["status"] = *f.Status
	}
	return q
}

// newOrderNumber generates the human-facing order identifier: a 9-digit
// numeric string in [100000000, 999999999]. Display grade only; collisions
// are possible and not handled.
func newOrderNumber() string {
	return fmt.Sprintf("%d", 100000000+rand.Intn(900000000))
}

// CreateOrder records an order. The caller-supplied document is trusted
// verbatim (totals included; price computation happens upstream). The
// store assigns the display order number, the confirmed status and
// identical creation/confirmation timestamps, then returns the stored
// document.
func (s *Store) CreateOrder(ctx context.Context, doc bson.M) (bson.M, error) {
	if len(OrderItems(doc)) == 0 {
		return nil, ErrInvalidInput
	}

	now := time.Now().UTC()
	doc["orderId"] = newOrderNumber()
	doc["status"] = int(models.OrderStatusConfirmed)
	doc["createdAt"] = now
	doc["confirmedAt"] = now

	result, err := s.orders().InsertOne(ctx, doc)
	if err != nil {
		return nil, wrapErr("failed to insert order", err)
	}
	doc["_id"] = result.InsertedID

	return doc, nil
}

// Orders lists orders newest-first (createdAt descending), optionally
// narrowed by status. The sort is explicit so the listing stays stable
// between calls.
func (s *Store) Orders(ctx context.Context, filter OrderFilter) ([]bson.M, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.orders().Find(ctx, filter.query(), opts)
	if err != nil {
		return nil, wrapErr("failed to list orders", err)
	}
	defer cursor.Close(ctx)

	orders := []bson.M{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, wrapErr("failed to decode orders", err)
	}
	return orders, nil
}

// OrderByID returns an order by storage id or ErrNotFound.
func (s *Store) OrderByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	return s.findOrder(ctx, bson.M{"_id": id})
}

// OrderByNumber returns an order by its human-facing order number or
// ErrNotFound. Both keys resolve to the same record when both exist.
func (s *Store) OrderByNumber(ctx context.Context, orderNumber string) (bson.M, error) {
	return s.findOrder(ctx, bson.M{"orderId": orderNumber})
}

func (s *Store) findOrder(ctx context.Context, filter bson.M) (bson.M, error) {
	var order bson.M
	err := s.orders().FindOne(ctx, filter).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, wrapErr("failed to find order", err)
	}
	return order, nil
}

// OrderItems extracts the line-item list from an order document. Items
// decoded from the store arrive as bson.A; items decoded from a request
// body arrive as []interface{} or []bson.M. The returned maps alias the
// originals, so resolution mutates the document; callers still reassign
// doc["items"] to drop any non-document entries.
func OrderItems(doc bson.M) []bson.M {
	switch items := doc["items"].(type) {
	case []bson.M:
		return items
	case bson.A:
		return itemMaps(items)
	case []interface{}:
		return itemMaps(items)
	default:
		return nil
	}
}

func itemMaps(items []interface{}) []bson.M {
	out := make([]bson.M, 0, len(items))
	for _, v := range items {
		switch m := v.(type) {
		case bson.M:
			out = append(out, m)
		case map[string]interface{}:
			out = append(out, bson.M(m))
		}
	}
	return out
}

// UpdateOrderStatus overwrites the status field unconditionally. No
// transition validation and no audit of the prior value.
func (s *Store) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status int) error {
	result, err := s.orders().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return wrapErr("failed to update order status", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
