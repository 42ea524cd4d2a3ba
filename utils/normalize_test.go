package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeIDs_NestedThreeLevels(t *testing.T) {
	orderID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	bundleID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	order := bson.M{
		"_id":     orderID,
		"userId":  userID,
		"orderId": "123456789",
		"items": bson.A{
			bson.M{
				"bundleId": bundleID,
				"quantity": 1,
				"bundleDetails": bson.M{
					"_id": bundleID,
					"items": bson.A{
						bson.M{
							"productId": productID,
							"productDetails": bson.M{
								"_id":  productID,
								"name": "Almond Milk",
							},
						},
					},
				},
			},
		},
	}

	result := NormalizeIDs(order).(bson.M)

	assert.Equal(t, orderID.Hex(), result["_id"])
	assert.Equal(t, userID.Hex(), result["userId"])
	assert.Equal(t, "123456789", result["orderId"])

	items := result["items"].(bson.A)
	require.Len(t, items, 1)
	item := items[0].(bson.M)
	assert.Equal(t, bundleID.Hex(), item["bundleId"])
	assert.Equal(t, 1, item["quantity"])

	bundle := item["bundleDetails"].(bson.M)
	assert.Equal(t, bundleID.Hex(), bundle["_id"])

	bundleItems := bundle["items"].(bson.A)
	require.Len(t, bundleItems, 1)
	bundleItem := bundleItems[0].(bson.M)
	assert.Equal(t, productID.Hex(), bundleItem["productId"])

	product := bundleItem["productDetails"].(bson.M)
	assert.Equal(t, productID.Hex(), product["_id"])
	assert.Equal(t, "Almond Milk", product["name"])
}

func TestNormalizeIDs_NilAndMissingPassThrough(t *testing.T) {
	doc := bson.M{
		"productDetails": nil,
		"name":           "Bananas",
		"count":          3,
	}

	result := NormalizeIDs(doc).(bson.M)

	assert.Nil(t, result["productDetails"])
	assert.Equal(t, "Bananas", result["name"])
	assert.Equal(t, 3, result["count"])
	assert.Nil(t, NormalizeIDs(nil))
}

func TestNormalizeIDs_PlainJSONShapes(t *testing.T) {
	id := primitive.NewObjectID()
	doc := map[string]interface{}{
		"items": []interface{}{
			map[string]interface{}{"productId": id},
		},
	}

	result := NormalizeIDs(doc).(map[string]interface{})
	items := result["items"].([]interface{})
	item := items[0].(map[string]interface{})
	assert.Equal(t, id.Hex(), item["productId"])
}

func TestNormalizeIDs_BsonD(t *testing.T) {
	id := primitive.NewObjectID()
	doc := bson.D{{Key: "_id", Value: id}, {Key: "name", Value: "Oats"}}

	result := NormalizeIDs(doc).(bson.M)
	assert.Equal(t, id.Hex(), result["_id"])
	assert.Equal(t, "Oats", result["name"])
}

func TestNormalizeItems(t *testing.T) {
	id := primitive.NewObjectID()
	items := []bson.M{{"productId": id}}

	normalized := NormalizeItems(items)
	assert.Equal(t, id.Hex(), normalized[0]["productId"])
}
