package database

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNewOrderNumber(t *testing.T) {
	for i := 0; i < 1000; i++ {
		number := newOrderNumber()
		require.Len(t, number, 9)

		n, err := strconv.Atoi(number)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000000)
		assert.LessOrEqual(t, n, 999999999)
	}
}

func TestOrderFilterQuery(t *testing.T) {
	assert.Equal(t, bson.M{}, OrderFilter{}.query())

	confirmed := 0
	assert.Equal(t, bson.M{"status": 0}, OrderFilter{Status: &confirmed}.query())

	shipped := 2
	assert.Equal(t, bson.M{"status": 2}, OrderFilter{Status: &shipped}.query())
}

func TestOrderItems(t *testing.T) {
	fromStore := bson.M{"items": bson.A{bson.M{"productId": "a"}, "junk"}}
	items := OrderItems(fromStore)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0]["productId"])

	fromRequest := bson.M{"items": []interface{}{map[string]interface{}{"quantity": 2}}}
	items = OrderItems(fromRequest)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0]["quantity"])

	typed := bson.M{"items": []bson.M{{"quantity": 1}}}
	assert.Len(t, OrderItems(typed), 1)

	assert.Nil(t, OrderItems(bson.M{}))
	assert.Nil(t, OrderItems(bson.M{"items": "not-a-list"}))
}

func TestOrderItems_MutationReachesDocument(t *testing.T) {
	doc := bson.M{"items": bson.A{bson.M{"productId": "a"}}}

	items := OrderItems(doc)
	items[0]["productDetails"] = nil

	original := doc["items"].(bson.A)[0].(bson.M)
	_, present := original["productDetails"]
	assert.True(t, present)
}
