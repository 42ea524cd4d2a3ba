package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-grocery/database"
	"go-grocery/middleware"
	"go-grocery/models"
	"go-grocery/utils"
)

type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) CreateOrder(ctx context.Context, doc bson.M) (bson.M, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *MockOrderStore) Orders(ctx context.Context, filter database.OrderFilter) ([]bson.M, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.M), args.Error(1)
}

func (m *MockOrderStore) OrderByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *MockOrderStore) OrderByNumber(ctx context.Context, orderNumber string) (bson.M, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *MockOrderStore) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status int) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderStore) ResolveOrderItems(ctx context.Context, items []bson.M) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockOrderStore) UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func authedRequest(t *testing.T, method, path string, body interface{}, userID primitive.ObjectID) *http.Request {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	claims := &utils.Claims{UserID: userID.Hex()}
	return req.WithContext(context.WithValue(req.Context(), middleware.UserContextKey, claims))
}

func TestCreateOrder_StampsIdentityAndStatus(t *testing.T) {
	store := new(MockOrderStore)
	oc := NewOrderController(store, nil, zerolog.Nop())

	userID := primitive.NewObjectID()
	orderID := primitive.NewObjectID()

	store.On("CreateOrder", mock.Anything, mock.AnythingOfType("primitive.M")).
		Return(bson.M{
			"_id":           orderID,
			"userId":        userID,
			"orderId":       "123456789",
			"status":        0,
			"totalAmount":   12.5,
			"paymentMethod": "card",
			"items":         []bson.M{{"productId": primitive.NewObjectID().Hex(), "quantity": 2}},
		}, nil).
		Run(func(args mock.Arguments) {
			doc := args.Get(1).(bson.M)
			assert.Equal(t, userID, doc["userId"])
			assert.Equal(t, 12.5, doc["totalAmount"])
		})
	store.On("ResolveOrderItems", mock.Anything, mock.Anything).Return(nil)

	req := authedRequest(t, http.MethodPost, "/api/orders", map[string]interface{}{
		"items":         []map[string]interface{}{{"productId": primitive.NewObjectID().Hex(), "quantity": 2}},
		"totalAmount":   12.5,
		"paymentMethod": "card",
	}, userID)
	rec := httptest.NewRecorder()
	oc.CreateOrder(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})

	assert.Equal(t, orderID.Hex(), data["_id"])
	assert.Equal(t, userID.Hex(), data["userId"])
	assert.Equal(t, "123456789", data["orderId"])
	assert.Equal(t, float64(0), data["status"])

	store.AssertExpectations(t)
}

func TestCreateOrder_EmptyItemsRejected(t *testing.T) {
	store := new(MockOrderStore)
	oc := NewOrderController(store, nil, zerolog.Nop())

	req := authedRequest(t, http.MethodPost, "/api/orders", map[string]interface{}{
		"items":         []map[string]interface{}{},
		"paymentMethod": "card",
	}, primitive.NewObjectID())
	rec := httptest.NewRecorder()
	oc.CreateOrder(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	store.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreateOrder_MissingClaims(t *testing.T) {
	store := new(MockOrderStore)
	oc := NewOrderController(store, nil, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte("{}")))
	rec := httptest.NewRecorder()
	oc.CreateOrder(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetOrders_StatusFilterParsed(t *testing.T) {
	store := new(MockOrderStore)
	oc := NewOrderController(store, nil, zerolog.Nop())

	confirmed := 0
	store.On("Orders", mock.Anything, database.OrderFilter{Status: &confirmed}).
		Return([]bson.M{{"orderId": "123456789"}}, nil)

	req := authedRequest(t, http.MethodGet, "/api/orders?status=0", nil, primitive.NewObjectID())
	rec := httptest.NewRecorder()
	oc.GetOrders(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	store.AssertExpectations(t)
}

func TestGetOrderByID_ResolvesItems(t *testing.T) {
	store := new(MockOrderStore)
	oc := NewOrderController(store, nil, zerolog.Nop())

	id := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	order := bson.M{
		"_id":     id,
		"orderId": "987654321",
		"items":   bson.A{bson.M{"productId": productID, "quantity": 1}},
	}

	store.On("OrderByID", mock.Anything, id).Return(order, nil)
	store.On("ResolveOrderItems", mock.Anything, mock.Anything).Return(nil).
		Run(func(args mock.Arguments) {
			items := args.Get(1).([]bson.M)
			require.Len(t, items, 1)
			items[0]["productDetails"] = nil
		})

	req := mux.SetURLVars(
		authedRequest(t, http.MethodGet, "/api/orders/"+id.Hex(), nil, primitive.NewObjectID()),
		map[string]string{"id": id.Hex()})
	rec := httptest.NewRecorder()
	oc.GetOrderByID(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeEnvelope(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "987654321", data["orderId"])

	items := data["items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, productID.Hex(), item["productId"])
	assert.Nil(t, item["productDetails"])
}

func TestGetOrderByNumber_NotFound(t *testing.T) {
	store := new(MockOrderStore)
	oc := NewOrderController(store, nil, zerolog.Nop())

	store.On("OrderByNumber", mock.Anything, "000000000").Return(nil, database.ErrNotFound)

	req := mux.SetURLVars(
		authedRequest(t, http.MethodGet, "/api/orders/number/000000000", nil, primitive.NewObjectID()),
		map[string]string{"orderId": "000000000"})
	rec := httptest.NewRecorder()
	oc.GetOrderByNumber(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateOrderStatus_OverwritesUnconditionally(t *testing.T) {
	store := new(MockOrderStore)
	oc := NewOrderController(store, nil, zerolog.Nop())

	id := primitive.NewObjectID()
	store.On("UpdateOrderStatus", mock.Anything, id, 5).Return(nil)

	req := mux.SetURLVars(
		authedRequest(t, http.MethodPut, "/api/orders/"+id.Hex()+"/status",
			map[string]int{"status": 5}, primitive.NewObjectID()),
		map[string]string{"id": id.Hex()})
	rec := httptest.NewRecorder()
	oc.UpdateOrderStatus(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	store.AssertExpectations(t)
}

func TestUpdateOrderStatus_ZeroStatusAccepted(t *testing.T) {
	store := new(MockOrderStore)
	oc := NewOrderController(store, nil, zerolog.Nop())

	id := primitive.NewObjectID()
	store.On("UpdateOrderStatus", mock.Anything, id, 0).Return(nil)

	req := mux.SetURLVars(
		authedRequest(t, http.MethodPut, "/api/orders/"+id.Hex()+"/status",
			map[string]int{"status": 0}, primitive.NewObjectID()),
		map[string]string{"id": id.Hex()})
	rec := httptest.NewRecorder()
	oc.UpdateOrderStatus(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	store.AssertExpectations(t)
}

func TestUpdateOrderStatus_NotFound(t *testing.T) {
	store := new(MockOrderStore)
	oc := NewOrderController(store, nil, zerolog.Nop())

	id := primitive.NewObjectID()
	store.On("UpdateOrderStatus", mock.Anything, id, 2).Return(database.ErrNotFound)

	req := mux.SetURLVars(
		authedRequest(t, http.MethodPut, "/api/orders/"+id.Hex()+"/status",
			map[string]int{"status": 2}, primitive.NewObjectID()),
		map[string]string{"id": id.Hex()})
	rec := httptest.NewRecorder()
	oc.UpdateOrderStatus(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
