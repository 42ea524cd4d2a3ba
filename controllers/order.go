// controllers/order.go
package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-grocery/database"
	"go-grocery/middleware"
	"go-grocery/models"
	"go-grocery/utils"
)

// OrderStore is the slice of the document store the order controller needs.
type OrderStore interface {
	CreateOrder(ctx context.Context, doc bson.M) (bson.M, error)
	Orders(ctx context.Context, filter database.OrderFilter) ([]bson.M, error)
	OrderByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	OrderByNumber(ctx context.Context, orderNumber string) (bson.M, error)
	UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status int) error
	ResolveOrderItems(ctx context.Context, items []bson.M) error
	UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// OrderController handles order creation, reads and status updates.
type OrderController struct {
	Store OrderStore
	Email *utils.EmailService
	Log   zerolog.Logger
}

// NewOrderController creates a new OrderController.
func NewOrderController(store OrderStore, email *utils.EmailService, log zerolog.Logger) *OrderController {
	return &OrderController{Store: store, Email: email, Log: log}
}

// CreateOrder records an order for the authenticated user. Monetary
// totals are trusted verbatim; price computation happens upstream at
// checkout.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Items           []bson.M `json:"items" validate:"required,min=1"`
		TotalAmount     float64  `json:"totalAmount"`
		OriginalAmount  float64  `json:"originalAmount"`
		Savings         float64  `json:"savings"`
		PaymentMethod   string   `json:"paymentMethod" validate:"required"`
		DeliveryAddress bson.M   `json:"deliveryAddress"`
	}
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := oc.Store.CreateOrder(ctx, bson.M{
		"userId":          userID,
		"items":           req.Items,
		"totalAmount":     req.TotalAmount,
		"originalAmount":  req.OriginalAmount,
		"savings":         req.Savings,
		"paymentMethod":   req.PaymentMethod,
		"deliveryAddress": req.DeliveryAddress,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}

	oc.sendConfirmation(userID, order)

	items := database.OrderItems(order)
	if err := oc.Store.ResolveOrderItems(ctx, items); err != nil {
		oc.Log.Error().Err(err).Msg("failed to resolve order items")
		writeStoreError(w, err)
		return
	}
	order["items"] = items

	writeData(w, utils.NormalizeIDs(order))
}

// sendConfirmation emails the order confirmation asynchronously; a
// failure is logged and never fails the order.
func (oc *OrderController) sendConfirmation(userID primitive.ObjectID, order bson.M) {
	if oc.Email == nil {
		return
	}

	orderNumber, _ := order["orderId"].(string)
	totalAmount, _ := order["totalAmount"].(float64)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		user, err := oc.Store.UserByID(ctx, userID)
		if err != nil {
			oc.Log.Error().Err(err).Str("user_id", userID.Hex()).Msg("failed to load user for confirmation email")
			return
		}
		if err := oc.Email.SendOrderConfirmation(user.Email, user.Name, orderNumber, totalAmount); err != nil {
			oc.Log.Error().Err(err).Str("email", user.Email).Msg("failed to send confirmation email")
		}
	}()
}

// GetOrders lists orders newest-first, optionally narrowed by status.
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	var filter database.OrderFilter
	if v := r.URL.Query().Get("status"); v != "" {
		status, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid status filter")
			return
		}
		filter.Status = &status
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	orders, err := oc.Store.Orders(ctx, filter)
	if err != nil {
		oc.Log.Error().Err(err).Msg("failed to fetch orders")
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    utils.NormalizeIDs(orders),
		"count":   len(orders),
	})
}

// GetOrderByID returns an order by storage id, items fully resolved.
func (oc *OrderController) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := oc.Store.OrderByID(ctx, id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	oc.respondResolved(ctx, w, order)
}

// GetOrderByNumber returns an order by its human-facing order number,
// items fully resolved.
func (oc *OrderController) GetOrderByNumber(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := oc.Store.OrderByNumber(ctx, mux.Vars(r)["orderId"])
	if err != nil {
		writeStoreError(w, err)
		return
	}

	oc.respondResolved(ctx, w, order)
}

func (oc *OrderController) respondResolved(ctx context.Context, w http.ResponseWriter, order bson.M) {
	items := database.OrderItems(order)
	if err := oc.Store.ResolveOrderItems(ctx, items); err != nil {
		oc.Log.Error().Err(err).Msg("failed to resolve order items")
		writeStoreError(w, err)
		return
	}
	order["items"] = items

	writeData(w, utils.NormalizeIDs(order))
}

// UpdateOrderStatus overwrites the order status unconditionally.
func (oc *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req struct {
		Status *int `json:"status" validate:"required"`
	}
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := oc.Store.UpdateOrderStatus(ctx, id, *req.Status); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Order status updated successfully",
	})
}
