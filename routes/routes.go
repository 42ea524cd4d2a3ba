// routes/routes.go
package routes

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"go-grocery/controllers"
	"go-grocery/middleware"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, catalogController *controllers.CatalogController, orderController *controllers.OrderController) {
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Grocery Store API is working!","timestamp":"` + time.Now().UTC().Format(time.RFC3339) + `"}`))
	}).Methods("GET")

	// Auth routes
	api.HandleFunc("/auth/register", userController.Register).Methods("POST")
	api.HandleFunc("/auth/login", userController.Login).Methods("POST")
	api.HandleFunc("/auth/phone/login", userController.PhoneLogin).Methods("POST")
	api.HandleFunc("/auth/reset/password", userController.ResetPassword).Methods("POST")
	api.HandleFunc("/auth/user/update", userController.UpdateProfile).Methods("POST")
	api.HandleFunc("/auth/userById", userController.GetUser).Methods("POST")

	// Catalog routes
	api.HandleFunc("/categories", catalogController.GetCategories).Methods("GET")
	api.HandleFunc("/categories/{id}", catalogController.GetCategoryByID).Methods("GET")
	api.HandleFunc("/products", catalogController.GetProducts).Methods("GET")
	api.HandleFunc("/products/search/{term}", catalogController.SearchProducts).Methods("GET")
	api.HandleFunc("/products/{id}", catalogController.GetProductByID).Methods("GET")
	api.HandleFunc("/bundles", catalogController.GetBundles).Methods("GET")
	api.HandleFunc("/bundles/{id}", catalogController.GetBundleByID).Methods("GET")

	// Order routes (authenticated)
	orders := api.PathPrefix("/orders").Subrouter()
	orders.Use(middleware.AuthMiddleware)
	orders.HandleFunc("", orderController.CreateOrder).Methods("POST")
	orders.HandleFunc("", orderController.GetOrders).Methods("GET")
	orders.HandleFunc("/number/{orderId}", orderController.GetOrderByNumber).Methods("GET")
	orders.HandleFunc("/{id}", orderController.GetOrderByID).Methods("GET")
	orders.HandleFunc("/{id}/status", orderController.UpdateOrderStatus).Methods("PUT")
}
