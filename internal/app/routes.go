package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Categories
	r.HandleFunc("/api/categories", deps.CategoryHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/categories", deps.CategoryHandler.Create).Methods("POST")
	r.HandleFunc("/api/categories/refresh", deps.CategoryHandler.Refresh).Methods("POST")
	r.HandleFunc("/api/categories/favorites", deps.CategoryHandler.GetFavorites).Methods("GET")
	r.HandleFunc("/api/categories/favorites/{id}", deps.CategoryHandler.ToggleFavorite).Methods("PUT")
	r.HandleFunc("/api/categories/{id}", deps.CategoryHandler.Rename).Methods("PUT")
	r.HandleFunc("/api/categories/{id}", deps.CategoryHandler.Delete).Methods("DELETE")

	// Expenses
	r.HandleFunc("/api/expenses", deps.ExpenseHandler.List).Methods("GET")
	r.HandleFunc("/api/expenses", deps.ExpenseHandler.Create).Methods("POST")
	r.HandleFunc("/api/expenses/refresh", deps.ExpenseHandler.Refresh).Methods("POST")
	r.HandleFunc("/api/expenses/{id}", deps.ExpenseHandler.Get).Methods("GET")
	r.HandleFunc("/api/expenses/{id}", deps.ExpenseHandler.Update).Methods("PUT")
	r.HandleFunc("/api/expenses/{id}", deps.ExpenseHandler.Delete).Methods("DELETE")

	// Dashboard
	r.HandleFunc("/api/dashboard/charts", deps.DashboardHandler.GetCharts).Methods("GET")
	r.HandleFunc("/api/dashboard/summary", deps.DashboardHandler.GetSummary).Methods("GET")

	// Search
	r.HandleFunc("/api/search", deps.SearchHandler.Find).Methods("GET")
}
