package http

import (
	"net/http"

	"turnos-payment-register/internal/delivery/http/handler"
	"turnos-payment-register/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router         *mux.Router
	paymentHandler *handler.PaymentRegisterHandler
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(
	paymentHandler *handler.PaymentRegisterHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		paymentHandler: paymentHandler,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Payment register routes (authenticated)
	payments := api.PathPrefix("/payments").Subrouter()
	payments.Use(r.authMiddleware.Authenticate)
	payments.HandleFunc("/turns", r.paymentHandler.GetPaymentsPage).Methods(http.MethodGet)
	payments.HandleFunc("/health-plans", r.paymentHandler.GetHealthPlans).Methods(http.MethodGet)
	payments.HandleFunc("/{turnId}", r.paymentHandler.GetPayment).Methods(http.MethodGet)
	payments.HandleFunc("/{turnId}", r.paymentHandler.SavePayment).Methods(http.MethodPut)
	payments.HandleFunc("/{turnId}/cancel", r.paymentHandler.CancelPayment).Methods(http.MethodPatch)

	logout := api.PathPrefix("/logout").Subrouter()
	logout.Use(r.authMiddleware.Authenticate)
	logout.HandleFunc("", r.paymentHandler.Logout).Methods(http.MethodPost)

	// CORS applies to everything
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
