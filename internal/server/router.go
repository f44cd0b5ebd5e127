package server

import (
	"net/http"

	"github.com/Abh004/electronics-retail-dbms/internal/handlers"
	"github.com/Abh004/electronics-retail-dbms/internal/httpx"
	"github.com/Abh004/electronics-retail-dbms/internal/logging"
	"github.com/Abh004/electronics-retail-dbms/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/gorm"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(conn *gorm.DB, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logging.RequestLogger(logging.New("http")))
	r.Use(withRecover)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Health endpoints
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := conn.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		crud(api, "/brands", handlers.NewBrandHandler(conn))
		crud(api, "/suppliers", handlers.NewSupplierHandler(conn))
		crud(api, "/products", handlers.NewProductHandler(conn))
		crud(api, "/customers", handlers.NewCustomerHandler(conn))
		crud(api, "/employees", handlers.NewEmployeeHandler(conn))

		oh := handlers.NewOrderHandler(conn, services.NewOrderService(conn))
		api.Route("/orders", func(rr chi.Router) {
			rr.Get("/", oh.List)
			rr.Post("/", oh.Create)
			rr.Get("/{id}", oh.Get)
			rr.Post("/{id}/payments", oh.CreatePayment)
		})

		api.Get("/dashboard/stats", handlers.NewDashboardHandler(conn).Stats)

		api.Get("/functions/customer-spent/{id}", oh.CustomerSpent)
		api.Get("/functions/order-balance/{id}", oh.OrderBalance)
	})

	return r
}

// crudHandler is the per-entity handler surface mounted by crud.
type crudHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

func crud(api chi.Router, pattern string, h crudHandler) {
	api.Route(pattern, func(rr chi.Router) {
		rr.Get("/", h.List)
		rr.Post("/", h.Create)
		rr.Get("/{id}", h.Get)
		rr.Put("/{id}", h.Update)
		rr.Delete("/{id}", h.Delete)
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logging.FromCtx(r.Context()).Error("panic recovered", "panic", rec)
				httpx.JSONError(w, http.StatusInternalServerError, "internal error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
