package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/gittydia/IMS-BAO/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Post("/auth/register", handlers.RegisterHandler)
		r.Post("/auth/login", handlers.LoginHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Post("/auth/logout", handlers.LogoutHandler)
		r.Get("/auth/me", handlers.MeHandler)

		r.Post("/products", handlers.CreateProductHandler)
		r.Get("/products", handlers.GetProductsHandler)
		r.Get("/products/{id}", handlers.GetProductByIDHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)
		r.Post("/products/{id}/adjust", handlers.AdjustQuantityHandler)

		r.Post("/orders", handlers.CreateOrderHandler)
		r.Get("/orders", handlers.GetOrdersHandler)
		r.Get("/orders/{id}", handlers.GetOrderByIDHandler)
		r.Put("/orders/{id}", handlers.UpdateOrderHandler)
		r.Delete("/orders/{id}", handlers.DeleteOrderHandler)

		r.Post("/students", handlers.CreateStudentHandler)
		r.Get("/students", handlers.GetStudentsHandler)
		r.Get("/students/{id}", handlers.GetStudentByIDHandler)
		r.Put("/students/{id}", handlers.UpdateStudentHandler)
		r.Delete("/students/{id}", handlers.DeleteStudentHandler)

		r.Get("/activity", handlers.GetActivityHandler)
		r.Get("/metrics", handlers.GetMetricsHandler)
	})

	return r
}
