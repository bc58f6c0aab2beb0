// Package booking собирает приложение сервиса бронирования и его маршруты.
package booking

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	coursedates "github.com/linguaplay/booking/internal/http/handlers/course/dates"
	courselist "github.com/linguaplay/booking/internal/http/handlers/course/list"
	courseread "github.com/linguaplay/booking/internal/http/handlers/course/read"
	coursetimes "github.com/linguaplay/booking/internal/http/handlers/course/times"
	"github.com/linguaplay/booking/internal/http/handlers/health"
	ordercreate "github.com/linguaplay/booking/internal/http/handlers/order/create"
	orderlist "github.com/linguaplay/booking/internal/http/handlers/order/list"
	orderquote "github.com/linguaplay/booking/internal/http/handlers/order/quote"
	orderread "github.com/linguaplay/booking/internal/http/handlers/order/read"
	orderremove "github.com/linguaplay/booking/internal/http/handlers/order/remove"
	orderupdate "github.com/linguaplay/booking/internal/http/handlers/order/update"
	tutorlist "github.com/linguaplay/booking/internal/http/handlers/tutor/list"
	tutorread "github.com/linguaplay/booking/internal/http/handlers/tutor/read"
	venuelist "github.com/linguaplay/booking/internal/http/handlers/venue/list"
	"github.com/linguaplay/booking/internal/http/middlewarectx"
	catalogservice "github.com/linguaplay/booking/internal/services/catalog"
	orderservice "github.com/linguaplay/booking/internal/services/order"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, catalogService *catalogservice.Service, orderService *orderservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))

		r.Get("/health", health.New(logger).ServeHTTP)

		r.Get("/courses", courselist.New(logger, catalogService).ServeHTTP)
		r.Get("/courses/{id}", courseread.New(logger, catalogService).ServeHTTP)
		r.Get("/courses/{id}/dates", coursedates.New(logger, orderService).ServeHTTP)
		r.Get("/courses/{id}/times", coursetimes.New(logger, orderService).ServeHTTP)

		r.Get("/tutors", tutorlist.New(logger, catalogService).ServeHTTP)
		r.Get("/tutors/{id}", tutorread.New(logger, catalogService).ServeHTTP)

		r.Post("/orders/quote", orderquote.New(logger, orderService).ServeHTTP)
		r.Get("/orders", orderlist.New(logger, orderService).ServeHTTP)
		r.Post("/orders", ordercreate.New(logger, orderService).ServeHTTP)
		r.Get("/orders/{id}", orderread.New(logger, orderService).ServeHTTP)
		r.Put("/orders/{id}", orderupdate.New(logger, orderService).ServeHTTP)
		r.Delete("/orders/{id}", orderremove.New(logger, orderService).ServeHTTP)

		r.Get("/venues", venuelist.New(logger).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
