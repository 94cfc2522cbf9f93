package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/zionbm/zion/internal/apperr"
	"github.com/zionbm/zion/internal/config"
	"github.com/zionbm/zion/internal/http/apierr"
	"github.com/zionbm/zion/internal/http/metric"
	"github.com/zionbm/zion/internal/http/middleware"
	"github.com/zionbm/zion/internal/service"
	"github.com/zionbm/zion/pkg/validator"
)

var tracer = otel.Tracer("internal/http")

// Service is the HTTP presentation shell. It collects input, renders output
// and holds no business logic.
type Service struct {
	cfg      config.HTTP
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metric.Metrics
	validate validator.Validator

	dashboardSvc service.DashboardService
	customerSvc  service.CustomerService
	supplierSvc  service.SupplierService
	categorySvc  service.CategoryService
	productSvc   service.ProductService
	inventorySvc service.InventoryService
	orderSvc     service.OrderService
	financeSvc   service.FinanceService
}

type CleanupFunc func(ctx context.Context) error

type Services struct {
	Dashboard service.DashboardService
	Customer  service.CustomerService
	Supplier  service.SupplierService
	Category  service.CategoryService
	Product   service.ProductService
	Inventory service.InventoryService
	Order     service.OrderService
	Finance   service.FinanceService
}

func New(
	cfg config.HTTP,
	log *slog.Logger,
	registry *prometheus.Registry,
	validate validator.Validator,
	svcs Services,
) *Service {
	return &Service{
		cfg:          cfg,
		logger:       log.With(slog.String("service", "http")),
		registry:     registry,
		metrics:      metric.New(registry),
		validate:     validate,
		dashboardSvc: svcs.Dashboard,
		customerSvc:  svcs.Customer,
		supplierSvc:  svcs.Supplier,
		categorySvc:  svcs.Category,
		productSvc:   svcs.Product,
		inventorySvc: svcs.Inventory,
		orderSvc:     svcs.Order,
		financeSvc:   svcs.Finance,
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)
	s.RegisterHandlers(r)

	return s.RunWithServer(ctx, r)
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	r.Get("/", s.handleDashboard)

	r.Route("/customers", newCustomerHandler(s).register)
	r.Route("/suppliers", newSupplierHandler(s).register)
	r.Route("/categories", newCategoryHandler(s).register)
	r.Route("/products", newProductHandler(s).register)
	r.Route("/orders", newOrderHandler(s).register)
	r.Route("/transactions", newTransactionHandler(s).register)

	r.Get("/inventory/report", s.handleInventoryReport)

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))
}

func (s *Service) handleDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := s.dashboardSvc.Stats(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, stats)
}

func (s *Service) handleInventoryReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.inventorySvc.Report(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, report)
}

func (s *Service) respondJSON(w http.ResponseWriter, r *http.Request, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding response", slog.Any("error", err))
	}
}

func (s *Service) respondError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	s.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding error response",
			slog.Any("error", err))
	}
}

// idParam parses the {id} path segment.
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, apperr.ValidationErr.WrapParent(fmt.Errorf("parse id path param: %w", err))
	}
	return id, nil
}

// decode unmarshals and validates a JSON request body.
func decode[T any](s *Service, r *http.Request) (T, error) {
	var body T
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return body, apperr.ValidationErr.WrapParent(fmt.Errorf("decode request body: %w", err))
	}
	if err := s.validate.Validate(body); err != nil {
		return body, err
	}
	return body, nil
}
