package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/fevziatanoglu/cafe-management/docs"
	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"github.com/fevziatanoglu/cafe-management/internal/ratelimiter"
	"github.com/fevziatanoglu/cafe-management/internal/service"
	mongostore "github.com/fevziatanoglu/cafe-management/internal/store/mongo"
)

type application struct {
	config         config
	logger         *zap.SugaredLogger
	storage        *mongostore.Storage
	authService    *service.AuthService
	orderService   *service.OrderService
	tableService   *service.TableService
	productService *service.ProductService
	staffService   *service.StaffService
	cafeService    *service.CafeService
	reportService  *service.ReportService
	importService  *service.ImportService
	imageService   *service.ImageService
	rateLimiter    ratelimiter.Limiter
}

type config struct {
	addr        string
	env         string
	apiURL      string
	mongo       mongoConfig
	rabbit      rabbitConfig
	auth        authConfig
	rateLimiter ratelimiter.Config
}

type mongoConfig struct {
	uri    string
	dbName string
}

type rabbitConfig struct {
	url string
}

type authConfig struct {
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(app.RateLimiterMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL(fmt.Sprintf("%s/api/v1/swagger/doc.json", app.config.apiURL)),
		))

		// public, no token required
		r.Get("/menu/{slug}", app.getPublicMenuHandler)
		r.Get("/images/{id}", app.getImageHandler)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", app.registerHandler)
			r.Post("/login", app.loginHandler)
			r.Post("/refresh", app.refreshHandler)
			r.Post("/logout", app.logoutHandler)
		})

		r.Group(func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", app.listOrdersHandler)
				r.Post("/", app.createOrderHandler)
				r.Get("/pending", app.listPendingOrdersHandler)
				r.Get("/paid", app.listPaidOrdersHandler)
				r.Get("/{id}", app.getOrderHandler)
				r.Put("/{id}", app.updateOrderHandler)
				r.Patch("/{id}/status", app.updateOrderStatusHandler)
				r.Delete("/{id}", app.deleteOrderHandler)
			})

			r.Route("/tables", func(r chi.Router) {
				r.Get("/", app.listTablesHandler)
				r.Post("/", app.createTableHandler)
				r.Get("/with-orders", app.listTablesWithOrdersHandler)
				r.Get("/{id}", app.getTableHandler)
				r.Put("/{id}", app.updateTableHandler)
				r.Patch("/{id}/status", app.updateTableStatusHandler)
				r.Delete("/{id}", app.deleteTableHandler)
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", app.listProductsHandler)
				r.Post("/", app.createProductHandler)
				r.Get("/{id}", app.getProductHandler)
				r.Put("/{id}", app.updateProductHandler)
				r.Patch("/{id}/availability", app.setProductAvailabilityHandler)
				r.Delete("/{id}", app.deleteProductHandler)
			})

			r.Route("/staff", func(r chi.Router) {
				r.Use(app.RequireRole(domain.RoleAdmin))
				r.Get("/", app.listStaffHandler)
				r.Post("/", app.createStaffHandler)
				r.Get("/{id}", app.getStaffHandler)
				r.Put("/{id}", app.updateStaffHandler)
				r.Delete("/{id}", app.deleteStaffHandler)
			})

			r.Route("/cafes", func(r chi.Router) {
				r.Use(app.RequireRole(domain.RoleAdmin))
				r.Get("/", app.getCafeHandler)
				r.Post("/", app.createCafeHandler)
				r.Put("/{id}", app.updateCafeHandler)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(app.RequireRole(domain.RoleAdmin))
				r.Get("/today", app.todayReportHandler)
				r.Get("/weekly", app.weeklyReportHandler)
				r.Get("/export", app.exportReportHandler)
			})

			r.Route("/menus", func(r chi.Router) {
				r.Use(app.RequireRole(domain.RoleAdmin))
				r.Post("/import", app.createImportTaskHandler)
				r.Get("/import/{id}", app.getImportTaskHandler)
			})
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
