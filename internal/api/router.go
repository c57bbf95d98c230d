package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/quillhq/quill-console/internal/app"
	"github.com/quillhq/quill-console/internal/handlers"
	"github.com/quillhq/quill-console/internal/middleware"
	"github.com/quillhq/quill-console/internal/services"
)

// Services bundles the application services the router and the telemetry
// sampler share.
type Services struct {
	Connections *services.ConnectionService
	Storage     *services.StorageService
	Users       *services.UserService
	Widgets     *services.WidgetService
	Readings    *services.ReadingService
}

// BuildServices constructs every application service over one database handle.
func BuildServices(db *gorm.DB, prober services.Prober) (*Services, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle must be provided")
	}

	connections, err := services.NewConnectionService(db, prober)
	if err != nil {
		return nil, err
	}
	storage, err := services.NewStorageService(db, prober)
	if err != nil {
		return nil, err
	}
	users, err := services.NewUserService(db)
	if err != nil {
		return nil, err
	}
	widgets, err := services.NewWidgetService(db)
	if err != nil {
		return nil, err
	}
	readings, err := services.NewReadingService(db)
	if err != nil {
		return nil, err
	}

	return &Services{
		Connections: connections,
		Storage:     storage,
		Users:       users,
		Widgets:     widgets,
		Readings:    readings,
	}, nil
}

// NewRouter builds the Gin engine, wires middleware and registers all routes.
func NewRouter(cfg *app.Config, svcs *Services) (*gin.Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must be provided")
	}
	if svcs == nil {
		return nil, fmt.Errorf("services must be provided")
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	if cfg.Monitoring.Health.Enabled {
		r.GET("/health", handlers.Health())
	}
	if cfg.Monitoring.Prometheus.Enabled {
		endpoint := cfg.Monitoring.Prometheus.Endpoint
		if endpoint == "" {
			endpoint = "/metrics"
		}
		r.GET(endpoint, gin.WrapH(promhttp.Handler()))
	}

	api := r.Group("/api")

	registerCatalogRoutes(api, handlers.NewCatalogHandler())
	registerConnectionRoutes(api, handlers.NewConnectionHandler(svcs.Connections))
	registerStorageRoutes(api, handlers.NewStorageHandler(svcs.Storage))
	registerUserRoutes(api, handlers.NewUserHandler(svcs.Users))
	registerWidgetRoutes(api, handlers.NewWidgetHandler(svcs.Widgets))
	registerDataRoutes(api, handlers.NewReadingHandler(svcs.Readings))

	terminal := handlers.NewTerminalHandler(svcs.Connections, svcs.Readings, cfg.Telemetry.StreamInterval)
	r.GET("/ws/terminal/:id", terminal.Stream)

	r.NoRoute(middleware.NotFoundHandler)

	return r, nil
}
