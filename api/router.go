package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/Domenick1991/airports/config"
	"github.com/Domenick1991/airports/internal/auth"
	"github.com/Domenick1991/airports/internal/pkg/logger"
	"github.com/Domenick1991/airports/internal/service/flights"
	"github.com/Domenick1991/airports/internal/service/orders"
	"github.com/Domenick1991/airports/internal/service/reference"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	httpSwagger "github.com/swaggo/http-swagger"
)

// BasePath is the prefix of every resource.
const BasePath = "/api/airports"

const openAPIPath = "/openapi/airports.swagger.json"

type Dependencies struct {
	HTTP          config.HTTPConfig
	Pagination    config.PaginationConfig
	Media         config.MediaConfig
	Logger        logger.Logger
	Authenticator *auth.Authenticator
	Reference     reference.ReferenceUseCase
	Flights       flights.FlightUseCase
	Orders        orders.OrderUseCase
	MediaURL      func(string) string
	// Health reports readiness of the backing stores; nil means always ready.
	Health func(ctx context.Context) error
}

var registerTagName sync.Once

func NewRouter(deps Dependencies) *gin.Engine {
	registerTagName.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(jsonTagName)
		}
	})

	if deps.Logger == nil {
		deps.Logger = logger.NewNopLogger()
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(deps.Logger))
	if len(deps.HTTP.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     deps.HTTP.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/healthz", func(c *gin.Context) {
		if deps.Health != nil {
			if err := deps.Health(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if deps.HTTP.SwaggerDir != "" {
		r.StaticFile(openAPIPath, deps.HTTP.SwaggerDir+"/airports.swagger.json")
		r.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL(openAPIPath))))
	}
	if deps.Media.Root != "" && deps.Media.URLPrefix != "" {
		r.Static(deps.Media.URLPrefix, deps.Media.Root)
	}

	paginator := NewPaginator(deps.Pagination)
	root := r.Group(BasePath, deps.Authenticator.Middleware())

	NewReferenceHandler(deps.Reference, paginator, deps.MediaURL).
		Register(root.Group("", auth.StaffOrReadOnly()))
	NewFlightHandler(deps.Flights, paginator, deps.MediaURL).
		Register(root.Group("/flights", auth.StaffOrReadOnly()))
	NewOrderHandler(deps.Orders, paginator).
		Register(root.Group("/orders", auth.RequireAuthenticated()))

	return r
}
