package server

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"swapi/internal/metrics"
	"swapi/internal/middleware"
	"swapi/internal/modules/association"
	"swapi/internal/modules/catalog"
	"swapi/internal/modules/favorite"
	"swapi/internal/pkg/response"
	"swapi/internal/repository"
)

// Options carries what the router needs beyond the store.
type Options struct {
	Log            zerolog.Logger
	Metrics        *metrics.HTTP
	AllowedOrigins []string
}

// Route is one entry of the sitemap.
type Route struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

type routeRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// NewRouter mounts every module on a fresh gin engine.
func NewRouter(store *repository.Store, opts Options) *gin.Engine {
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	r := gin.New()
	// ErrorLogger sits innermost so recovered panics still reach the
	// access log and metrics as 500s
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(opts.Log),
		middleware.Metrics(opts.Metrics),
		middleware.CORS(opts.AllowedOrigins),
		middleware.ErrorLogger(opts.Log),
	)

	r.NoRoute(func(c *gin.Context) {
		response.Message(c, http.StatusNotFound, "Not found")
	})

	root := &r.RouterGroup
	modules := []routeRegistrar{
		catalog.NewModule(store),
		favorite.NewModule(store),
		association.NewModule(store),
	}
	for _, m := range modules {
		m.RegisterRoutes(root)
	}

	r.GET("/healthz", healthz(store))
	r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	r.GET("/", sitemap(r))

	return r
}

// sitemap lists every mounted route.
func sitemap(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		info := r.Routes()
		routes := make([]Route, 0, len(info))
		for _, ri := range info {
			routes = append(routes, Route{Method: ri.Method, Path: ri.Path})
		}
		sort.Slice(routes, func(i, j int) bool {
			if routes[i].Path != routes[j].Path {
				return routes[i].Path < routes[j].Path
			}
			return routes[i].Method < routes[j].Method
		})
		response.JSON(c, http.StatusOK, routes)
	}
}

func healthz(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			_ = c.Error(err)
			response.JSON(c, http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		response.JSON(c, http.StatusOK, gin.H{"status": "ok"})
	}
}
