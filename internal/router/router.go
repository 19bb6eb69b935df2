// Package router builds the echo instance: global middleware, error
// handling and route registration.
package router

import (
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/iliyamo/movie-catalog/internal/config"
	"github.com/iliyamo/movie-catalog/internal/handler"
	"github.com/iliyamo/movie-catalog/internal/middleware"
	"github.com/iliyamo/movie-catalog/internal/repository"
	"github.com/iliyamo/movie-catalog/internal/storage"
	"github.com/iliyamo/movie-catalog/internal/validation"
)

// Deps are the long-lived collaborators shared by all handlers.  Redis and
// Publisher are optional.
type Deps struct {
	Cfg       config.Config
	Log       zerolog.Logger
	DB        *gorm.DB
	Redis     *redis.Client
	Store     storage.Provider
	Publisher handler.EventPublisher
}

const contentSecurityPolicy = "default-src 'self'; " +
	"style-src 'self'; " +
	"script-src 'self'; " +
	"img-src 'self' data: blob: https://movies-app-backend.fly.dev https://moviesfrontendapp.netlify.app http://localhost:5000 https://localhost:5000; " +
	"connect-src 'self' https://movies-app-backend.fly.dev https://moviesfrontendapp.netlify.app http://localhost:5000 https://localhost:5000; " +
	"font-src 'self'; " +
	"object-src 'none'; " +
	"media-src 'self'; " +
	"frame-src 'none'"

// New returns a fully wired server.
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = handler.ErrorHandler(d.Cfg, d.Log)

	metrics := middleware.NewMetrics()

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(metrics.Middleware())
	e.Use(requestLogger(d.Log))
	e.Use(echomw.SecureWithConfig(echomw.SecureConfig{
		XSSProtection:         "0",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            15552000,
		ContentSecurityPolicy: contentSecurityPolicy,
		ReferrerPolicy:        "no-referrer",
	}))
	e.Use(crossOriginResourcePolicy)
	e.Use(echomw.CORSWithConfig(corsConfig(d.Cfg)))
	e.Use(echomw.BodyLimit(d.Cfg.BodyLimit))

	e.GET("/health", handler.Health)
	e.GET("/healthz", handler.Healthz)
	e.GET("/metrics", metrics.Handler())

	limiter := middleware.NewTokenBucket(d.Cfg.RateLimit, d.Redis, d.Log)
	cache := middleware.NewResponseCache(d.Cfg.Cache, d.Redis, d.Log)
	auth := middleware.JWTAuth(d.Cfg.JWTSecret)

	users := repository.NewUserRepo(d.DB)
	movies := repository.NewMovieRepo(d.DB)

	RegisterAuth(e, handler.NewAuthHandler(d.Cfg, users, d.Publisher, d.Log), auth, limiter)
	RegisterMovies(e, handler.NewMovieHandler(movies, cache, d.Publisher, d.Log), auth, limiter, cache.Middleware())
	RegisterUploads(e, handler.NewUploadHandler(d.Store, d.Cfg.Upload.MaxBytes), auth, limiter)
	return e
}

func crossOriginResourcePolicy(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Cross-Origin-Resource-Policy", "cross-origin")
		return next(c)
	}
}

// corsConfig allows every origin in development and the configured list
// otherwise.  Requests without an Origin header are not CORS requests and
// pass untouched.
func corsConfig(cfg config.Config) echomw.CORSConfig {
	origins := make([]string, 0, len(cfg.CORS.AllowedOrigins))
	for _, o := range cfg.CORS.AllowedOrigins {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	dev := cfg.IsDevelopment()
	return echomw.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			return dev || slices.Contains(origins, origin), nil
		},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type", "Authorization", "X-Requested-With", "X-XSRF-TOKEN", "Accept",
		},
		ExposeHeaders: []string{
			"Content-Disposition", "Set-Cookie", "XSRF-TOKEN", "X-XSRF-TOKEN", "X-Cache",
		},
	}
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Err(v.Error).
				Msg("request")
			return nil
		},
	})
}
