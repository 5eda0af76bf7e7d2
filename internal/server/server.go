package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/folio/internal/app"
	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/handlers"
	appmiddleware "github.com/nfrund/folio/internal/middleware"
	"github.com/nfrund/folio/internal/registry"
	"github.com/nfrund/folio/internal/rendering"
	"github.com/spf13/afero"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E    *echo.Echo
	Cfg  config.Provider
	deps app.Dependencies
}

// New creates a Server with its middleware chain and routes registered.
func New(cfg config.Provider, deps app.Dependencies) *Server {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = rendering.New()
	e.Validator = handlers.NewValidator()
	e.IPExtractor = ipExtractor(cfg.GetTrustedProxies(), deps.Logger)
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger(deps.Logger))
	e.Use(requestLogger())
	e.Use(middleware.Recover())

	// Configure and use session middleware; it carries the toast flashes.
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	s := &Server{E: e, Cfg: cfg, deps: deps}
	s.RegisterRoutes()
	return s
}

// requestLogger writes one access log line per request through the
// request-scoped slog logger.
func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ctx := c.Request().Context()
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			appmiddleware.FromContext(ctx).LogAttrs(ctx, level, "request", attrs...)
			return nil
		},
	})
}

// NewFromConfig wires the production dependencies over the OS filesystem and
// builds the Server.
func NewFromConfig(cfg config.Provider, logger *slog.Logger) (*Server, error) {
	reg := registry.New(cfg)
	app.Register(reg, afero.NewOsFs(), logger)
	deps, err := app.Resolve(reg)
	if err != nil {
		return nil, err
	}
	if deps.Mailer == nil {
		logger.Warn("No email provider configured; the contact form will report the service as unavailable")
	}
	return New(cfg, deps), nil
}
