package webserver

import (
	"context"
	"fmt"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mostevr/cardstock/internal/app"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Context keys for per-request dependencies injected by the web server.
const (
	ContextKeyDB  = "cardstock_db"
	ContextKeyBus = "cardstock_bus"
)

var server *WebServer

type WebServer struct {
	root *echo.Echo
	app  app.AppContext
}

// Init builds the global web server instance. Route registration happens
// afterwards through ApiGET/ApiPOST.
func Init(ac app.AppContext) *WebServer {
	server = NewWebServer(ac)
	return server
}

func NewWebServer(ac app.AppContext) *WebServer {
	s := &WebServer{root: echo.New(), app: ac}
	s.root.HideBanner = true
	s.root.HidePort = true
	s.root.JSONSerializer = &jsoniterSerializer{}
	s.root.Validator = NewValidator()
	s.root.Use(middleware.RequestID())
	s.root.Use(accessLogMiddleware())
	s.root.Use(middleware.Recover())
	s.root.Use(s.injectMiddleware())
	return s
}

// injectMiddleware hands every request a scoped view of the shared database
// pool and the event bus; the pool connection returns to the pool on every
// exit path once the handler finishes.
func (s *WebServer) injectMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextKeyDB, s.app.DB().WithContext(c.Request().Context()))
			c.Set(ContextKeyBus, s.app.Bus())
			return next(c)
		}
	}
}

func accessLogMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			zap.L().Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)))
			return nil
		}
	}
}

// GetDB returns the request-scoped gorm handle injected by the middleware.
func GetDB(c echo.Context) *gorm.DB {
	db, _ := c.Get(ContextKeyDB).(*gorm.DB)
	return db
}

// GetBus returns the application event bus.
func GetBus(c echo.Context) EventBus.Bus {
	bus, _ := c.Get(ContextKeyBus).(EventBus.Bus)
	return bus
}

func ApiGET(path string, h echo.HandlerFunc) {
	server.root.GET(path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.root.POST(path, h)
}

// Echo exposes the underlying router (used by tests to serve requests).
func Echo() *echo.Echo {
	return server.root
}

// Listen starts the HTTP listener and blocks until shutdown.
func Listen() error {
	cfg := server.app.Config()
	addr := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	zap.S().Infof("Starting web server on %s", addr)
	return server.root.Start(addr)
}

// Shutdown drains in-flight requests and stops the listener.
func Shutdown(ctx context.Context) error {
	return server.root.Shutdown(ctx)
}
