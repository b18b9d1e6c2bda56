package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/cmsadmin/docs"
	"github.com/osse101/cmsadmin/internal/database"
	"github.com/osse101/cmsadmin/internal/datatypes"
	"github.com/osse101/cmsadmin/internal/defaultusers"
	"github.com/osse101/cmsadmin/internal/handler"
	"github.com/osse101/cmsadmin/internal/logger"
	"github.com/osse101/cmsadmin/internal/metrics"
	"github.com/osse101/cmsadmin/internal/session"
	"github.com/osse101/cmsadmin/internal/sitemap"
)

// Options configure the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	MaxBodyBytes   int64
	Detector       DetectorOptions
}

// Dependencies are the services the routes are wired to
type Dependencies struct {
	DBPool            database.Pool
	Pools             handler.PoolRegistry
	Users             *defaultusers.Registry
	Sitemap           sitemap.Service
	Datatypes         datatypes.Service
	Decorators        handler.DecoratorProvider
	Sessions          *session.Handler
	SessionManager    *session.Manager
	AutoLockResources bool
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	r := chi.NewRouter()

	// outermost first
	detector := NewSuspiciousActivityDetector(opts.Detector)

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		sitemapHandlers := handler.NewSitemapHandlers(deps.Sitemap)
		r.Route("/sitemap", func(r chi.Router) {
			r.Get("/entry", sitemapHandlers.HandleGetEntry())
			r.Post("/entry", sitemapHandlers.HandleSaveEntry())
			r.Get("/children", sitemapHandlers.HandleGetChildren())
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/defaults", handler.HandleGetDefaultUsers(deps.Users))
			r.Get("/check", handler.HandleCheckUser(deps.Users))
		})

		r.Route("/menu", func(r chi.Router) {
			r.Post("/visibility", handler.HandleMenuVisibility(deps.AutoLockResources))
			r.Get("/rules", handler.HandleListMenuRules())
		})

		r.Post("/decorate", handler.HandleDecorate(deps.Decorators))
		r.Post("/decorate/reload", handler.HandleReloadDecorations(deps.Decorators))

		r.Post("/formsession/values", handler.HandleFormValues())

		sessionHandlers := handler.NewSessionHandlers(deps.Sessions, deps.SessionManager)
		r.Route("/session", func(r chi.Router) {
			r.Get("/", sessionHandlers.HandleList())
			r.Post("/register", sessionHandlers.HandleRegister())
		})

		datatypeHandlers := handler.NewDatatypeHandlers(deps.Datatypes)
		r.Route("/datatypes", func(r chi.Router) {
			r.Get("/", datatypeHandlers.HandleList())
			r.Post("/", datatypeHandlers.HandleAdd())
			r.Get("/types", datatypeHandlers.HandleResourceTypes())
			r.Get("/resolve", datatypeHandlers.HandleResolve())
			r.Delete("/{extension}", datatypeHandlers.HandleRemove())
		})

		r.Get("/database/pools", handler.HandleListPools(deps.Pools))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
		router: r,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func sanitizeHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
		} else {
			out[k] = v
		}
	}
	return out
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
