// Package httpapi serves stored extraction results over a small read-only
// JSON API.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"horse.fit/gala/internal/awards"
	"horse.fit/gala/internal/db"
	"horse.fit/gala/internal/globaltime"
)

type Options struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type Server struct {
	pool   *db.Pool
	logger zerolog.Logger
	opts   Options
}

func NewServer(pool *db.Pool, logger zerolog.Logger, opts Options) *Server {
	host := strings.TrimSpace(opts.Host)
	if host == "" {
		host = "0.0.0.0"
	}
	port := opts.Port
	if port <= 0 {
		port = 8090
	}
	readTimeout := opts.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = 10 * time.Second
	}
	writeTimeout := opts.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 30 * time.Second
	}
	shutdownTimeout := opts.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	return &Server{
		pool:   pool,
		logger: logger,
		opts: Options{
			Host:            host,
			Port:            port,
			ReadTimeout:     readTimeout,
			WriteTimeout:    writeTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
	}
}

func (s *Server) Start(ctx context.Context) error {
	if s == nil || s.pool == nil {
		return fmt.Errorf("server is not initialized")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.httpErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       3600,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				s.logger.Error().
					Err(v.Error).
					Str("method", v.Method).
					Str("uri", v.URI).
					Int("status", v.Status).
					Dur("latency", v.Latency).
					Str("remote_ip", v.RemoteIP).
					Str("request_id", v.RequestID).
					Msg("http request failed")
				return nil
			}

			s.logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Str("request_id", v.RequestID).
				Msg("http request")
			return nil
		},
	}))

	api := e.Group("/api/v1")
	api.GET("/health", s.handleHealth)
	api.GET("/awards", s.handleAwards)
	api.GET("/results/latest", s.handleLatestResults)
	api.GET("/results/latest/hosts", s.handleLatestHosts)
	api.GET("/results/latest/winners", s.handleLatestWinners)
	api.GET("/results/:run_uuid", s.handleResultsByUUID)

	addr := fmt.Sprintf("%s:%d", s.opts.Host, s.opts.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      e,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
			s.logger.Error().Err(shutdownErr).Msg("server shutdown failed")
		}
	}()

	s.logger.Info().Str("addr", addr).Msg("gala results server started")

	if err := e.StartServer(httpServer); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("start server: %w", err)
	}
	s.logger.Info().Msg("gala results server stopped")
	return nil
}

func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"
	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		switch v := he.Message.(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				message = v
			}
		default:
			if text := strings.TrimSpace(http.StatusText(status)); text != "" {
				message = text
			}
		}
	} else if err != nil {
		message = err.Error()
	}

	if status >= 500 {
		_ = internalError(c, "Internal server error")
		return
	}
	_ = fail(c, status, message, nil)
}

func (s *Server) handleHealth(c echo.Context) error {
	if err := s.pool.Ping(c.Request().Context()); err != nil {
		return internalError(c, "Database unreachable")
	}
	return success(c, map[string]any{
		"service": "gala",
		"time":    globaltime.UTC(),
	})
}

func (s *Server) handleAwards(c echo.Context) error {
	return success(c, map[string]any{
		"awards": awards.Canonical,
	})
}

func (s *Server) handleLatestResults(c echo.Context) error {
	doc, err := s.pool.LatestDocument(c.Request().Context())
	if err != nil {
		if db.IsNotFound(err) {
			return failNotFound(c, "No extraction runs stored yet")
		}
		s.logger.Error().Err(err).Msg("load latest results")
		return internalError(c, "Failed to load results")
	}
	return success(c, doc)
}

func (s *Server) handleLatestHosts(c echo.Context) error {
	doc, err := s.pool.LatestDocument(c.Request().Context())
	if err != nil {
		if db.IsNotFound(err) {
			return failNotFound(c, "No extraction runs stored yet")
		}
		s.logger.Error().Err(err).Msg("load latest results")
		return internalError(c, "Failed to load results")
	}
	return success(c, map[string]any{"hosts": doc.Hosts})
}

func (s *Server) handleLatestWinners(c echo.Context) error {
	doc, err := s.pool.LatestDocument(c.Request().Context())
	if err != nil {
		if db.IsNotFound(err) {
			return failNotFound(c, "No extraction runs stored yet")
		}
		s.logger.Error().Err(err).Msg("load latest results")
		return internalError(c, "Failed to load results")
	}
	return success(c, map[string]any{"winners": doc.Winners()})
}

func (s *Server) handleResultsByUUID(c echo.Context) error {
	runUUID := strings.TrimSpace(c.Param("run_uuid"))
	if runUUID == "" {
		return fail(c, http.StatusBadRequest, "run_uuid is required", nil)
	}
	doc, err := s.pool.DocumentByUUID(c.Request().Context(), runUUID)
	if err != nil {
		if db.IsNotFound(err) {
			return failNotFound(c, "Extraction run not found")
		}
		s.logger.Error().Err(err).Msg("load results by uuid")
		return internalError(c, "Failed to load results")
	}
	return success(c, doc)
}
