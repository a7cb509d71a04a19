// Package mockapi is an in-memory stand-in for the SpaceTraders v2 API.
//
// It speaks the same envelope protocol as the live server, mints agent
// tokens on registration and simulates enough of the game (flight times,
// cooldowns, markets, contracts) to exercise the client end to end:
//
//	srv, _ := mockapi.New(mockapi.Config{}, logger)
//	ts := httptest.NewServer(srv.Handler())
//	c, _ := client.New(client.WithBaseURL(ts.URL + "/v2"))
package mockapi

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jmerrifield20/spacetraders/internal/metrics"
)

// Version is reported in the claims of every token the mock mints.
const Version = "v2.3.0"

// Config holds the mock server settings. The zero value is usable.
type Config struct {
	// SigningKey signs agent tokens. Empty means a random per-process key.
	SigningKey []byte
	// CORSOrigins lists the browser origins allowed to call the API.
	CORSOrigins []string
	// RateLimitRPS enables per-client rate limiting when positive.
	RateLimitRPS int
	RateBurst    int
	// Metrics, when set, records requests and envelopes and is served
	// on /metrics.
	Metrics *metrics.Metrics
	// Clock overrides time.Now.
	Clock func() time.Time
}

// Server is the mock API. It is safe for concurrent use.
type Server struct {
	logger  *zap.Logger
	tokens  *TokenIssuer
	metrics *metrics.Metrics
	now     func() time.Time
	router  *gin.Engine

	done      chan struct{}
	closeOnce sync.Once

	// game state, guarded by mu
	mu    sync.Mutex
	world *world
}

// New builds a Server with a freshly seeded universe.
func New(cfg Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	tokens, err := NewTokenIssuer(cfg.SigningKey, Version, now())
	if err != nil {
		return nil, err
	}

	s := &Server{
		logger:  logger,
		tokens:  tokens,
		metrics: cfg.Metrics,
		now:     func() time.Time { return now().UTC() },
		done:    make(chan struct{}),
		world:   newWorld(),
	}
	s.router = s.routes(cfg)
	return s, nil
}

// Handler returns the HTTP handler serving the API under /v2.
func (s *Server) Handler() http.Handler { return s.router }

// Close stops background work. The handler keeps serving.
func (s *Server) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Server) routes(cfg Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	if len(cfg.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Request-Id"},
			ExposeHeaders:    []string{"Content-Length", "Retry-After"},
			AllowCredentials: !containsWildcard(cfg.CORSOrigins),
			MaxAge:           12 * time.Hour,
		}))
	}

	// Request body size limit (1 MB)
	router.Use(func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 1<<20)
		c.Next()
	})

	if s.metrics != nil {
		router.Use(s.metrics.Middleware())
		router.GET("/metrics", s.metrics.Handler())
	}
	router.Use(requestLogger(s.logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.NoRoute(func(c *gin.Context) {
		s.fail(c, rejectf(http.StatusNotFound, codeNotFound, "Route %s %s not found.", c.Request.Method, c.Request.URL.Path))
	})

	v2 := router.Group("/v2")
	if cfg.RateLimitRPS > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = cfg.RateLimitRPS * 2
		}
		v2.Use(s.rateLimiter(cfg.RateLimitRPS, burst))
	}
	v2.POST("/register", s.register)

	authed := v2.Group("", s.requireToken())
	s.registerAgentRoutes(authed)
	s.registerFleetRoutes(authed)
	s.registerContractRoutes(authed)
	s.registerSystemRoutes(authed)
	return router
}

// containsWildcard returns true if origins includes "*".
func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if strings.TrimSpace(o) == "*" {
			return true
		}
	}
	return false
}

// requestLogger returns a Gin middleware that logs each request with zap.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetHeader("X-Request-Id")),
		)
	}
}
