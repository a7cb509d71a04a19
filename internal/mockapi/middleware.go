package mockapi

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jmerrifield20/spacetraders/pkg/apierr"
)

const ctxAgentSymbol = "st_agent_symbol"

// requireToken returns a Gin middleware that enforces a valid Bearer agent
// token and injects the agent symbol into the context.
func (s *Server) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			s.fail(c, reject(http.StatusUnauthorized, apierr.CodeTokenEmpty,
				"Missing access token. Provide a bearer token in the Authorization header."))
			return
		}

		claims, err := s.tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			s.fail(c, reject(http.StatusUnauthorized, apierr.CodeInvalidTokenRequest,
				"Failed to parse token payload: "+err.Error()))
			return
		}

		s.mu.Lock()
		_, ok := s.world.agents[claims.Identifier]
		s.mu.Unlock()
		if !ok {
			s.fail(c, rejectf(http.StatusUnauthorized, apierr.CodeAgentNotExists,
				"Agent %s does not exist.", claims.Identifier))
			return
		}

		c.Set(ctxAgentSymbol, claims.Identifier)
		c.Next()
	}
}

// agentSymbol retrieves the agent injected by requireToken.
func agentSymbol(c *gin.Context) string {
	return c.GetString(ctxAgentSymbol)
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimitDetail is the error detail of a 429 reply.
type rateLimitDetail struct {
	Kind           string    `json:"type"`
	RetryAfter     float64   `json:"retryAfter"`
	LimitBurst     int       `json:"limitBurst"`
	LimitPerSecond int       `json:"limitPerSecond"`
	Remaining      int       `json:"remaining"`
	Reset          time.Time `json:"reset"`
}

// rateLimiter returns a Gin middleware that enforces a token bucket per
// client IP, answering 429 with the live API's error envelope. Idle
// entries are dropped every five minutes until the server is closed.
func (s *Server) rateLimiter(rps, burst int) gin.HandlerFunc {
	var mu sync.Mutex
	limiters := make(map[string]*clientLimiter)

	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				mu.Lock()
				for ip, l := range limiters {
					if time.Since(l.lastSeen) > 10*time.Minute {
						delete(limiters, ip)
					}
				}
				mu.Unlock()
			case <-s.done:
				return
			}
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		l, ok := limiters[ip]
		if !ok {
			l = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
			limiters[ip] = l
		}
		l.lastSeen = time.Now()
		mu.Unlock()

		if !l.limiter.Allow() {
			retry := 1 / float64(rps)
			e := apierr.New(codeRateLimited, "You have reached your API limit. Please wait and try again.")
			e.Data = &apierr.Detail{Raw: mustJSON(rateLimitDetail{
				Kind:           "IncreasedRateLimit",
				RetryAfter:     retry,
				LimitBurst:     burst,
				LimitPerSecond: rps,
				Reset:          s.now().Add(time.Duration(retry * float64(time.Second))),
			})}
			c.Header("Retry-After", "1")
			s.fail(c, &rejection{status: http.StatusTooManyRequests, err: e})
			return
		}
		c.Next()
	}
}
