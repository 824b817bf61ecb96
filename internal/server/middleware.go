package server

import (
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/anmicius0/parking-slot-manager/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// corsMiddleware allows browser frontends served from origins to call the API.
// An empty list, or one containing "*", allows every origin without credentials.
func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}

// limiterStore holds one token bucket per client IP.
type limiterStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func newLimiterStore(perSecond int) *limiterStore {
	return &limiterStore{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(perSecond),
		burst:    perSecond,
	}
}

func (s *limiterStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(s.rps, s.burst)
		s.limiters[ip] = limiter
	}
	return limiter
}

// rateLimitMiddleware limits requests per client IP to perSecond, with an
// equal burst.
func rateLimitMiddleware(perSecond int) gin.HandlerFunc {
	store := newLimiterStore(perSecond)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !store.get(ip).Allow() {
			utils.Logger.Warn("Rate limit exceeded",
				zap.String("ip", ip),
				zap.String(utils.FieldPath, c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, newResponseBuilder().BuildErrorResponse(
				ErrorCodeRateLimited,
				MessageRateLimited,
				nil,
			))
			return
		}
		c.Next()
	}
}

// requestLogger logs one line per request through zap.
func requestLogger() gin.HandlerFunc {
	log := utils.WithComponent("dev_server")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("Request handled",
			zap.String(utils.FieldMethod, c.Request.Method),
			zap.String(utils.FieldPath, c.Request.URL.Path),
			zap.Int(utils.FieldStatusCode, c.Writer.Status()),
			zap.Duration(utils.FieldDuration, time.Since(start)),
			zap.String(utils.FieldRequestID, c.GetHeader("X-Request-ID")))
	}
}
