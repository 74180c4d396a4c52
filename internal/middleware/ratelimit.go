package middleware

import (
	"sync"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// IPRateLimiter - token bucket на каждый IP. Состояние в памяти процесса.
type IPRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	ttl      time.Duration
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPRateLimiter: requestsPerMinute <= 0 отключает ограничение
func NewIPRateLimiter(requestsPerMinute, burst int) *IPRateLimiter {
	limit := rate.Inf
	if requestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(requestsPerMinute))
	}
	if burst <= 0 {
		burst = 1
	}
	return &IPRateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		burst:    burst,
		ttl:      10 * time.Minute,
	}
}

// Allow расходует один токен из корзины IP
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	// Чистка давно не появлявшихся IP прямо на пути запроса
	if len(l.visitors) > 1024 {
		for key, other := range l.visitors {
			if now.Sub(other.lastSeen) > l.ttl {
				delete(l.visitors, key)
			}
		}
	}
	return v.limiter.Allow()
}

func (l *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			logger.CtxWarn(c.Request.Context(), "rate limit exceeded", "client_ip", c.ClientIP(), "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
