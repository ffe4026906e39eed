package middleware

import (
	"math"
	"net"
	"net/http"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/undeniable-app/undeniable/adapters/log"
	"golang.org/x/time/rate"
)

// IPRateLimiter gives every client address its own token bucket. Buckets of
// clients idle for longer than ttl are swept by a background goroutine that
// runs until StopCleanup.
type IPRateLimiter struct {
	clients  map[string]*clientLimiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	ttl      time.Duration
	log      *log.Log
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPRateLimiter creates a limiter allowing r requests per second with
// bursts of b per client.
func NewIPRateLimiter(r rate.Limit, b int, ttl time.Duration, logger *log.Log) *IPRateLimiter {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = log.NewBasicLogger(false)
	}
	limiter := &IPRateLimiter{
		clients: make(map[string]*clientLimiter),
		rate:    r,
		burst:   b,
		ttl:     ttl,
		log:     logger,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go limiter.cleanupClients()
	return limiter
}

func (l *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	client, exists := l.clients[ip]
	if !exists {
		client = &clientLimiter{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.clients[ip] = client
	}
	client.lastSeen = time.Now()
	return client.limiter
}

// sweep removes clients idle since before now minus ttl.
func (l *IPRateLimiter) sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for ip, client := range l.clients {
		if now.Sub(client.lastSeen) > l.ttl {
			delete(l.clients, ip)
			removed++
		}
	}
	return removed
}

func (l *IPRateLimiter) cleanupClients() {
	defer close(l.done)
	interval := max(l.ttl/2, time.Minute)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case now := <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						l.log.Error("rate limiter sweep panicked", l.log.Any("panic", r), log.String("stack", string(debug.Stack())))
					}
				}()
				l.sweep(now)
			}()
		}
	}
}

// StopCleanup stops the sweeper and waits for it to exit. It satisfies
// graceful.Shutdowner through graceful.ShutdownFunc.
func (l *IPRateLimiter) StopCleanup() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})
	<-l.done
}

// retryAfter is the wait, in whole seconds, for one token.
func (l *IPRateLimiter) retryAfter() int {
	if l.rate <= 0 || l.rate == rate.Inf {
		return 1
	}
	return max(1, int(math.Ceil(1/float64(l.rate))))
}

func clientKey(c *gin.Context) string {
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}

// Middleware returns the Gin middleware handler. The key is the socket peer
// address; configure gin trusted proxies rather than trusting headers here.
func (l *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.rate == rate.Inf {
			c.Next()
			return
		}
		if !l.getLimiter(clientKey(c)).Allow() {
			c.Header("Retry-After", strconv.Itoa(l.retryAfter()))
			c.Header("X-RateLimit-Limit", strconv.Itoa(l.burst))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
