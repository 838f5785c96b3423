// Package limiter throttles requests per client IP.
package limiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type visitors struct {
	mu        sync.Mutex
	rps       rate.Limit
	burst     int
	ttl       time.Duration
	list      map[string]*visitor
	lastSweep time.Time
	now       func() time.Time
}

func newVisitors(rps int, burst int, ttl time.Duration) *visitors {
	return &visitors{
		rps:   rate.Limit(rps),
		burst: burst,
		ttl:   ttl,
		list:  make(map[string]*visitor),
		now:   time.Now,
	}
}

// allow reports whether ip may proceed. Visitors idle for longer than ttl
// are forgotten.
func (v *visitors) allow(ip string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	if now.Sub(v.lastSweep) > v.ttl {
		for key, item := range v.list {
			if now.Sub(item.lastSeen) > v.ttl {
				delete(v.list, key)
			}
		}
		v.lastSweep = now
	}

	item, ok := v.list[ip]
	if !ok {
		item = &visitor{limiter: rate.NewLimiter(v.rps, v.burst)}
		v.list[ip] = item
	}
	item.lastSeen = now

	return item.limiter.AllowN(now, 1)
}

// Limit rejects with 429 once a client exceeds rps with the given burst.
func Limit(rps int, burst int, ttl time.Duration) gin.HandlerFunc {
	v := newVisitors(rps, burst, ttl)

	return func(c *gin.Context) {
		if !v.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
