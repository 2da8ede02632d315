package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/you/invitesvc/internal/ratelimit"
)

// RateLimitMW applies per-route sliding-window quotas to the API surface.
// Buckets are keyed per route class, client IP and authenticated identity, so
// one abusive client cannot exhaust a route for everyone behind the same NAT.
type RateLimitMW struct {
	limiter *ratelimit.SlidingWindow
	rules   []ratelimit.Rule
}

// NewRateLimitMW creates new rate limit middleware wrapper
func NewRateLimitMW(limiter *ratelimit.SlidingWindow, rules []ratelimit.Rule) *RateLimitMW {
	return &RateLimitMW{limiter: limiter, rules: rules}
}

// Check returns the admission-control middleware
func (mw *RateLimitMW) Check() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		path := c.Request.URL.Path
		if !strings.HasPrefix(path, "/api/") {
			c.Next()
			return
		}

		rule := ratelimit.Classify(mw.rules, path)
		key := bucketKey(rule.Key, clientIP(c.Request), identity(c))

		decision := mw.limiter.Check(key, rule.Limit, rule.Window)
		if !decision.Allowed {
			retryAfter := int(time.Until(decision.ResetAt).Seconds() + 0.999)
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}

		c.Next()
	})
}

func bucketKey(routeKey, ip, userID string) string {
	return fmt.Sprintf("%s::ip:%s::user:%s", routeKey, ip, userID)
}

// clientIP trusts the first hop of X-Forwarded-For when present, falling back
// to the connection's remote address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.SplitN(fwd, ",", 2)[0])
		if first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// identity returns the authenticated user ID, or "-" for anonymous traffic so
// unauthenticated callers share a per-IP bucket.
func identity(c *gin.Context) string {
	if v, ok := c.Get("user_id"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return "-"
}
