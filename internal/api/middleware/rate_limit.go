package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"fridge-catalog/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimiter 單一用戶端的令牌桶
type RateLimiter struct {
	mu       sync.Mutex
	tokens   float64
	capacity float64
	rate     float64 // 每秒補充的令牌數
	lastTime time.Time
}

// NewRateLimiter 創建新的限流器，window 內最多 requests 次
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		tokens:   float64(requests),
		capacity: float64(requests),
		rate:     float64(requests) / window.Seconds(),
		lastTime: time.Now(),
	}
}

// Allow 檢查是否允許請求
func (rl *RateLimiter) Allow() bool {
	ok, _ := rl.take(time.Now())
	return ok
}

// take 取出一枚令牌，失敗時回傳需等待的時間
func (rl *RateLimiter) take(now time.Time) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.refill(now)
	if rl.tokens >= 1 {
		rl.tokens--
		return true, 0
	}
	wait := (1 - rl.tokens) / rl.rate
	return false, time.Duration(wait * float64(time.Second))
}

func (rl *RateLimiter) refill(now time.Time) {
	if elapsed := now.Sub(rl.lastTime).Seconds(); elapsed > 0 {
		rl.tokens = math.Min(rl.capacity, rl.tokens+elapsed*rl.rate)
	}
	rl.lastTime = now
}

// idle 令牌已補滿，可以回收
func (rl *RateLimiter) idle(now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.refill(now)
	return rl.tokens >= rl.capacity
}

// clientLimiters 依用戶端 IP 分配令牌桶
type clientLimiters struct {
	mu        sync.Mutex
	limiters  map[string]*RateLimiter
	requests  int
	window    time.Duration
	lastSweep time.Time
}

func newClientLimiters(requests int, window time.Duration) *clientLimiters {
	return &clientLimiters{
		limiters:  make(map[string]*RateLimiter),
		requests:  requests,
		window:    window,
		lastSweep: time.Now(),
	}
}

func (cl *clientLimiters) get(key string, now time.Time) *RateLimiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if now.Sub(cl.lastSweep) >= cl.window {
		for k, rl := range cl.limiters {
			if rl.idle(now) {
				delete(cl.limiters, k)
			}
		}
		cl.lastSweep = now
	}

	rl, ok := cl.limiters[key]
	if !ok {
		rl = NewRateLimiter(cl.requests, cl.window)
		cl.limiters[key] = rl
	}
	return rl
}

// RateLimit 限流中間件，每個用戶端 IP 各自計算
func RateLimit(requests int, window time.Duration) gin.HandlerFunc {
	clients := newClientLimiters(requests, window)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		ok, wait := clients.get(ip, time.Now()).take(time.Now())
		if !ok {
			common.LogInfo("Rate limit exceeded",
				zap.String("ip", ip),
				zap.String("path", c.Request.URL.Path),
				zap.Duration("retry_after", wait),
			)

			seconds := int(math.Ceil(wait.Seconds()))
			c.Header("Retry-After", strconv.Itoa(max(seconds, 1)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, common.ErrTooManyRequests.Response(false))
			return
		}

		c.Next()
	}
}
