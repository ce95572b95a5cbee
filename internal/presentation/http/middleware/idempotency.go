package middleware

import (
	"bytes"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long keys are valid
	IdempotencyKeyTTL = 24 * time.Hour
)

// IdempotencyStore caches responses by idempotency key so a retried finalize
// or checkout cannot commit the same sale twice. Keys are scoped per user.
type IdempotencyStore struct {
	mu      sync.RWMutex
	entries map[string]*cachedResponse
}

type cachedResponse struct {
	Code      int
	Body      []byte
	ExpiresAt time.Time
}

// NewIdempotencyStore creates an idempotency store with background expiry.
func NewIdempotencyStore() *IdempotencyStore {
	s := &IdempotencyStore{entries: make(map[string]*cachedResponse)}
	go s.cleanupLoop()
	return s
}

func (s *IdempotencyStore) get(key string) *cachedResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	if !ok || time.Now().After(entry.ExpiresAt) {
		return nil
	}
	return entry
}

func (s *IdempotencyStore) put(key string, code int, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = &cachedResponse{
		Code:      code,
		Body:      body,
		ExpiresAt: time.Now().Add(IdempotencyKeyTTL),
	}
}

func (s *IdempotencyStore) cleanupLoop() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		s.mu.Lock()
		for key, entry := range s.entries {
			if now.After(entry.ExpiresAt) {
				delete(s.entries, key)
			}
		}
		s.mu.Unlock()
	}
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyRequired requires an Idempotency-Key header on POST requests
// and replays the cached response for a repeated key.
func IdempotencyRequired(store *IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "POST" {
			c.Next()
			return
		}

		idempotencyKey := c.GetHeader(IdempotencyKeyHeader)
		if idempotencyKey == "" {
			c.JSON(400, gin.H{
				"success": false,
				"message": "Idempotency-Key header is required for this request",
			})
			c.Abort()
			return
		}

		userIDValue, exists := c.Get("user_id")
		if !exists {
			c.JSON(401, gin.H{
				"success": false,
				"message": "User not authenticated",
			})
			c.Abort()
			return
		}
		userID, ok := userIDValue.(uuid.UUID)
		if !ok {
			c.JSON(401, gin.H{
				"success": false,
				"message": "Invalid user ID",
			})
			c.Abort()
			return
		}

		cacheKey := userID.String() + ":" + c.Request.Method + " " + c.FullPath() + ":" + idempotencyKey

		if existing := store.get(cacheKey); existing != nil {
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(existing.Code, "application/json", existing.Body)
			c.Abort()
			return
		}

		// Capture the response
		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		// Only cache successful responses (2xx status codes)
		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			store.put(cacheKey, c.Writer.Status(), blw.body.Bytes())
		}
	}
}
