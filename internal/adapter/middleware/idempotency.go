package middleware

import (
	"log/slog"
	"sync"

	"github.com/gofiber/fiber/v2"
)

type cachedResponse struct {
	status int
	body   []byte
}

// IdempotencyStore remembers the first response produced for each
// Idempotency-Key so retries replay it instead of re-running the handler.
type IdempotencyStore struct {
	mu        sync.Mutex
	responses map[string]cachedResponse
}

func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{responses: make(map[string]cachedResponse)}
}

func (s *IdempotencyStore) get(key string) (cachedResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cached, ok := s.responses[key]
	return cached, ok
}

func (s *IdempotencyStore) put(key string, status int, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// First writer wins; a concurrent retry must not overwrite the recorded result.
	if _, ok := s.responses[key]; !ok {
		s.responses[key] = cachedResponse{status: status, body: body}
	}
}

func Idempotency(store *IdempotencyStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Get Key from Header
		key := c.Get("Idempotency-Key")

		// If no key, skip (silently, or you can log at Debug level)
		if key == "" {
			return c.Next()
		}

		// 2. Check if we already answered this key
		if cached, ok := store.get(key); ok {
			slog.Info("🛑 Idempotency Hit! Returning cached response", "key", key)
			c.Set("X-Idempotency-Hit", "true")
			c.Set("Content-Type", "application/json")
			return c.Status(cached.status).Send(cached.body)
		}

		// 3. Run the Handler
		if err := c.Next(); err != nil {
			return err
		}

		// 4. Save the Result
		// The response buffer is reused by fiber, so keep our own copy.
		status := c.Response().StatusCode()
		body := append([]byte(nil), c.Response().Body()...)
		store.put(key, status, body)

		return nil
	}
}
