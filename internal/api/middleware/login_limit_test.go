package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

func newThrottleContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginThrottle_NoCacheFailsOpen(t *testing.T) {
	c, _ := newThrottleContext(t, `{"email":"ada@example.com"}`)

	called := false
	mw := LoginThrottle(nil, 5)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called without redis")
	}
}

func TestLoginThrottle_BlocksOverLimit(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()

	mw := LoginThrottle(cache, 3)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		c, rec := newThrottleContext(t, `{"email":"ada@example.com"}`)
		if err := handler(c); err != nil {
			t.Fatalf("attempt %d error: %v", i+1, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d", i+1, rec.Code)
		}
	}

	c, _ := newThrottleContext(t, `{"email":"ada@example.com"}`)
	err = handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on fourth attempt, got %v", err)
	}

	// a different account is not affected
	other, rec := newThrottleContext(t, `{"email":"bob@example.com"}`)
	if err := handler(other); err != nil {
		t.Fatalf("other account blocked: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("other account: expected 200, got %d", rec.Code)
	}
}

func TestLoginThrottle_KeysByEmailNotIP(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()

	mw := LoginThrottle(cache, 5)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	c, _ := newThrottleContext(t, `{"email":"Ada@Example.com"}`)
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !mr.Exists("throttle:login:ada@example.com") {
		t.Fatalf("expected counter keyed by normalized email, keys: %v", mr.Keys())
	}

	// body without an email falls back to the source IP
	c, _ = newThrottleContext(t, `{}`)
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !mr.Exists("throttle:login:" + c.RealIP()) {
		t.Fatalf("expected IP fallback key, keys: %v", mr.Keys())
	}
}

func TestLoginThrottle_CacheErrorFailsOpen(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()
	mr.Close()

	called := false
	mw := LoginThrottle(cache, 1)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	c, _ := newThrottleContext(t, `{"email":"ada@example.com"}`)
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called when redis is down")
	}
}

func TestLoginThrottle_BodyStillReadableDownstream(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()

	var bound struct {
		Email string `json:"email"`
	}
	mw := LoginThrottle(cache, 5)
	handler := mw(func(c echo.Context) error {
		if err := c.Bind(&bound); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})

	c, _ := newThrottleContext(t, `{"email":"ada@example.com"}`)
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if bound.Email != "ada@example.com" {
		t.Fatalf("downstream bind lost the body, got %q", bound.Email)
	}
}
