package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/housebroker/listing-api/internal/core/domain"
	"github.com/housebroker/listing-api/internal/core/ports"
)

type stubCommissionService struct {
	resolveFn func(ctx context.Context, price decimal.Decimal) (*ports.CommissionQuote, error)
}

func (s *stubCommissionService) Resolve(ctx context.Context, price decimal.Decimal) (*ports.CommissionQuote, error) {
	return s.resolveFn(ctx, price)
}

func newQuoteContext(t *testing.T, query string) (echo.Context, *httptest.ResponseRecorder, *echo.Echo) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/commission/quote"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec, e
}

func TestCommissionHandler_Quote_Success(t *testing.T) {
	stub := &stubCommissionService{
		resolveFn: func(ctx context.Context, price decimal.Decimal) (*ports.CommissionQuote, error) {
			if price.String() != "30000" {
				t.Fatalf("unexpected price: %s", price)
			}
			return &ports.CommissionQuote{
				Rate:            decimal.NewFromInt(2),
				Amount:          decimal.New(60000, -2),
				TierDescription: "low tier",
			}, nil
		},
	}
	h := NewCommissionHandler(stub)

	c, rec, _ := newQuoteContext(t, "?price=30000")
	if err := h.Quote(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["amount"] != "600.00" || resp["rate"] != "2" || resp["tier_description"] != "low tier" {
		t.Fatalf("unexpected quote: %v", resp)
	}
}

func TestCommissionHandler_Quote_MissingPrice(t *testing.T) {
	h := NewCommissionHandler(&stubCommissionService{})

	c, rec, _ := newQuoteContext(t, "")
	if err := h.Quote(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCommissionHandler_Quote_MalformedPrice(t *testing.T) {
	h := NewCommissionHandler(&stubCommissionService{})

	c, rec, _ := newQuoteContext(t, "?price=abc")
	if err := h.Quote(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCommissionHandler_Quote_NoMatchingTier(t *testing.T) {
	stub := &stubCommissionService{
		resolveFn: func(ctx context.Context, price decimal.Decimal) (*ports.CommissionQuote, error) {
			return nil, domain.ErrNoMatchingTier
		},
	}
	h := NewCommissionHandler(stub)

	c, _, _ := newQuoteContext(t, "?price=10")
	err := h.Quote(c)
	if err == nil {
		t.Fatalf("expected error to propagate to the error handler")
	}
}
