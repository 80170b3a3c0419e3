package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/housebroker/listing-api/internal/core/domain"
)

// PropertyRepository defines the interface for listing persistence.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	List(ctx context.Context, page, limit int) ([]domain.Property, int64, error)
}

// CreatePropertyInput carries all data needed to publish a listing.
type CreatePropertyInput struct {
	Title        string
	Description  string
	Address      string
	City         string
	State        string
	ZipCode      string
	Price        decimal.Decimal
	PropertyType string
	Features     string
	MainImageURL string
	BrokerID     string
}

// PropertyPage is one page of listings.
type PropertyPage struct {
	Items      []domain.Property
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// PropertyService defines use-case operations for listings.
type PropertyService interface {
	CreateProperty(ctx context.Context, in CreatePropertyInput) (*domain.Property, error)
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
	ListProperties(ctx context.Context, page, limit int) (*PropertyPage, error)
	QuoteCommission(ctx context.Context, id string) (*domain.Property, *CommissionQuote, error)
}
