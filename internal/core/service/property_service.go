package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/housebroker/listing-api/internal/core/domain"
	"github.com/housebroker/listing-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// PropertyService implements listing use cases on top of the repository and
// the commission resolver.
type PropertyService struct {
	repo       ports.PropertyRepository
	commission ports.CommissionService
	log        zerolog.Logger
}

func NewPropertyService(repo ports.PropertyRepository, commission ports.CommissionService, log zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, commission: commission, log: log}
}

// CreateProperty publishes a new listing owned by the calling broker.
func (s *PropertyService) CreateProperty(ctx context.Context, in ports.CreatePropertyInput) (*domain.Property, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrNegativePrice
	}

	p := &domain.Property{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
		Price:        in.Price,
		PropertyType: in.PropertyType,
		Status:       domain.PropertyAvailable,
		Features:     in.Features,
		MainImageURL: in.MainImageURL,
		BrokerID:     in.BrokerID,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.log.Error().Err(err).Str("broker_id", in.BrokerID).Msg("failed to create property")
		return nil, err
	}

	s.log.Info().Str("property_id", p.ID).Str("broker_id", p.BrokerID).Msg("property listed")
	return p, nil
}

func (s *PropertyService) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PropertyService) ListProperties(ctx context.Context, page, limit int) (*ports.PropertyPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.PropertyPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// QuoteCommission loads the listing once and computes the broker fee for its
// current price.
func (s *PropertyService) QuoteCommission(ctx context.Context, id string) (*domain.Property, *ports.CommissionQuote, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	quote, err := s.commission.Resolve(ctx, p.Price)
	if err != nil {
		return nil, nil, err
	}
	return p, quote, nil
}
