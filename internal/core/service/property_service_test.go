package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/housebroker/listing-api/internal/core/domain"
	"github.com/housebroker/listing-api/internal/core/ports"
)

type stubPropertyRepo struct {
	byID map[string]*domain.Property
	all  []domain.Property
}

func newStubPropertyRepo() *stubPropertyRepo {
	return &stubPropertyRepo{byID: make(map[string]*domain.Property)}
}

func (r *stubPropertyRepo) Create(_ context.Context, p *domain.Property) error {
	clone := *p
	r.byID[p.ID] = &clone
	r.all = append(r.all, clone)
	return nil
}

func (r *stubPropertyRepo) FindByID(_ context.Context, id string) (*domain.Property, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPropertyRepo) List(_ context.Context, page, limit int) ([]domain.Property, int64, error) {
	start := (page - 1) * limit
	if start >= len(r.all) {
		return nil, int64(len(r.all)), nil
	}
	end := start + limit
	if end > len(r.all) {
		end = len(r.all)
	}
	return r.all[start:end], int64(len(r.all)), nil
}

func newTestPropertyService(repo ports.PropertyRepository) *PropertyService {
	commission := NewCommissionService(standardTiers(), zerolog.Nop())
	return NewPropertyService(repo, commission, zerolog.Nop())
}

func TestPropertyService_CreateAndGet(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := newTestPropertyService(repo)

	created, err := svc.CreateProperty(context.Background(), ports.CreatePropertyInput{
		Title:        "Two-bed flat",
		Description:  "Bright corner unit",
		Address:      "12 Main St",
		City:         "Springfield",
		State:        "IL",
		ZipCode:      "62701",
		Price:        dec("180000"),
		PropertyType: "apartment",
		BrokerID:     "broker-1",
	})
	if err != nil {
		t.Fatalf("CreateProperty returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.Status != domain.PropertyAvailable {
		t.Fatalf("expected new listing to be available, got %s", created.Status)
	}

	got, err := svc.GetProperty(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetProperty returned error: %v", err)
	}
	if got.Title != "Two-bed flat" || got.BrokerID != "broker-1" {
		t.Fatalf("unexpected listing: %+v", got)
	}
}

func TestPropertyService_Create_NegativePrice(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := newTestPropertyService(repo)

	_, err := svc.CreateProperty(context.Background(), ports.CreatePropertyInput{
		Title: "Bad", Price: dec("-1"), BrokerID: "broker-1",
	})
	if !errors.Is(err, domain.ErrNegativePrice) {
		t.Fatalf("expected ErrNegativePrice, got %v", err)
	}
}

func TestPropertyService_List_Pagination(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := newTestPropertyService(repo)

	for i := 0; i < 5; i++ {
		_, err := svc.CreateProperty(context.Background(), ports.CreatePropertyInput{
			Title: "House", Price: dec("100000"), BrokerID: "broker-1",
		})
		if err != nil {
			t.Fatalf("CreateProperty returned error: %v", err)
		}
	}

	page, err := svc.ListProperties(context.Background(), 2, 2)
	if err != nil {
		t.Fatalf("ListProperties returned error: %v", err)
	}
	if page.Total != 5 || page.TotalPages != 3 || len(page.Items) != 2 {
		t.Fatalf("unexpected page: total=%d pages=%d items=%d", page.Total, page.TotalPages, len(page.Items))
	}
}

func TestPropertyService_QuoteCommission(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := newTestPropertyService(repo)

	created, err := svc.CreateProperty(context.Background(), ports.CreatePropertyInput{
		Title: "Villa", Price: dec("500000"), BrokerID: "broker-1",
	})
	if err != nil {
		t.Fatalf("CreateProperty returned error: %v", err)
	}

	p, quote, err := svc.QuoteCommission(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("QuoteCommission returned error: %v", err)
	}
	if p.ID != created.ID {
		t.Fatalf("expected listing %s, got %s", created.ID, p.ID)
	}
	if quote.Amount.String() != "20000.00" {
		t.Fatalf("unexpected amount: %s", quote.Amount)
	}

	if _, _, err := svc.QuoteCommission(context.Background(), "missing"); !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}
