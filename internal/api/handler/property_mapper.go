package handler

import (
	"github.com/shopspring/decimal"

	"github.com/housebroker/listing-api/internal/core/domain"
	"github.com/housebroker/listing-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreatePropertyInput(req createPropertyRequest, price decimal.Decimal, brokerID string) ports.CreatePropertyInput {
	return ports.CreatePropertyInput{
		Title:        req.Title,
		Description:  req.Description,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Price:        price,
		PropertyType: req.PropertyType,
		Features:     req.Features,
		MainImageURL: req.MainImageURL,
		BrokerID:     brokerID,
	}
}

// --- Service result → HTTP response ---

func toPropertyResponse(p *domain.Property) propertyResponse {
	return propertyResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Address:      p.Address,
		City:         p.City,
		State:        p.State,
		ZipCode:      p.ZipCode,
		Price:        p.Price.String(),
		PropertyType: p.PropertyType,
		Status:       string(p.Status),
		Features:     p.Features,
		MainImageURL: p.MainImageURL,
		BrokerID:     p.BrokerID,
		CreatedAt:    p.CreatedAt.UTC(),
	}
}

func toPropertyListResponse(page *ports.PropertyPage) propertyListResponse {
	items := make([]propertyResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toPropertyResponse(&page.Items[i]))
	}
	return propertyListResponse{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}
}
