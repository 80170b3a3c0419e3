package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createPropertyRequest struct {
	Title        string `json:"title"          validate:"required"`
	Description  string `json:"description"    validate:"required"`
	Address      string `json:"address"        validate:"required"`
	City         string `json:"city"           validate:"required"`
	State        string `json:"state"          validate:"required"`
	ZipCode      string `json:"zip_code"       validate:"required"`
	Price        string `json:"price"          validate:"required"`
	PropertyType string `json:"property_type"  validate:"required"`
	Features     string `json:"features"`
	MainImageURL string `json:"main_image_url"`
}

type propertyResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zip_code"`
	Price        string    `json:"price"`
	PropertyType string    `json:"property_type"`
	Status       string    `json:"status"`
	Features     string    `json:"features,omitempty"`
	MainImageURL string    `json:"main_image_url,omitempty"`
	BrokerID     string    `json:"broker_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type propertyListResponse struct {
	Items      []propertyResponse `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}
