package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrPropertyNotFound = errors.New("property not found")

// PropertyStatus represents the market state of a listing.
type PropertyStatus string

const (
	PropertyAvailable PropertyStatus = "available"
	PropertySold      PropertyStatus = "sold"
	PropertyWithdrawn PropertyStatus = "withdrawn"
)

// Property is a real-estate listing owned by a broker.
type Property struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Address      string          `json:"address"`
	City         string          `json:"city"`
	State        string          `json:"state"`
	ZipCode      string          `json:"zip_code"`
	Price        decimal.Decimal `json:"price"`
	PropertyType string          `json:"property_type"`
	Status       PropertyStatus  `json:"status"`
	Features     string          `json:"features,omitempty"`
	MainImageURL string          `json:"main_image_url,omitempty"`
	BrokerID     string          `json:"broker_id"`
	CreatedAt    time.Time       `json:"created_at"`
}
