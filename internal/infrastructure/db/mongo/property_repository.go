package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/housebroker/listing-api/internal/core/domain"
)

const propertiesCollection = "properties"

type PropertyRepository struct {
	coll *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{coll: db.Collection(propertiesCollection)}
}

type propertyDoc struct {
	ID           string `bson:"_id"`
	Title        string `bson:"title"`
	Description  string `bson:"description"`
	Address      string `bson:"address"`
	City         string `bson:"city"`
	State        string `bson:"state"`
	ZipCode      string `bson:"zip_code"`
	Price        string `bson:"price"`
	PropertyType string `bson:"property_type"`
	Status       string `bson:"status"`
	Features     string `bson:"features,omitempty"`
	MainImageURL string `bson:"main_image_url,omitempty"`
	BrokerID     string `bson:"broker_id"`
	CreatedAt    int64  `bson:"created_at"`
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	doc := propertyDoc{
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
		CreatedAt:    p.CreatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert property: %w", err)
	}
	return nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	var doc propertyDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property: %w", err)
	}
	return docToProperty(doc)
}

func (r *PropertyRepository) List(ctx context.Context, page, limit int) ([]domain.Property, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count properties: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list properties: %w", err)
	}
	defer cur.Close(ctx)

	var items []domain.Property
	for cur.Next(ctx) {
		var doc propertyDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode property: %w", err)
		}
		p, err := docToProperty(doc)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *p)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list properties: %w", err)
	}
	return items, total, nil
}

// EnsureIndexes creates the broker lookup index.
func (r *PropertyRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "broker_id", Value: 1}},
	})
	return err
}

func docToProperty(doc propertyDoc) (*domain.Property, error) {
	price, err := decimal.NewFromString(doc.Price)
	if err != nil {
		return nil, fmt.Errorf("property %s: bad price: %w", doc.ID, err)
	}
	return &domain.Property{
		ID:           doc.ID,
		Title:        doc.Title,
		Description:  doc.Description,
		Address:      doc.Address,
		City:         doc.City,
		State:        doc.State,
		ZipCode:      doc.ZipCode,
		Price:        price,
		PropertyType: doc.PropertyType,
		Status:       domain.PropertyStatus(doc.Status),
		Features:     doc.Features,
		MainImageURL: doc.MainImageURL,
		BrokerID:     doc.BrokerID,
		CreatedAt:    unixToTime(doc.CreatedAt),
	}, nil
}
