package mongo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/housebroker/listing-api/internal/core/domain"
)

const commissionCollection = "commission_rates"

// CommissionRepository reads the externally administered rate table.
// Monetary values are stored as decimal strings to avoid float drift.
type CommissionRepository struct {
	coll *mongo.Collection
}

func NewCommissionRepository(db *mongo.Database) *CommissionRepository {
	return &CommissionRepository{coll: db.Collection(commissionCollection)}
}

type tierDoc struct {
	MinPrice       string `bson:"min_price"`
	MaxPrice       string `bson:"max_price,omitempty"`
	RatePercentage string `bson:"rate_percentage"`
	Description    string `bson:"description"`
}

func (r *CommissionRepository) ListTiers(ctx context.Context) ([]domain.CommissionTier, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list tiers: %w", err)
	}
	defer cur.Close(ctx)

	var tiers []domain.CommissionTier
	for cur.Next(ctx) {
		var doc tierDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode tier: %w", err)
		}
		tier, err := docToTier(doc)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list tiers: %w", err)
	}
	return tiers, nil
}

// Seed inserts the default tier table when the collection is empty.
func (r *CommissionRepository) Seed(ctx context.Context, tiers []domain.CommissionTier) error {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count tiers: %w", err)
	}
	if n > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(tiers))
	for _, t := range tiers {
		doc := tierDoc{
			MinPrice:       t.MinPrice.String(),
			RatePercentage: t.RatePercentage.String(),
			Description:    t.Description,
		}
		if t.MaxPrice != nil {
			doc.MaxPrice = t.MaxPrice.String()
		}
		docs = append(docs, doc)
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed tiers: %w", err)
	}
	return nil
}

func docToTier(doc tierDoc) (domain.CommissionTier, error) {
	minPrice, err := decimal.NewFromString(doc.MinPrice)
	if err != nil {
		return domain.CommissionTier{}, fmt.Errorf("tier %q: bad min_price: %w", doc.Description, err)
	}
	rate, err := decimal.NewFromString(doc.RatePercentage)
	if err != nil {
		return domain.CommissionTier{}, fmt.Errorf("tier %q: bad rate_percentage: %w", doc.Description, err)
	}

	tier := domain.CommissionTier{
		MinPrice:       minPrice,
		RatePercentage: rate,
		Description:    doc.Description,
	}
	if doc.MaxPrice != "" {
		maxPrice, err := decimal.NewFromString(doc.MaxPrice)
		if err != nil {
			return domain.CommissionTier{}, fmt.Errorf("tier %q: bad max_price: %w", doc.Description, err)
		}
		tier.MaxPrice = &maxPrice
	}
	return tier, nil
}
