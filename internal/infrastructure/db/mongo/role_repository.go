package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/housebroker/listing-api/internal/core/domain"
)

const rolesCollection = "roles"

// RoleRepository backs the seeded role catalog. The catalog confirms which
// roles are available; the role domain itself is fixed in code.
type RoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{coll: db.Collection(rolesCollection)}
}

func (r *RoleRepository) Exists(ctx context.Context, role domain.Role) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": string(role)})
	if err != nil {
		return false, fmt.Errorf("count role: %w", err)
	}
	return n > 0, nil
}

// Ensure idempotently seeds a role.
func (r *RoleRepository) Ensure(ctx context.Context, role domain.Role) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": string(role)},
		bson.M{"$setOnInsert": bson.M{"name": string(role)}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("ensure role: %w", err)
	}
	return nil
}
