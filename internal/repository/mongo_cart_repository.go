package repository

import (
	"context"

	"github.com/KakonDebnath/bistro-boss-server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type cartDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	MenuItemID string             `bson:"menuItemId"`
	Name       string             `bson:"name"`
	Image      string             `bson:"image"`
	Price      float64            `bson:"price"`
	Email      string             `bson:"email"`
}

// MongoCartRepository implements CartRepository using MongoDB
type MongoCartRepository struct {
	coll *mongo.Collection
}

// NewMongoCartRepository creates a new MongoCartRepository
func NewMongoCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{coll: db.Collection(CollectionCarts)}
}

// FindByEmail returns the items in a diner's cart
func (r *MongoCartRepository) FindByEmail(ctx context.Context, email string) ([]*domain.CartItem, error) {
	cursor, err := r.coll.Find(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		return nil, err
	}

	var docs []cartDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	items := make([]*domain.CartItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, &domain.CartItem{
			ID:         d.ID.Hex(),
			MenuItemID: d.MenuItemID,
			Name:       d.Name,
			Image:      d.Image,
			Price:      d.Price,
			Email:      d.Email,
		})
	}
	return items, nil
}

// Insert stores a new cart item
func (r *MongoCartRepository) Insert(ctx context.Context, item *domain.CartItem) (*domain.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, cartDocument{
		MenuItemID: item.MenuItemID,
		Name:       item.Name,
		Image:      item.Image,
		Price:      item.Price,
		Email:      item.Email,
	})
	if err != nil {
		return nil, err
	}
	return insertResult(res), nil
}

// Delete removes a cart item
func (r *MongoCartRepository) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	return deleteByID(ctx, r.coll, id)
}
