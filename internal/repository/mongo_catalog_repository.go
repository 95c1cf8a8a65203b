package repository

import (
	"context"

	"github.com/KakonDebnath/bistro-boss-server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type menuDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Recipe   string             `bson:"recipe"`
	Image    string             `bson:"image"`
	Category string             `bson:"category"`
	Price    float64            `bson:"price"`
}

type reviewDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Details string             `bson:"details"`
	Rating  float64            `bson:"rating"`
}

// MongoMenuRepository implements MenuRepository using MongoDB
type MongoMenuRepository struct {
	coll *mongo.Collection
}

// NewMongoMenuRepository creates a new MongoMenuRepository
func NewMongoMenuRepository(db *mongo.Database) *MongoMenuRepository {
	return &MongoMenuRepository{coll: db.Collection(CollectionMenu)}
}

// FindAll returns every menu item
func (r *MongoMenuRepository) FindAll(ctx context.Context) ([]*domain.MenuItem, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	var docs []menuDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	items := make([]*domain.MenuItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, &domain.MenuItem{
			ID:       d.ID.Hex(),
			Name:     d.Name,
			Recipe:   d.Recipe,
			Image:    d.Image,
			Category: d.Category,
			Price:    d.Price,
		})
	}
	return items, nil
}

// MongoReviewRepository implements ReviewRepository using MongoDB
type MongoReviewRepository struct {
	coll *mongo.Collection
}

// NewMongoReviewRepository creates a new MongoReviewRepository
func NewMongoReviewRepository(db *mongo.Database) *MongoReviewRepository {
	return &MongoReviewRepository{coll: db.Collection(CollectionReviews)}
}

// FindAll returns every review
func (r *MongoReviewRepository) FindAll(ctx context.Context) ([]*domain.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	var docs []reviewDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	reviews := make([]*domain.Review, 0, len(docs))
	for _, d := range docs {
		reviews = append(reviews, &domain.Review{
			ID:      d.ID.Hex(),
			Name:    d.Name,
			Details: d.Details,
			Rating:  d.Rating,
		})
	}
	return reviews, nil
}
