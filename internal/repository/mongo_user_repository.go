package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/KakonDebnath/bistro-boss-server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Email    string             `bson:"email"`
	Role     string             `bson:"role,omitempty"`
	PhotoURL string             `bson:"photoURL,omitempty"`
}

func (d *userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Email:    d.Email,
		Role:     domain.Role(d.Role),
		PhotoURL: d.PhotoURL,
	}
}

// MongoUserRepository implements UserRepository using MongoDB
type MongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository creates a new MongoUserRepository
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(CollectionUsers)}
}

// EnsureIndexes creates the unique index on email
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create users email index: %w", err)
	}
	return nil
}

// FindAll returns every user
func (r *MongoUserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	users := make([]*domain.User, 0, len(docs))
	for i := range docs {
		users = append(users, docs[i].toDomain())
	}
	return users, nil
}

// FindByEmail retrieves a user by email
func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Insert stores a new user
func (r *MongoUserRepository) Insert(ctx context.Context, user *domain.User) (*domain.InsertResult, error) {
	doc := userDocument{
		Name:     user.Name,
		Email:    user.Email,
		Role:     string(user.Role),
		PhotoURL: user.PhotoURL,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateKey
		}
		return nil, err
	}
	return insertResult(res), nil
}

// PromoteToAdmin sets role to admin
func (r *MongoUserRepository) PromoteToAdmin(ctx context.Context, id string) (*domain.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: string(domain.RoleAdmin)}}}}
	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		return nil, err
	}

	result := &domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		if upserted, ok := res.UpsertedID.(primitive.ObjectID); ok {
			hex := upserted.Hex()
			result.UpsertedID = &hex
		}
	}
	return result, nil
}

// Delete removes a user
func (r *MongoUserRepository) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	return deleteByID(ctx, r.coll, id)
}
