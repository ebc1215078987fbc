package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"scholarhub/internal/db"
	apperrors "scholarhub/internal/errors"
	"scholarhub/internal/model"
)

// UserRepository defines persistence operations.
type UserRepository interface {
	// CreateIfAbsent inserts user unless one with the same email exists.
	// It returns the new id, or primitive.NilObjectID when nothing was inserted.
	CreateIfAbsent(ctx context.Context, user *model.User) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role model.Role) (*model.UpdateResult, error)
}

type userRepository struct {
	conns db.Provider
}

// NewUserRepository builds a Mongo-backed repository.
func NewUserRepository(conns db.Provider) UserRepository {
	return &userRepository{conns: conns}
}

func (r *userRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	conn, err := r.conns.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	return conn.Users, nil
}

func (r *userRepository) CreateIfAbsent(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	// $setOnInsert leaves an existing document untouched.
	res, err := coll.UpdateOne(ctx,
		bson.M{"email": user.Email},
		bson.M{"$setOnInsert": bson.M{
			"displayName": user.DisplayName,
			"email":       user.Email,
			"role":        user.Role,
			"createdAt":   user.CreatedAt,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if res.UpsertedID == nil {
		return primitive.NilObjectID, nil
	}
	id, _ := res.UpsertedID.(primitive.ObjectID)
	user.ID = id
	return id, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, role model.Role) (*model.UpdateResult, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	res, err := coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return nil, err
	}
	return &model.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}
