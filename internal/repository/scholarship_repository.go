package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"scholarhub/internal/db"
	apperrors "scholarhub/internal/errors"
	"scholarhub/internal/model"
)

// TopLimit is how many scholarships the home listing returns.
const TopLimit = 6

// ScholarshipRepository defines scholarship persistence operations.
type ScholarshipRepository interface {
	Top(ctx context.Context, limit int64) ([]model.Scholarship, error)
	List(ctx context.Context) ([]model.Scholarship, error)
	FindDetail(ctx context.Context, id primitive.ObjectID) (*model.ScholarshipDetail, error)
	Create(ctx context.Context, s *model.Scholarship) (primitive.ObjectID, error)
}

type scholarshipRepository struct {
	conns db.Provider
}

// NewScholarshipRepository builds a Mongo-backed repository.
func NewScholarshipRepository(conns db.Provider) ScholarshipRepository {
	return &scholarshipRepository{conns: conns}
}

// TopOptions orders by application fee ascending, newest first among equal
// fees (ObjectIDs grow with insertion time), and caps the result at limit.
func TopOptions(limit int64) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "applicationFees", Value: 1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)
}

// DetailPipeline matches one scholarship and joins the reviews whose postId
// references it, whether stored as a hex string or as an ObjectID.
func DetailPipeline(id primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$lookup", Value: bson.M{
			"from": db.ReviewsCollection,
			"let":  bson.M{"sid": "$_id"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{"$expr": bson.M{
					"$in": bson.A{"$postId", bson.A{"$$sid", bson.M{"$toString": "$$sid"}}},
				}}},
			},
			"as": "reviews",
		}}},
	}
}

func (r *scholarshipRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	conn, err := r.conns.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	return conn.Scholarships, nil
}

func (r *scholarshipRepository) find(ctx context.Context, opts ...*options.FindOptions) ([]model.Scholarship, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.D{}, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]model.Scholarship, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *scholarshipRepository) Top(ctx context.Context, limit int64) ([]model.Scholarship, error) {
	return r.find(ctx, TopOptions(limit))
}

func (r *scholarshipRepository) List(ctx context.Context) ([]model.Scholarship, error) {
	return r.find(ctx)
}

func (r *scholarshipRepository) FindDetail(ctx context.Context, id primitive.ObjectID) (*model.ScholarshipDetail, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Aggregate(ctx, DetailPipeline(id))
	if err != nil {
		return nil, err
	}
	var details []model.ScholarshipDetail
	if err := cur.All(ctx, &details); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, apperrors.ErrNotFound
	}
	d := details[0]
	if d.Reviews == nil {
		d.Reviews = []model.Review{}
	}
	return &d, nil
}

func (r *scholarshipRepository) Create(ctx context.Context, s *model.Scholarship) (primitive.ObjectID, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	s.ID = primitive.NilObjectID
	res, err := coll.InsertOne(ctx, s)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	s.ID = id
	return id, nil
}
