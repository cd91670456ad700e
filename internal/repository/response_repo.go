package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"istitlaa/internal/model"
)

// ResponseRepo handles MongoDB operations for poll responses
type ResponseRepo interface {
	Create(ctx context.Context, response *model.PollResponse) (string, error)
	GetByPollID(ctx context.Context, pollID string) ([]*model.PollResponse, error)
	CountByPollID(ctx context.Context, pollID string) (int64, error)
	DeleteByPollID(ctx context.Context, pollID string) error
}

type responseRepo struct {
	collection *mongo.Collection
}

// NewResponseRepo creates a new response repository
func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{
		collection: db.Collection("pollResponses"),
	}
}

func (r *responseRepo) Create(ctx context.Context, response *model.PollResponse) (string, error) {
	if response.ID == "" {
		response.ID = primitive.NewObjectID().Hex()
	}
	if response.SubmittedAt.IsZero() {
		response.SubmittedAt = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, response); err != nil {
		return "", err
	}
	return response.ID, nil
}

func (r *responseRepo) GetByPollID(ctx context.Context, pollID string) ([]*model.PollResponse, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"pollId": pollID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	responses := []*model.PollResponse{}
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseRepo) CountByPollID(ctx context.Context, pollID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"pollId": pollID})
}

func (r *responseRepo) DeleteByPollID(ctx context.Context, pollID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"pollId": pollID})
	return err
}
