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

// PollRepo handles MongoDB operations for polls
type PollRepo interface {
	Create(ctx context.Context, poll *model.Poll) (string, error)
	GetByID(ctx context.Context, id string) (*model.Poll, error)
	GetAll(ctx context.Context) ([]*model.Poll, error)
	Update(ctx context.Context, poll *model.Poll) error
	Delete(ctx context.Context, id string) error

	AddQuestion(ctx context.Context, pollID string, question model.Question) error
	UpdateQuestion(ctx context.Context, question model.Question) error
	RemoveQuestion(ctx context.Context, questionID string) error
	GetByQuestionID(ctx context.Context, questionID string) (*model.Poll, error)
}

type pollRepo struct {
	collection *mongo.Collection
}

// NewPollRepo creates a new poll repository
func NewPollRepo(db *mongo.Database) PollRepo {
	return &pollRepo{
		collection: db.Collection("polls"),
	}
}

func (r *pollRepo) Create(ctx context.Context, poll *model.Poll) (string, error) {
	if poll.ID == "" {
		poll.ID = primitive.NewObjectID().Hex()
	}
	poll.CreatedAt = time.Now()
	poll.UpdatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, poll); err != nil {
		return "", err
	}
	return poll.ID, nil
}

func (r *pollRepo) GetByID(ctx context.Context, id string) (*model.Poll, error) {
	var poll model.Poll
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&poll)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &poll, nil
}

func (r *pollRepo) GetAll(ctx context.Context) ([]*model.Poll, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	polls := []*model.Poll{}
	if err := cursor.All(ctx, &polls); err != nil {
		return nil, err
	}
	return polls, nil
}

func (r *pollRepo) Update(ctx context.Context, poll *model.Poll) error {
	poll.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": poll.ID}, poll)
	return err
}

func (r *pollRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *pollRepo) AddQuestion(ctx context.Context, pollID string, question model.Question) error {
	update := bson.M{
		"$push": bson.M{"questions": question},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": pollID}, update)
	return err
}

func (r *pollRepo) UpdateQuestion(ctx context.Context, question model.Question) error {
	update := bson.M{
		"$set": bson.M{
			"questions.$": question,
			"updatedAt":   time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"questions._id": question.ID}, update)
	return err
}

func (r *pollRepo) RemoveQuestion(ctx context.Context, questionID string) error {
	update := bson.M{
		"$pull": bson.M{"questions": bson.M{"_id": questionID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"questions._id": questionID}, update)
	return err
}

func (r *pollRepo) GetByQuestionID(ctx context.Context, questionID string) (*model.Poll, error) {
	var poll model.Poll
	err := r.collection.FindOne(ctx, bson.M{"questions._id": questionID}).Decode(&poll)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &poll, nil
}
